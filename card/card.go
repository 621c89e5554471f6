// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package card renders a monitor description as an image, one "label: value"
// line per field under a title.
package card

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/GermanBionicSystems/ddcci/ddcci"
)

// Opts is the card layout.
type Opts struct {
	Width    int
	FontSize float64
	Padding  float64
	// Swatch, when not nil, is drawn as a bar under the title. Use it for
	// the white point of the monitor.
	Swatch color.Color
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Width:    480,
	FontSize: 16,
	Padding:  12,
}

// Render draws the card.
func Render(title string, fields []ddcci.Field, opts *Opts) (image.Image, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Width <= 0 || opts.FontSize <= 0 {
		return nil, fmt.Errorf("card: invalid size %d, %g", opts.Width, opts.FontSize)
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("card: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: opts.FontSize})
	defer face.Close()

	line := lineHeight(opts)
	dc := gg.NewContext(opts.Width, Height(len(fields), opts))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)

	y := opts.Padding
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, opts.Padding, y+line/2, 0, 0.5)
	y += line
	if opts.Swatch != nil {
		dc.SetColor(opts.Swatch)
		dc.DrawRoundedRectangle(opts.Padding, y+line/4, float64(opts.Width)-2*opts.Padding, line/2, line/8)
		dc.Fill()
		y += line
	}

	// Values are aligned on the widest label.
	labelW := 0.
	for _, fl := range fields {
		if w, _ := dc.MeasureString(fl.Label); w > labelW {
			labelW = w
		}
	}
	for _, fl := range fields {
		dc.SetRGB(0.4, 0.4, 0.4)
		dc.DrawStringAnchored(fl.Label, opts.Padding, y+line/2, 0, 0.5)
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(fl.Value, 2*opts.Padding+labelW, y+line/2, 0, 0.5)
		y += line
	}
	return dc.Image(), nil
}

// Height returns the height in pixels of a card with n fields.
func Height(n int, opts *Opts) int {
	if opts == nil {
		opts = &DefaultOpts
	}
	lines := n + 1
	if opts.Swatch != nil {
		lines++
	}
	return int(math.Ceil(2*opts.Padding + lineHeight(opts)*float64(lines)))
}

// WritePNG renders the card as PNG into w.
func WritePNG(w io.Writer, title string, fields []ddcci.Field, opts *Opts) error {
	img, err := Render(title, fields, opts)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("card: %w", err)
	}
	return nil
}

func lineHeight(opts *Opts) float64 {
	return opts.FontSize * 1.5
}
