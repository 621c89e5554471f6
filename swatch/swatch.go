// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package swatch implements a 1D display.Drawer that shows the white point of
// a monitor on the terminal using ANSI color codes.
//
// The swatch is a ramp from black to the color produced by the monitor's red,
// green and blue gains, so a monitor tuned warm shows an orange ramp.
package swatch

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for the swatch.
type Opts struct {
	// X is the number of cells. Defaults to 32.
	X       int
	Palette *ansi256.Palette
	// W is where the ANSI codes are written. Defaults to stdout.
	W io.Writer

	_ struct{}
}

// Dev is a one line swatch on the console.
type Dev struct {
	w       io.Writer
	l       int
	palette ansi256.Palette

	pixels []byte
	buf    bytes.Buffer
}

// New returns a Dev that draws at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	l := opts.X
	if l <= 0 {
		l = 32
	}
	return &Dev{
		w:       w,
		l:       l,
		palette: *p,
		pixels:  make([]byte, 3*l),
	}
}

func (d *Dev) String() string {
	return "Swatch"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors and ends the line.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// Write accepts a stream of raw RGB pixels and writes it to the console.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels)%3 != 0 {
		return 0, errors.New("swatch: invalid RGB stream length")
	}
	copy(d.pixels, pixels)
	return d.refresh()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rectangle{Max: image.Point{X: d.l, Y: 1}}
}

// Draw implements display.Drawer.
//
// Only the first line of src is used.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	srcR := src.Bounds()
	srcR.Min = srcR.Min.Add(sp)
	if dX := r.Dx(); dX < srcR.Dx() {
		srcR.Max.X = srcR.Min.X + dX
	}
	deltaX := r.Min.X - srcR.Min.X
	for sX := srcR.Min.X; sX < srcR.Max.X; sX++ {
		c := color.NRGBAModel.Convert(src.At(sX, srcR.Min.Y)).(color.NRGBA)
		dX3 := 3 * (sX + deltaX)
		d.pixels[dX3] = c.R
		d.pixels[dX3+1] = c.G
		d.pixels[dX3+2] = c.B
	}
	_, err := d.refresh()
	return err
}

// Show draws a ramp from black to c over the whole swatch.
func (d *Dev) Show(c color.NRGBA) error {
	img := image.NewNRGBA(d.Bounds())
	for x := 0; x < d.l; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{
			R: scale(c.R, x+1, d.l),
			G: scale(c.G, x+1, d.l),
			B: scale(c.B, x+1, d.l),
			A: 255,
		})
	}
	return d.Draw(d.Bounds(), img, image.Point{})
}

// Gains returns the color of a white pixel given the red, green and blue
// gains and their maximums. A channel whose maximum is not positive is
// black.
func Gains(rgb, maximum [3]int) color.NRGBA {
	var c [3]uint8
	for i := range rgb {
		if maximum[i] <= 0 || rgb[i] <= 0 {
			continue
		}
		v := rgb[i]
		if v > maximum[i] {
			v = maximum[i]
		}
		c[i] = uint8(255 * v / maximum[i])
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

func scale(v uint8, n, d int) uint8 {
	return uint8(int(v) * n / d)
}

func (d *Dev) refresh() (int, error) {
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for i := 0; i < len(d.pixels)/3; i++ {
		c := color.NRGBA{d.pixels[3*i], d.pixels[3*i+1], d.pixels[3*i+2], 255}
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
	_, _ = d.buf.WriteString("\033[0m ")
	_, err := d.buf.WriteTo(d.w)
	return len(d.pixels), err
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
