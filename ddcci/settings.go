// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ddcci

import (
	"fmt"

	"github.com/GermanBionicSystems/ddcci/vcp"
)

// Unchanged passed to SetRGB leaves a channel alone.
const Unchanged = -1

// baseColorTemperature is the kelvin value of raw colour temperature 0.
const baseColorTemperature = 3000

var gains = [3]vcp.Code{vcp.VideoGainRed, vcp.VideoGainGreen, vcp.VideoGainBlue}

// Brightness returns the luminance, usually 0-100.
func (d *Dev) Brightness() (int, error) {
	return d.current(vcp.Luminance)
}

// SetBrightness sets the luminance, clamped to [0, MaxBrightness].
func (d *Dev) SetBrightness(v int) error {
	return d.setContinuous(vcp.Luminance, v)
}

// MaxBrightness returns the largest accepted luminance.
func (d *Dev) MaxBrightness() (int, error) {
	return d.maximum(vcp.Luminance)
}

// Contrast returns the contrast, usually 0-100.
func (d *Dev) Contrast() (int, error) {
	return d.current(vcp.Contrast)
}

// SetContrast sets the contrast, clamped to [0, MaxContrast].
func (d *Dev) SetContrast(v int) error {
	return d.setContinuous(vcp.Contrast, v)
}

// MaxContrast returns the largest accepted contrast.
func (d *Dev) MaxContrast() (int, error) {
	return d.maximum(vcp.Contrast)
}

// RGB returns the red, green and blue video gains.
func (d *Dev) RGB() ([3]int, error) {
	var out [3]int
	for i, code := range gains {
		v, err := d.current(code)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

// SetRGB sets the red, green and blue video gains, each clamped to its own
// maximum. A channel given as Unchanged is neither read nor written. Most
// monitors switch to the user colour preset when a gain is written.
func (d *Dev) SetRGB(r, g, b int) error {
	for i, v := range [3]int{r, g, b} {
		if v == Unchanged {
			continue
		}
		if err := d.setContinuous(gains[i], v); err != nil {
			return err
		}
	}
	return nil
}

// MaxRGB returns the largest accepted red, green and blue gains.
func (d *Dev) MaxRGB() ([3]int, error) {
	var out [3]int
	for i, code := range gains {
		v, err := d.maximum(code)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

// colorTemperatureIncrement returns the kelvin step of one raw colour
// temperature unit. Both colour temperature codes must be listed in the
// capabilities string.
func (d *Dev) colorTemperatureIncrement() (int, error) {
	caps, err := d.Capabilities()
	if err != nil {
		return 0, err
	}
	if !caps.Supports(vcp.ColorTemperatureRequest) || !caps.Supports(vcp.ColorTemperatureIncrement) {
		return 0, fmt.Errorf("ddcci: %s: color temperature: %w", d.name, ErrNotSupported)
	}
	inc, err := d.current(vcp.ColorTemperatureIncrement)
	if err != nil {
		return 0, err
	}
	if inc == 0 {
		return 0, &FeatureError{Op: "get", Code: vcp.ColorTemperatureIncrement, Err: ErrBadReply}
	}
	return inc, nil
}

// ColorTemperature returns the white point in kelvin.
func (d *Dev) ColorTemperature() (int, error) {
	inc, err := d.colorTemperatureIncrement()
	if err != nil {
		return 0, err
	}
	v, err := d.current(vcp.ColorTemperatureRequest)
	if err != nil {
		return 0, err
	}
	return baseColorTemperature + inc*v, nil
}

// SetColorTemperature sets the white point in kelvin. The value is rounded
// down to the monitor's increment and clamped to its range.
func (d *Dev) SetColorTemperature(kelvin int) error {
	inc, err := d.colorTemperatureIncrement()
	if err != nil {
		return err
	}
	return d.setContinuous(vcp.ColorTemperatureRequest, floorDiv(kelvin-baseColorTemperature, inc))
}

// MaxColorTemperature returns the highest white point in kelvin.
func (d *Dev) MaxColorTemperature() (int, error) {
	inc, err := d.colorTemperatureIncrement()
	if err != nil {
		return 0, err
	}
	v, err := d.maximum(vcp.ColorTemperatureRequest)
	if err != nil {
		return 0, err
	}
	return baseColorTemperature + inc*v, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ColorPreset returns the selected colour preset.
func (d *Dev) ColorPreset() (vcp.Preset, error) {
	return getEnum[vcp.Preset](d, vcp.SelectColorPreset)
}

// SetColorPreset selects a colour preset by name, see vcp.Presets.
func (d *Dev) SetColorPreset(name string) error {
	p, err := vcp.ParsePreset(name)
	if err != nil {
		return err
	}
	return d.setEnum(vcp.SelectColorPreset, uint8(p))
}

// InputSource returns the active input.
func (d *Dev) InputSource() (vcp.Input, error) {
	return getEnum[vcp.Input](d, vcp.InputSource)
}

// SetInputSource switches the input by name, see vcp.Inputs.
func (d *Dev) SetInputSource(name string) error {
	in, err := vcp.ParseInput(name)
	if err != nil {
		return err
	}
	return d.setEnum(vcp.InputSource, uint8(in))
}

// PowerMode returns the power state.
func (d *Dev) PowerMode() (vcp.Power, error) {
	return getEnum[vcp.Power](d, vcp.PowerMode)
}

// SetPowerMode changes the power state by name, see vcp.Powers.
func (d *Dev) SetPowerMode(name string) error {
	p, err := vcp.ParsePower(name)
	if err != nil {
		return err
	}
	return d.setEnum(vcp.PowerMode, uint8(p))
}

// DisplayApplication returns the picture mode.
func (d *Dev) DisplayApplication() (vcp.Application, error) {
	return getEnum[vcp.Application](d, vcp.DisplayApplication)
}

// SetDisplayApplication selects the picture mode by name, see
// vcp.Applications.
func (d *Dev) SetDisplayApplication(name string) error {
	a, err := vcp.ParseApplication(name)
	if err != nil {
		return err
	}
	return d.setEnum(vcp.DisplayApplication, uint8(a))
}

// Restore restores factory defaults: "all", "luminance" or "color". It
// writes without reading first.
func (d *Dev) Restore(option string) error {
	r, err := vcp.ParseRestore(option)
	if err != nil {
		return err
	}
	code, _ := r.Code()
	return d.set(code, 1)
}

// Feature reads a feature by its registry name, see vcp.Names.
func (d *Dev) Feature(name string) (current, maximum uint32, err error) {
	code, err := vcp.CodeFor(name)
	if err != nil {
		return 0, 0, err
	}
	return d.get(code)
}

// SetFeature writes a feature by its registry name, as is. There is no
// clamping and no read before the write.
func (d *Dev) SetFeature(name string, value uint32) error {
	code, err := vcp.CodeFor(name)
	if err != nil {
		return err
	}
	return d.set(code, value)
}
