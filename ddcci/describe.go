// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ddcci

import (
	"fmt"
	"strconv"

	"github.com/GermanBionicSystems/ddcci/vcp"
)

// Description is a snapshot of the identification registers and current
// settings of one monitor. Empty or nil fields were not reported.
type Description struct {
	Name                 string  `json:"name"`
	Model                string  `json:"model"`
	Technology           string  `json:"display_technology_type,omitempty"`
	SubPixelLayout       string  `json:"flat_panel_sub_pixel_layout,omitempty"`
	Controller           string  `json:"display_controller_type,omitempty"`
	FirmwareLevel        string  `json:"display_firmware_level,omitempty"`
	ApplicationEnableKey *uint32 `json:"application_enable_key,omitempty"`
	VCPVersion           string  `json:"vcp_version,omitempty"`
	VerticalFrequency    string  `json:"vertical_frequency,omitempty"`
	HorizontalFrequency  string  `json:"horizontal_frequency,omitempty"`

	Brightness         *int    `json:"brightness,omitempty"`
	Contrast           *int    `json:"contrast,omitempty"`
	ColorPreset        string  `json:"color_preset,omitempty"`
	RGB                *[3]int `json:"rgb,omitempty"`
	ColorTemperature   *int    `json:"color_temperature,omitempty"` // kelvin
	InputSource        string  `json:"input_source,omitempty"`
	PowerMode          string  `json:"power_mode,omitempty"`
	DisplayApplication string  `json:"display_application,omitempty"`
}

// Field is one labelled line of a Description.
type Field struct {
	Label string
	Value string
}

// Fields returns the reported fields in display order.
func (desc *Description) Fields() []Field {
	out := []Field{{"model", desc.Model}}
	add := func(label, value string) {
		if value != "" {
			out = append(out, Field{label, value})
		}
	}
	add("display technology type", desc.Technology)
	add("flat panel sub-pixel layout", desc.SubPixelLayout)
	add("display controller type", desc.Controller)
	if desc.FirmwareLevel != "" {
		add("display firmware level", "v"+desc.FirmwareLevel)
	}
	if desc.ApplicationEnableKey != nil {
		add("application enable key", strconv.FormatUint(uint64(*desc.ApplicationEnableKey), 10))
	}
	if desc.VCPVersion != "" {
		add("vcp version", "v"+desc.VCPVersion)
	}
	add("vertical frequency", desc.VerticalFrequency)
	add("horizontal frequency", desc.HorizontalFrequency)
	if desc.Brightness != nil {
		add("brightness", strconv.Itoa(*desc.Brightness))
	}
	if desc.Contrast != nil {
		add("contrast", strconv.Itoa(*desc.Contrast))
	}
	add("color preset", desc.ColorPreset)
	if desc.RGB != nil {
		add("rgb gains", fmt.Sprint(*desc.RGB))
	}
	if desc.ColorTemperature != nil {
		add("color temperature", strconv.Itoa(*desc.ColorTemperature)+"K")
	}
	add("input source", desc.InputSource)
	add("power mode", desc.PowerMode)
	add("display application", desc.DisplayApplication)
	return out
}

// Describe reads every identification register and setting the monitor
// lists in its capabilities string. When the string lists no VCP codes at
// all, every field is attempted.
//
// An identification value missing from the decode tables is left out. Any
// other failure aborts the description.
func (d *Dev) Describe() (*Description, error) {
	caps, err := d.Capabilities()
	if err != nil {
		return nil, err
	}
	listed := func(code vcp.Code) bool {
		return len(caps.VCP) == 0 || caps.Supports(code)
	}
	desc := &Description{Name: d.name, Model: caps.Model}

	if listed(vcp.DisplayTechnologyType) {
		t, ok, err := d.Technology()
		if err != nil {
			return nil, err
		}
		if ok {
			desc.Technology = t.String()
		}
	}
	if listed(vcp.FlatPanelSubPixelLayout) {
		l, ok, err := d.SubPixelLayout()
		if err != nil {
			return nil, err
		}
		if ok {
			desc.SubPixelLayout = l.String()
		}
	}
	if listed(vcp.DisplayControllerType) {
		c, ok, err := d.Controller()
		if err != nil {
			return nil, err
		}
		if ok {
			desc.Controller = c.String()
		}
	}
	if listed(vcp.DisplayFirmwareLevel) {
		r, err := d.FirmwareLevel()
		if err != nil {
			return nil, err
		}
		desc.FirmwareLevel = r.String()
	}
	if listed(vcp.ApplicationEnableKey) {
		k, err := d.ApplicationEnableKey()
		if err != nil {
			return nil, err
		}
		desc.ApplicationEnableKey = &k
	}
	if listed(vcp.Version) {
		r, err := d.VCPVersion()
		if err != nil {
			return nil, err
		}
		desc.VCPVersion = r.String()
	}
	if listed(vcp.VerticalFrequency) {
		f, err := d.VerticalFrequency()
		if err != nil {
			return nil, err
		}
		desc.VerticalFrequency = f.String()
	}
	if listed(vcp.HorizontalFrequency) {
		f, err := d.HorizontalFrequency()
		if err != nil {
			return nil, err
		}
		desc.HorizontalFrequency = f.String()
	}

	if listed(vcp.Luminance) {
		v, err := d.Brightness()
		if err != nil {
			return nil, err
		}
		desc.Brightness = &v
	}
	if listed(vcp.Contrast) {
		v, err := d.Contrast()
		if err != nil {
			return nil, err
		}
		desc.Contrast = &v
	}
	if listed(vcp.SelectColorPreset) {
		p, err := d.ColorPreset()
		if err != nil {
			return nil, err
		}
		desc.ColorPreset = p.String()
	}
	if listed(vcp.VideoGainRed) && listed(vcp.VideoGainGreen) && listed(vcp.VideoGainBlue) {
		rgb, err := d.RGB()
		if err != nil {
			return nil, err
		}
		desc.RGB = &rgb
	}
	// Both codes are needed to convert to kelvin, so an empty list is not
	// enough here.
	if caps.Supports(vcp.ColorTemperatureIncrement) && caps.Supports(vcp.ColorTemperatureRequest) {
		k, err := d.ColorTemperature()
		if err != nil {
			return nil, err
		}
		desc.ColorTemperature = &k
	}
	if listed(vcp.InputSource) {
		in, err := d.InputSource()
		if err != nil {
			return nil, err
		}
		desc.InputSource = in.String()
	}
	if listed(vcp.PowerMode) {
		p, err := d.PowerMode()
		if err != nil {
			return nil, err
		}
		desc.PowerMode = p.String()
	}
	if listed(vcp.DisplayApplication) {
		a, err := d.DisplayApplication()
		if err != nil {
			return nil, err
		}
		desc.DisplayApplication = a.String()
	}
	return desc, nil
}

// Report is the outcome of describing one monitor.
type Report struct {
	Dev         *Dev
	Description *Description
	Err         error
}

// DescribeAll describes every monitor. A failure is recorded in that
// monitor's Report and the remaining monitors are still described.
func DescribeAll(devs []*Dev) []Report {
	out := make([]Report, len(devs))
	for i, d := range devs {
		desc, err := d.Describe()
		out[i] = Report{Dev: d, Description: desc, Err: err}
	}
	return out
}
