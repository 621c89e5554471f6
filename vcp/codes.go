// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package vcp

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a one byte VCP feature code.
type Code byte

const (
	NewControlValue Code = 0x02
	// Restore codes take any non-zero value.
	RestoreFactoryDefaults           Code = 0x04
	RestoreLuminanceContrastDefaults Code = 0x05
	RestoreGeometryDefaults          Code = 0x06
	// Also resets luminance on most panels.
	RestoreColorDefaults      Code = 0x08
	ColorTemperatureIncrement Code = 0x0B
	ColorTemperatureRequest   Code = 0x0C
	// Called brightness on the OSD.
	Luminance         Code = 0x10
	Contrast          Code = 0x12
	SelectColorPreset Code = 0x14
	// Writing a gain switches the colour preset to user.
	VideoGainRed   Code = 0x16
	VideoGainGreen Code = 0x18
	VideoGainBlue  Code = 0x1A
	ActiveControl  Code = 0x52
	InputSource    Code = 0x60

	VideoBlackLevelRed   Code = 0x6C
	VideoBlackLevelGreen Code = 0x6E
	VideoBlackLevelBlue  Code = 0x70

	// Read-only identification and timing registers.
	HorizontalFrequency     Code = 0xAC
	VerticalFrequency       Code = 0xAE
	FlatPanelSubPixelLayout Code = 0xB2
	DisplayTechnologyType   Code = 0xB6
	ApplicationEnableKey    Code = 0xC6
	DisplayControllerType   Code = 0xC8
	DisplayFirmwareLevel    Code = 0xC9

	OSD                Code = 0xCA
	PowerMode          Code = 0xD6
	DisplayApplication Code = 0xDC
	Version            Code = 0xDF

	// 0xE0 to 0xFF are manufacturer specific.
	ManufacturerE0 Code = 0xE0
	ManufacturerE1 Code = 0xE1
	ManufacturerE2 Code = 0xE2
	ManufacturerF0 Code = 0xF0
	ManufacturerF1 Code = 0xF1
	ManufacturerF2 Code = 0xF2
	ManufacturerFD Code = 0xFD
)

// ErrUnknownFeature is returned when a feature name is not in the registry.
var ErrUnknownFeature = errors.New("vcp: unknown feature")

var registry = []struct {
	name string
	code Code
}{
	{"New Control Value", NewControlValue},
	{"Restore Factory Defaults", RestoreFactoryDefaults},
	{"Restore Factory Luminance/Contrast Defaults", RestoreLuminanceContrastDefaults},
	{"Restore Factory Geometry Defaults", RestoreGeometryDefaults},
	{"Restore Factory Color Defaults", RestoreColorDefaults},
	{"Color Temperature Increment", ColorTemperatureIncrement},
	{"Color Temperature Request", ColorTemperatureRequest},
	{"Luminance", Luminance},
	{"Contrast", Contrast},
	{"Select Color Preset", SelectColorPreset},
	{"Video Gain (Drive): Red", VideoGainRed},
	{"Video Gain (Drive): Green", VideoGainGreen},
	{"Video Gain (Drive): Blue", VideoGainBlue},
	{"Active Control", ActiveControl},
	{"Input Source", InputSource},
	{"Video Black Level: Red", VideoBlackLevelRed},
	{"Video Black Level: Green", VideoBlackLevelGreen},
	{"Video Black Level: Blue", VideoBlackLevelBlue},
	{"Horizontal Frequency", HorizontalFrequency},
	{"Vertical Frequency", VerticalFrequency},
	{"Flat Panel Sub-Pixel Layout", FlatPanelSubPixelLayout},
	{"Display Technology Type", DisplayTechnologyType},
	{"Application Enable Key", ApplicationEnableKey},
	{"Display Controller Type", DisplayControllerType},
	{"Display Firmware Level", DisplayFirmwareLevel},
	{"OSD", OSD},
	{"Power Mode", PowerMode},
	{"Display Application", DisplayApplication},
	{"VCP Version", Version},
	{"Manufacturer E0", ManufacturerE0},
	{"Manufacturer E1", ManufacturerE1},
	{"Manufacturer E2", ManufacturerE2},
	{"Manufacturer F0", ManufacturerF0},
	{"Manufacturer F1", ManufacturerF1},
	{"Manufacturer F2", ManufacturerF2},
	{"Manufacturer FD", ManufacturerFD},
}

// CodeFor returns the feature code registered under name. The comparison
// ignores case.
func CodeFor(name string) (Code, error) {
	for _, e := range registry {
		if strings.EqualFold(e.name, name) {
			return e.code, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFeature, name)
}

// Names returns the registered feature names in code order.
func Names() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.name
	}
	return out
}

// Name returns the registered name of the code and whether it is tabulated.
func (c Code) Name() (string, bool) {
	for _, e := range registry {
		if e.code == c {
			return e.name, true
		}
	}
	return "", false
}

func (c Code) String() string {
	if n, ok := c.Name(); ok {
		return fmt.Sprintf("0x%02X (%s)", byte(c), n)
	}
	return fmt.Sprintf("0x%02X", byte(c))
}

// Hex returns the two digit upper case form used in capabilities strings.
func (c Code) Hex() string {
	return fmt.Sprintf("%02X", byte(c))
}
