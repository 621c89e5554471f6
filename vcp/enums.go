// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package vcp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSettingName is returned when a setting name is not part of
	// the closed enumeration of a feature.
	ErrInvalidSettingName = errors.New("vcp: invalid setting name")
	// ErrUnrecognizedValue is matched by UnrecognizedValueError.
	ErrUnrecognizedValue = errors.New("vcp: unrecognized value")
)

// UnrecognizedValueError is returned when a monitor reports a value outside
// the enumeration of a non-continuous feature.
type UnrecognizedValueError struct {
	Code  Code
	Value uint32
}

func (e *UnrecognizedValueError) Error() string {
	return fmt.Sprintf("vcp: %s reported unrecognized value 0x%02X", e.Code, e.Value)
}

// Is makes errors.Is(err, ErrUnrecognizedValue) true.
func (e *UnrecognizedValueError) Is(target error) bool {
	return target == ErrUnrecognizedValue
}

// Enum is the set of closed enumerations of settable features.
type Enum interface {
	~uint8
	fmt.Stringer
	Valid() bool
}

// Parse returns the enumeration value named name among values. The
// comparison ignores case. setting names the feature in the error.
func Parse[T Enum](setting, name string, values []T) (T, error) {
	for _, v := range values {
		if strings.EqualFold(v.String(), name) {
			return v, nil
		}
	}
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return 0, fmt.Errorf("%w %q for %s (want one of %s)", ErrInvalidSettingName, name, setting, strings.Join(names, ", "))
}

// Decode converts a raw value read from code into the enumeration.
func Decode[T Enum](code Code, raw uint32) (T, error) {
	v := T(raw)
	if raw > 0xFF || !v.Valid() {
		return 0, &UnrecognizedValueError{Code: code, Value: raw}
	}
	return v, nil
}

// Preset is a Select Color Preset (0x14) value.
type Preset uint8

const (
	PresetSRGB   Preset = 0x01
	Preset5000K  Preset = 0x04
	Preset6500K  Preset = 0x05
	Preset7500K  Preset = 0x06
	Preset9300K  Preset = 0x08
	Preset10000K Preset = 0x09
	Preset5700K  Preset = 0x0B
	PresetUser   Preset = 0x0C
)

// Presets lists every known colour preset.
var Presets = []Preset{PresetSRGB, Preset5000K, Preset5700K, Preset6500K, Preset7500K, Preset9300K, Preset10000K, PresetUser}

// ParsePreset returns the colour preset named name.
func ParsePreset(name string) (Preset, error) {
	return Parse("color preset", name, Presets)
}

func (p Preset) lookup() (string, bool) {
	switch p {
	case PresetSRGB:
		return "srgb", true
	case Preset5000K:
		return "5000k", true
	case Preset6500K:
		return "6500k", true
	case Preset7500K:
		return "7500k", true
	case Preset9300K:
		return "9300k", true
	case Preset10000K:
		return "10000k", true
	case Preset5700K:
		return "5700k", true
	case PresetUser:
		return "user", true
	default:
		return "", false
	}
}

// Valid reports whether p is a known preset.
func (p Preset) Valid() bool {
	_, ok := p.lookup()
	return ok
}

func (p Preset) String() string {
	if s, ok := p.lookup(); ok {
		return s
	}
	return fmt.Sprintf("Preset(0x%02X)", byte(p))
}

// Input is an Input Source (0x60) value.
type Input uint8

const (
	InputVGA         Input = 0x01
	InputDVI         Input = 0x03
	InputHDMI        Input = 0x04
	InputDisplayPort Input = 0x0F
)

// Inputs lists every known input source.
var Inputs = []Input{InputVGA, InputDVI, InputHDMI, InputDisplayPort}

// ParseInput returns the input source named name.
func ParseInput(name string) (Input, error) {
	return Parse("input source", name, Inputs)
}

func (i Input) lookup() (string, bool) {
	switch i {
	case InputVGA:
		return "vga", true
	case InputDVI:
		return "dvi", true
	case InputHDMI:
		return "hdmi", true
	case InputDisplayPort:
		return "dp", true
	default:
		return "", false
	}
}

// Valid reports whether i is a known input source.
func (i Input) Valid() bool {
	_, ok := i.lookup()
	return ok
}

func (i Input) String() string {
	if s, ok := i.lookup(); ok {
		return s
	}
	return fmt.Sprintf("Input(0x%02X)", byte(i))
}

// Power is a Power Mode (0xD6) value.
type Power uint8

const (
	PowerOn Power = 0x01
	// Screen off with a blinking LED.
	PowerStandby Power = 0x04
	PowerOff     Power = 0x05
)

// Powers lists every known power mode.
var Powers = []Power{PowerOn, PowerStandby, PowerOff}

// ParsePower returns the power mode named name.
func ParsePower(name string) (Power, error) {
	return Parse("power mode", name, Powers)
}

func (p Power) lookup() (string, bool) {
	switch p {
	case PowerOn:
		return "on", true
	case PowerStandby:
		return "standby", true
	case PowerOff:
		return "off", true
	default:
		return "", false
	}
}

// Valid reports whether p is a known power mode.
func (p Power) Valid() bool {
	_, ok := p.lookup()
	return ok
}

func (p Power) String() string {
	if s, ok := p.lookup(); ok {
		return s
	}
	return fmt.Sprintf("Power(0x%02X)", byte(p))
}

// Application is a Display Application (0xDC) value. The values are
// manufacturer defined; these are the Dell UltraSharp presets.
type Application uint8

const (
	ApplicationStandard   Application = 0x00
	ApplicationMultimedia Application = 0x02
	ApplicationMovie      Application = 0x03
	ApplicationGame       Application = 0x05
)

// Applications lists every known display application.
var Applications = []Application{ApplicationStandard, ApplicationMultimedia, ApplicationMovie, ApplicationGame}

// ParseApplication returns the display application named name.
func ParseApplication(name string) (Application, error) {
	return Parse("display application", name, Applications)
}

func (a Application) lookup() (string, bool) {
	switch a {
	case ApplicationStandard:
		return "std", true
	case ApplicationMultimedia:
		return "mix", true
	case ApplicationMovie:
		return "mov", true
	case ApplicationGame:
		return "gam", true
	default:
		return "", false
	}
}

// Valid reports whether a is a known display application.
func (a Application) Valid() bool {
	_, ok := a.lookup()
	return ok
}

func (a Application) String() string {
	if s, ok := a.lookup(); ok {
		return s
	}
	return fmt.Sprintf("Application(0x%02X)", byte(a))
}

// Restore selects which factory defaults to restore.
type Restore uint8

const (
	RestoreAll Restore = iota + 1
	RestoreLuminance
	RestoreColor
)

// Restores lists every restore option.
var Restores = []Restore{RestoreAll, RestoreLuminance, RestoreColor}

// ParseRestore returns the restore option named name.
func ParseRestore(name string) (Restore, error) {
	return Parse("restore", name, Restores)
}

// Code returns the feature code written to perform the restore.
func (r Restore) Code() (Code, bool) {
	switch r {
	case RestoreAll:
		return RestoreFactoryDefaults, true
	case RestoreLuminance:
		return RestoreLuminanceContrastDefaults, true
	case RestoreColor:
		return RestoreColorDefaults, true
	default:
		return 0, false
	}
}

// Valid reports whether r is a known restore option.
func (r Restore) Valid() bool {
	_, ok := r.Code()
	return ok
}

func (r Restore) String() string {
	switch r {
	case RestoreAll:
		return "all"
	case RestoreLuminance:
		return "luminance"
	case RestoreColor:
		return "color"
	default:
		return fmt.Sprintf("Restore(%d)", byte(r))
	}
}
