// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ddcci

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/physic"
	"pgregory.net/rapid"

	"github.com/GermanBionicSystems/ddcci/mccs"
	"github.com/GermanBionicSystems/ddcci/vcp"
)

func TestSetContinuousNoOp(t *testing.T) {
	for _, code := range []vcp.Code{vcp.Luminance, vcp.Contrast} {
		f := newFake(dellCaps, map[vcp.Code]feature{code: {50, 100}})
		d := New(f, "test")
		if err := d.setContinuous(code, 50); err != nil {
			t.Fatal(err)
		}
		if len(f.writes) != 0 {
			t.Errorf("%s: unchanged value was written: %v", code, f.writes)
		}
	}
}

func TestSetBrightnessClamp(t *testing.T) {
	var tests = []struct {
		v    int
		want uint32
	}{
		{150, 100},
		{-10, 0},
		{30, 30},
		{100, 100},
		{0, 0},
	}
	for _, test := range tests {
		f := newFake(dellCaps, map[vcp.Code]feature{vcp.Luminance: {50, 100}})
		d := New(f, "test")
		if err := d.SetBrightness(test.v); err != nil {
			t.Fatal(err)
		}
		want := []write{{vcp.Luminance, test.want}}
		if diff := cmp.Diff(want, f.writes, cmp.AllowUnexported(write{})); diff != "" {
			t.Errorf("SetBrightness(%d) (-want +got):\n%s", test.v, diff)
		}
	}
}

func TestSetContrast(t *testing.T) {
	f := newFake(dellCaps, map[vcp.Code]feature{vcp.Contrast: {75, 80}})
	d := New(f, "test")
	if err := d.SetContrast(90); err != nil {
		t.Fatal(err)
	}
	if v, err := d.Contrast(); err != nil || v != 80 {
		t.Errorf("Contrast()=%d, %v", v, err)
	}
	if v, err := d.MaxContrast(); err != nil || v != 80 {
		t.Errorf("MaxContrast()=%d, %v", v, err)
	}
}

func TestPropertyClamp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maximum := rapid.Uint32Range(0, 0xFFFF).Draw(t, "maximum")
		current := rapid.Uint32Range(0, maximum).Draw(t, "current")
		v := rapid.IntRange(-0x20000, 0x20000).Draw(t, "v")
		f := newFake("", map[vcp.Code]feature{vcp.Luminance: {current, maximum}})
		if err := New(f, "test").SetBrightness(v); err != nil {
			t.Fatal(err)
		}
		if v == int(current) {
			if len(f.writes) != 0 {
				t.Fatalf("wrote %v for unchanged value", f.writes)
			}
			return
		}
		if len(f.writes) != 1 {
			t.Fatalf("expected one write, got %v", f.writes)
		}
		got := f.writes[0].value
		if got > maximum {
			t.Fatalf("wrote %d above maximum %d", got, maximum)
		}
		if v >= 0 && v <= int(maximum) && got != uint32(v) {
			t.Fatalf("wrote %d, expected %d", got, v)
		}
	})
}

func TestInputSourceRoundTrip(t *testing.T) {
	for _, in := range vcp.Inputs {
		f := newFake(dellCaps, map[vcp.Code]feature{vcp.InputSource: {0x00, 0x0F}})
		d := New(f, "test")
		if err := d.SetInputSource(in.String()); err != nil {
			t.Fatal(err)
		}
		got, err := d.InputSource()
		if err != nil {
			t.Fatal(err)
		}
		if got != in {
			t.Errorf("SetInputSource(%s) read back %s", in, got)
		}
		if len(f.writes) != 1 || f.writes[0].value != uint32(in) {
			t.Errorf("SetInputSource(%s) writes %v", in, f.writes)
		}
	}
}

func TestSetEnumNoOp(t *testing.T) {
	f := newFake(dellCaps, map[vcp.Code]feature{
		vcp.PowerMode:          {0x01, 0x05},
		vcp.DisplayApplication: {0x03, 0x05},
		vcp.SelectColorPreset:  {0x0C, 0x0C},
	})
	d := New(f, "test")
	if err := d.SetPowerMode("on"); err != nil {
		t.Fatal(err)
	}
	if err := d.SetDisplayApplication("mov"); err != nil {
		t.Fatal(err)
	}
	if err := d.SetColorPreset("user"); err != nil {
		t.Fatal(err)
	}
	if len(f.writes) != 0 {
		t.Errorf("unchanged values were written: %v", f.writes)
	}
	if err := d.SetPowerMode("standby"); err != nil {
		t.Fatal(err)
	}
	if p, err := d.PowerMode(); err != nil || p != vcp.PowerStandby {
		t.Errorf("PowerMode()=%s, %v", p, err)
	}
}

func TestInvalidNameBeforeIO(t *testing.T) {
	f := newFake(dellCaps, dellFeatures())
	d := New(f, "test")
	calls := []func() error{
		func() error { return d.SetColorPreset("neon") },
		func() error { return d.SetInputSource("usb-c") },
		func() error { return d.SetPowerMode("sleepy") },
		func() error { return d.SetDisplayApplication("text") },
		func() error { return d.Restore("colors") },
	}
	for i, call := range calls {
		if err := call(); !errors.Is(err, vcp.ErrInvalidSettingName) {
			t.Errorf("#%d: expected ErrInvalidSettingName, got %v", i, err)
		}
	}
	if len(f.gets) != 0 || len(f.writes) != 0 {
		t.Errorf("I/O before validation: gets=%v writes=%v", f.gets, f.writes)
	}
}

func TestUnrecognizedEnumValue(t *testing.T) {
	f := newFake(dellCaps, map[vcp.Code]feature{
		vcp.SelectColorPreset: {0x02, 0x0C},
		vcp.InputSource:       {0x11, 0x11},
	})
	d := New(f, "test")
	if _, err := d.ColorPreset(); !errors.Is(err, vcp.ErrUnrecognizedValue) {
		t.Errorf("ColorPreset() expected ErrUnrecognizedValue, got %v", err)
	}
	_, err := d.InputSource()
	var uerr *vcp.UnrecognizedValueError
	if !errors.As(err, &uerr) || uerr.Value != 0x11 || uerr.Code != vcp.InputSource {
		t.Errorf("InputSource() unexpected error %v", err)
	}
}

func TestRGB(t *testing.T) {
	f := newFake(dellCaps, map[vcp.Code]feature{
		vcp.VideoGainRed:   {50, 100},
		vcp.VideoGainGreen: {50, 100},
		vcp.VideoGainBlue:  {50, 90},
	})
	d := New(f, "test")
	if err := d.SetRGB(Unchanged, 120, -5); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]vcp.Code{vcp.VideoGainGreen, vcp.VideoGainBlue}, f.gets); diff != "" {
		t.Errorf("red channel was read (-want +got):\n%s", diff)
	}
	want := []write{{vcp.VideoGainGreen, 100}, {vcp.VideoGainBlue, 0}}
	if diff := cmp.Diff(want, f.writes, cmp.AllowUnexported(write{})); diff != "" {
		t.Errorf("SetRGB() writes (-want +got):\n%s", diff)
	}
	rgb, err := d.RGB()
	if err != nil {
		t.Fatal(err)
	}
	if rgb != [3]int{50, 100, 0} {
		t.Errorf("RGB()=%v", rgb)
	}
	maxRGB, err := d.MaxRGB()
	if err != nil {
		t.Fatal(err)
	}
	if maxRGB != [3]int{100, 100, 90} {
		t.Errorf("MaxRGB()=%v", maxRGB)
	}
}

func TestFrequencies(t *testing.T) {
	var tests = []struct {
		raw  uint32
		want physic.Frequency
	}{
		{40000, 105536 * physic.Hertz},
		{60000, 60 * physic.KiloHertz},
		{50000, 50 * physic.KiloHertz},
		{49999, 115535 * physic.Hertz},
	}
	for _, test := range tests {
		f := newFake("", map[vcp.Code]feature{vcp.HorizontalFrequency: {test.raw, 0xFFFF}})
		got, err := New(f, "test").HorizontalFrequency()
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Errorf("HorizontalFrequency(%d)=%s expected %s", test.raw, got, test.want)
		}
	}
	f := newFake("", map[vcp.Code]feature{vcp.VerticalFrequency: {6000, 0xFFFF}})
	if got, err := New(f, "test").VerticalFrequency(); err != nil || got != 60*physic.Hertz {
		t.Errorf("VerticalFrequency()=%s, %v", got, err)
	}
}

func TestIdentification(t *testing.T) {
	f := newFake(dellCaps, dellFeatures())
	d := New(f, "test")
	if r, err := d.FirmwareLevel(); err != nil || r.String() != "1.1" {
		t.Errorf("FirmwareLevel()=%s, %v", r, err)
	}
	if r, err := d.VCPVersion(); err != nil || r.String() != "2.1" {
		t.Errorf("VCPVersion()=%s, %v", r, err)
	}
	if c, ok, err := d.Controller(); err != nil || !ok || c != vcp.ControllerMstar {
		t.Errorf("Controller()=%s, %t, %v", c, ok, err)
	}
	if l, ok, err := d.SubPixelLayout(); err != nil || !ok || l != vcp.SubPixelRGBVertical {
		t.Errorf("SubPixelLayout()=%s, %t, %v", l, ok, err)
	}
	if k, err := d.ApplicationEnableKey(); err != nil || k != 0x6F {
		t.Errorf("ApplicationEnableKey()=%d, %v", k, err)
	}

	f.features[vcp.DisplayTechnologyType] = feature{0x42, 0xFF}
	if _, ok, err := d.Technology(); err != nil || ok {
		t.Errorf("Technology() unrecognized value should be absent, got %t, %v", ok, err)
	}
	f.features[vcp.DisplayTechnologyType] = feature{0x103, 0xFFFF}
	if tech, ok, err := d.Technology(); err != nil || ok || tech != vcp.TechnologyLCD {
		t.Errorf("Technology() out of range value should keep its low byte and be absent, got %s, %t, %v", tech, ok, err)
	}
	f.features[vcp.FlatPanelSubPixelLayout] = feature{0x1FE, 0xFFFF}
	if l, ok, err := d.SubPixelLayout(); err != nil || ok || l != vcp.SubPixelLayout(0xFE) {
		t.Errorf("SubPixelLayout() out of range value should keep its low byte and be absent, got %s, %t, %v", l, ok, err)
	}
}

func TestRestore(t *testing.T) {
	for _, r := range vcp.Restores {
		f := newFake(dellCaps, nil)
		if err := New(f, "test").Restore(r.String()); err != nil {
			t.Fatal(err)
		}
		code, _ := r.Code()
		if len(f.gets) != 0 || len(f.writes) != 1 || f.writes[0] != (write{code, 1}) {
			t.Errorf("Restore(%s) gets=%v writes=%v", r, f.gets, f.writes)
		}
	}
}

func TestColorTemperature(t *testing.T) {
	caps := "(model(X)vcp(0B 0C 10))"
	f := newFake(caps, map[vcp.Code]feature{
		vcp.ColorTemperatureIncrement: {50, 0xFFFF},
		vcp.ColorTemperatureRequest:   {70, 140},
	})
	d := New(f, "test")
	if k, err := d.ColorTemperature(); err != nil || k != 6500 {
		t.Errorf("ColorTemperature()=%d, %v", k, err)
	}
	if k, err := d.MaxColorTemperature(); err != nil || k != 10000 {
		t.Errorf("MaxColorTemperature()=%d, %v", k, err)
	}
	if err := d.SetColorTemperature(6520); err != nil {
		t.Fatal(err)
	}
	if len(f.writes) != 0 {
		t.Errorf("unchanged value was written: %v", f.writes)
	}
	if err := d.SetColorTemperature(5024); err != nil {
		t.Fatal(err)
	}
	if err := d.SetColorTemperature(2990); err != nil {
		t.Fatal(err)
	}
	want := []write{{vcp.ColorTemperatureRequest, 40}, {vcp.ColorTemperatureRequest, 0}}
	if diff := cmp.Diff(want, f.writes, cmp.AllowUnexported(write{})); diff != "" {
		t.Errorf("SetColorTemperature() writes (-want +got):\n%s", diff)
	}
}

func TestColorTemperatureNotListed(t *testing.T) {
	f := newFake(dellCaps, dellFeatures())
	d := New(f, "test")
	if _, err := d.ColorTemperature(); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}
	if err := d.SetColorTemperature(6500); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}
	if len(f.gets) != 0 || len(f.writes) != 0 {
		t.Errorf("unexpected I/O gets=%v writes=%v", f.gets, f.writes)
	}
}

func TestFloorDiv(t *testing.T) {
	var tests = []struct{ a, b, q int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-10, 50, -1},
		{-100, 50, -2},
		{0, 50, 0},
	}
	for _, test := range tests {
		if q := floorDiv(test.a, test.b); q != test.q {
			t.Errorf("floorDiv(%d, %d)=%d expected %d", test.a, test.b, q, test.q)
		}
	}
}

func TestCapabilitiesCached(t *testing.T) {
	f := newFake(dellCaps, nil)
	d := New(f, "test")
	for i := 0; i < 3; i++ {
		m, err := d.Model()
		if err != nil {
			t.Fatal(err)
		}
		if m != "U2713HM" {
			t.Errorf("Model()=%q", m)
		}
	}
	if raw, err := d.RawCapabilities(); err != nil || raw != dellCaps {
		t.Errorf("RawCapabilities()=%q, %v", raw, err)
	}
	if f.capsCalls != 1 {
		t.Errorf("capabilities fetched %d times", f.capsCalls)
	}
}

func TestCapabilitiesErrorNotCached(t *testing.T) {
	f := newFake("(model(X)vcp(1))", nil)
	d := New(f, "test")
	if _, err := d.Capabilities(); !errors.Is(err, mccs.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
	f.caps = "(model(X))"
	if m, err := d.Model(); err != nil || m != "X" {
		t.Errorf("Model()=%q, %v", m, err)
	}
	if f.capsCalls != 2 {
		t.Errorf("capabilities fetched %d times", f.capsCalls)
	}
}

func TestFeatureError(t *testing.T) {
	f := newFake(dellCaps, dellFeatures())
	busErr := errors.New("bus stuck")
	f.fail[vcp.Luminance] = busErr
	d := New(f, "test")
	_, err := d.Brightness()
	var ferr *FeatureError
	if !errors.As(err, &ferr) || ferr.Code != vcp.Luminance || ferr.Op != "get" {
		t.Fatalf("unexpected error %#v", err)
	}
	if !errors.Is(err, busErr) {
		t.Errorf("error does not wrap the bus error: %v", err)
	}
	if err := d.SetBrightness(10); !errors.Is(err, busErr) {
		t.Errorf("SetBrightness() expected bus error, got %v", err)
	}
	if len(f.writes) != 0 {
		t.Errorf("write after failed read: %v", f.writes)
	}
}

func TestFeatureByName(t *testing.T) {
	f := newFake(dellCaps, dellFeatures())
	d := New(f, "test")
	cur, maximum, err := d.Feature("contrast")
	if err != nil || cur != 75 || maximum != 100 {
		t.Errorf("Feature(contrast)=%d, %d, %v", cur, maximum, err)
	}
	if _, _, err := d.Feature("Sharpness Of Wit"); !errors.Is(err, vcp.ErrUnknownFeature) {
		t.Errorf("expected ErrUnknownFeature, got %v", err)
	}
	if err := d.SetFeature("Sharpness Of Wit", 1); !errors.Is(err, vcp.ErrUnknownFeature) {
		t.Errorf("expected ErrUnknownFeature, got %v", err)
	}
	if len(f.gets) != 1 || len(f.writes) != 0 {
		t.Errorf("unexpected I/O gets=%v writes=%v", f.gets, f.writes)
	}
	if err := d.SetFeature("OSD", 2); err != nil {
		t.Fatal(err)
	}
	if f.writes[0] != (write{vcp.OSD, 2}) {
		t.Errorf("SetFeature(OSD) wrote %v", f.writes)
	}
}

func TestClose(t *testing.T) {
	f := newFake(dellCaps, dellFeatures())
	d := New(f, "test")
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() expected ErrClosed, got %v", err)
	}
	if f.closes != 1 {
		t.Errorf("handle released %d times", f.closes)
	}
	if _, err := d.Brightness(); !errors.Is(err, ErrClosed) {
		t.Errorf("Brightness() after Close() expected ErrClosed, got %v", err)
	}
	if err := d.Restore("all"); !errors.Is(err, ErrClosed) {
		t.Errorf("Restore() after Close() expected ErrClosed, got %v", err)
	}
	if _, err := d.Model(); !errors.Is(err, ErrClosed) {
		t.Errorf("Model() after Close() expected ErrClosed, got %v", err)
	}
	if len(f.gets) != 0 || len(f.writes) != 0 || f.capsCalls != 0 {
		t.Error("I/O after Close()")
	}
}

func TestCloseFailureStillReleased(t *testing.T) {
	f := newFake(dellCaps, nil)
	f.closeErr = errors.New("gone")
	d := New(f, "test")
	if err := d.Close(); !errors.Is(err, f.closeErr) {
		t.Errorf("Close() expected release error, got %v", err)
	}
	if err := d.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() expected ErrClosed, got %v", err)
	}
	if f.closes != 1 {
		t.Errorf("handle released %d times", f.closes)
	}
}
