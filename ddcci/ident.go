// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ddcci

import (
	"periph.io/x/conn/v3/physic"

	"github.com/GermanBionicSystems/ddcci/vcp"
)

// Identification registers are decoded on a best effort basis: a value
// missing from the tables, or wider than the table's byte, is reported with
// ok set to false, not as an error. The returned value then holds the low
// byte of the register.

// Technology returns the display technology type.
func (d *Dev) Technology() (t vcp.Technology, ok bool, err error) {
	raw, _, err := d.get(vcp.DisplayTechnologyType)
	if err != nil {
		return 0, false, err
	}
	t = vcp.Technology(raw & 0xFF)
	if raw > 0xFF {
		return t, false, nil
	}
	_, ok = t.Lookup()
	return t, ok, nil
}

// SubPixelLayout returns the flat panel sub-pixel layout.
func (d *Dev) SubPixelLayout() (l vcp.SubPixelLayout, ok bool, err error) {
	raw, _, err := d.get(vcp.FlatPanelSubPixelLayout)
	if err != nil {
		return 0, false, err
	}
	l = vcp.SubPixelLayout(raw & 0xFF)
	if raw > 0xFF {
		return l, false, nil
	}
	_, ok = l.Lookup()
	return l, ok, nil
}

// Controller returns the display controller manufacturer. Only the low byte
// of the register is decoded.
func (d *Dev) Controller() (c vcp.Controller, ok bool, err error) {
	raw, _, err := d.get(vcp.DisplayControllerType)
	if err != nil {
		return 0, false, err
	}
	c = vcp.Controller(raw & 0xFF)
	_, ok = c.Lookup()
	return c, ok, nil
}

// FirmwareLevel returns the display firmware revision.
func (d *Dev) FirmwareLevel() (vcp.Revision, error) {
	raw, _, err := d.get(vcp.DisplayFirmwareLevel)
	if err != nil {
		return vcp.Revision{}, err
	}
	return vcp.FirmwareRevision(raw), nil
}

// VCPVersion returns the MCCS version the monitor implements.
func (d *Dev) VCPVersion() (vcp.Revision, error) {
	raw, _, err := d.get(vcp.Version)
	if err != nil {
		return vcp.Revision{}, err
	}
	return vcp.MCCSRevision(raw), nil
}

// ApplicationEnableKey returns the raw application enable key.
func (d *Dev) ApplicationEnableKey() (uint32, error) {
	raw, _, err := d.get(vcp.ApplicationEnableKey)
	return raw, err
}

// VerticalFrequency returns the vertical refresh rate.
func (d *Dev) VerticalFrequency() (physic.Frequency, error) {
	raw, _, err := d.get(vcp.VerticalFrequency)
	if err != nil {
		return 0, err
	}
	return verticalFrequency(raw), nil
}

// HorizontalFrequency returns the horizontal scan rate.
func (d *Dev) HorizontalFrequency() (physic.Frequency, error) {
	raw, _, err := d.get(vcp.HorizontalFrequency)
	if err != nil {
		return 0, err
	}
	return horizontalFrequency(raw), nil
}

// verticalFrequency converts a register in units of 0.01Hz.
func verticalFrequency(raw uint32) physic.Frequency {
	return physic.Frequency(raw) * 10 * physic.MilliHertz
}

// horizontalFrequency converts a register in Hz. The register only carries
// 16 bits on the wire so scan rates above 65.535kHz lose bit 16; a reading
// under 50kHz is taken to be one of those.
func horizontalFrequency(raw uint32) physic.Frequency {
	if raw < 50000 {
		raw |= 0x10000
	}
	return physic.Frequency(raw) * physic.Hertz
}
