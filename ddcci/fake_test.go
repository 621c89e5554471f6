// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ddcci

import (
	"errors"

	"github.com/GermanBionicSystems/ddcci/vcp"
)

const dellCaps = "(prot(monitor)type(lcd)model(U2713HM)cmds(01 02 03 07 0C E3 F3)" +
	"vcp(02 04 05 06 08 10 12 14(01 04 05 06 08 09 0B 0C) 16 18 1A 52 " +
	"60(01 03 04 0F) AC AE B2 B6 C6 C8 C9 D6(01 04 05) DC(00 02 03 05 ) " +
	"F0(00 01) DF FD E0 E1 E2(00 01 02 04 06 0B 0C 0D 0F 10 11 13 14) F1 F2)" +
	"mccs_ver(2.1)mswhql(1))"

type feature struct {
	current, maximum uint32
}

type write struct {
	code  vcp.Code
	value uint32
}

// fakeConn is a Conn backed by a feature table that records every call.
type fakeConn struct {
	caps     string
	features map[vcp.Code]feature
	fail     map[vcp.Code]error
	closeErr error

	capsCalls int
	gets      []vcp.Code
	writes    []write
	closes    int
}

func newFake(caps string, features map[vcp.Code]feature) *fakeConn {
	if features == nil {
		features = map[vcp.Code]feature{}
	}
	return &fakeConn{caps: caps, features: features, fail: map[vcp.Code]error{}}
}

func (f *fakeConn) CapabilitiesString() (string, error) {
	f.capsCalls++
	if f.caps == "" {
		return "", errors.New("no reply")
	}
	return f.caps, nil
}

func (f *fakeConn) GetFeature(code vcp.Code) (uint32, uint32, error) {
	f.gets = append(f.gets, code)
	if err := f.fail[code]; err != nil {
		return 0, 0, err
	}
	v, ok := f.features[code]
	if !ok {
		return 0, 0, ErrUnsupportedCode
	}
	return v.current, v.maximum, nil
}

func (f *fakeConn) SetFeature(code vcp.Code, value uint32) error {
	f.writes = append(f.writes, write{code, value})
	if err := f.fail[code]; err != nil {
		return err
	}
	v := f.features[code]
	v.current = value
	f.features[code] = v
	return nil
}

func (f *fakeConn) Close() error {
	f.closes++
	return f.closeErr
}

// dellFeatures is a snapshot of a U2713HM.
func dellFeatures() map[vcp.Code]feature {
	return map[vcp.Code]feature{
		vcp.Luminance:               {75, 100},
		vcp.Contrast:                {75, 100},
		vcp.SelectColorPreset:       {0x05, 0x0C},
		vcp.VideoGainRed:            {100, 100},
		vcp.VideoGainGreen:          {98, 100},
		vcp.VideoGainBlue:           {95, 100},
		vcp.InputSource:             {0x0F, 0x0F},
		vcp.HorizontalFrequency:     {0x5A6E, 0xFFFF},
		vcp.VerticalFrequency:       {5995, 0xFFFF},
		vcp.FlatPanelSubPixelLayout: {0x01, 0x08},
		vcp.DisplayTechnologyType:   {0x03, 0x09},
		vcp.ApplicationEnableKey:    {0x6F, 0xFFFF},
		vcp.DisplayControllerType:   {0x5605, 0xFFFF},
		vcp.DisplayFirmwareLevel:    {0x0101, 0xFFFF},
		vcp.PowerMode:               {0x01, 0x05},
		vcp.DisplayApplication:      {0x00, 0x05},
		vcp.Version:                 {0x0201, 0xFFFF},
	}
}
