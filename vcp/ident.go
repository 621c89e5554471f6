// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package vcp

import "fmt"

// Technology is a Display Technology Type (0xB6) value.
type Technology uint8

const (
	TechnologyCRTShadowMask Technology = iota + 1
	TechnologyCRTApertureGrill
	TechnologyLCD
	TechnologyLCoS
	TechnologyPlasma
	TechnologyOLED
	TechnologyEL
	TechnologyDynamicMEM
	TechnologyStaticMEM
)

// Lookup returns the description of t and whether it is tabulated.
func (t Technology) Lookup() (string, bool) {
	switch t {
	case TechnologyCRTShadowMask:
		return "CRT (shadow mask)", true
	case TechnologyCRTApertureGrill:
		return "CRT (aperture grill)", true
	case TechnologyLCD:
		return "LCD (active matrix)", true
	case TechnologyLCoS:
		return "LCoS", true
	case TechnologyPlasma:
		return "Plasma", true
	case TechnologyOLED:
		return "OLED", true
	case TechnologyEL:
		return "EL", true
	case TechnologyDynamicMEM:
		return "Dynamic MEM e.g. DLP", true
	case TechnologyStaticMEM:
		return "Static MEM e.g. iMOD", true
	default:
		return "", false
	}
}

func (t Technology) String() string {
	if s, ok := t.Lookup(); ok {
		return s
	}
	return fmt.Sprintf("Technology(0x%02X)", byte(t))
}

// SubPixelLayout is a Flat Panel Sub-Pixel Layout (0xB2) value.
type SubPixelLayout uint8

const (
	SubPixelUndefined SubPixelLayout = iota
	SubPixelRGBVertical
	SubPixelRGBHorizontal
	SubPixelBGRVertical
	SubPixelBGRHorizontal
	SubPixelQuadRedTopLeft
	SubPixelQuadRedBottomLeft
	SubPixelDelta
	SubPixelMosaic
)

// Lookup returns the description of l and whether it is tabulated.
func (l SubPixelLayout) Lookup() (string, bool) {
	switch l {
	case SubPixelUndefined:
		return "Sub-pixel layout is not defined", true
	case SubPixelRGBVertical:
		return "Red / Green / Blue vertical stripe", true
	case SubPixelRGBHorizontal:
		return "Red / Green / Blue horizontal stripe", true
	case SubPixelBGRVertical:
		return "Blue / Green / Red vertical stripe", true
	case SubPixelBGRHorizontal:
		return "Blue / Green / Red horizontal stripe", true
	case SubPixelQuadRedTopLeft:
		return "Quad-pixel, a 2 x 2 sub-pixel structure with red at top left, blue at bottom right and green at top right and bottom left", true
	case SubPixelQuadRedBottomLeft:
		return "Quad-pixel, a 2 x 2 sub-pixel structure with red at bottom left, blue at top right and green at top left and bottom right", true
	case SubPixelDelta:
		return "Delta (triad)", true
	case SubPixelMosaic:
		return "Mosaic with interleaved sub-pixels of different colors", true
	default:
		return "", false
	}
}

func (l SubPixelLayout) String() string {
	if s, ok := l.Lookup(); ok {
		return s
	}
	return fmt.Sprintf("SubPixelLayout(0x%02X)", byte(l))
}

// Controller is the low byte of a Display Controller Type (0xC8) value,
// naming the controller manufacturer. The high byte is a manufacturer
// specific chip identifier.
type Controller uint8

const (
	ControllerConexant Controller = iota + 1
	ControllerGenesis
	ControllerMacronix
	ControllerMRT
	ControllerMstar
	ControllerMyson
	ControllerPhilips
	ControllerPixelWorks
	ControllerRealTek
	ControllerSage
	ControllerSiliconImage
	ControllerSmartASIC
	ControllerSTMicro
	ControllerTopro
	ControllerTrumpion
	ControllerWelltrend
	ControllerSamsung
	ControllerNovatek
	ControllerSTK
	ControllerCustom Controller = 0xFF
)

// Lookup returns the manufacturer of c and whether it is tabulated.
func (c Controller) Lookup() (string, bool) {
	switch c {
	case ControllerConexant:
		return "Conexant", true
	case ControllerGenesis:
		return "Genesis Microchip", true
	case ControllerMacronix:
		return "Macronix", true
	case ControllerMRT:
		return "MRT (Media Reality Technologies)", true
	case ControllerMstar:
		return "Mstar Semiconductor", true
	case ControllerMyson:
		return "Myson", true
	case ControllerPhilips:
		return "Philips", true
	case ControllerPixelWorks:
		return "PixelWorks", true
	case ControllerRealTek:
		return "RealTek Semiconductor", true
	case ControllerSage:
		return "Sage", true
	case ControllerSiliconImage:
		return "Silicon Image", true
	case ControllerSmartASIC:
		return "SmartASIC", true
	case ControllerSTMicro:
		return "STMicroelectronics", true
	case ControllerTopro:
		return "Topro", true
	case ControllerTrumpion:
		return "Trumpion", true
	case ControllerWelltrend:
		return "Welltrend", true
	case ControllerSamsung:
		return "Samsung", true
	case ControllerNovatek:
		return "Novatek Microelectronics", true
	case ControllerSTK:
		return "STK", true
	case ControllerCustom:
		return "Manufacturer designed controller", true
	default:
		return "", false
	}
}

func (c Controller) String() string {
	if s, ok := c.Lookup(); ok {
		return s
	}
	return fmt.Sprintf("Controller(0x%02X)", byte(c))
}

// Revision is a major.minor pair packed in a 16 bit register.
type Revision struct {
	Major int
	Minor int
}

// FirmwareRevision decodes Display Firmware Level (0xC9). Only the low five
// bits of the minor byte carry the revision.
func FirmwareRevision(raw uint32) Revision {
	return Revision{Major: int(raw >> 8), Minor: int(raw & 0x1F)}
}

// MCCSRevision decodes VCP Version (0xDF).
func MCCSRevision(raw uint32) Revision {
	return Revision{Major: int(raw >> 8), Minor: int(raw & 0xFF)}
}

func (r Revision) String() string {
	return fmt.Sprintf("%d.%d", r.Major, r.Minor)
}
