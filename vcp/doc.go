// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package vcp is the registry of VESA Monitor Control Command Set (MCCS)
// Virtual Control Panel feature codes.
//
// It holds the feature name to code table, the closed enumerations used by
// the settable non-continuous features (colour preset, input source, power
// mode, display application, factory restore) and the decode tables of the
// read-only identification registers.
//
// Everything in this package is immutable and safe to share between
// goroutines.
//
// # Reference
//
// VESA Monitor Control Command Set (MCCS) Standard, version 2.2a.
//
// https://vesa.org/vesa-standards/
package vcp
