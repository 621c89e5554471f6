// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ddcci queries and adjusts monitors over DDC/CI, the Display Data
// Channel Command Interface.
//
// A Dev wraps the request/reply channel to one physical monitor (a Conn)
// and exposes brightness, contrast, RGB gains, colour temperature, colour
// preset, input source, power mode and display application as bounded,
// named settings, plus the read-only identification registers.
//
// Writes of continuous features read the current and maximum value first,
// skip the write when the value is unchanged and clamp it to [0, maximum].
// Writes of enumerated features reject unknown names before any bus
// traffic.
//
// The capabilities string is fetched and parsed once, the first time it is
// needed, and cached until Close.
//
// # Concurrency
//
// A Dev is not safe for concurrent use; DDC/CI is a serial bus and a Dev
// does no locking. Distinct monitors may be driven from distinct
// goroutines. No call has a timeout: wrap calls externally if a hung bus
// must not block the caller.
//
// # Linux
//
// Graphics drivers expose one I²C bus per connector as /dev/i2c-N. Use
// Enumerate after host.Init() to find the buses that answer at the DDC/CI
// address, or NewI2C on a known bus.
//
// # Reference
//
// VESA DDC/CI Standard, version 1.1, and VESA Monitor Control Command Set
// Standard, version 2.2a.
package ddcci
