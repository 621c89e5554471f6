// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ddcci

import (
	"fmt"

	"github.com/GermanBionicSystems/ddcci/mccs"
	"github.com/GermanBionicSystems/ddcci/vcp"
)

// Dev is one physical monitor.
type Dev struct {
	c    Conn
	name string
	// caps is nil until loaded, then fixed for the life of the Dev.
	caps   *mccs.Capabilities
	raw    string
	closed bool
}

// New returns a Dev owning c. name identifies the monitor in messages, for
// example the I²C bus name.
func New(c Conn, name string) *Dev {
	return &Dev{c: c, name: name}
}

func (d *Dev) String() string {
	return fmt.Sprintf("ddcci{%s}", d.name)
}

// Name returns the name given to New.
func (d *Dev) Name() string {
	return d.name
}

// Close releases the monitor. The Dev is unusable afterwards, even when the
// release itself failed. A second Close returns ErrClosed.
func (d *Dev) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	d.caps = nil
	if err := d.c.Close(); err != nil {
		return fmt.Errorf("ddcci: release %s: %w", d.name, err)
	}
	return nil
}

// EnsureLoaded fetches and parses the capabilities string unless it is
// already cached. A failed fetch or parse leaves the cache empty.
func (d *Dev) EnsureLoaded() error {
	if d.closed {
		return ErrClosed
	}
	if d.caps != nil {
		return nil
	}
	raw, err := d.c.CapabilitiesString()
	if err != nil {
		return fmt.Errorf("ddcci: %s: capabilities: %w", d.name, err)
	}
	caps, err := mccs.Parse(raw)
	if err != nil {
		return fmt.Errorf("ddcci: %s: %w", d.name, err)
	}
	d.raw, d.caps = raw, caps
	return nil
}

// Capabilities returns the parsed capabilities string.
func (d *Dev) Capabilities() (*mccs.Capabilities, error) {
	if err := d.EnsureLoaded(); err != nil {
		return nil, err
	}
	return d.caps, nil
}

// RawCapabilities returns the capabilities string as the monitor sent it.
func (d *Dev) RawCapabilities() (string, error) {
	if err := d.EnsureLoaded(); err != nil {
		return "", err
	}
	return d.raw, nil
}

// Model returns the model reported in the capabilities string.
func (d *Dev) Model() (string, error) {
	caps, err := d.Capabilities()
	if err != nil {
		return "", err
	}
	return caps.Model, nil
}

func (d *Dev) get(code vcp.Code) (current, maximum uint32, err error) {
	if d.closed {
		return 0, 0, ErrClosed
	}
	current, maximum, err = d.c.GetFeature(code)
	if err != nil {
		return 0, 0, &FeatureError{Op: "get", Code: code, Err: err}
	}
	return current, maximum, nil
}

func (d *Dev) set(code vcp.Code, value uint32) error {
	if d.closed {
		return ErrClosed
	}
	if err := d.c.SetFeature(code, value); err != nil {
		return &FeatureError{Op: "set", Code: code, Err: err}
	}
	return nil
}

// setContinuous writes v to a continuous feature. The current value is read
// first; nothing is written when v equals it, otherwise v is clamped to
// [0, maximum].
func (d *Dev) setContinuous(code vcp.Code, v int) error {
	current, maximum, err := d.get(code)
	if err != nil {
		return err
	}
	if int64(v) == int64(current) {
		return nil
	}
	return d.set(code, clamp(v, maximum))
}

func clamp(v int, maximum uint32) uint32 {
	if v < 0 {
		return 0
	}
	if uint64(v) > uint64(maximum) {
		return maximum
	}
	return uint32(v)
}

// setEnum writes value unless the feature already holds it. Enumerated
// values are not clamped.
func (d *Dev) setEnum(code vcp.Code, value uint8) error {
	current, _, err := d.get(code)
	if err != nil {
		return err
	}
	if current == uint32(value) {
		return nil
	}
	return d.set(code, uint32(value))
}

func getEnum[T vcp.Enum](d *Dev, code vcp.Code) (T, error) {
	current, _, err := d.get(code)
	if err != nil {
		return 0, err
	}
	return vcp.Decode[T](code, current)
}

func (d *Dev) current(code vcp.Code) (int, error) {
	current, _, err := d.get(code)
	return int(current), err
}

func (d *Dev) maximum(code vcp.Code) (int, error) {
	_, maximum, err := d.get(code)
	return int(maximum), err
}
