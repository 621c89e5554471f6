// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ddcci

import (
	"errors"
	"fmt"

	"github.com/GermanBionicSystems/ddcci/vcp"
)

// Conn is the synchronous request/reply channel to one physical monitor.
//
// A Conn is owned by exactly one Dev. Close releases the underlying handle;
// the owner considers it released even when Close fails.
type Conn interface {
	// CapabilitiesString returns the ASCII capabilities string.
	CapabilitiesString() (string, error)
	// GetFeature returns the current and maximum value of a feature.
	GetFeature(code vcp.Code) (current, maximum uint32, err error)
	// SetFeature writes a feature.
	SetFeature(code vcp.Code, value uint32) error
	// Close releases the handle.
	Close() error
}

var (
	// ErrClosed is returned when a Dev is used, or closed, after Close.
	ErrClosed = errors.New("ddcci: device closed")
	// ErrNotSupported is returned when the capabilities string does not
	// list a feature the operation depends on.
	ErrNotSupported = errors.New("ddcci: feature not supported")
	// ErrEnumeration is returned when monitors cannot be listed.
	ErrEnumeration = errors.New("ddcci: cannot enumerate monitors")

	// ErrNullReply is returned when the display answers with a null
	// message, typically because it is busy or does not know the request.
	ErrNullReply = errors.New("ddcci: null reply")
	// ErrChecksum is returned when a reply checksum does not match.
	ErrChecksum = errors.New("ddcci: reply checksum mismatch")
	// ErrUnsupportedCode is returned when the display reports the VCP code
	// as unsupported.
	ErrUnsupportedCode = errors.New("ddcci: unsupported VCP code")
	// ErrBadReply is returned for a reply that does not fit the request.
	ErrBadReply = errors.New("ddcci: malformed reply")
)

// FeatureError records a failed transfer and the feature it was for.
type FeatureError struct {
	Op   string // "get" or "set"
	Code vcp.Code
	Err  error
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("ddcci: %s %s: %v", e.Op, e.Code, e.Err)
}

func (e *FeatureError) Unwrap() error {
	return e.Err
}
