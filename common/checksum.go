// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, the DDC/CI message checksum.
package common

const (
	// HostAddress is the 8 bit I2C address of the host, used as the source
	// of requests and the destination of replies.
	HostAddress byte = 0x51
	// ReplyDestination replaces HostAddress when checking a reply.
	ReplyDestination byte = 0x50
	// DisplayAddress is the 8 bit write address of the DDC/CI display,
	// 0x37 shifted left one bit.
	DisplayAddress byte = 0x6E
)

// Checksum returns the XOR of seed and every byte. For a request the seed is
// DisplayAddress and bytes starts with the source address. For a reply the
// seed is ReplyDestination and bytes starts with the source address of the
// display.
func Checksum(seed byte, bytes []byte) byte {
	chk := seed
	for _, val := range bytes {
		chk ^= val
	}
	return chk
}
