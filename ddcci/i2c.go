// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ddcci

import (
	"fmt"
	"io"
	"time"

	"periph.io/x/conn/v3/i2c"

	"github.com/GermanBionicSystems/ddcci/common"
	"github.com/GermanBionicSystems/ddcci/vcp"
)

// DefaultAddress is the 7 bit I²C address of a DDC/CI display.
const DefaultAddress uint16 = 0x37

const (
	opGetVCP          byte = 0x01
	opGetVCPReply     byte = 0x02
	opSetVCP          byte = 0x03
	opCapabilities    byte = 0xF3
	opCapabilityReply byte = 0xE3

	// Reply sizes including source address, length and checksum.
	getVCPReplyLen = 11
	// 32 bytes of capabilities data at most per fragment.
	capabilityReplyLen = 38
	// Guards against a display that never sends the empty final fragment.
	maxCapabilitiesLen = 8192
)

// Opts holds the DDC/CI timing. The defaults follow the DDC/CI standard;
// some displays need more.
type Opts struct {
	Addr uint16
	// ReplyDelay is the wait between a get request and reading its reply.
	ReplyDelay time.Duration
	// WriteDelay is the wait after a set request.
	WriteDelay time.Duration
	// CapabilitiesDelay is the wait between a capabilities request and
	// reading the fragment.
	CapabilitiesDelay time.Duration
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Addr:              DefaultAddress,
	ReplyDelay:        40 * time.Millisecond,
	WriteDelay:        50 * time.Millisecond,
	CapabilitiesDelay: 50 * time.Millisecond,
}

// I2CConn is a Conn over an I²C bus, for example a /dev/i2c-N bus exposed
// by a graphics driver for one connector.
type I2CConn struct {
	d    *i2c.Dev
	bus  i2c.Bus
	opts Opts
}

// NewI2C returns a Dev for the monitor on bus b. Closing the Dev closes b
// when b implements io.Closer.
func NewI2C(b i2c.Bus, opts *Opts) *Dev {
	return New(NewI2CConn(b, opts), b.String())
}

// NewI2CConn returns a Conn talking DDC/CI on bus b.
func NewI2CConn(b i2c.Bus, opts *Opts) *I2CConn {
	if opts == nil {
		opts = &DefaultOpts
	}
	o := *opts
	if o.Addr == 0 {
		o.Addr = DefaultAddress
	}
	return &I2CConn{d: &i2c.Dev{Bus: b, Addr: o.Addr}, bus: b, opts: o}
}

func (c *I2CConn) String() string {
	return fmt.Sprintf("ddcci.I2CConn{%s}", c.d)
}

// GetFeature implements Conn.
func (c *I2CConn) GetFeature(code vcp.Code) (current, maximum uint32, err error) {
	if err = c.write(opGetVCP, byte(code)); err != nil {
		return 0, 0, err
	}
	time.Sleep(c.opts.ReplyDelay)
	p, err := c.read(getVCPReplyLen)
	if err != nil {
		return 0, 0, err
	}
	// opcode, result, code, type, max hi, max lo, current hi, current lo
	if len(p) != 8 || p[0] != opGetVCPReply || p[2] != byte(code) {
		return 0, 0, fmt.Errorf("%w % X", ErrBadReply, p)
	}
	switch p[1] {
	case 0x00:
	case 0x01:
		return 0, 0, ErrUnsupportedCode
	default:
		return 0, 0, fmt.Errorf("%w: result code 0x%02X", ErrBadReply, p[1])
	}
	maximum = uint32(p[4])<<8 | uint32(p[5])
	current = uint32(p[6])<<8 | uint32(p[7])
	return current, maximum, nil
}

// SetFeature implements Conn. Values are 16 bits on the wire.
func (c *I2CConn) SetFeature(code vcp.Code, value uint32) error {
	if value > 0xFFFF {
		return fmt.Errorf("ddcci: value %d does not fit 16 bits", value)
	}
	if err := c.write(opSetVCP, byte(code), byte(value>>8), byte(value)); err != nil {
		return err
	}
	time.Sleep(c.opts.WriteDelay)
	return nil
}

// CapabilitiesString implements Conn. The string is read in fragments until
// the display sends an empty one.
func (c *I2CConn) CapabilitiesString() (string, error) {
	var buf []byte
	for {
		offset := len(buf)
		if err := c.write(opCapabilities, byte(offset>>8), byte(offset)); err != nil {
			return "", err
		}
		time.Sleep(c.opts.CapabilitiesDelay)
		p, err := c.read(capabilityReplyLen)
		if err != nil {
			return "", err
		}
		if len(p) < 3 || p[0] != opCapabilityReply {
			return "", fmt.Errorf("%w % X", ErrBadReply, p)
		}
		if got := int(p[1])<<8 | int(p[2]); got != offset {
			return "", fmt.Errorf("%w: fragment offset %d, expected %d", ErrBadReply, got, offset)
		}
		data := p[3:]
		if len(data) == 0 {
			return string(buf), nil
		}
		buf = append(buf, data...)
		if len(buf) > maxCapabilitiesLen {
			return "", fmt.Errorf("%w: capabilities longer than %d bytes", ErrBadReply, maxCapabilitiesLen)
		}
	}
}

// Close implements Conn.
func (c *I2CConn) Close() error {
	if closer, ok := c.bus.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// write sends one request message: source address, length, payload and
// checksum.
func (c *I2CConn) write(payload ...byte) error {
	msg := make([]byte, 0, len(payload)+3)
	msg = append(msg, common.HostAddress, 0x80|byte(len(payload)))
	msg = append(msg, payload...)
	msg = append(msg, common.Checksum(common.DisplayAddress, msg))
	return c.d.Tx(msg, nil)
}

// read reads a reply of n bytes and returns its checked payload.
func (c *I2CConn) read(n int) ([]byte, error) {
	r := make([]byte, n)
	if err := c.d.Tx(nil, r); err != nil {
		return nil, err
	}
	if r[0] != common.DisplayAddress || r[1]&0x80 == 0 {
		return nil, fmt.Errorf("%w % X", ErrBadReply, r[:2])
	}
	l := int(r[1] & 0x7F)
	if l == 0 {
		return nil, ErrNullReply
	}
	if l+3 > n {
		return nil, fmt.Errorf("%w: length %d", ErrBadReply, l)
	}
	if chk := common.Checksum(common.ReplyDestination, r[:l+2]); chk != r[l+2] {
		return nil, fmt.Errorf("%w: got 0x%02X, expected 0x%02X", ErrChecksum, r[l+2], chk)
	}
	return r[2 : l+2], nil
}

var _ Conn = &I2CConn{}
