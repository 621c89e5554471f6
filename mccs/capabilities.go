// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mccs

import (
	"sort"
	"strings"

	"github.com/GermanBionicSystems/ddcci/vcp"
)

// Capabilities is the decoded capabilities string of one monitor.
type Capabilities struct {
	Protocol    string // prot
	Type        string // type
	Model       string // model
	MCCSVersion string // mccs_ver
	// Commands lists the supported DDC/CI command codes (cmds).
	Commands []string
	// VCP maps each supported feature code, as two upper case hex digits,
	// to its permitted values. A nil slice is a continuous feature; a
	// non-nil slice, possibly empty, enumerates the only legal values.
	VCP map[string][]string
	// Other holds every other top level group verbatim, trimmed.
	Other map[string]string
}

// Supports reports whether the monitor lists the feature.
func (c *Capabilities) Supports(code vcp.Code) bool {
	_, ok := c.VCP[code.Hex()]
	return ok
}

// Values returns the permitted values of a non-continuous feature. ok is
// false when the feature is not listed or is continuous.
func (c *Capabilities) Values(code vcp.Code) (values []string, ok bool) {
	values = c.VCP[code.Hex()]
	return values, values != nil
}

// Codes returns the listed feature codes in ascending order.
func (c *Capabilities) Codes() []string {
	out := make([]string, 0, len(c.VCP))
	for k := range c.VCP {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// String renders the document back into capabilities string form. Codes
// and extra keys are sorted so the output is stable.
func (c *Capabilities) String() string {
	var b strings.Builder
	b.WriteByte('(')
	group := func(key, body string) {
		b.WriteString(key)
		b.WriteByte('(')
		b.WriteString(body)
		b.WriteByte(')')
	}
	if c.Protocol != "" {
		group("prot", c.Protocol)
	}
	if c.Type != "" {
		group("type", c.Type)
	}
	if c.Model != "" {
		group("model", c.Model)
	}
	if len(c.Commands) != 0 {
		group("cmds", strings.Join(c.Commands, " "))
	}
	if len(c.VCP) != 0 {
		codes := c.Codes()
		parts := make([]string, len(codes))
		for i, code := range codes {
			if values := c.VCP[code]; values != nil {
				parts[i] = code + "(" + strings.Join(values, " ") + ")"
			} else {
				parts[i] = code
			}
		}
		group("vcp", strings.Join(parts, " "))
	}
	if c.MCCSVersion != "" {
		group("mccs_ver", c.MCCSVersion)
	}
	keys := make([]string, 0, len(c.Other))
	for k := range c.Other {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		group(k, c.Other[k])
	}
	b.WriteByte(')')
	return b.String()
}
