// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ddcci

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/i2c/i2creg"

	"github.com/GermanBionicSystems/ddcci/vcp"
)

// Enumerate opens every registered I²C bus and returns a Dev for each one
// with a display answering at the DDC/CI address. When bus is not empty
// only the bus with that name or alias is tried.
//
// host.Init() must have been called. Buses that cannot be opened or do not
// answer are skipped. The caller owns the returned devices and must Close
// each of them.
func Enumerate(bus string, opts *Opts) ([]*Dev, error) {
	refs := i2creg.All()
	if len(refs) == 0 {
		return nil, fmt.Errorf("%w: no I²C bus registered", ErrEnumeration)
	}
	var devs []*Dev
	for _, ref := range refs {
		if bus != "" && !matches(ref, bus) {
			continue
		}
		b, err := ref.Open()
		if err != nil {
			log.Debug().Err(err).Str("bus", ref.Name).Msg("skipping bus")
			continue
		}
		c := NewI2CConn(b, opts)
		// Every MCCS display implements the version register.
		if _, _, err := c.GetFeature(vcp.Version); err != nil {
			log.Debug().Err(err).Str("bus", ref.Name).Msg("no DDC/CI display")
			if err := b.Close(); err != nil {
				log.Debug().Err(err).Str("bus", ref.Name).Msg("closing bus")
			}
			continue
		}
		log.Debug().Str("bus", ref.Name).Msg("found DDC/CI display")
		devs = append(devs, New(c, ref.Name))
	}
	if bus != "" && len(devs) == 0 {
		return nil, fmt.Errorf("%w: no DDC/CI display on bus %q", ErrEnumeration, bus)
	}
	return devs, nil
}

func matches(ref *i2creg.Ref, name string) bool {
	if ref.Name == name {
		return true
	}
	for _, a := range ref.Aliases {
		if a == name {
			return true
		}
	}
	return false
}
