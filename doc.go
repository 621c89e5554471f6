// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ddcci is a container for the DDC/CI monitor control packages.
//
// vcp names the MCCS feature codes and their values, mccs parses the
// capabilities string a monitor reports and ddcci talks to the monitor.
// cmd/ddcctl is the command line tool built on them.
package ddcci
