// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mccs decodes the capabilities string a DDC/CI monitor reports.
//
// The string is a flat ASCII document of keyed, parenthesized groups, for
// example:
//
//	(prot(monitor)type(lcd)model(U2713HM)cmds(01 02 03 07 0C E3 F3)
//	vcp(02 04 05 06 08 10 12 14(01 04 05 06 08 09 0B 0C) 16 18 1A 52
//	60(01 03 04 0F) AC AE B2 B6 C6 C8 C9 D6(01 04 05) DC(00 02 03 05 ) DF)
//	mccs_ver(2.1)mswhql(1))
//
// There is no quoting or escaping. Groups nest at most two levels: a top
// level key and, within vcp, a feature code followed by its permitted
// values.
package mccs
