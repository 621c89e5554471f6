// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mccs

import (
	"errors"
	"fmt"
	"strings"
)

// maxDepth is the deepest group nesting allowed: key(...) and, inside it,
// code(...).
const maxDepth = 2

// padding surrounds the document in reply buffers.
const padding = "\x00 \t\r\n"

// ErrMalformed is matched by every ParseError.
var ErrMalformed = errors.New("mccs: malformed capabilities string")

// ParseError reports the byte offset at which a capabilities string stopped
// making sense.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mccs: %s at position %d", e.Msg, e.Pos)
}

// Is makes errors.Is(err, ErrMalformed) true.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

func perr(pos int, format string, args ...interface{}) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Parse decodes a capabilities string in a single pass.
//
// A leading '(' is the unlabeled wrapper of the whole document and does not
// open a level. NUL bytes and whitespace around the document, as left by
// fixed size reply buffers, are ignored; error positions are still offsets
// in s. A new document is returned only on full success.
func Parse(s string) (*Capabilities, error) {
	s = strings.TrimRight(s, padding)
	start := len(s) - len(strings.TrimLeft(s, padding))
	if start == len(s) {
		return nil, perr(0, "empty capabilities string")
	}
	c := &Capabilities{VCP: map[string][]string{}, Other: map[string]string{}}
	wrapped := s[start] == '('
	closed := false
	level := 0
	// mark is where the current top level key starts, open where its group
	// starts.
	mark, open := start, start
	if wrapped {
		mark++
	}
	for i := mark; i < len(s); i++ {
		ch := s[i]
		if closed {
			if !isSpace(ch) {
				return nil, perr(i, "text after closing parenthesis")
			}
			continue
		}
		switch ch {
		case '(':
			if level == 0 {
				open = i
			}
			level++
			if level > maxDepth {
				return nil, perr(i, "groups nested deeper than %d levels", maxDepth)
			}
		case ')':
			if level == 0 {
				if !wrapped {
					return nil, perr(i, "unbalanced ')'")
				}
				if strings.TrimSpace(s[mark:i]) != "" {
					return nil, perr(mark, "key without group")
				}
				closed = true
				continue
			}
			level--
			if level == 0 {
				key := strings.TrimSpace(s[mark:open])
				if err := checkKey(key, mark, open); err != nil {
					return nil, err
				}
				if err := c.set(key, s[open+1:i], open+1); err != nil {
					return nil, err
				}
				mark = i + 1
			}
		}
	}
	switch {
	case level != 0:
		return nil, perr(len(s), "unterminated group")
	case wrapped && !closed:
		return nil, perr(len(s), "missing closing parenthesis")
	case !wrapped && strings.TrimSpace(s[mark:]) != "":
		return nil, perr(mark, "key without group")
	}
	return c, nil
}

func checkKey(key string, mark, open int) error {
	if key == "" {
		return perr(open, "group without key")
	}
	if strings.ContainsAny(key, " \t\n\r\v\f") {
		return perr(mark, "malformed key %q", key)
	}
	return nil
}

// set stores the body of one top level group. base is the offset of body in
// the original string.
func (c *Capabilities) set(key, body string, base int) error {
	switch strings.ToLower(key) {
	case "cmds":
		tokens, err := hexTokens(body, base)
		if err != nil {
			return err
		}
		c.Commands = append(c.Commands, tokens...)
	case "vcp":
		return parseVCPList(body, base, c.VCP)
	case "prot":
		c.Protocol = strings.TrimSpace(body)
	case "type":
		c.Type = strings.TrimSpace(body)
	case "model":
		c.Model = strings.TrimSpace(body)
	case "mccs_ver":
		c.MCCSVersion = strings.TrimSpace(body)
	default:
		c.Other[key] = strings.TrimSpace(body)
	}
	return nil
}

// parseVCPList decodes "02 04 14(01 04 05) 60(01 03) AC" into dst.
//
// Codes are two hex digits. A code directly followed by a group is
// non-continuous and maps to the group's values; any other code maps to
// nil. Packed codes such as "0210" are split in pairs, the last pair owning
// a following group.
func parseVCPList(body string, base int, dst map[string][]string) error {
	for i := 0; i < len(body); {
		switch ch := body[i]; {
		case isSpace(ch):
			i++
			continue
		case ch == '(':
			return perr(base+i, "value list without feature code")
		case ch == ')':
			return perr(base+i, "unbalanced ')'")
		}
		j := i
		for j < len(body) && !isSpace(body[j]) && body[j] != '(' && body[j] != ')' {
			j++
		}
		tok := body[i:j]
		if len(tok)%2 != 0 || !isHex(tok) {
			return perr(base+i, "invalid feature code %q", tok)
		}
		tok = strings.ToUpper(tok)
		for k := 0; k+2 < len(tok); k += 2 {
			addContinuous(dst, tok[k:k+2])
		}
		code := tok[len(tok)-2:]

		k := j
		for k < len(body) && isSpace(body[k]) {
			k++
		}
		if k == len(body) || body[k] != '(' {
			addContinuous(dst, code)
			i = j
			continue
		}
		end := strings.IndexAny(body[k+1:], "()")
		if end < 0 {
			return perr(base+k, "unterminated value list")
		}
		end += k + 1
		if body[end] == '(' {
			return perr(base+end, "groups nested deeper than %d levels", maxDepth)
		}
		values, err := hexTokens(body[k+1:end], base+k+1)
		if err != nil {
			return err
		}
		if values == nil {
			values = []string{}
		}
		dst[code] = values
		i = end + 1
	}
	return nil
}

func addContinuous(dst map[string][]string, code string) {
	if _, ok := dst[code]; !ok {
		dst[code] = nil
	}
}

// hexTokens splits body on whitespace and checks every token is hex.
func hexTokens(body string, base int) ([]string, error) {
	var out []string
	for i := 0; i < len(body); {
		if isSpace(body[i]) {
			i++
			continue
		}
		j := i
		for j < len(body) && !isSpace(body[j]) {
			j++
		}
		tok := body[i:j]
		if !isHex(tok) {
			return nil, perr(base+i, "invalid hex token %q", tok)
		}
		out = append(out, strings.ToUpper(tok))
		i = j
	}
	return out, nil
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !('0' <= ch && ch <= '9' || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F') {
			return false
		}
	}
	return true
}
