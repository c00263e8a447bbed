// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by ParseColor for unrecognized input.
var ErrUnknownColor = errors.New("canvas: unknown color")

// ParseColor parses a CSS color name ("red", "SteelBlue") or a hex color
// with an optional leading '#' in the forms RGB, RGBA, RRGGBB or RRGGBBAA.
// Names take precedence, so "bad" is hex but "tan" is a name.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return nil, fmt.Errorf("%w: empty", ErrUnknownColor)
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(name, "#")
	if !isHexColor(hex) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return gg.Hex(hex).Color(), nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexColor(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9') && !('a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}
