// color.go — Accent color parsing.
package post

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor reports a malformed accent color string.
var ErrInvalidColor = errors.New("invalid accent color")

// ruleAlpha is the fixed alpha of the header rule fill (~0.8 opacity).
// The logo tint always uses the opaque triple.
const ruleAlpha = 204

// AccentColor is the brand theme color: it tints the logo and fills the
// header rule.
type AccentColor struct {
	R, G, B uint8
}

// ParseAccentColor parses a 6-hex-digit color, with or without a leading
// "#": "078c51" → {7, 140, 81}.
func ParseAccentColor(s string) (AccentColor, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return AccentColor{}, fmt.Errorf("%w: %q, expected 6 hex digits", ErrInvalidColor, s)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return AccentColor{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		channels[i] = uint8(v)
	}

	return AccentColor{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// NRGBA returns the opaque accent color, used for tinting the logo.
func (c AccentColor) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// RuleFill returns the accent color at the fixed rule alpha.
func (c AccentColor) RuleFill() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: ruleAlpha}
}
