package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a color in hue/saturation/lightness form. H is in degrees [0,360),
// S and L are percentages [0,100]. Values are kept unrounded so that a
// hex -> HSL -> hex round trip is lossless up to 8-bit rounding.
type HSL struct {
	H float64
	S float64
	L float64
}

// Hex encodes the color as a lowercase #rrggbb string.
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// IsDark reports whether the color falls on the dark half of the lightness axis.
func (c HSL) IsDark() bool {
	return c.L < 50
}

// HexToHSL converts a #rgb or #rrggbb color to HSL. The leading '#' is
// optional. Malformed input yields black rather than an error; callers are
// expected to supply well-formed colors.
func HexToHSL(hex string) HSL {
	c, err := colorful.Hex(normalizeHex(hex))
	if err != nil {
		return HSL{}
	}
	h, s, l := c.Hsl()
	return HSL{H: wrapHue(h), S: s * 100, L: l * 100}
}

// HSLToHex converts HSL components to a #rrggbb string. Hue wraps modulo 360
// and saturation/lightness are clamped to [0,100].
func HSLToHex(h, s, l float64) string {
	c := colorful.Hsl(wrapHue(h), clampPercent(s)/100, clampPercent(l)/100)
	return c.Clamped().Hex()
}

// NormalizeHex returns the canonical lowercase #rrggbb form of a color.
func NormalizeHex(hex string) string {
	c, err := colorful.Hex(normalizeHex(hex))
	if err != nil {
		return strings.ToLower(hex)
	}
	return c.Hex()
}

// ParseHex validates a user supplied color and returns its #rrggbb form.
func ParseHex(hex string) (string, error) {
	c, err := colorful.Hex(normalizeHex(hex))
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c.Hex(), nil
}

// SameColor compares two hex colors after normalisation.
func SameColor(a, b string) bool {
	return NormalizeHex(a) == NormalizeHex(b)
}

func normalizeHex(hex string) string {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) == 4 {
		// go-colorful scales short forms by 1/15, which matches doubling each digit.
		return strings.ToLower(string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]}))
	}
	return strings.ToLower(hex)
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampPercent(v float64) float64 {
	return clamp(v, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
