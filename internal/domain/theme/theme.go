package theme

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
)

// Radius is the corner radius token applied to parts.
type Radius string

const (
	RadiusNone Radius = "none"
	RadiusSM   Radius = "sm"
	RadiusMD   Radius = "md"
	RadiusLG   Radius = "lg"
	RadiusFull Radius = "full"
)

// Radii lists the radius tokens from sharpest to roundest.
var Radii = []Radius{RadiusNone, RadiusSM, RadiusMD, RadiusLG, RadiusFull}

// CSS returns the length the token stands for.
func (r Radius) CSS() string {
	switch r {
	case RadiusNone:
		return "0"
	case RadiusSM:
		return "0.25rem"
	case RadiusLG:
		return "1rem"
	case RadiusFull:
		return "9999px"
	default:
		return "0.5rem"
	}
}

// ParseRadius converts user input into a Radius.
func ParseRadius(s string) (Radius, error) {
	candidate := Radius(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range Radii {
		if r == candidate {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown radius %q (expected one of %s)", s, joinTokens(Radii))
}

// Shadow is the elevation token applied to parts.
type Shadow string

const (
	ShadowNone Shadow = "none"
	ShadowSM   Shadow = "sm"
	ShadowMD   Shadow = "md"
	ShadowLG   Shadow = "lg"
)

// Shadows lists the shadow tokens from flat to deepest.
var Shadows = []Shadow{ShadowNone, ShadowSM, ShadowMD, ShadowLG}

// CSS returns the box-shadow value for the token.
func (s Shadow) CSS() string {
	switch s {
	case ShadowNone:
		return "none"
	case ShadowMD:
		return "0 4px 6px -1px rgb(0 0 0 / 0.1)"
	case ShadowLG:
		return "0 10px 15px -3px rgb(0 0 0 / 0.1)"
	default:
		return "0 1px 2px 0 rgb(0 0 0 / 0.05)"
	}
}

// ParseShadow converts user input into a Shadow.
func ParseShadow(s string) (Shadow, error) {
	candidate := Shadow(strings.ToLower(strings.TrimSpace(s)))
	for _, sh := range Shadows {
		if sh == candidate {
			return sh, nil
		}
	}
	return "", fmt.Errorf("unknown shadow %q (expected one of %s)", s, joinTokens(Shadows))
}

// BackgroundEffect describes a decorative page background. Its fields are
// stored and exported as given; nothing here interprets them.
type BackgroundEffect struct {
	Type        string  `yaml:"type" json:"type"`
	Enabled     bool    `yaml:"enabled" json:"enabled"`
	Animated    bool    `yaml:"animated" json:"animated"`
	Interactive bool    `yaml:"interactive" json:"interactive"`
	ColorMode   string  `yaml:"color_mode,omitempty" json:"colorMode,omitempty"`
	Intensity   float64 `yaml:"intensity" json:"intensity"`
	Speed       float64 `yaml:"speed" json:"speed"`
}

// Typography pairs the heading and body font identifiers.
type Typography struct {
	HeadingFont string `yaml:"heading_font" json:"headingFont" validate:"required,font"`
	BodyFont    string `yaml:"body_font" json:"bodyFont" validate:"required,font"`
}

// DesignTheme is the palette plus the non-color tokens shared by every part.
type DesignTheme struct {
	Colors     color.Palette    `yaml:"colors" json:"colors"`
	Radius     Radius           `yaml:"radius" json:"radius" validate:"required,oneof=none sm md lg full"`
	Shadow     Shadow           `yaml:"shadow" json:"shadow" validate:"required,oneof=none sm md lg"`
	Typography Typography       `yaml:"typography" json:"typography"`
	Effect     BackgroundEffect `yaml:"effect" json:"effect"`
}

// DefaultPalette is the palette a new project starts with.
func DefaultPalette() color.Palette {
	return color.Palette{
		Background: "#ffffff",
		Text:       "#18181b",
		Primary:    "#2563eb",
		Secondary:  "#64748b",
		Accent:     "#f59e0b",
		Surface:    "#f4f4f5",
	}
}

// Default returns the theme a new project starts with.
func Default() DesignTheme {
	return DesignTheme{
		Colors: DefaultPalette(),
		Radius: RadiusMD,
		Shadow: ShadowSM,
		Typography: Typography{
			HeadingFont: DefaultFont,
			BodyFont:    DefaultFont,
		},
		Effect: BackgroundEffect{Type: "none", ColorMode: "theme", Intensity: 0.5, Speed: 1},
	}
}

// WithColors returns a copy of the theme using palette.
func (t DesignTheme) WithColors(palette color.Palette) DesignTheme {
	t.Colors = palette
	return t
}

func joinTokens[T ~string](tokens []T) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = string(tok)
	}
	return strings.Join(parts, ", ")
}
