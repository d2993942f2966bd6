// Package swatch renders theme colors as terminal blocks.
package swatch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
)

const (
	lightInk = "#ffffff"
	darkInk  = "#111111"
	lockMark = "*"
)

// Swatch is a single role/color block.
type Swatch struct {
	Role   color.Role
	Hex    string
	Locked bool
	Width  int
}

// New creates a swatch with the default width.
func New(role color.Role, hex string) Swatch {
	return Swatch{Role: role, Hex: color.NormalizeHex(hex), Width: 14}
}

// WithLock marks the swatch as locked.
func (s Swatch) WithLock(locked bool) Swatch {
	s.Locked = locked
	return s
}

// Ink returns a foreground color that stays readable on the swatch.
func (s Swatch) Ink() string {
	if color.HexToHSL(s.Hex).IsDark() {
		return lightInk
	}
	return darkInk
}

// View renders the swatch as two lines: role name and hex value.
func (s Swatch) View() string {
	width := s.Width
	if width <= 0 {
		width = 14
	}
	label := string(s.Role)
	if s.Locked {
		label += " " + lockMark
	}

	style := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(lipgloss.Color(s.Hex)).
		Foreground(lipgloss.Color(s.Ink()))

	return style.Render(label + "\n" + s.Hex)
}

// Strip renders every role of a palette side by side.
func Strip(p color.Palette, locks color.Locks) string {
	blocks := make([]string, 0, len(color.Roles))
	for _, role := range color.Roles {
		blocks = append(blocks, New(role, p.Get(role)).WithLock(locks.Has(role)).View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// Concept renders the concept palette as a row of plain color chips.
func Concept(concept color.ConceptPalette) string {
	if len(concept) == 0 {
		return ""
	}
	chips := make([]string, 0, len(concept))
	for _, hex := range concept {
		chips = append(chips, lipgloss.NewStyle().
			Background(lipgloss.Color(color.NormalizeHex(hex))).
			Render(strings.Repeat(" ", 4)))
	}
	return strings.Join(chips, " ")
}
