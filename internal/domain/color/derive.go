package color

import "math"

const white = "#ffffff"

// seedPriority orders the locked roles consulted for a randomization seed.
var seedPriority = []Role{RolePrimary, RoleBackground, RoleAccent, RoleSecondary, RoleSurface}

// DeriveTheme maps a concept palette onto the semantic roles. Roles are
// filled in dependency order (background, surface, primary, accent, text);
// locked roles keep their value from current. Secondary is never derived.
//
// Contrast decisions compare HSL lightness only. This is a heuristic, not a
// WCAG luminance check.
func DeriveTheme(concept ConceptPalette, locks Locks, current Palette) Palette {
	out := current
	if len(concept) == 0 {
		return out
	}

	if !locks.Has(RoleBackground) {
		base := HexToHSL(concept[0])
		if base.IsDark() {
			out.Background = HSLToHex(base.H, base.S-30, math.Max(5, base.L*0.2))
		} else {
			out.Background = HSLToHex(base.H, base.S-30, 97)
		}
	}

	if !locks.Has(RoleSurface) {
		bg := HexToHSL(out.Background)
		if bg.IsDark() {
			out.Surface = HSLToHex(bg.H, bg.S+5, bg.L+8)
		} else {
			// A derived light background sits at lightness 97, so it never
			// collides with the white surface. A locked one is kept as is.
			out.Surface = white
		}
	}
	darkSurface := HexToHSL(out.Surface).IsDark()

	if !locks.Has(RolePrimary) {
		p := mostSaturated(concept[1:])
		if darkSurface && p.L < 60 {
			p.L = 60
		}
		if !darkSurface && p.L > 50 {
			p.L = 50
		}
		out.Primary = p.Hex()
	}

	if !locks.Has(RoleAccent) {
		out.Accent = pickAccent(concept, out.Primary, out.Background)
	}

	if !locks.Has(RoleText) {
		if darkSurface {
			out.Text = white
		} else {
			out.Text = HSLToHex(HexToHSL(out.Primary).H, 20, 10)
		}
	}

	return out
}

func mostSaturated(candidates []string) HSL {
	var best HSL
	found := false
	for _, hex := range candidates {
		c := HexToHSL(hex)
		if !found || c.S > best.S {
			best = c
			found = true
		}
	}
	return best
}

func pickAccent(concept ConceptPalette, primary, background string) string {
	for _, hex := range concept {
		if SameColor(hex, primary) || SameColor(hex, background) {
			continue
		}
		c := HexToHSL(hex)
		return HSLToHex(c.H, c.S+20, c.L)
	}
	p := HexToHSL(primary)
	return HSLToHex(p.H+180, p.S, p.L)
}

// Result is the outcome of a randomization.
type Result struct {
	Colors  Palette        `json:"colors" yaml:"colors"`
	Concept ConceptPalette `json:"concept" yaml:"concept"`
}

// Randomizer regenerates concept palettes and themes.
type Randomizer struct {
	gen *Generator
}

// NewRandomizer wraps a concept Generator.
func NewRandomizer(gen *Generator) *Randomizer {
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return &Randomizer{gen: gen}
}

// Randomize generates a fresh concept palette and derives a theme from it.
// The first locked role in seed priority order seeds the concept; every locked
// role is carried through unchanged.
func (r *Randomizer) Randomize(current Palette, locks Locks) Result {
	concept := r.gen.Generate(SeedColor(current, locks))
	return Result{
		Colors:  DeriveTheme(concept, locks, current),
		Concept: concept,
	}
}

// SeedColor returns the color of the highest-priority locked role, or an
// empty string when nothing is locked.
func SeedColor(current Palette, locks Locks) string {
	for _, role := range seedPriority {
		if locks.Has(role) {
			return current.Get(role)
		}
	}
	return ""
}
