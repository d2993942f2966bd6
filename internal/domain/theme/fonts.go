package theme

import (
	"fmt"
	"strings"
)

// DefaultFont is used for headings and body text until the user picks another.
const DefaultFont = "inter"

// Font is an entry in the font catalog.
type Font struct {
	ID       string
	Family   string
	Fallback string
}

// Stack returns the CSS font-family value.
func (f Font) Stack() string {
	return fmt.Sprintf("%q, %s", f.Family, f.Fallback)
}

var fonts = []Font{
	{ID: "inter", Family: "Inter", Fallback: "sans-serif"},
	{ID: "roboto", Family: "Roboto", Fallback: "sans-serif"},
	{ID: "open-sans", Family: "Open Sans", Fallback: "sans-serif"},
	{ID: "poppins", Family: "Poppins", Fallback: "sans-serif"},
	{ID: "montserrat", Family: "Montserrat", Fallback: "sans-serif"},
	{ID: "lato", Family: "Lato", Fallback: "sans-serif"},
	{ID: "playfair-display", Family: "Playfair Display", Fallback: "serif"},
	{ID: "merriweather", Family: "Merriweather", Fallback: "serif"},
	{ID: "lora", Family: "Lora", Fallback: "serif"},
	{ID: "jetbrains-mono", Family: "JetBrains Mono", Fallback: "monospace"},
	{ID: "fira-code", Family: "Fira Code", Fallback: "monospace"},
}

// Fonts returns the font catalog.
func Fonts() []Font {
	return append([]Font(nil), fonts...)
}

// LookupFont finds a font by id, case-insensitively.
func LookupFont(id string) (Font, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, f := range fonts {
		if f.ID == id {
			return f, true
		}
	}
	return Font{}, false
}

// IsFont reports whether id names a catalog font.
func IsFont(id string) bool {
	_, ok := LookupFont(id)
	return ok
}
