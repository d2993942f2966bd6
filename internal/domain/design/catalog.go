package design

import (
	"sort"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
)

// CatalogEntry describes one part type that can be placed in a layout.
type CatalogEntry struct {
	Type         string
	Label        string
	Category     string
	DefaultProps map[string]any
	// Areas lists where the part is usually placed; it is advisory only.
	Areas []layout.AreaID
}

// Catalog is the fixed set of known part types.
type Catalog struct {
	entries map[string]CatalogEntry
	order   []string
}

// NewCatalog builds a catalog from entries. Later duplicates replace earlier ones.
func NewCatalog(entries ...CatalogEntry) Catalog {
	c := Catalog{entries: make(map[string]CatalogEntry, len(entries))}
	for _, e := range entries {
		if _, exists := c.entries[e.Type]; !exists {
			c.order = append(c.order, e.Type)
		}
		c.entries[e.Type] = e
	}
	return c
}

// Lookup returns the entry for partType.
func (c Catalog) Lookup(partType string) (CatalogEntry, bool) {
	e, ok := c.entries[partType]
	return e, ok
}

// Has reports whether partType is in the catalog.
func (c Catalog) Has(partType string) bool {
	_, ok := c.entries[partType]
	return ok
}

// Entries returns catalog entries in registration order.
func (c Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(c.order))
	for _, t := range c.order {
		out = append(out, c.entries[t])
	}
	return out
}

// Categories returns the distinct categories, sorted.
func (c Catalog) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	sort.Strings(out)
	return out
}

// NewPart builds a part of partType with the catalog's default label and
// props. It fails with ErrCodeUnknownPartType for types outside the catalog.
func (c Catalog) NewPart(id, partType string, area layout.AreaID) (Part, error) {
	entry, ok := c.Lookup(partType)
	if !ok {
		return Part{}, newUnknownPartTypeError(partType)
	}
	return Part{
		ID:     id,
		Type:   entry.Type,
		Label:  entry.Label,
		AreaID: area,
		Props:  cloneProps(entry.DefaultProps),
	}, nil
}

// DefaultCatalog returns the built-in part catalog.
func DefaultCatalog() Catalog {
	return defaultCatalog
}

var defaultCatalog = NewCatalog(
	CatalogEntry{
		Type: "navbar", Label: "Navigation Bar", Category: "navigation",
		DefaultProps: map[string]any{"brand": "Brand", "links": []any{"Home", "About", "Contact"}, "sticky": true},
		Areas:        []layout.AreaID{layout.AreaHeader, layout.AreaNavigation},
	},
	CatalogEntry{
		Type: "hero-banner", Label: "Hero Banner", Category: "marketing",
		DefaultProps: map[string]any{"title": "Build something great", "subtitle": "A short supporting line", "cta": "Get started", "align": "center"},
		Areas:        []layout.AreaID{layout.AreaHero},
	},
	CatalogEntry{
		Type: "heading", Label: "Heading", Category: "content",
		DefaultProps: map[string]any{"text": "Section title", "level": 2},
	},
	CatalogEntry{
		Type: "paragraph", Label: "Paragraph", Category: "content",
		DefaultProps: map[string]any{"text": "Lorem ipsum dolor sit amet."},
	},
	CatalogEntry{
		Type: "button", Label: "Button", Category: "content",
		DefaultProps: map[string]any{"text": "Click me", "variant": "primary"},
	},
	CatalogEntry{
		Type: "image", Label: "Image", Category: "media",
		DefaultProps: map[string]any{"src": "", "alt": "", "aspect": "16:9"},
	},
	CatalogEntry{
		Type: "card", Label: "Card", Category: "content",
		DefaultProps: map[string]any{"title": "Card title", "body": "Card body", "elevated": true},
	},
	CatalogEntry{
		Type: "card-grid", Label: "Card Grid", Category: "content",
		DefaultProps: map[string]any{"columns": 3, "count": 6},
		Areas:        []layout.AreaID{layout.AreaMainContent, layout.AreaGallery},
	},
	CatalogEntry{
		Type: "feature-list", Label: "Feature List", Category: "marketing",
		DefaultProps: map[string]any{"items": []any{"Fast", "Reliable", "Secure"}, "icons": true},
	},
	CatalogEntry{
		Type: "testimonial", Label: "Testimonial", Category: "marketing",
		DefaultProps: map[string]any{"quote": "It just works.", "author": "A happy customer"},
	},
	CatalogEntry{
		Type: "pricing-table", Label: "Pricing Table", Category: "marketing",
		DefaultProps: map[string]any{"tiers": 3, "highlight": 1, "currency": "USD"},
	},
	CatalogEntry{
		Type: "contact-form", Label: "Contact Form", Category: "forms",
		DefaultProps: map[string]any{"fields": []any{"name", "email", "message"}, "submit": "Send"},
	},
	CatalogEntry{
		Type: "gallery-grid", Label: "Gallery Grid", Category: "media",
		DefaultProps: map[string]any{"columns": 4, "gap": "md", "lightbox": true},
		Areas:        []layout.AreaID{layout.AreaGallery},
	},
	CatalogEntry{
		Type: "stat-card", Label: "Stat Card", Category: "data",
		DefaultProps: map[string]any{"label": "Revenue", "value": "12.4k", "trend": "up"},
		Areas:        []layout.AreaID{layout.AreaMainContent},
	},
	CatalogEntry{
		Type: "chart", Label: "Chart", Category: "data",
		DefaultProps: map[string]any{"kind": "line", "series": 2},
		Areas:        []layout.AreaID{layout.AreaMainContent},
	},
	CatalogEntry{
		Type: "data-table", Label: "Data Table", Category: "data",
		DefaultProps: map[string]any{"columns": 5, "rows": 10, "striped": true},
		Areas:        []layout.AreaID{layout.AreaMainContent},
	},
	CatalogEntry{
		Type: "sidebar-menu", Label: "Sidebar Menu", Category: "navigation",
		DefaultProps: map[string]any{"items": []any{"Overview", "Reports", "Settings"}, "collapsible": true},
		Areas:        []layout.AreaID{layout.AreaSidebar},
	},
	CatalogEntry{
		Type: "tab-bar", Label: "Tab Bar", Category: "navigation",
		DefaultProps: map[string]any{"tabs": []any{"Home", "Search", "Profile"}},
		Areas:        []layout.AreaID{layout.AreaTabBar},
	},
	CatalogEntry{
		Type: "footer-links", Label: "Footer Links", Category: "navigation",
		DefaultProps: map[string]any{"columns": 3, "copyright": "© Company"},
		Areas:        []layout.AreaID{layout.AreaFooter},
	},
)
