package layout

import (
	"strings"

	"github.com/google/uuid"
)

// IDFunc produces a fresh layout identity.
type IDFunc func() string

// Generator maps site archetypes onto grid layouts. It holds no state beyond
// the identity source, so a zero value is ready to use.
type Generator struct {
	newID IDFunc
}

// NewGenerator returns a Generator using newID for layout identities. A nil
// newID falls back to random UUIDs.
func NewGenerator(newID IDFunc) Generator {
	return Generator{newID: newID}
}

// Generate builds a fresh layout for siteType. Every call yields a new
// identity and empty areas. Unknown site types fall back to a landing page.
func (g Generator) Generate(siteType SiteType) Layout {
	tmpl, ok := templates[siteType]
	if !ok {
		siteType = SiteLandingPage
		tmpl = templates[SiteLandingPage]
	}

	areas := make([]Area, len(tmpl.areas))
	for i, id := range tmpl.areas {
		areas[i] = Area{
			ID:         id,
			Label:      areaLabels[id],
			Components: []string{},
			GridArea:   string(id),
		}
	}

	return Layout{
		ID:       g.id(),
		SiteType: siteType,
		Areas:    areas,
		Grid: GridSpec{
			TemplateAreas: append([]string(nil), tmpl.grid.TemplateAreas...),
			Columns:       tmpl.grid.Columns,
			Rows:          append([]string(nil), tmpl.grid.Rows...),
			Gap:           tmpl.grid.Gap,
		},
	}
}

func (g Generator) id() string {
	if g.newID != nil {
		return g.newID()
	}
	return uuid.NewString()
}

// Generate builds a layout with the default generator.
func Generate(siteType SiteType) Layout {
	return Generator{}.Generate(siteType)
}

type template struct {
	areas []AreaID
	grid  GridSpec
}

var areaLabels = map[AreaID]string{
	AreaHeader:      "Header",
	AreaNavigation:  "Navigation",
	AreaHero:        "Hero",
	AreaMainContent: "Main Content",
	AreaSidebar:     "Sidebar",
	AreaGallery:     "Gallery",
	AreaFooter:      "Footer",
	AreaSection1:    "Section 1",
	AreaSection2:    "Section 2",
	AreaSection3:    "Section 3",
	AreaSection4:    "Section 4",
	AreaSection5:    "Section 5",
	AreaTabBar:      "Tab Bar",
}

type span struct {
	area AreaID
	cols int
}

// row expands column spans into a grid-template-areas row.
func row(spans ...span) string {
	var names []string
	for _, s := range spans {
		for i := 0; i < s.cols; i++ {
			names = append(names, string(s.area))
		}
	}
	return strings.Join(names, " ")
}

func full(area AreaID) string {
	return row(span{area, 12})
}

var templates = map[SiteType]template{
	SiteLandingPage: {
		areas: []AreaID{AreaHeader, AreaHero, AreaSection1, AreaSection2, AreaSection3, AreaSection4, AreaSection5, AreaFooter},
		grid: GridSpec{
			TemplateAreas: []string{"header", "hero", "section1", "section2", "section3", "section4", "section5", "footer"},
			Columns:       1,
			Rows:          []string{"auto", "auto", "auto", "auto", "auto", "auto", "auto", "auto"},
			Gap:           "0",
		},
	},
	SiteBlog: {
		areas: []AreaID{AreaHeader, AreaNavigation, AreaMainContent, AreaSidebar, AreaFooter},
		grid: GridSpec{
			TemplateAreas: []string{
				full(AreaHeader),
				full(AreaNavigation),
				row(span{AreaMainContent, 8}, span{AreaSidebar, 4}),
				full(AreaFooter),
			},
			Columns: 12,
			Rows:    []string{"auto", "auto", "1fr", "auto"},
			Gap:     "1.5rem",
		},
	},
	SiteCorporate: {
		areas: []AreaID{AreaHeader, AreaHero, AreaMainContent, AreaGallery, AreaFooter},
		grid: GridSpec{
			TemplateAreas: []string{"header", "hero", "mainContent", "gallery", "footer"},
			Columns:       1,
			Rows:          []string{"auto", "minmax(400px, auto)", "auto", "auto", "auto"},
			Gap:           "2rem",
		},
	},
	SiteApp: {
		areas: []AreaID{AreaHeader, AreaMainContent, AreaTabBar},
		grid: GridSpec{
			TemplateAreas: []string{"header", "mainContent", "tabBar"},
			Columns:       1,
			Rows:          []string{"56px", "1fr", "64px"},
			Gap:           "0",
		},
	},
	SiteDashboard: {
		areas: []AreaID{AreaHeader, AreaSidebar, AreaMainContent, AreaFooter},
		grid: GridSpec{
			TemplateAreas: []string{
				row(span{AreaSidebar, 2}, span{AreaHeader, 10}),
				row(span{AreaSidebar, 2}, span{AreaMainContent, 10}),
				row(span{AreaSidebar, 2}, span{AreaFooter, 10}),
			},
			Columns: 12,
			Rows:    []string{"64px", "1fr", "auto"},
			Gap:     "1rem",
		},
	},
	SitePortfolio: {
		areas: []AreaID{AreaHeader, AreaHero, AreaGallery, AreaMainContent, AreaFooter},
		grid: GridSpec{
			TemplateAreas: []string{"header", "hero", "gallery", "mainContent", "footer"},
			Columns:       1,
			Rows:          []string{"auto", "auto", "1fr", "auto", "auto"},
			Gap:           "1rem",
		},
	},
	SiteEcommerce: {
		areas: []AreaID{AreaHeader, AreaNavigation, AreaHero, AreaSidebar, AreaMainContent, AreaFooter},
		grid: GridSpec{
			TemplateAreas: []string{
				full(AreaHeader),
				full(AreaNavigation),
				full(AreaHero),
				row(span{AreaSidebar, 3}, span{AreaMainContent, 9}),
				full(AreaFooter),
			},
			Columns: 12,
			Rows:    []string{"auto", "auto", "auto", "1fr", "auto"},
			Gap:     "1rem",
		},
	},
}
