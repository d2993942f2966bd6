package layout

import (
	"fmt"
	"strings"
)

// SiteType is the closed set of site archetypes a layout can be generated for.
type SiteType string

const (
	SiteLandingPage SiteType = "landing-page"
	SiteBlog        SiteType = "blog"
	SiteCorporate   SiteType = "corporate"
	SiteApp         SiteType = "app"
	SiteDashboard   SiteType = "dashboard"
	SitePortfolio   SiteType = "portfolio"
	SiteEcommerce   SiteType = "ecommerce"
)

// SiteTypes lists every supported archetype.
var SiteTypes = []SiteType{
	SiteLandingPage,
	SiteBlog,
	SiteCorporate,
	SiteApp,
	SiteDashboard,
	SitePortfolio,
	SiteEcommerce,
}

var siteAliases = map[string]SiteType{
	"landing":     SiteLandingPage,
	"mobile":      SiteApp,
	"application": SiteApp,
	"mobile-app":  SiteApp,
	"shop":        SiteEcommerce,
}

// ParseSiteType converts user input into a SiteType.
func ParseSiteType(s string) (SiteType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, t := range SiteTypes {
		if string(t) == key {
			return t, nil
		}
	}
	if t, ok := siteAliases[key]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown site type %q", s)
}

// Valid reports whether t is a known archetype.
func (t SiteType) Valid() bool {
	for _, known := range SiteTypes {
		if known == t {
			return true
		}
	}
	return false
}

// AreaID identifies a named slot in a layout.
type AreaID string

const (
	AreaHeader      AreaID = "header"
	AreaNavigation  AreaID = "navigation"
	AreaHero        AreaID = "hero"
	AreaMainContent AreaID = "mainContent"
	AreaSidebar     AreaID = "sidebar"
	AreaGallery     AreaID = "gallery"
	AreaFooter      AreaID = "footer"
	AreaSection1    AreaID = "section1"
	AreaSection2    AreaID = "section2"
	AreaSection3    AreaID = "section3"
	AreaSection4    AreaID = "section4"
	AreaSection5    AreaID = "section5"
	AreaTabBar      AreaID = "tabBar"
)

// Area is an ordered slot holding part identifiers.
type Area struct {
	ID         AreaID   `yaml:"id" json:"id"`
	Label      string   `yaml:"label" json:"label"`
	Components []string `yaml:"components" json:"components"`
	GridArea   string   `yaml:"grid_area" json:"gridArea"`
}

// GridSpec is the CSS grid skeleton of a layout.
type GridSpec struct {
	TemplateAreas []string `yaml:"template_areas" json:"templateAreas"`
	Columns       int      `yaml:"columns" json:"columns"`
	Rows          []string `yaml:"rows" json:"rows"`
	Gap           string   `yaml:"gap" json:"gap"`
}

// TemplateAreasCSS renders grid-template-areas with one quoted row per line.
func (g GridSpec) TemplateAreasCSS() string {
	quoted := make([]string, len(g.TemplateAreas))
	for i, row := range g.TemplateAreas {
		quoted[i] = fmt.Sprintf("%q", row)
	}
	return strings.Join(quoted, "\n    ")
}

// ColumnsCSS renders grid-template-columns.
func (g GridSpec) ColumnsCSS() string {
	if g.Columns <= 1 {
		return "1fr"
	}
	return fmt.Sprintf("repeat(%d, 1fr)", g.Columns)
}

// RowsCSS renders grid-template-rows.
func (g GridSpec) RowsCSS() string {
	return strings.Join(g.Rows, " ")
}

// Layout is a generated grid layout with its areas.
type Layout struct {
	ID       string   `yaml:"id" json:"id"`
	SiteType SiteType `yaml:"site_type" json:"siteType"`
	Areas    []Area   `yaml:"areas" json:"areas"`
	Grid     GridSpec `yaml:"grid" json:"grid"`
}

// AreaIndex returns the position of area id, or -1.
func (l Layout) AreaIndex(id AreaID) int {
	for i := range l.Areas {
		if l.Areas[i].ID == id {
			return i
		}
	}
	return -1
}

// HasArea reports whether the layout defines area id.
func (l Layout) HasArea(id AreaID) bool {
	return l.AreaIndex(id) >= 0
}

// Locate finds the area holding partID and its position within that area.
func (l Layout) Locate(partID string) (AreaID, int, bool) {
	for _, area := range l.Areas {
		for i, id := range area.Components {
			if id == partID {
				return area.ID, i, true
			}
		}
	}
	return "", -1, false
}

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	areas := make([]Area, len(l.Areas))
	for i, area := range l.Areas {
		area.Components = append([]string{}, area.Components...)
		areas[i] = area
	}
	grid := l.Grid
	grid.TemplateAreas = append([]string(nil), l.Grid.TemplateAreas...)
	grid.Rows = append([]string(nil), l.Grid.Rows...)
	return Layout{
		ID:       l.ID,
		SiteType: l.SiteType,
		Areas:    areas,
		Grid:     grid,
	}
}
