package layout

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return "layout-" + strconv.Itoa(n)
	}
}

func TestGenerateLandingPage(t *testing.T) {
	t.Parallel()

	l := NewGenerator(sequentialIDs()).Generate(SiteLandingPage)

	ids := make([]AreaID, len(l.Areas))
	for i, a := range l.Areas {
		ids[i] = a.ID
		require.Empty(t, a.Components)
		require.NotNil(t, a.Components)
	}
	require.Equal(t, []AreaID{
		AreaHeader, AreaHero, AreaSection1, AreaSection2, AreaSection3, AreaSection4, AreaSection5, AreaFooter,
	}, ids)

	require.Equal(t, 1, l.Grid.Columns)
	require.Len(t, l.Grid.Rows, 8)
	require.Len(t, l.Grid.TemplateAreas, 8)
	for i, rowSpec := range l.Grid.TemplateAreas {
		require.Equal(t, string(ids[i]), rowSpec, "row %d", i)
	}
}

func TestGenerateDashboardSharesFirstRow(t *testing.T) {
	t.Parallel()

	l := Generate(SiteDashboard)
	require.Equal(t, 12, l.Grid.Columns)

	first := strings.Fields(l.Grid.TemplateAreas[0])
	require.Len(t, first, 12)
	require.Equal(t, []string{"sidebar", "sidebar"}, first[:2])
	for _, name := range first[2:] {
		require.Equal(t, "header", name)
	}
	for _, r := range l.Grid.TemplateAreas {
		require.Len(t, strings.Fields(r), 12)
	}
}

func TestGenerateAppStack(t *testing.T) {
	t.Parallel()

	l := Generate(SiteApp)
	require.Equal(t, []string{"header", "mainContent", "tabBar"}, l.Grid.TemplateAreas)
	require.Len(t, l.Grid.Rows, 3)
}

func TestGenerateEveryTemplateIsConsistent(t *testing.T) {
	t.Parallel()

	for _, st := range SiteTypes {
		l := Generate(st)
		require.Equal(t, st, l.SiteType)
		require.Len(t, l.Grid.Rows, len(l.Grid.TemplateAreas), "site %s", st)

		named := map[string]bool{}
		for _, r := range l.Grid.TemplateAreas {
			cells := strings.Fields(r)
			require.Len(t, cells, l.Grid.Columns, "site %s row %q", st, r)
			for _, c := range cells {
				named[c] = true
			}
		}
		for _, a := range l.Areas {
			require.True(t, named[a.GridArea], "site %s area %s missing from template", st, a.ID)
			require.NotEmpty(t, a.Label)
		}
	}
}

func TestGenerateProducesNewIdentity(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(sequentialIDs())
	a := gen.Generate(SiteBlog)
	b := gen.Generate(SiteBlog)
	require.NotEqual(t, a.ID, b.ID)

	a.Areas[0].Components = append(a.Areas[0].Components, "p1")
	require.Empty(t, b.Areas[0].Components)
	require.Empty(t, gen.Generate(SiteBlog).Areas[0].Components)
}

func TestGenerateUnknownFallsBackToLanding(t *testing.T) {
	t.Parallel()

	l := Generate(SiteType("brochure"))
	require.Equal(t, SiteLandingPage, l.SiteType)
}

func TestParseSiteType(t *testing.T) {
	t.Parallel()

	tests := map[string]SiteType{
		"landing-page": SiteLandingPage,
		" Dashboard ":  SiteDashboard,
		"mobile":       SiteApp,
		"application":  SiteApp,
	}
	for in, want := range tests {
		got, err := ParseSiteType(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseSiteType("intranet")
	require.Error(t, err)
}

func TestLayoutLocateAndClone(t *testing.T) {
	t.Parallel()

	l := Generate(SiteBlog)
	l.Areas[2].Components = []string{"a", "b"}

	area, idx, ok := l.Locate("b")
	require.True(t, ok)
	require.Equal(t, AreaMainContent, area)
	require.Equal(t, 1, idx)

	clone := l.Clone()
	clone.Areas[2].Components[0] = "z"
	clone.Grid.Rows[0] = "99px"
	require.Equal(t, "a", l.Areas[2].Components[0])
	require.Equal(t, "auto", l.Grid.Rows[0])
}
