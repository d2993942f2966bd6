package design

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
)

func seededBlog(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t, layout.SiteBlog)
	mustAdd(t, s, "P", "heading", layout.AreaMainContent)
	mustAdd(t, s, "M", "paragraph", layout.AreaMainContent)
	mustAdd(t, s, "S0", "card", layout.AreaSidebar)
	mustAdd(t, s, "S1", "card", layout.AreaSidebar)
	mustAdd(t, s, "Q", "card", layout.AreaSidebar)
	mustAdd(t, s, "S3", "card", layout.AreaSidebar)
	return s
}

func TestResolvePlacement(t *testing.T) {
	t.Parallel()

	doc := seededBlog(t).Document()

	tests := []struct {
		name   string
		active string
		over   string
		want   Placement
		ok     bool
	}{
		{name: "area appends", active: "P", over: "sidebar", want: Placement{AreaID: layout.AreaSidebar, Index: 4}, ok: true},
		{name: "part inserts at its index", active: "P", over: "Q", want: Placement{AreaID: layout.AreaSidebar, Index: 2}, ok: true},
		{name: "own area", active: "P", over: "mainContent", want: Placement{AreaID: layout.AreaMainContent, Index: 2}, ok: true},
		{name: "self", active: "P", over: "P"},
		{name: "unknown target", active: "P", over: "nowhere"},
		{name: "area missing from layout", active: "P", over: "tabBar"},
		{name: "unknown active", active: "ghost", over: "sidebar"},
		{name: "empty over", active: "P", over: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ResolvePlacement(doc, tt.active, tt.over)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDropOntoArea(t *testing.T) {
	t.Parallel()

	s := seededBlog(t)
	require.True(t, s.Drop("S0", "mainContent"))
	require.Equal(t, []string{"P", "M", "S0"}, components(s, layout.AreaMainContent))
	require.Equal(t, []string{"S1", "Q", "S3"}, components(s, layout.AreaSidebar))
	requireConsistent(t, s)
}

func TestDropOntoPart(t *testing.T) {
	t.Parallel()

	s := seededBlog(t)
	require.True(t, s.Drop("P", "Q"))
	require.Equal(t, []string{"S0", "S1", "P", "Q", "S3"}, components(s, layout.AreaSidebar))
	require.Equal(t, []string{"M"}, components(s, layout.AreaMainContent))

	p, _ := s.Part("P")
	require.Equal(t, layout.AreaSidebar, p.AreaID)
	requireConsistent(t, s)
}

func TestDropIgnoredLeavesHistoryAlone(t *testing.T) {
	t.Parallel()

	s := seededBlog(t)
	before := s.State()

	require.False(t, s.Drop("P", "P"))
	require.False(t, s.Drop("P", "not-a-thing"))
	require.False(t, s.Drop("", "sidebar"))
	require.Equal(t, before, s.State())
}

func TestDropIsUndoable(t *testing.T) {
	t.Parallel()

	s := seededBlog(t)
	before := s.Document()
	require.True(t, s.Drop("M", "footer"))
	require.True(t, s.Undo())
	require.Equal(t, before, s.Document())
}
