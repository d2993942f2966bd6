package design

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	require.True(t, c.Has("hero-banner"))
	require.False(t, c.Has("marquee"))
	require.Equal(t, "navbar", c.Entries()[0].Type)
	require.Contains(t, c.Categories(), "data")
	require.IsIncreasing(t, c.Categories())
}

func TestCatalogNewPartCopiesDefaults(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	p, err := c.NewPart("n1", "navbar", layout.AreaHeader)
	require.NoError(t, err)
	require.Equal(t, "Navigation Bar", p.Label)

	links := p.Props["links"].([]any)
	links[0] = "Changed"

	fresh, err := c.NewPart("n2", "navbar", layout.AreaHeader)
	require.NoError(t, err)
	require.Equal(t, "Home", fresh.Props["links"].([]any)[0])

	_, err = c.NewPart("x", "marquee", layout.AreaHeader)
	require.True(t, errors.Is(err, ErrUnknownPartType))
}

func TestNewCatalogReplacesDuplicates(t *testing.T) {
	t.Parallel()

	c := NewCatalog(
		CatalogEntry{Type: "a", Label: "first"},
		CatalogEntry{Type: "b", Label: "b"},
		CatalogEntry{Type: "a", Label: "second"},
	)
	require.Len(t, c.Entries(), 2)
	e, ok := c.Lookup("a")
	require.True(t, ok)
	require.Equal(t, "second", e.Label)
}

func TestDomainErrorIsMatchesCode(t *testing.T) {
	t.Parallel()

	err := newAreaNotFoundError("hero")
	require.True(t, errors.Is(err, ErrNotFound))
	require.False(t, errors.Is(err, ErrDuplicate))
	require.Contains(t, err.Error(), "NOT_FOUND")

	enriched := err.WithContext(map[string]interface{}{"op": "add"})
	require.Equal(t, "hero", enriched.Context["area_id"])
	require.Equal(t, "add", enriched.Context["op"])
	require.NotContains(t, err.Context, "op")
	require.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
}

func TestBoundedStackEvictsOldest(t *testing.T) {
	t.Parallel()

	s := newBoundedStack(2)
	for _, id := range []string{"a", "b", "c"} {
		s.push(Document{Layout: layout.Layout{ID: id}})
	}
	require.Equal(t, 2, s.len())

	doc, ok := s.pop()
	require.True(t, ok)
	require.Equal(t, "c", doc.Layout.ID)
	doc, _ = s.pop()
	require.Equal(t, "b", doc.Layout.ID)
	_, ok = s.pop()
	require.False(t, ok)
}

func TestOrderedParts(t *testing.T) {
	t.Parallel()

	s := seededBlog(t)
	var ids []string
	for _, p := range s.Document().OrderedParts() {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []string{"P", "M", "S0", "S1", "Q", "S3"}, ids)
}
