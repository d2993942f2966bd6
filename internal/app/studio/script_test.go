package studio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridsmith/internal/config"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/design"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"
	"github.com/alexisbeaulieu97/gridsmith/internal/ports"
	gridsmitherrors "github.com/alexisbeaulieu97/gridsmith/pkg/errors"
)

const seedScript = `version: "1"
name: blog skeleton
ops:
  - op: site_type
    site_type: blog
  - op: add
    id: nav
    type: navbar
    area: header
  - op: add
    id: title
    type: heading
    area: mainContent
    label: Latest posts
  - op: add
    id: menu
    type: sidebar-menu
    area: sidebar
  - op: drop
    id: title
    over: menu
  - op: remove
    id: ghost
  - op: set_color
    role: accent
    hex: "#10B981"
  - op: radius
    value: full
  - op: fonts
    heading: merriweather
`

func TestRunScript(t *testing.T) {
	t.Parallel()

	script, err := config.ParseScriptBytes("seed.yaml", []byte(seedScript))
	require.NoError(t, err)

	svc, _ := newTestService(t, layout.SiteLandingPage)
	report, err := svc.Run(script)
	require.NoError(t, err)
	require.Len(t, report.Results, 9)
	require.Equal(t, 8, report.Applied())
	require.Equal(t, 1, report.Ignored())

	snap := svc.Snapshot()
	require.Equal(t, layout.SiteBlog, snap.Meta.SiteType)
	require.Equal(t, "Latest posts", snap.Parts["title"].Label)
	require.Equal(t, layout.AreaSidebar, snap.Parts["title"].AreaID)
	require.Equal(t, []string{"title", "menu"}, snap.Layout.Areas[snap.Layout.AreaIndex(layout.AreaSidebar)].Components)
	require.Equal(t, "#10b981", snap.Theme.Colors.Accent)
	require.Equal(t, theme.RadiusFull, snap.Theme.Radius)
	require.Equal(t, "merriweather", snap.Theme.Typography.HeadingFont)
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	script := &config.Script{Version: "1", Ops: []config.Op{
		{Op: config.OpAdd, ID: "a", Type: "heading", Area: "mainContent"},
		{Op: config.OpAdd, ID: "b", Type: "heading", Area: "gallery", Line: 9},
		{Op: config.OpUndo},
	}}

	svc, _ := newTestService(t, layout.SiteBlog)
	report, err := svc.Run(script)

	var opErr *gridsmitherrors.OpError
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, 1, opErr.Index)
	require.Equal(t, 9, opErr.Line)
	require.True(t, errors.Is(err, design.ErrNotFound))
	require.Len(t, report.Results, 1)
	require.Len(t, svc.Snapshot().Parts, 1)
}

func TestApplyMoveWithoutIndexAppends(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, layout.SiteBlog)
	for _, id := range []string{"a", "b", "c"} {
		_, _, err := svc.Apply(config.Op{Op: config.OpAdd, ID: id, Type: "card", Area: "sidebar"})
		require.NoError(t, err)
	}

	ok, _, err := svc.Apply(config.Op{Op: config.OpMove, ID: "a", Area: "sidebar"})
	require.NoError(t, err)
	require.True(t, ok)

	snap := svc.Snapshot()
	require.Equal(t, []string{"b", "c", "a"}, snap.Layout.Areas[snap.Layout.AreaIndex(layout.AreaSidebar)].Components)
}

func TestApplyRandomizeWithScriptLocks(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, layout.SiteBlog)
	before := svc.Snapshot().Theme.Colors

	ok, _, err := svc.Apply(config.Op{Op: config.OpRandomize, Locks: []string{"background", "text"}})
	require.NoError(t, err)
	require.True(t, ok)

	after := svc.Snapshot().Theme.Colors
	require.Equal(t, before.Background, after.Background)
	require.Equal(t, before.Text, after.Text)
	require.Empty(t, svc.Locks(), "script locks do not change session locks")
}

func TestApplyEffectReplacesDescriptor(t *testing.T) {
	t.Parallel()

	svc, rec := newTestService(t, layout.SiteBlog)
	effect := theme.BackgroundEffect{Type: "grid", Enabled: true, Interactive: true, Intensity: 0.3, Speed: 0.5}

	applied, detail, err := svc.Apply(config.Op{Op: config.OpEffect, Effect: &effect})
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, "grid", detail)
	require.Equal(t, effect, svc.Snapshot().Theme.Effect)
	require.Equal(t, []string{ports.EventThemeTokensSet}, rec.events)

	_, _, err = svc.Apply(config.Op{Op: config.OpEffect})
	require.Error(t, err)
}
