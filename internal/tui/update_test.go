package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
)

func TestUpdateAddsCurrentTypeToCurrentArea(t *testing.T) {
	m := press(t, newTestModel(t), "a")

	part, ok := m.CurrentPart()
	require.True(t, ok)
	require.Equal(t, "navbar", part.Type)
	require.Equal(t, layout.AreaHeader, part.AreaID)
	require.Equal(t, part.ID, m.Snapshot().SelectedPartID)
	require.Equal(t, 1, m.Changes())
}

func TestUpdateCyclesPartTypes(t *testing.T) {
	m := press(t, newTestModel(t), "tab")
	require.Equal(t, "hero-banner", m.CurrentType().Type)

	m = press(t, m, "shift+tab", "shift+tab")
	require.Equal(t, m.catalog[len(m.catalog)-1].Type, m.CurrentType().Type)
}

func TestUpdateNavigatesAreas(t *testing.T) {
	m := press(t, newTestModel(t), "right")
	area, _ := m.CurrentArea()
	require.Equal(t, layout.AreaNavigation, area.ID)

	m = press(t, m, "left", "left")
	area, _ = m.CurrentArea()
	require.Equal(t, layout.AreaFooter, area.ID)
}

func TestUpdateMovesPartWithinArea(t *testing.T) {
	m := press(t, newTestModel(t), "a", "tab", "a")
	second, _ := m.CurrentPart()
	require.Equal(t, "hero-banner", second.Type)
	require.Equal(t, 1, m.part)

	m = press(t, m, "K")
	header, _ := m.CurrentArea()
	require.Equal(t, second.ID, header.Components[0])
	require.Equal(t, 0, m.part)
	current, _ := m.CurrentPart()
	require.Equal(t, second.ID, current.ID)

	changes := m.Changes()
	m = press(t, m, "K")
	require.Equal(t, changes, m.Changes())

	m = press(t, m, "J")
	header, _ = m.CurrentArea()
	require.Equal(t, second.ID, header.Components[1])
}

func TestUpdateMovesPartToNextArea(t *testing.T) {
	m := press(t, newTestModel(t), "a", "m")

	area, _ := m.CurrentArea()
	require.Equal(t, layout.AreaNavigation, area.ID)
	part, ok := m.CurrentPart()
	require.True(t, ok)
	require.Equal(t, layout.AreaNavigation, part.AreaID)
}

func TestUpdateDeleteUndoRedo(t *testing.T) {
	m := press(t, newTestModel(t), "a", "d")
	require.Empty(t, m.Snapshot().Parts)

	m = press(t, m, "u")
	require.Len(t, m.Snapshot().Parts, 1)
	require.True(t, m.Snapshot().CanRedo)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = updated.(Model)
	require.Empty(t, m.Snapshot().Parts)

	m = press(t, m, "u", "u", "u")
	require.Empty(t, m.Snapshot().Parts)
	require.Equal(t, "nothing to undo", m.status)
}

func TestUpdateLocksAndRandomizes(t *testing.T) {
	m := newTestModel(t)
	before := m.Snapshot().Theme.Colors

	m = press(t, m, "1")
	require.Equal(t, []color.Role{color.RoleBackground}, m.Snapshot().Locks)
	require.Equal(t, "background locked", m.status)

	m = press(t, m, "c")
	after := m.Snapshot().Theme.Colors
	require.Equal(t, before.Background, after.Background)
	require.NotEmpty(t, m.Snapshot().Concept)

	m = press(t, m, "1")
	require.Empty(t, m.Snapshot().Locks)
}

func TestUpdateDeleteWithoutPart(t *testing.T) {
	m := press(t, newTestModel(t), "d")
	require.Equal(t, "no part selected", m.status)
	require.Zero(t, m.Changes())
}

func TestUpdateTracksWindowSize(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.Equal(t, 120, m.width)
	require.Equal(t, 120, m.help.Width)
}
