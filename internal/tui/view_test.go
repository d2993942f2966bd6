package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewRendersLayoutAndTheme(t *testing.T) {
	m := press(t, newTestModel(t), "a")

	view := m.View()
	require.Contains(t, view, "Journal")
	require.Contains(t, view, "Header (1)")
	require.Contains(t, view, "Navigation Bar [navbar]")
	require.Contains(t, view, "Sidebar (0)")
	require.Contains(t, view, "primary")
	require.Contains(t, view, "next part: Navigation Bar")
	require.Contains(t, view, "undo:yes redo:no")
}

func TestViewShowsErrors(t *testing.T) {
	m := newTestModel(t)
	m.errMsg = "boom"
	require.Contains(t, m.View(), "✗ boom")
}

func TestViewTogglesFullHelp(t *testing.T) {
	m := newTestModel(t)
	require.NotContains(t, m.View(), "move to next area")

	m = press(t, m, "?")
	require.Contains(t, m.View(), "move to next area")
}
