package tui

import (
	"strconv"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/design"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridsmith/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/gridsmith/internal/logger"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	n := 0
	svc := studio.New(layout.SiteBlog,
		studio.WithName("Journal"),
		studio.WithPublisher(events.NewLoggingPublisher(logger.Nop())),
		studio.WithRandomSource(color.NewSource(3)),
		studio.WithClock(func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }),
		studio.WithStoreOptions(design.WithIDGenerator(func() string {
			n++
			return "part-" + strconv.Itoa(n)
		})),
	)
	return NewModel(svc)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func TestNewModelInitialisesState(t *testing.T) {
	m := newTestModel(t)

	area, ok := m.CurrentArea()
	require.True(t, ok)
	require.Equal(t, layout.AreaHeader, area.ID)

	_, ok = m.CurrentPart()
	require.False(t, ok)
	require.Equal(t, "navbar", m.CurrentType().Type)
	require.Zero(t, m.Changes())
	require.False(t, m.Quitting())
}

func TestModelInitWaitsForEvents(t *testing.T) {
	m := newTestModel(t)
	require.NotNil(t, m.Init())
}

func TestModelInitWithoutPublisher(t *testing.T) {
	m := NewModel(studio.New(layout.SiteApp))
	require.Nil(t, m.Init())

	m = press(t, m, "a")
	require.Len(t, m.Snapshot().Parts, 1)
}

func TestModelForwardsSessionEvents(t *testing.T) {
	m := press(t, newTestModel(t), "a")

	var ev EventMsg
	select {
	case raw := <-m.events:
		ev = EventMsg{Type: raw.EventType(), Fields: raw.Payload()}
	default:
		t.Fatal("expected a buffered event")
	}
	require.Equal(t, "part.added", ev.Type)

	updated, cmd := m.Update(ev)
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.Contains(t, m.status, "part.added")
	require.Contains(t, m.status, "area_id=header")
}

func TestModelUnsubscribesOnQuit(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(Model)

	require.True(t, m.Quitting())
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Nil(t, m.sub)
	require.Empty(t, m.View())

	released := make(chan tea.Msg, 1)
	go func() { released <- waitForEvent(m.events, m.done)() }()
	select {
	case msg := <-released:
		require.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("event wait still blocked after quit")
	}

	updated, _ = m.Update(keyMsg("q"))
	require.True(t, updated.(Model).Quitting())
}

func TestDescribeEventSortsFields(t *testing.T) {
	t.Parallel()

	require.Equal(t, "history.undo", describeEvent(EventMsg{Type: "history.undo"}))
	got := describeEvent(EventMsg{Type: "part.moved", Fields: map[string]any{"part_id": "p1", "area_id": "sidebar", "index": 2}})
	require.Equal(t, "part.moved area_id=sidebar index=2 part_id=p1", got)
}
