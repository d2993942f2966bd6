package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case EventMsg:
		m.status = describeEvent(msg)
		m.refresh()
		if m.sub == nil {
			return m, nil
		}
		return m, waitForEvent(m.events, m.done)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.QuitMsg:
		m.quitting = true
		m.close()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch {
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
		m.close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.moveUp):
		m.shiftPart(-1)
	case key.Matches(msg, m.keys.moveDown):
		m.shiftPart(1)

	case key.Matches(msg, m.keys.up):
		m.part--
		m.clampPart()
		m.syncSelection()
	case key.Matches(msg, m.keys.down):
		m.part++
		m.clampPart()
		m.syncSelection()
	case key.Matches(msg, m.keys.prevArea):
		m.moveArea(-1)
		m.syncSelection()
	case key.Matches(msg, m.keys.nextArea):
		m.moveArea(1)
		m.syncSelection()

	case key.Matches(msg, m.keys.nextType):
		m.cycleType(1)
		m.status = "part type: " + m.CurrentType().Label
	case key.Matches(msg, m.keys.prevType):
		m.cycleType(-1)
		m.status = "part type: " + m.CurrentType().Label

	case key.Matches(msg, m.keys.add):
		m.addPart()
	case key.Matches(msg, m.keys.remove):
		m.removePart()
	case key.Matches(msg, m.keys.moveArea):
		m.movePartToNextArea()

	case key.Matches(msg, m.keys.undo):
		if m.svc.Undo() {
			m.changes++
			m.status = "undone"
		} else {
			m.status = "nothing to undo"
		}
		m.refresh()
	case key.Matches(msg, m.keys.redo):
		if m.svc.Redo() {
			m.changes++
			m.status = "redone"
		} else {
			m.status = "nothing to redo"
		}
		m.refresh()

	case key.Matches(msg, m.keys.randomize):
		result := m.svc.RandomizeColors(nil)
		m.changes++
		m.status = "colors randomized, primary " + result.Colors.Primary
		m.refresh()
	case key.Matches(msg, m.keys.lock):
		m.toggleLock(msg.String())
	}

	return m, nil
}

func (m *Model) addPart() {
	area, ok := m.CurrentArea()
	if !ok {
		m.errMsg = "layout has no areas"
		return
	}
	entry := m.CurrentType()
	part, err := m.svc.AddCatalogPart(entry.Type, area.ID)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.changes++
	m.status = fmt.Sprintf("added %s to %s", entry.Label, area.Label)
	m.refresh()
	m.follow(part.ID)
	m.syncSelection()
}

func (m *Model) removePart() {
	part, ok := m.CurrentPart()
	if !ok {
		m.status = "no part selected"
		return
	}
	if m.svc.RemovePart(part.ID) {
		m.changes++
		m.status = "removed " + part.Label
	}
	m.refresh()
}

// shiftPart moves the current part delta positions within its area.
func (m *Model) shiftPart(delta int) {
	part, ok := m.CurrentPart()
	if !ok {
		return
	}
	area, _ := m.CurrentArea()
	target := m.part + delta
	if target < 0 || target >= len(area.Components) {
		return
	}
	if m.svc.MovePart(part.ID, area.ID, target) {
		m.changes++
		m.status = fmt.Sprintf("moved %s to position %d", part.Label, target+1)
	}
	m.refresh()
	m.follow(part.ID)
}

func (m *Model) movePartToNextArea() {
	part, ok := m.CurrentPart()
	if !ok || len(m.snap.Layout.Areas) < 2 {
		return
	}
	next := m.snap.Layout.Areas[(m.area+1)%len(m.snap.Layout.Areas)]
	if m.svc.Drop(part.ID, string(next.ID)) {
		m.changes++
		m.status = fmt.Sprintf("moved %s to %s", part.Label, next.Label)
	}
	m.refresh()
	m.follow(part.ID)
}

func (m *Model) toggleLock(digit string) {
	idx := int(digit[0] - '1')
	if idx < 0 || idx >= len(color.Roles) {
		return
	}
	role := color.Roles[idx]
	if m.svc.ToggleLock(role) {
		m.status = fmt.Sprintf("%s locked", role)
	} else {
		m.status = fmt.Sprintf("%s unlocked", role)
	}
	m.refresh()
}

func (m *Model) syncSelection() {
	part, ok := m.CurrentPart()
	if !ok {
		m.svc.Select("")
	} else {
		m.svc.Select(part.ID)
	}
	m.snap = m.svc.Snapshot()
}

func describeEvent(ev EventMsg) string {
	if len(ev.Fields) == 0 {
		return ev.Type
	}
	keys := lo.Keys(ev.Fields)
	slices.Sort(keys)
	pairs := lo.Map(keys, func(k string, _ int) string {
		return fmt.Sprintf("%s=%v", k, ev.Fields[k])
	})
	return ev.Type + " " + strings.Join(pairs, " ")
}
