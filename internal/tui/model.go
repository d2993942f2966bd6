package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/design"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridsmith/internal/ports"
)

const eventBuffer = 64

// Model is the Bubbletea state for the interactive layout editor.
type Model struct {
	svc     *studio.Service
	snap    studio.ReadModel
	catalog []design.CatalogEntry

	keys keyMap
	help help.Model

	area    int
	part    int
	typeIdx int

	status   string
	errMsg   string
	changes  int
	quitting bool

	events chan ports.DomainEvent
	done   chan struct{}
	sub    ports.Subscription

	width  int
	height int
}

// NewModel builds an editor over svc. Events the session publishes are
// forwarded to the status line when the session has a publisher.
func NewModel(svc *studio.Service) Model {
	m := Model{
		svc:     svc,
		catalog: svc.Catalog().Entries(),
		keys:    newKeyMap(),
		help:    help.New(),
		events:  make(chan ports.DomainEvent, eventBuffer),
		done:    make(chan struct{}),
		status:  "ready",
	}
	events, done := m.events, m.done
	m.sub = svc.Subscribe(ports.AllEvents, func(ev ports.DomainEvent) error {
		select {
		case <-done:
		case events <- ev:
		default:
		}
		return nil
	})
	m.refresh()
	return m
}

// Init starts listening for session events.
func (m Model) Init() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	return waitForEvent(m.events, m.done)
}

// Changes returns how many document or theme changes were made in the editor.
func (m Model) Changes() int {
	return m.changes
}

// Quitting reports whether the user asked to leave the editor.
func (m Model) Quitting() bool {
	return m.quitting
}

// Snapshot returns the read model the editor last rendered.
func (m Model) Snapshot() studio.ReadModel {
	return m.snap
}

// CurrentArea returns the area under the cursor.
func (m Model) CurrentArea() (layout.Area, bool) {
	if m.area < 0 || m.area >= len(m.snap.Layout.Areas) {
		return layout.Area{}, false
	}
	return m.snap.Layout.Areas[m.area], true
}

// CurrentPart returns the part under the cursor.
func (m Model) CurrentPart() (design.Part, bool) {
	area, ok := m.CurrentArea()
	if !ok || m.part < 0 || m.part >= len(area.Components) {
		return design.Part{}, false
	}
	p, ok := m.snap.Parts[area.Components[m.part]]
	return p, ok
}

// CurrentType returns the catalog entry that the add key places.
func (m Model) CurrentType() design.CatalogEntry {
	if len(m.catalog) == 0 {
		return design.CatalogEntry{}
	}
	return m.catalog[m.typeIdx]
}

// refresh reloads the snapshot and clamps the cursors to it.
func (m *Model) refresh() {
	m.snap = m.svc.Snapshot()
	areas := len(m.snap.Layout.Areas)
	switch {
	case areas == 0:
		m.area = 0
	case m.area >= areas:
		m.area = areas - 1
	case m.area < 0:
		m.area = 0
	}
	m.clampPart()
}

func (m *Model) clampPart() {
	area, ok := m.CurrentArea()
	if !ok || len(area.Components) == 0 {
		m.part = 0
		return
	}
	if m.part >= len(area.Components) {
		m.part = len(area.Components) - 1
	}
	if m.part < 0 {
		m.part = 0
	}
}

// follow moves the cursor onto the part with id wherever it now lives.
func (m *Model) follow(id string) {
	areaID, idx, ok := m.snap.Layout.Locate(id)
	if !ok {
		return
	}
	m.area = m.snap.Layout.AreaIndex(areaID)
	m.part = idx
}

func (m *Model) moveArea(delta int) {
	n := len(m.snap.Layout.Areas)
	if n == 0 {
		return
	}
	m.area = (m.area + delta + n) % n
	m.part = 0
}

func (m *Model) cycleType(delta int) {
	n := len(m.catalog)
	if n == 0 {
		return
	}
	m.typeIdx = (m.typeIdx + delta + n) % n
}

func (m *Model) close() {
	if m.sub != nil {
		m.sub.Unsubscribe()
		m.sub = nil
		close(m.done)
	}
}
