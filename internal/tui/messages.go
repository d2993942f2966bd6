package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gridsmith/internal/ports"
)

// EventMsg carries a domain event published by the studio session.
type EventMsg struct {
	Type   string
	Fields map[string]any
}

// waitForEvent blocks until the session publishes the next event or done is
// closed.
func waitForEvent(events <-chan ports.DomainEvent, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			return EventMsg{Type: ev.EventType(), Fields: ev.Payload()}
		case <-done:
			return nil
		}
	}
}
