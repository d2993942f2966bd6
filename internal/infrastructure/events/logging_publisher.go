package events

import (
	"sync"

	"github.com/alexisbeaulieu97/gridsmith/internal/logger"
	"github.com/alexisbeaulieu97/gridsmith/internal/ports"
)

// LoggingPublisher writes each event as a debug log entry and fans it out to
// subscribers.
type LoggingPublisher struct {
	logger *logger.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewLoggingPublisher creates an event publisher backed by log.
func NewLoggingPublisher(log *logger.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: log,
		subs:   make(map[string][]subscriptionEntry),
	}
}

// Publish logs the event and runs the handlers registered for its type,
// followed by the wildcard handlers.
func (p *LoggingPublisher) Publish(event ports.DomainEvent) {
	if p == nil || event == nil {
		return
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.EventType()]...)
	handlers = append(handlers, p.subs[ports.AllEvents]...)
	p.mu.RUnlock()

	fields := logger.Fields{"event_type": event.EventType()}
	for key, value := range event.Payload() {
		fields[key] = value
	}
	p.logger.Debug("domain event", fields)

	for _, entry := range handlers {
		if entry.handler == nil {
			continue
		}
		if err := entry.handler(event); err != nil {
			p.logger.Warn("event handler failed", logger.Fields{
				"event_type": event.EventType(),
				"error":      err.Error(),
			})
		}
	}
}

// Subscribe registers a handler for eventType, or for every event when
// eventType is ports.AllEvents.
func (p *LoggingPublisher) Subscribe(eventType string, handler ports.EventHandler) ports.Subscription {
	if p == nil || handler == nil {
		return noopSubscription{}
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[eventType]
			for i, entry := range handlers {
				if entry.id == id {
					p.subs[eventType] = append(handlers[:i:i], handlers[i+1:]...)
					break
				}
			}
		},
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler ports.EventHandler
}
