package ports

const (
	// EventPartAdded is emitted after a part is placed into an area.
	EventPartAdded = "part.added"
	// EventPartRemoved is emitted after a part is deleted.
	EventPartRemoved = "part.removed"
	// EventPartUpdated is emitted after a part's label or props change.
	EventPartUpdated = "part.updated"
	// EventPartMoved is emitted after a move or a resolved drop.
	EventPartMoved = "part.moved"
	// EventHistoryUndo is emitted after an undo restores a snapshot.
	EventHistoryUndo = "history.undo"
	// EventHistoryRedo is emitted after a redo reapplies a snapshot.
	EventHistoryRedo = "history.redo"
	// EventLayoutReset is emitted when a new site type replaces the layout.
	EventLayoutReset = "layout.reset"
	// EventThemeRandomized is emitted after unlocked colors are regenerated.
	EventThemeRandomized = "theme.randomized"
	// EventThemeColorSet is emitted after a single role is set by hand.
	EventThemeColorSet = "theme.color_set"
	// EventThemeTokensSet is emitted after radius, shadow, fonts or effect change.
	EventThemeTokensSet = "theme.tokens_set"
)

// DomainEvent represents a significant change to the design document or
// theme. Events carry structured payloads that subscribers can use for
// logging or UI refreshes.
type DomainEvent interface {
	EventType() string
	Payload() map[string]any
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns once every handler has run. Implementations
// must be safe for concurrent use.
type EventPublisher interface {
	Publish(event DomainEvent)
	Subscribe(eventType string, handler EventHandler) Subscription
}

// EventHandler processes an event. Returned errors are logged and do not stop
// delivery to the remaining subscribers.
type EventHandler func(DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}

// AllEvents subscribes a handler to every event type.
const AllEvents = "*"

// Event is the concrete DomainEvent published by the studio.
type Event struct {
	Type   string
	Fields map[string]any
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() map[string]any { return e.Fields }
