package studio

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/design"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"
	"github.com/alexisbeaulieu97/gridsmith/internal/logger"
	"github.com/alexisbeaulieu97/gridsmith/internal/ports"
)

// Meta describes the project a studio session edits.
type Meta struct {
	Name      string          `yaml:"name" json:"name"`
	SiteType  layout.SiteType `yaml:"site_type" json:"siteType"`
	CreatedAt time.Time       `yaml:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `yaml:"updated_at" json:"updatedAt"`
}

// Service is the entry point the CLI and the editor drive. It owns the design
// store together with the theme, concept palette and color locks, and it
// serialises every operation behind a mutex.
type Service struct {
	mu sync.Mutex

	store      *design.Store
	theme      theme.DesignTheme
	concept    color.ConceptPalette
	locks      color.Locks
	randomizer *color.Randomizer
	meta       Meta

	log       *logger.Logger
	publisher ports.EventPublisher
	now       func() time.Time
	storeOpts []design.Option
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for operation tracing.
func WithLogger(log *logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithPublisher sets the publisher that receives domain events.
func WithPublisher(p ports.EventPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithRandomSource sets the randomness used for palette generation.
func WithRandomSource(src color.Source) Option {
	return func(s *Service) {
		s.randomizer = color.NewRandomizer(color.NewGenerator(src))
	}
}

// WithClock overrides the time source used for Meta timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStoreOptions forwards options to the underlying design store.
func WithStoreOptions(opts ...design.Option) Option {
	return func(s *Service) {
		s.storeOpts = append(s.storeOpts, opts...)
	}
}

// WithTheme sets the starting theme of a new session.
func WithTheme(t theme.DesignTheme) Option {
	return func(s *Service) {
		s.theme = t
	}
}

// WithName sets the project name of a new session.
func WithName(name string) Option {
	return func(s *Service) {
		s.meta.Name = name
	}
}

func newService(opts []Option) *Service {
	s := &Service{
		theme: theme.Default(),
		locks: color.Locks{},
		log:   logger.Nop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.randomizer == nil {
		s.randomizer = color.NewRandomizer(nil)
	}
	s.log = s.log.WithFields(logger.Fields{"component": "studio"})
	return s
}

// New starts a session with a fresh layout for siteType and the default theme.
func New(siteType layout.SiteType, opts ...Option) *Service {
	s := newService(opts)
	s.store = design.NewStore(siteType, s.storeOpts...)
	now := s.now().UTC()
	s.meta.SiteType = s.store.Layout().SiteType
	s.meta.CreatedAt = now
	s.meta.UpdatedAt = now
	if s.meta.Name == "" {
		s.meta.Name = "Untitled design"
	}
	return s
}

// ReadModel is an immutable view of the session for renderers and exporters.
type ReadModel struct {
	Meta           Meta                   `yaml:"meta" json:"meta"`
	Theme          theme.DesignTheme      `yaml:"theme" json:"theme"`
	Concept        color.ConceptPalette   `yaml:"concept,omitempty" json:"concept,omitempty"`
	Locks          []color.Role           `yaml:"locks,omitempty" json:"locks,omitempty"`
	Layout         layout.Layout          `yaml:"layout" json:"layout"`
	Parts          map[string]design.Part `yaml:"parts" json:"parts"`
	SelectedPartID string                 `yaml:"selected_part_id,omitempty" json:"selectedPartId,omitempty"`
	CanUndo        bool                   `yaml:"-" json:"-"`
	CanRedo        bool                   `yaml:"-" json:"-"`
}

// OrderedParts returns parts in layout order.
func (m ReadModel) OrderedParts() []design.Part {
	return design.Document{Layout: m.Layout, Parts: m.Parts}.OrderedParts()
}

// Snapshot returns a deep copy of the current session.
func (s *Service) Snapshot() ReadModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() ReadModel {
	doc := s.store.Document()
	return ReadModel{
		Meta:           s.meta,
		Theme:          s.theme,
		Concept:        append(color.ConceptPalette(nil), s.concept...),
		Locks:          s.locks.Roles(),
		Layout:         doc.Layout,
		Parts:          doc.Parts,
		SelectedPartID: s.store.SelectedPartID(),
		CanUndo:        s.store.CanUndo(),
		CanRedo:        s.store.CanRedo(),
	}
}

// Catalog returns the part catalog the session validates against.
func (s *Service) Catalog() design.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Catalog()
}

// Subscribe registers handler for eventType on the session publisher. It
// returns nil when the session has no publisher.
func (s *Service) Subscribe(eventType string, handler ports.EventHandler) ports.Subscription {
	if s.publisher == nil {
		return nil
	}
	return s.publisher.Subscribe(eventType, handler)
}

func (s *Service) touch() {
	s.meta.UpdatedAt = s.now().UTC()
}

func (s *Service) emit(eventType string, fields map[string]any) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ports.Event{Type: eventType, Fields: fields})
}
