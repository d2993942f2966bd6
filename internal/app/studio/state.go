package studio

import (
	"fmt"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/design"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"
)

// State is everything needed to resume a session, including history.
type State struct {
	Meta    Meta                 `yaml:"meta" json:"meta"`
	Theme   theme.DesignTheme    `yaml:"theme" json:"theme"`
	Concept color.ConceptPalette `yaml:"concept,omitempty" json:"concept,omitempty"`
	Locks   []color.Role         `yaml:"locks,omitempty" json:"locks,omitempty"`
	Design  design.State         `yaml:"design" json:"design"`
}

// State returns a deep copy of the session.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Meta:    s.meta,
		Theme:   s.theme,
		Concept: append(color.ConceptPalette(nil), s.concept...),
		Locks:   s.locks.Roles(),
		Design:  s.store.State(),
	}
}

// Restore resumes a session from state. The document must satisfy the
// placement invariants.
func Restore(state State, opts ...Option) (*Service, error) {
	s := newService(opts)
	store, err := design.RestoreStore(state.Design, s.storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("restore design: %w", err)
	}
	s.store = store
	s.meta = state.Meta
	s.meta.SiteType = store.Layout().SiteType
	s.theme = state.Theme
	s.concept = append(color.ConceptPalette(nil), state.Concept...)
	s.locks = color.NewLocks(state.Locks...)
	return s, nil
}
