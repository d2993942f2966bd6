package design

import (
	"errors"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
)

// Store owns the live design document together with the selection and the
// undo/redo history. Every mutating operation replaces the current document
// with a modified deep copy and pushes the previous value onto the undo
// stack, so snapshots are never aliased by later edits.
//
// A Store is not safe for concurrent use; callers serialise access.
type Store struct {
	doc      Document
	selected string

	past   *boundedStack
	future *boundedStack

	layouts layout.Generator
	catalog Catalog
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithHistoryDepth caps the undo and redo stacks at depth entries each.
func WithHistoryDepth(depth int) Option {
	return func(s *Store) {
		s.past = newBoundedStack(depth)
		s.future = newBoundedStack(depth)
	}
}

// WithLayoutGenerator overrides the layout generator.
func WithLayoutGenerator(g layout.Generator) Option {
	return func(s *Store) {
		s.layouts = g
	}
}

// WithCatalog overrides the parts catalog.
func WithCatalog(c Catalog) Option {
	return func(s *Store) {
		s.catalog = c
	}
}

// WithIDGenerator overrides how part identifiers are minted.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

func newStore(opts []Option) *Store {
	s := &Store{
		past:    newBoundedStack(DefaultHistoryDepth),
		future:  newBoundedStack(DefaultHistoryDepth),
		catalog: DefaultCatalog(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStore creates a store holding a fresh layout for siteType.
func NewStore(siteType layout.SiteType, opts ...Option) *Store {
	s := newStore(opts)
	s.doc = Document{
		Layout: s.layouts.Generate(siteType),
		Parts:  map[string]Part{},
	}
	return s
}

// State is a serialisable copy of everything a Store holds.
type State struct {
	Document       Document   `yaml:"document" json:"document"`
	SelectedPartID string     `yaml:"selected_part_id,omitempty" json:"selectedPartId,omitempty"`
	Past           []Document `yaml:"past,omitempty" json:"past,omitempty"`
	Future         []Document `yaml:"future,omitempty" json:"future,omitempty"`
}

// ValidateHistory checks every undo and redo entry against the placement
// invariants, so a restored store can never undo into a broken document.
func (st State) ValidateHistory() error {
	if err := validateStack("past", st.Past); err != nil {
		return err
	}
	return validateStack("future", st.Future)
}

func validateStack(stack string, docs []Document) error {
	for i, d := range docs {
		err := d.Validate()
		if err == nil {
			continue
		}
		var domainErr *DomainError
		if errors.As(err, &domainErr) {
			return domainErr.WithContext(map[string]interface{}{"history": stack, "index": i})
		}
		return err
	}
	return nil
}

// RestoreStore rebuilds a store from a saved State. The document and every
// history entry must satisfy the placement invariants; history entries beyond
// the configured depth are dropped oldest first.
func RestoreStore(state State, opts ...Option) (*Store, error) {
	if err := state.Document.Validate(); err != nil {
		return nil, err
	}
	if err := state.ValidateHistory(); err != nil {
		return nil, err
	}
	s := newStore(opts)
	s.doc = state.Document.Clone()
	if s.doc.Parts == nil {
		s.doc.Parts = map[string]Part{}
	}
	if _, ok := s.doc.Parts[state.SelectedPartID]; ok {
		s.selected = state.SelectedPartID
	}
	for _, d := range state.Past {
		s.past.push(d.Clone())
	}
	for _, d := range state.Future {
		s.future.push(d.Clone())
	}
	return s, nil
}

// State returns a deep copy of the store contents.
func (s *Store) State() State {
	return State{
		Document:       s.doc.Clone(),
		SelectedPartID: s.selected,
		Past:           s.past.snapshot(),
		Future:         s.future.snapshot(),
	}
}

// Document returns a deep copy of the current document.
func (s *Store) Document() Document {
	return s.doc.Clone()
}

// Layout returns a deep copy of the current layout.
func (s *Store) Layout() layout.Layout {
	return s.doc.Layout.Clone()
}

// Part returns a copy of the part with id.
func (s *Store) Part(id string) (Part, bool) {
	p, ok := s.doc.Parts[id]
	if !ok {
		return Part{}, false
	}
	return p.Clone(), true
}

// Catalog returns the catalog parts are validated against.
func (s *Store) Catalog() Catalog {
	return s.catalog
}

// SelectedPartID returns the selected part id, or "" when nothing is selected.
func (s *Store) SelectedPartID() string {
	return s.selected
}

// Select marks id as selected. Selecting an unknown id clears the selection.
// Selection is not recorded in history.
func (s *Store) Select(id string) bool {
	if _, ok := s.doc.Parts[id]; !ok {
		s.selected = ""
		return false
	}
	s.selected = id
	return true
}

// CanUndo reports whether Undo would change the document.
func (s *Store) CanUndo() bool { return s.past.len() > 0 }

// CanRedo reports whether Redo would change the document.
func (s *Store) CanRedo() bool { return s.future.len() > 0 }

// HistoryDepth returns the sizes of the undo and redo stacks.
func (s *Store) HistoryDepth() (past, future int) {
	return s.past.len(), s.future.len()
}

// SetSiteType replaces the layout with a fresh one for siteType and drops all
// parts, the selection and both history stacks. It cannot be undone.
func (s *Store) SetSiteType(siteType layout.SiteType) {
	s.doc = Document{
		Layout: s.layouts.Generate(siteType),
		Parts:  map[string]Part{},
	}
	s.selected = ""
	s.past.clear()
	s.future.clear()
}

// AddPart inserts part at the end of its area. Parts with an empty id are
// assigned one. The call fails without touching state when the type is not in
// the catalog, the area is not in the layout, or the id is already taken.
func (s *Store) AddPart(part Part) (Part, error) {
	if !s.catalog.Has(part.Type) {
		return Part{}, newUnknownPartTypeError(part.Type)
	}
	if !s.doc.Layout.HasArea(part.AreaID) {
		return Part{}, newAreaNotFoundError(string(part.AreaID))
	}
	if part.ID == "" {
		part.ID = s.newID()
	}
	if _, exists := s.doc.Parts[part.ID]; exists {
		return Part{}, newDuplicatePartError(part.ID)
	}

	part = part.Clone()
	s.commit(func(next *Document) {
		next.Parts[part.ID] = part
		idx := next.Layout.AreaIndex(part.AreaID)
		next.Layout.Areas[idx].Components = append(next.Layout.Areas[idx].Components, part.ID)
	})
	return part.Clone(), nil
}

// RemovePart deletes the part with id. Unknown ids are ignored.
func (s *Store) RemovePart(id string) bool {
	if _, ok := s.doc.Parts[id]; !ok {
		return false
	}
	s.commit(func(next *Document) {
		delete(next.Parts, id)
		stripPart(next, id)
	})
	if s.selected == id {
		s.selected = ""
	}
	return true
}

// UpdatePart shallow-merges patch into the part with id. Unknown ids are
// ignored.
func (s *Store) UpdatePart(id string, patch Patch) bool {
	if _, ok := s.doc.Parts[id]; !ok {
		return false
	}
	s.commit(func(next *Document) {
		next.Parts[id] = patch.apply(next.Parts[id])
	})
	return true
}

// MovePart places the part with id into area at index. Indexes past the end
// append; negative indexes insert at the front. Unknown parts or areas are
// ignored.
func (s *Store) MovePart(id string, area layout.AreaID, index int) bool {
	if _, ok := s.doc.Parts[id]; !ok {
		return false
	}
	if !s.doc.Layout.HasArea(area) {
		return false
	}
	s.commit(func(next *Document) {
		stripPart(next, id)
		idx := next.Layout.AreaIndex(area)
		list := next.Layout.Areas[idx].Components
		at := lo.Clamp(index, 0, len(list))
		next.Layout.Areas[idx].Components = slices.Insert(list, at, id)

		part := next.Parts[id]
		part.AreaID = area
		next.Parts[id] = part
	})
	return true
}

// Drop resolves a drag-end onto overID and moves activeID there. Drops onto
// the part itself or onto unknown targets are ignored without touching history.
func (s *Store) Drop(activeID, overID string) bool {
	placement, ok := ResolvePlacement(s.doc, activeID, overID)
	if !ok {
		return false
	}
	return s.MovePart(activeID, placement.AreaID, placement.Index)
}

// Undo restores the previous document. It is a no-op when there is nothing
// to undo.
func (s *Store) Undo() bool {
	prev, ok := s.past.pop()
	if !ok {
		return false
	}
	s.future.push(s.doc)
	s.doc = prev
	s.reconcileSelection()
	return true
}

// Redo reapplies the most recently undone document. It is a no-op when there
// is nothing to redo.
func (s *Store) Redo() bool {
	next, ok := s.future.pop()
	if !ok {
		return false
	}
	s.past.push(s.doc)
	s.doc = next
	s.reconcileSelection()
	return true
}

func (s *Store) commit(mutate func(next *Document)) {
	next := s.doc.Clone()
	mutate(&next)
	s.past.push(s.doc)
	s.future.clear()
	s.doc = next
}

func (s *Store) reconcileSelection() {
	if _, ok := s.doc.Parts[s.selected]; !ok {
		s.selected = ""
	}
}

func stripPart(doc *Document, id string) {
	for i := range doc.Layout.Areas {
		if lo.Contains(doc.Layout.Areas[i].Components, id) {
			doc.Layout.Areas[i].Components = lo.Without(doc.Layout.Areas[i].Components, id)
		}
	}
}
