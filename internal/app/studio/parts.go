package studio

import (
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/design"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridsmith/internal/logger"
	"github.com/alexisbeaulieu97/gridsmith/internal/ports"
)

// GenerateLayout replaces the layout with a fresh one for siteType. Parts,
// selection and history are discarded.
func (s *Service) GenerateLayout(siteType layout.SiteType) layout.Layout {
	s.mu.Lock()
	s.store.SetSiteType(siteType)
	l := s.store.Layout()
	s.meta.SiteType = l.SiteType
	s.touch()
	s.mu.Unlock()

	s.log.Debug("layout generated", logger.Fields{"op": "generate_layout", "site_type": string(l.SiteType), "layout_id": l.ID})
	s.emit(ports.EventLayoutReset, map[string]any{"site_type": string(l.SiteType), "layout_id": l.ID})
	return l
}

// AddPart places part at the end of its area.
func (s *Service) AddPart(part design.Part) (design.Part, error) {
	s.mu.Lock()
	added, err := s.addPartLocked(part)
	s.mu.Unlock()

	return s.reportAdd(part.Type, part.AreaID, added, err)
}

// PartEdit adjusts a catalog part before it is placed.
type PartEdit func(*design.Part)

// PartLabel replaces the catalog label.
func PartLabel(label string) PartEdit {
	return func(p *design.Part) { p.Label = label }
}

// PartProps replaces the catalog default props.
func PartProps(props map[string]any) PartEdit {
	return func(p *design.Part) { p.Props = props }
}

func partID(id string) PartEdit {
	return func(p *design.Part) { p.ID = id }
}

// AddCatalogPart builds a part of partType with catalog defaults, applies
// edits and places it in area. The whole call is one history step. Parts left
// without an id get one from the store.
func (s *Service) AddCatalogPart(partType string, area layout.AreaID, edits ...PartEdit) (design.Part, error) {
	s.mu.Lock()
	part, err := s.store.Catalog().NewPart("", partType, area)
	if err == nil {
		for _, edit := range edits {
			edit(&part)
		}
		part, err = s.addPartLocked(part)
	}
	s.mu.Unlock()

	return s.reportAdd(partType, area, part, err)
}

func (s *Service) addPartLocked(part design.Part) (design.Part, error) {
	added, err := s.store.AddPart(part)
	if err != nil {
		return design.Part{}, err
	}
	s.touch()
	return added, nil
}

func (s *Service) reportAdd(partType string, area layout.AreaID, added design.Part, err error) (design.Part, error) {
	if err != nil {
		s.log.Warn("add part rejected", logger.Fields{
			"op": "add_part", "type": partType, "area_id": string(area), "error": err.Error(),
		})
		return design.Part{}, err
	}
	s.log.Debug("part added", logger.Fields{"op": "add_part", "part_id": added.ID, "area_id": string(added.AreaID)})
	s.emit(ports.EventPartAdded, map[string]any{"part_id": added.ID, "type": added.Type, "area_id": string(added.AreaID)})
	return added, nil
}

// RemovePart deletes the part with id. Unknown ids are ignored.
func (s *Service) RemovePart(id string) bool {
	s.mu.Lock()
	ok := s.store.RemovePart(id)
	if ok {
		s.touch()
	}
	s.mu.Unlock()

	s.trace("remove_part", ok, logger.Fields{"part_id": id})
	if ok {
		s.emit(ports.EventPartRemoved, map[string]any{"part_id": id})
	}
	return ok
}

// UpdatePart merges patch into the part with id. Unknown ids are ignored.
func (s *Service) UpdatePart(id string, patch design.Patch) bool {
	s.mu.Lock()
	ok := s.store.UpdatePart(id, patch)
	if ok {
		s.touch()
	}
	s.mu.Unlock()

	s.trace("update_part", ok, logger.Fields{"part_id": id})
	if ok {
		s.emit(ports.EventPartUpdated, map[string]any{"part_id": id})
	}
	return ok
}

// MovePart places the part with id into area at index.
func (s *Service) MovePart(id string, area layout.AreaID, index int) bool {
	s.mu.Lock()
	ok := s.store.MovePart(id, area, index)
	if ok {
		s.touch()
	}
	s.mu.Unlock()

	s.trace("move_part", ok, logger.Fields{"part_id": id, "area_id": string(area), "index": index})
	if ok {
		s.emit(ports.EventPartMoved, map[string]any{"part_id": id, "area_id": string(area), "index": index})
	}
	return ok
}

// Drop moves activeID to the position described by overID, which may be an
// area id or the id of another part.
func (s *Service) Drop(activeID, overID string) bool {
	s.mu.Lock()
	placement, resolved := design.ResolvePlacement(s.store.Document(), activeID, overID)
	ok := resolved && s.store.Drop(activeID, overID)
	if ok {
		s.touch()
	}
	s.mu.Unlock()

	s.trace("drop", ok, logger.Fields{"part_id": activeID, "over_id": overID})
	if ok {
		s.emit(ports.EventPartMoved, map[string]any{
			"part_id": activeID, "area_id": string(placement.AreaID), "index": placement.Index,
		})
	}
	return ok
}

// Select marks the part with id as selected; an empty or unknown id clears
// the selection.
func (s *Service) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Select(id)
}

// Undo restores the previous document.
func (s *Service) Undo() bool {
	s.mu.Lock()
	ok := s.store.Undo()
	if ok {
		s.touch()
	}
	s.mu.Unlock()

	s.trace("undo", ok, nil)
	if ok {
		s.emit(ports.EventHistoryUndo, nil)
	}
	return ok
}

// Redo reapplies the last undone document.
func (s *Service) Redo() bool {
	s.mu.Lock()
	ok := s.store.Redo()
	if ok {
		s.touch()
	}
	s.mu.Unlock()

	s.trace("redo", ok, nil)
	if ok {
		s.emit(ports.EventHistoryRedo, nil)
	}
	return ok
}

func (s *Service) trace(op string, applied bool, fields logger.Fields) {
	merged := logger.Fields{"op": op, "applied": applied}
	for k, v := range fields {
		merged[k] = v
	}
	if applied {
		s.log.Debug("operation applied", merged)
		return
	}
	s.log.Debug("operation ignored", merged)
}
