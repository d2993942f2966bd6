package design

import (
	"sort"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
)

// Part is a placed, typed content block.
type Part struct {
	ID     string         `yaml:"id" json:"id"`
	Type   string         `yaml:"type" json:"type"`
	Label  string         `yaml:"label" json:"label"`
	AreaID layout.AreaID  `yaml:"area_id" json:"areaId"`
	Props  map[string]any `yaml:"props,omitempty" json:"props,omitempty"`
}

// Clone returns a deep copy of the part including nested props.
func (p Part) Clone() Part {
	p.Props = cloneProps(p.Props)
	return p
}

// Patch is a partial update to a part. Nil fields are left untouched; Props
// replaces the whole property bag, so callers must carry over nested values
// they want to keep.
type Patch struct {
	Label *string        `yaml:"label,omitempty" json:"label,omitempty"`
	Props map[string]any `yaml:"props,omitempty" json:"props,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Label == nil && p.Props == nil
}

func (p Patch) apply(part Part) Part {
	if p.Label != nil {
		part.Label = *p.Label
	}
	if p.Props != nil {
		part.Props = cloneProps(p.Props)
	}
	return part
}

// Document is the layout plus the parts placed into it.
type Document struct {
	Layout layout.Layout   `yaml:"layout" json:"layout"`
	Parts  map[string]Part `yaml:"parts" json:"parts"`
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	parts := make(map[string]Part, len(d.Parts))
	for id, p := range d.Parts {
		parts[id] = p.Clone()
	}
	return Document{
		Layout: d.Layout.Clone(),
		Parts:  parts,
	}
}

// OrderedParts returns parts in area order, then by position within each area.
// Parts not referenced by any area are appended sorted by id.
func (d Document) OrderedParts() []Part {
	out := make([]Part, 0, len(d.Parts))
	seen := make(map[string]bool, len(d.Parts))
	for _, area := range d.Layout.Areas {
		for _, id := range area.Components {
			if p, ok := d.Parts[id]; ok && !seen[id] {
				out = append(out, p.Clone())
				seen[id] = true
			}
		}
	}
	var orphans []string
	for id := range d.Parts {
		if !seen[id] {
			orphans = append(orphans, id)
		}
	}
	sort.Strings(orphans)
	for _, id := range orphans {
		out = append(out, d.Parts[id].Clone())
	}
	return out
}

// Validate checks the placement invariants: every listed id refers to a part,
// every part appears in exactly one area, and that area matches Part.AreaID.
func (d Document) Validate() error {
	owner := make(map[string]layout.AreaID, len(d.Parts))
	for _, area := range d.Layout.Areas {
		for _, id := range area.Components {
			if _, ok := d.Parts[id]; !ok {
				return newDomainError(ErrCodeState, "area references unknown part", map[string]interface{}{
					"area_id": string(area.ID),
					"part_id": id,
				})
			}
			if prev, dup := owner[id]; dup {
				return newDomainError(ErrCodeState, "part listed in more than one area", map[string]interface{}{
					"part_id": id,
					"areas":   []string{string(prev), string(area.ID)},
				})
			}
			owner[id] = area.ID
		}
	}
	for id, p := range d.Parts {
		area, ok := owner[id]
		if !ok {
			return newDomainError(ErrCodeState, "part is not placed in any area", map[string]interface{}{"part_id": id})
		}
		if area != p.AreaID {
			return newDomainError(ErrCodeState, "part area does not match its placement", map[string]interface{}{
				"part_id":  id,
				"declared": string(p.AreaID),
				"actual":   string(area),
			})
		}
	}
	return nil
}

func cloneProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return cloneProps(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), typed...)
	default:
		return v
	}
}
