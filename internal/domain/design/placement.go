package design

import (
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
)

// Placement is the destination of a drag: an area and an insertion index.
type Placement struct {
	AreaID layout.AreaID
	Index  int
}

// ResolvePlacement computes where activeID lands when dropped onto overID.
// Dropping onto an area appends to it; dropping onto a part inserts before
// that part. It returns false when the drop should be ignored: the part was
// dropped onto itself, or either id is unknown.
func ResolvePlacement(doc Document, activeID, overID string) (Placement, bool) {
	if activeID == "" || overID == "" || activeID == overID {
		return Placement{}, false
	}
	if _, ok := doc.Parts[activeID]; !ok {
		return Placement{}, false
	}

	if idx := doc.Layout.AreaIndex(layout.AreaID(overID)); idx >= 0 {
		return Placement{
			AreaID: layout.AreaID(overID),
			Index:  len(doc.Layout.Areas[idx].Components),
		}, true
	}

	if _, ok := doc.Parts[overID]; ok {
		area, index, found := doc.Layout.Locate(overID)
		if !found {
			return Placement{}, false
		}
		return Placement{AreaID: area, Index: index}, true
	}

	return Placement{}, false
}
