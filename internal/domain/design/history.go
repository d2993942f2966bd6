package design

// DefaultHistoryDepth caps each of the undo and redo stacks.
const DefaultHistoryDepth = 50

// boundedStack is a LIFO of document snapshots that evicts the oldest entry
// once it grows past limit.
type boundedStack struct {
	items []Document
	limit int
}

func newBoundedStack(limit int) *boundedStack {
	if limit <= 0 {
		limit = DefaultHistoryDepth
	}
	return &boundedStack{limit: limit}
}

func (s *boundedStack) push(doc Document) {
	s.items = append(s.items, doc)
	if over := len(s.items) - s.limit; over > 0 {
		s.items = append(s.items[:0:0], s.items[over:]...)
	}
}

func (s *boundedStack) pop() (Document, bool) {
	if len(s.items) == 0 {
		return Document{}, false
	}
	idx := len(s.items) - 1
	doc := s.items[idx]
	s.items[idx] = Document{}
	s.items = s.items[:idx]
	return doc, true
}

func (s *boundedStack) len() int {
	return len(s.items)
}

func (s *boundedStack) clear() {
	s.items = nil
}

// snapshot returns deep copies, oldest first.
func (s *boundedStack) snapshot() []Document {
	out := make([]Document, len(s.items))
	for i, doc := range s.items {
		out[i] = doc.Clone()
	}
	return out
}
