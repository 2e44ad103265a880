package canvas

// Segment is a straight stroke between two world-space points.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Store is the append-only, ordered list of drawn segments. Later segments
// paint over earlier ones.
type Store struct {
	segs []Segment
}

// Append adds seg to the end of the paint order.
func (s *Store) Append(seg Segment) {
	s.segs = append(s.segs, seg)
}

// All returns the segments in paint order. The result shares memory with the
// store and must not be modified; appending to it never touches the store.
func (s *Store) All() []Segment {
	return s.segs[:len(s.segs):len(s.segs)]
}

// Len is the number of stored segments.
func (s *Store) Len() int { return len(s.segs) }

// Clear drops every segment.
func (s *Store) Clear() {
	clear(s.segs)
	s.segs = s.segs[:0]
}
