package domain

// CategorySet is an ordered collection of unique category labels.
// Labels keep their first-seen order. The zero value is ready to use.
type CategorySet struct {
	labels []string
	seen   map[string]struct{}
}

// Add inserts a label if it is not already present.
func (s *CategorySet) Add(label string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[label]; ok {
		return
	}
	s.seen[label] = struct{}{}
	s.labels = append(s.labels, label)
}

// Len returns the number of unique labels.
func (s *CategorySet) Len() int {
	return len(s.labels)
}

// Labels returns a copy of the labels in insertion order. It never returns nil.
func (s *CategorySet) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}
