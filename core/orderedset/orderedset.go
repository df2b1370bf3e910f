// core/orderedset/orderedset.go
package orderedset

// Set is an insertion-ordered string set: O(1) membership plus a stable
// first-occurrence order. Every pipeline stage dedups through one of these so
// output order is reproducible. The zero value is not usable; call New.
type Set struct {
	seen  map[string]struct{}
	order []string
}

func New() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// NewSized preallocates for roughly n members.
func NewSized(n int) *Set {
	return &Set{
		seen:  make(map[string]struct{}, n),
		order: make([]string, 0, n),
	}
}

// Add inserts v and reports whether it was newly added
// (false means v was already a member).
func (s *Set) Add(v string) bool {
	if _, dup := s.seen[v]; dup {
		return false
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

func (s *Set) Contains(v string) bool {
	_, ok := s.seen[v]
	return ok
}

func (s *Set) Len() int { return len(s.order) }

// Values returns the members in first-insertion order. The slice is owned by
// the set; callers must not append to or mutate it.
func (s *Set) Values() []string { return s.order }
