package sorter

import "github.com/ma-chengcheng/LaTeX-Workshop/internal/bib"

// DuplicateSet collects real entries that tied on the full sort key chain.
// Membership is by entry identity (pointer), not by value, and Add is
// idempotent: the comparator may see the same pair any number of times in
// either argument order during one sort pass.
//
// Lifetime is one sort pass; build a fresh Sorter for the next one.
type DuplicateSet struct {
	seen  map[*bib.RealEntry]struct{}
	order []*bib.RealEntry
}

// NewDuplicateSet creates an empty set.
func NewDuplicateSet() *DuplicateSet {
	return &DuplicateSet{seen: make(map[*bib.RealEntry]struct{})}
}

// Add records an entry. Adding an entry already present is a no-op.
func (s *DuplicateSet) Add(e *bib.RealEntry) {
	if _, ok := s.seen[e]; ok {
		return
	}
	s.seen[e] = struct{}{}
	s.order = append(s.order, e)
}

// Has reports whether the entry was recorded.
func (s *DuplicateSet) Has(e *bib.RealEntry) bool {
	_, ok := s.seen[e]
	return ok
}

// Len returns the number of recorded entries.
func (s *DuplicateSet) Len() int {
	return len(s.order)
}

// Entries returns the recorded entries in insertion order. The returned
// slice is a copy.
func (s *DuplicateSet) Entries() []*bib.RealEntry {
	out := make([]*bib.RealEntry, len(s.order))
	copy(out, s.order)
	return out
}
