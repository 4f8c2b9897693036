// Package bloom provides an exact string set fronted by a Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Set records strings and answers membership exactly. The Bloom filter
// rejects most absent strings before the map is consulted, so a false
// positive costs one map lookup and never a wrong answer.
// A Set is not safe for concurrent use.
type Set struct {
	filter *bloom.BloomFilter
	exact  map[string]struct{}
}

// NewSet creates a Set sized for n expected strings with the given false
// positive rate for the filter. Growing past n raises that rate only.
func NewSet(n uint, fpRate float64) *Set {
	return &Set{
		filter: bloom.NewWithEstimates(n, fpRate),
		exact:  make(map[string]struct{}),
	}
}

// Add inserts v and reports whether it was absent.
func (s *Set) Add(v string) bool {
	if s.filter.TestAndAddString(v) {
		if _, ok := s.exact[v]; ok {
			return false
		}
	}
	s.exact[v] = struct{}{}
	return true
}

// Contains reports whether v was added.
func (s *Set) Contains(v string) bool {
	if !s.filter.TestString(v) {
		return false
	}
	_, ok := s.exact[v]
	return ok
}

// Len returns the number of distinct strings added.
func (s *Set) Len() int {
	return len(s.exact)
}
