// Package identity defines the rules set-relationship adapters use to decide
// whether two elements are the same.
//
// A Strategy hands out fresh membership sets. Every traversal asks for its own
// set, so nothing is shared between independent iterations.
//
// Strategies differ in cost:
//
//   - [Hashed], [Projected], [Reference] and [Digest] keep a hash map and
//     answer membership in O(1) on average.
//   - [Pairwise] keeps a plain list and compares linearly, O(k) per check.
//
// Every function handed to a strategy must be pure.
package identity

// Set is a membership cache built incrementally during one traversal.
type Set[T any] interface {
	// Add records v and reports whether it was not present before.
	Add(v T) bool
	// Contains reports whether an element with the same identity as v was added.
	Contains(v T) bool
	Len() int
}

// Strategy decides element identity.
type Strategy[T any] interface {
	// NewSet returns an empty set that is not shared with any other caller.
	NewSet() Set[T]
	// Equal reports whether a and b have the same identity.
	Equal(a, b T) bool
}

type keySet[T any, K comparable] struct {
	key  func(T) K
	seen map[K]struct{}
}

func (s *keySet[T, K]) Add(v T) bool {
	k := s.key(v)
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	return true
}

func (s *keySet[T, K]) Contains(v T) bool {
	_, ok := s.seen[s.key(v)]
	return ok
}

func (s *keySet[T, K]) Len() int {
	return len(s.seen)
}
