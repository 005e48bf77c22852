package seqs

import "lazyseq/iterators"

func First[T any](s Sequence[T]) (T, bool) {
	it := s.Iterator()
	defer iterators.Stop(it)
	return it.Next()
}

func Last[T any](s Sequence[T]) (T, bool) {
	var last T
	found := false
	for v := range s.All() {
		last = v
		found = true
	}
	return last, found
}

func Any[T any](s Sequence[T], predicate func(T) bool) bool {
	for v := range s.All() {
		if predicate(v) {
			return true
		}
	}
	return false
}

func Every[T any](s Sequence[T], predicate func(T) bool) bool {
	for v := range s.All() {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Reduce aggregates the elements of s using the reducer function, starting from the initial value.
func Reduce[T, R any](s Sequence[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range s.All() {
		acc = reducer(acc, v)
	}
	return acc
}

// Count runs a traversal and returns the number of elements.
func (s Sequence[T]) Count() int {
	count := 0
	for range s.All() {
		count++
	}
	return count
}
