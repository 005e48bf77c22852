package identity

import "lazyseq/lists"

// PairwiseStrategy compares elements with a caller supplied equality predicate.
type PairwiseStrategy[T any] struct {
	equal func(a, b T) bool
}

// Pairwise needs no hashing at all. Its sets remember every added element in
// a plain list and scan it on each check, so k checks cost O(k²) in total.
func Pairwise[T any](equal func(a, b T) bool) PairwiseStrategy[T] {
	if equal == nil {
		panic("lazyseq.identity: Pairwise equal function cannot be nil")
	}
	return PairwiseStrategy[T]{equal: equal}
}

func (s PairwiseStrategy[T]) NewSet() Set[T] {
	return &listSet[T]{
		equal: s.equal,
		seen:  lists.NewArrayList[T](0),
	}
}

func (s PairwiseStrategy[T]) Equal(a, b T) bool {
	return s.equal(a, b)
}

type listSet[T any] struct {
	equal func(a, b T) bool
	seen  *lists.ArrayList[T]
}

func (s *listSet[T]) Add(v T) bool {
	if s.Contains(v) {
		return false
	}
	s.seen.Add(v)
	return true
}

func (s *listSet[T]) Contains(v T) bool {
	return s.seen.ContainsFunc(func(x T) bool {
		return s.equal(x, v)
	})
}

func (s *listSet[T]) Len() int {
	return s.seen.Size()
}
