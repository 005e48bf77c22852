package seqs

import (
	"lazyseq/identity"
	"lazyseq/iterators"
)

// Map applies transform to each element.
func Map[T, R any](s Sequence[T], transform func(T) R) Sequence[R] {
	return New(func() iterators.Iterator[R] {
		return iterators.Map(s.Iterator(), transform)
	})
}

// TryMap applies transform and drops every element for which it returns an error.
// The errors are discarded.
func TryMap[T, R any](s Sequence[T], transform func(T) (R, error)) Sequence[R] {
	return New(func() iterators.Iterator[R] {
		return iterators.TryMap(s.Iterator(), transform)
	})
}

// CompactMap applies transform and keeps only present results.
func CompactMap[T, R any](s Sequence[T], transform func(T) (R, bool)) Sequence[R] {
	return New(func() iterators.Iterator[R] {
		return iterators.CompactMap(s.Iterator(), transform)
	})
}

// Compact unwraps each element and drops the empty ones.
func Compact[R any, U iterators.Unwrapper[R]](s Sequence[U]) Sequence[R] {
	return New(func() iterators.Iterator[R] {
		return iterators.Compact[R](s.Iterator())
	})
}

// Distinct removes repeated elements, keeping first occurrences.
// It maintains a map of seen elements, so memory usage is proportional to the number of unique elements.
func Distinct[T comparable](s Sequence[T]) Sequence[T] {
	return s.Unique(identity.Hashed[T]())
}
