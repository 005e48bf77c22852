package seqs

import (
	"iter"

	"lazyseq/identity"
	"lazyseq/iterators"
)

// Sequence is a restartable lazy sequence. The zero value is empty.
type Sequence[T any] struct {
	factory func() iterators.Iterator[T]
}

// New wraps an iterator factory. factory must return a fresh iterator on every call.
func New[T any](factory func() iterators.Iterator[T]) Sequence[T] {
	return Sequence[T]{factory: factory}
}

// Iterator starts a new traversal. It implements iterators.Iterable.
func (s Sequence[T]) Iterator() iterators.Iterator[T] {
	if s.factory == nil {
		return iterators.Empty[T]()
	}
	return s.factory()
}

// All returns an iter.Seq that starts a new traversal each time it is ranged over.
func (s Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		iterators.Seq(s.Iterator())(yield)
	}
}

// Collect runs one traversal and returns its elements.
func (s Sequence[T]) Collect() []T {
	return iterators.Collect(s.Iterator())
}

// then derives a sequence that wraps each fresh traversal of s.
func (s Sequence[T]) then(stage func(iterators.Iterator[T]) iterators.Iterator[T]) Sequence[T] {
	return New(func() iterators.Iterator[T] {
		return stage(s.Iterator())
	})
}

func (s Sequence[T]) Filter(predicate func(T) bool) Sequence[T] {
	return s.then(func(it iterators.Iterator[T]) iterators.Iterator[T] {
		return iterators.Filter(it, predicate)
	})
}

// Combine appends other, then more, after s.
func (s Sequence[T]) Combine(other Sequence[T], more ...Sequence[T]) Sequence[T] {
	return New(func() iterators.Iterator[T] {
		rest := make([]iterators.Iterator[T], len(more))
		for i, m := range more {
			rest[i] = iterators.Defer(m.Iterator)
		}
		return iterators.Combine(s.Iterator(), iterators.Defer(other.Iterator), rest...)
	})
}

// Interpose inserts filler after every every-th element.
// It returns iterators.ErrInvalidInterval if every is not positive.
func (s Sequence[T]) Interpose(every int, filler ...T) (Sequence[T], error) {
	return s.InterposeFrom(every, FromSlice(filler))
}

// InterposeFrom inserts a fresh traversal of filler after every every-th element.
func (s Sequence[T]) InterposeFrom(every int, filler Sequence[T]) (Sequence[T], error) {
	stage, err := iterators.Interposer[T](every, filler)
	if err != nil {
		return Sequence[T]{}, err
	}
	return s.then(stage), nil
}

func (s Sequence[T]) DropFirst(n int) Sequence[T] {
	return s.then(func(it iterators.Iterator[T]) iterators.Iterator[T] {
		return iterators.DropFirst(it, n)
	})
}

func (s Sequence[T]) DropUntil(predicate func(T) bool) Sequence[T] {
	return s.then(func(it iterators.Iterator[T]) iterators.Iterator[T] {
		return iterators.DropUntil(it, predicate)
	})
}

func (s Sequence[T]) DropUntilIndex(predicate func(int) bool) Sequence[T] {
	return s.then(func(it iterators.Iterator[T]) iterators.Iterator[T] {
		return iterators.DropUntilIndex(it, predicate)
	})
}

// Cap keeps at most n elements.
func (s Sequence[T]) Cap(n int) Sequence[T] {
	return s.then(func(it iterators.Iterator[T]) iterators.Iterator[T] {
		return iterators.Cap(it, n)
	})
}

func (s Sequence[T]) PrefixUntil(predicate func(T) bool) Sequence[T] {
	return s.then(func(it iterators.Iterator[T]) iterators.Iterator[T] {
		return iterators.PrefixUntil(it, predicate)
	})
}

func (s Sequence[T]) PrefixUntilIndex(predicate func(int) bool) Sequence[T] {
	return s.then(func(it iterators.Iterator[T]) iterators.Iterator[T] {
		return iterators.PrefixUntilIndex(it, predicate)
	})
}

// Sort orders elements by less, keeping equal elements in input order.
// See iterators.Sort for the cost of each mode.
func (s Sequence[T]) Sort(less func(a, b T) bool, opts ...iterators.SortOption) Sequence[T] {
	return s.then(func(it iterators.Iterator[T]) iterators.Iterator[T] {
		return iterators.Sort(it, less, opts...)
	})
}

func (s Sequence[T]) SortFunc(compare func(a, b T) int, opts ...iterators.SortOption) Sequence[T] {
	return s.then(func(it iterators.Iterator[T]) iterators.Iterator[T] {
		return iterators.SortFunc(it, compare, opts...)
	})
}

func (s Sequence[T]) Unique(strategy identity.Strategy[T]) Sequence[T] {
	return s.then(func(it iterators.Iterator[T]) iterators.Iterator[T] {
		return iterators.Unique(it, strategy)
	})
}

// Subtract keeps the elements whose identity does not occur in other.
func (s Sequence[T]) Subtract(other Sequence[T], strategy identity.Strategy[T]) Sequence[T] {
	return s.then(func(it iterators.Iterator[T]) iterators.Iterator[T] {
		return iterators.Subtract(it, other.Iterator(), strategy)
	})
}

// Intersect keeps the elements whose identity occurs in other.
func (s Sequence[T]) Intersect(other Sequence[T], strategy identity.Strategy[T]) Sequence[T] {
	return s.then(func(it iterators.Iterator[T]) iterators.Iterator[T] {
		return iterators.Intersect(it, other.Iterator(), strategy)
	})
}

// SymmetricDifference yields s minus other followed by other minus s.
func (s Sequence[T]) SymmetricDifference(other Sequence[T], strategy identity.Strategy[T]) Sequence[T] {
	return New(func() iterators.Iterator[T] {
		return iterators.SymmetricDifference[T](s, other, strategy)
	})
}
