package seqs

import (
	"iter"

	"lazyseq/iterators"
)

// Of returns a sequence over values.
func Of[T any](values ...T) Sequence[T] {
	return FromSlice(values)
}

// FromSlice returns a sequence over data. The slice is not copied, so later
// writes to it show up in later traversals.
func FromSlice[T any](data []T) Sequence[T] {
	return New(func() iterators.Iterator[T] {
		return iterators.FromSlice(data)
	})
}

// From returns a sequence that ranges over seq once per traversal.
func From[T any](seq iter.Seq[T]) Sequence[T] {
	return New(func() iterators.Iterator[T] {
		return iterators.FromSeq(seq)
	})
}

// FromIterable returns a sequence that starts a traversal of src each time.
func FromIterable[T any](src iterators.Iterable[T]) Sequence[T] {
	return New(src.Iterator)
}

func Empty[T any]() Sequence[T] {
	return Sequence[T]{}
}

// Range yields start, start+step, ... up to but excluding end.
// A zero step yields nothing.
func Range(start, end, step int) Sequence[int] {
	return New(func() iterators.Iterator[int] {
		i := start
		return iterators.Func[int](func() (int, bool) {
			if step == 0 || step > 0 && i >= end || step < 0 && i <= end {
				return 0, false
			}
			v := i
			i += step
			return v, true
		})
	})
}

// Repeat yields value count times.
func Repeat[T any](value T, count int) Sequence[T] {
	return New(func() iterators.Iterator[T] {
		n := 0
		return iterators.Func[T](func() (T, bool) {
			if n >= count {
				var zero T
				return zero, false
			}
			n++
			return value, true
		})
	})
}
