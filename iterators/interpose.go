package iterators

import "github.com/pkg/errors"

type interposeIterator[T any] struct {
	src     Iterator[T]
	every   int
	count   int
	filler  func() Iterator[T]
	pending Iterator[T]
}

func (it *interposeIterator[T]) Next() (value T, ok bool) {
	if it.pending != nil {
		if value, ok = it.pending.Next(); ok {
			return value, true
		}
		Stop(it.pending)
		it.pending = nil
	}
	value, ok = it.src.Next()
	if !ok {
		return value, false
	}
	it.count++
	if it.count == it.every {
		it.count = 0
		it.pending = it.filler()
	}
	return value, true
}

func (it *interposeIterator[T]) Stop() {
	if it.pending != nil {
		Stop(it.pending)
	}
	Stop(it.src)
}

// Interpose yields filler after every every-th element of src, including after
// the last one when the element count is a multiple of every. Nothing is
// inserted before the first element.
//
//	Interpose(FromSlice([]int{1, 2, 3, 4}), 2, 0) // 1 2 0 3 4 0
func Interpose[T any](src Iterator[T], every int, filler ...T) (Iterator[T], error) {
	return InterposeFrom(src, every, IterableFunc[T](func() Iterator[T] {
		return FromSlice(filler)
	}))
}

// InterposeFrom is Interpose with a filler sequence; a fresh traversal of filler
// is inserted at each position.
func InterposeFrom[T any](src Iterator[T], every int, filler Iterable[T]) (Iterator[T], error) {
	stage, err := Interposer(every, filler)
	if err != nil {
		return nil, err
	}
	return stage(src), nil
}

// Interposer validates every once and returns a stage that applies
// InterposeFrom to any number of sources.
func Interposer[T any](every int, filler Iterable[T]) (func(Iterator[T]) Iterator[T], error) {
	if every <= 0 {
		return nil, errors.Wrapf(ErrInvalidInterval, "interpose every %d elements", every)
	}
	return func(src Iterator[T]) Iterator[T] {
		return &interposeIterator[T]{
			src:    src,
			every:  every,
			filler: filler.Iterator,
		}
	}, nil
}
