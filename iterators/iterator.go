package iterators

import "iter"

// Iterator is a single-pass, pull-based source of elements.
// Next returns the next element, or ok == false once the iterator is exhausted.
// An exhausted iterator keeps returning ok == false.
type Iterator[T any] interface {
	Next() (value T, ok bool)
}

// Stopper is implemented by iterators that hold resources until stopped.
type Stopper interface {
	Stop()
}

// Stop releases it if it implements Stopper. Stopping twice is harmless.
func Stop(it any) {
	if s, ok := it.(Stopper); ok {
		s.Stop()
	}
}

// Func adapts a plain function to Iterator.
type Func[T any] func() (T, bool)

func (f Func[T]) Next() (T, bool) {
	return f()
}

// Iterable is anything that can start a fresh traversal of itself.
type Iterable[T any] interface {
	Iterator() Iterator[T]
}

// IterableFunc adapts an iterator factory to Iterable.
type IterableFunc[T any] func() Iterator[T]

func (f IterableFunc[T]) Iterator() Iterator[T] {
	return f()
}

type sliceIterator[T any] struct {
	data []T
	pos  int
}

func (it *sliceIterator[T]) Next() (value T, ok bool) {
	if it.pos >= len(it.data) {
		return value, false
	}
	value = it.data[it.pos]
	it.pos++
	return value, true
}

// FromSlice iterates over data without copying it.
func FromSlice[T any](data []T) Iterator[T] {
	return &sliceIterator[T]{data: data}
}

// Empty returns an iterator that is already exhausted.
func Empty[T any]() Iterator[T] {
	return &sliceIterator[T]{}
}

type pullIterator[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *pullIterator[T]) Next() (T, bool) {
	return it.next()
}

func (it *pullIterator[T]) Stop() {
	it.stop()
}

// FromSeq converts a push-style sequence into an Iterator using iter.Pull.
// The returned iterator must be stopped unless it is drained to exhaustion.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return &pullIterator[T]{next: next, stop: stop}
}

type deferredIterator[T any] struct {
	factory func() Iterator[T]
	it      Iterator[T]
}

func (d *deferredIterator[T]) Next() (T, bool) {
	if d.it == nil {
		d.it = d.factory()
		d.factory = nil
	}
	return d.it.Next()
}

func (d *deferredIterator[T]) Stop() {
	if d.it != nil {
		Stop(d.it)
	}
}

// Defer postpones calling factory until the first Next.
func Defer[T any](factory func() Iterator[T]) Iterator[T] {
	return &deferredIterator[T]{factory: factory}
}

// Collect drains it into a slice and stops it.
func Collect[T any](it Iterator[T]) []T {
	defer Stop(it)
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// Seq exposes it as an iter.Seq for use with range loops.
// The result is single pass like it; it is stopped when the loop ends.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer Stop(it)
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
