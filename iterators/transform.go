package iterators

type mapIterator[T, R any] struct {
	src       Iterator[T]
	transform func(T) (R, bool)
}

func (it *mapIterator[T, R]) Next() (result R, ok bool) {
	for {
		v, ok := it.src.Next()
		if !ok {
			return result, false
		}
		if r, keep := it.transform(v); keep {
			return r, true
		}
	}
}

func (it *mapIterator[T, R]) Stop() {
	Stop(it.src)
}

// Map applies transform to each element.
func Map[T, R any](src Iterator[T], transform func(T) R) Iterator[R] {
	return &mapIterator[T, R]{
		src: src,
		transform: func(v T) (R, bool) {
			return transform(v), true
		},
	}
}

// TryMap applies transform to each element and silently skips every element
// for which transform returns an error. Errors never reach the consumer;
// if transform fails for every element the result is empty.
func TryMap[T, R any](src Iterator[T], transform func(T) (R, error)) Iterator[R] {
	return &mapIterator[T, R]{
		src: src,
		transform: func(v T) (R, bool) {
			r, err := transform(v)
			return r, err == nil
		},
	}
}

// CompactMap applies transform and keeps only the results reported as present.
func CompactMap[T, R any](src Iterator[T], transform func(T) (R, bool)) Iterator[R] {
	return &mapIterator[T, R]{src: src, transform: transform}
}

// Unwrapper is a value that may or may not hold an inner value.
type Unwrapper[T any] interface {
	Unwrap() (T, bool)
}

// Compact unwraps each element and drops the empty ones.
//
//	iterators.Compact[int](FromSlice([]Optional[int]{Some(1), None[int](), Some(3)})) // 1 3
func Compact[R any, U Unwrapper[R]](src Iterator[U]) Iterator[R] {
	return CompactMap(src, func(u U) (R, bool) {
		return u.Unwrap()
	})
}

// Optional holds a value or nothing.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Unwrap() (T, bool) {
	return o.value, o.present
}

type filterIterator[T any] struct {
	src   Iterator[T]
	match func(T) bool
}

func (it *filterIterator[T]) Next() (value T, ok bool) {
	for {
		value, ok = it.src.Next()
		if !ok || it.match(value) {
			return value, ok
		}
	}
}

func (it *filterIterator[T]) Stop() {
	Stop(it.src)
}

// Filter yields only the elements that satisfy predicate.
func Filter[T any](src Iterator[T], predicate func(T) bool) Iterator[T] {
	return &filterIterator[T]{src: src, match: predicate}
}

type combineIterator[T any] struct {
	parts []Iterator[T]
	pos   int
}

func (it *combineIterator[T]) Next() (value T, ok bool) {
	for it.pos < len(it.parts) {
		if value, ok = it.parts[it.pos].Next(); ok {
			return value, true
		}
		it.pos++
	}
	return value, false
}

func (it *combineIterator[T]) Stop() {
	for _, p := range it.parts {
		Stop(p)
	}
}

// Combine yields every element of a, then every element of b, then the rest in order.
func Combine[T any](a, b Iterator[T], more ...Iterator[T]) Iterator[T] {
	parts := make([]Iterator[T], 0, 2+len(more))
	parts = append(parts, a, b)
	parts = append(parts, more...)
	return &combineIterator[T]{parts: parts}
}
