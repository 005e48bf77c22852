package iterators

type dropIterator[T any] struct {
	src      Iterator[T]
	until    func(index int, v T) bool
	index    int
	dropping bool
}

func (it *dropIterator[T]) Next() (value T, ok bool) {
	for {
		value, ok = it.src.Next()
		if !ok || !it.dropping {
			return value, ok
		}
		if it.until(it.index, value) {
			it.dropping = false
			return value, true
		}
		it.index++
	}
}

func (it *dropIterator[T]) Stop() {
	Stop(it.src)
}

// DropUntil skips elements until predicate first holds and yields that element
// and everything after it. If predicate never holds the result is empty.
func DropUntil[T any](src Iterator[T], predicate func(T) bool) Iterator[T] {
	return &dropIterator[T]{
		src:      src,
		until:    func(_ int, v T) bool { return predicate(v) },
		dropping: true,
	}
}

// DropUntilIndex is DropUntil with a predicate over the 0-based element index.
func DropUntilIndex[T any](src Iterator[T], predicate func(int) bool) Iterator[T] {
	return &dropIterator[T]{
		src:      src,
		until:    func(i int, _ T) bool { return predicate(i) },
		dropping: true,
	}
}

// DropFirst skips the first n elements.
func DropFirst[T any](src Iterator[T], n int) Iterator[T] {
	return DropUntilIndex(src, func(i int) bool { return i >= n })
}

type prefixIterator[T any] struct {
	src   Iterator[T]
	until func(v T) bool
	// atIndex is checked before pulling, so index-bounded prefixes never
	// consume the element that ends them.
	atIndex func(index int) bool
	index   int
	done    bool
}

func (it *prefixIterator[T]) Next() (value T, ok bool) {
	if it.done {
		return value, false
	}
	if it.atIndex != nil && it.atIndex(it.index) {
		it.done = true
		return value, false
	}
	v, ok := it.src.Next()
	if !ok || (it.until != nil && it.until(v)) {
		it.done = true
		return value, false
	}
	it.index++
	return v, true
}

func (it *prefixIterator[T]) Stop() {
	Stop(it.src)
}

// PrefixUntil yields elements until predicate first holds. The triggering
// element is not yielded. If predicate never holds every element is yielded.
func PrefixUntil[T any](src Iterator[T], predicate func(T) bool) Iterator[T] {
	return &prefixIterator[T]{src: src, until: predicate}
}

// PrefixUntilIndex is PrefixUntil with a predicate over the 0-based element index.
func PrefixUntilIndex[T any](src Iterator[T], predicate func(int) bool) Iterator[T] {
	return &prefixIterator[T]{src: src, atIndex: predicate}
}

// Cap yields at most n elements.
func Cap[T any](src Iterator[T], n int) Iterator[T] {
	return PrefixUntilIndex(src, func(i int) bool { return i >= n })
}
