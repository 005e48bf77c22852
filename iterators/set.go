package iterators

import "lazyseq/identity"

type uniqueIterator[T any] struct {
	src  Iterator[T]
	seen identity.Set[T]
}

func (it *uniqueIterator[T]) Next() (value T, ok bool) {
	for {
		value, ok = it.src.Next()
		if !ok || it.seen.Add(value) {
			return value, ok
		}
	}
}

func (it *uniqueIterator[T]) Stop() {
	Stop(it.src)
}

// Unique yields each element the first time its identity is seen.
func Unique[T any](src Iterator[T], strategy identity.Strategy[T]) Iterator[T] {
	return &uniqueIterator[T]{src: src, seen: strategy.NewSet()}
}

// membership answers "does other contain v" while pulling other no further
// than needed. Every pulled element is cached, so other is read at most once.
type membership[T any] struct {
	other   Iterator[T]
	cache   identity.Set[T]
	equal   func(a, b T) bool
	drained bool
}

func newMembership[T any](other Iterator[T], strategy identity.Strategy[T]) *membership[T] {
	return &membership[T]{
		other: other,
		cache: strategy.NewSet(),
		equal: strategy.Equal,
	}
}

func (m *membership[T]) contains(v T) bool {
	if m.cache.Contains(v) {
		return true
	}
	for !m.drained {
		o, ok := m.other.Next()
		if !ok {
			m.drained = true
			break
		}
		m.cache.Add(o)
		if m.equal(o, v) {
			return true
		}
	}
	return false
}

type relationIterator[T any] struct {
	src    Iterator[T]
	other  *membership[T]
	wantIn bool
}

func (it *relationIterator[T]) Next() (value T, ok bool) {
	for {
		value, ok = it.src.Next()
		if !ok || it.other.contains(value) == it.wantIn {
			return value, ok
		}
	}
}

func (it *relationIterator[T]) Stop() {
	Stop(it.src)
	Stop(it.other.other)
}

// Subtract yields the elements of a whose identity does not occur in b.
// b is pulled lazily, only as far as needed to answer each check.
// Duplicates within a are kept.
//
// a and b must be independent iterators; passing the same live iterator twice
// gives undefined results.
func Subtract[T any](a, b Iterator[T], strategy identity.Strategy[T]) Iterator[T] {
	return &relationIterator[T]{src: a, other: newMembership(b, strategy)}
}

// Intersect yields the elements of a whose identity occurs in b.
// It pulls b the same way Subtract does.
func Intersect[T any](a, b Iterator[T], strategy identity.Strategy[T]) Iterator[T] {
	return &relationIterator[T]{src: a, other: newMembership(b, strategy), wantIn: true}
}

// SymmetricDifference yields Subtract(a, b) followed by Subtract(b, a). Each
// half traverses both sources afresh with its own cache, and the halves are
// not deduplicated against each other.
func SymmetricDifference[T any](a, b Iterable[T], strategy identity.Strategy[T]) Iterator[T] {
	return Combine(
		Defer(func() Iterator[T] { return Subtract(a.Iterator(), b.Iterator(), strategy) }),
		Defer(func() Iterator[T] { return Subtract(b.Iterator(), a.Iterator(), strategy) }),
	)
}
