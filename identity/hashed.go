package identity

// HashedStrategy compares elements with ==.
type HashedStrategy[T comparable] struct{}

// Hashed uses the element itself as the map key.
func Hashed[T comparable]() HashedStrategy[T] {
	return HashedStrategy[T]{}
}

func (HashedStrategy[T]) NewSet() Set[T] {
	return &keySet[T, T]{
		key:  func(v T) T { return v },
		seen: make(map[T]struct{}),
	}
}

func (HashedStrategy[T]) Equal(a, b T) bool {
	return a == b
}

// ProjectedStrategy compares elements by a derived key.
type ProjectedStrategy[T any, K comparable] struct {
	key func(T) K
}

// Projected maps each element to a comparable key, which lets elements that
// are not comparable themselves take part in set relationships.
func Projected[T any, K comparable](key func(T) K) ProjectedStrategy[T, K] {
	if key == nil {
		panic("lazyseq.identity: Projected key function cannot be nil")
	}
	return ProjectedStrategy[T, K]{key: key}
}

func (s ProjectedStrategy[T, K]) NewSet() Set[T] {
	return &keySet[T, K]{
		key:  s.key,
		seen: make(map[K]struct{}),
	}
}

func (s ProjectedStrategy[T, K]) Equal(a, b T) bool {
	return s.key(a) == s.key(b)
}

// Reference compares pointers by address and ignores what they point to.
// Two distinct pointers to equal values are different elements.
func Reference[E any]() ProjectedStrategy[*E, *E] {
	return Projected(func(p *E) *E { return p })
}
