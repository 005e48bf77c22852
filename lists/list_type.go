package lists

import "iter"

// List defines a generic list interface supporting common list operations.
// T can be any type.
type List[T any] interface {
	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// Insert inserts an element at the specified index
	// Returns ErrIndexOutOfRange if index < 0 or index > Size()
	Insert(index int, value T) error

	// Remove removes and returns the element at the specified index
	Remove(index int) (T, error)

	// Get retrieves the element at the specified index
	Get(index int) (T, error)

	Size() int
	IsEmpty() bool

	// Clear removes every element and releases references to them
	Clear()

	// ContainsFunc reports whether any element satisfies predicate.
	// Since T is any, direct comparison using == is not possible.
	ContainsFunc(predicate func(T) bool) bool

	// IndexFunc returns the index of the first element satisfying predicate, or -1
	IndexFunc(predicate func(T) bool) int

	Values() iter.Seq[T]
}

// Index is a standalone function, not a method of List,
// because it requires T to be comparable.
func Index[T comparable](l List[T], v T) int {
	return l.IndexFunc(func(x T) bool {
		return x == v
	})
}
