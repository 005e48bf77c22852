package iterators

import (
	"lazyseq/lists"
	"lazyseq/queues"
)

type sortConfig struct {
	useHeap  bool
	capacity int
}

type SortOption func(*sortConfig)

// WithHeap keeps pending elements in a binary heap instead of a linked list.
// Full consumption becomes O(n log n) instead of O(n²); order and stability
// are unchanged.
func WithHeap() SortOption {
	return func(c *sortConfig) {
		c.useHeap = true
	}
}

// WithSortCapacity pre-sizes the heap used by WithHeap.
func WithSortCapacity(n int) SortOption {
	return func(c *sortConfig) {
		c.capacity = n
	}
}

// Sort yields the elements of src in ascending order according to less,
// a strict ordering. Elements that compare equal keep their input order.
//
// Nothing is pulled until the first Next, which drains src. By default the
// remaining elements live in a linked list and each later Next scans it once
// for the minimum, so full consumption is quadratic while reading only the
// first few elements stays linear. Use WithHeap for large inputs that are
// read to the end.
func Sort[T any](src Iterator[T], less func(a, b T) bool, opts ...SortOption) Iterator[T] {
	if less == nil {
		panic("lazyseq.iterators: Sort less function cannot be nil")
	}
	var cfg sortConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.useHeap {
		return &heapSortIterator[T]{src: src, less: less, capacity: cfg.capacity}
	}
	return &listSortIterator[T]{src: src, less: less}
}

// SortFunc is Sort with a three-way comparison such as cmp.Compare.
func SortFunc[T any](src Iterator[T], compare func(a, b T) int, opts ...SortOption) Iterator[T] {
	return Sort(src, func(a, b T) bool { return compare(a, b) < 0 }, opts...)
}

type listSortIterator[T any] struct {
	src     Iterator[T]
	less    func(a, b T) bool
	pending *lists.LinkedList[T]
}

// drain appends every upstream element in discovery order and returns the
// node of the first minimum.
func (it *listSortIterator[T]) drain() *lists.Node[T] {
	it.pending = lists.NewLinkedList[T]()
	var candidate *lists.Node[T]
	for v, ok := it.src.Next(); ok; v, ok = it.src.Next() {
		n := it.pending.Append(v)
		if candidate == nil || it.less(v, candidate.Value) {
			candidate = n
		}
	}
	return candidate
}

// minimum scans the pending list; the earliest node wins ties.
func (it *listSortIterator[T]) minimum() *lists.Node[T] {
	var candidate *lists.Node[T]
	for n := range it.pending.Nodes() {
		if candidate == nil || it.less(n.Value, candidate.Value) {
			candidate = n
		}
	}
	return candidate
}

func (it *listSortIterator[T]) Next() (value T, ok bool) {
	var n *lists.Node[T]
	if it.pending == nil {
		n = it.drain()
	} else {
		n = it.minimum()
	}
	if n == nil {
		return value, false
	}
	it.pending.Remove(n)
	return n.Value, true
}

func (it *listSortIterator[T]) Stop() {
	Stop(it.src)
}

type heapSortIterator[T any] struct {
	src      Iterator[T]
	less     func(a, b T) bool
	capacity int
	pending  *queues.PriorityQueue[T]
}

func (it *heapSortIterator[T]) Next() (T, bool) {
	if it.pending == nil {
		it.pending = queues.NewPriorityQueue(it.capacity, it.less)
		for v, ok := it.src.Next(); ok; v, ok = it.src.Next() {
			it.pending.Enqueue(v)
		}
	}
	return it.pending.Dequeue()
}

func (it *heapSortIterator[T]) Stop() {
	Stop(it.src)
}
