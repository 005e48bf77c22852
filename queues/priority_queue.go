package queues

import (
	"container/heap"
)

type priorityItem[T any] struct {
	Value T
	seq   uint64
}

type internalHeap[T any] struct {
	data []*priorityItem[T]
	less func(a, b T) bool
}

func (ih *internalHeap[T]) Len() int {
	return len(ih.data)
}

// Less breaks ties by enqueue order, so equal elements leave in the order they arrived.
func (ih *internalHeap[T]) Less(i, j int) bool {
	a, b := ih.data[i], ih.data[j]
	switch {
	case ih.less(a.Value, b.Value):
		return true
	case ih.less(b.Value, a.Value):
		return false
	default:
		return a.seq < b.seq
	}
}

func (ih *internalHeap[T]) Swap(i, j int) {
	ih.data[i], ih.data[j] = ih.data[j], ih.data[i]
}

func (ih *internalHeap[T]) Push(x any) {
	ih.data = append(ih.data, x.(*priorityItem[T]))
}

func (ih *internalHeap[T]) Pop() any {
	old := ih.data
	n := len(old)
	lastItem := old[n-1]

	// avoid memory leak
	old[n-1] = nil

	ih.data = old[0 : n-1]
	return lastItem
}

// PriorityQueue is a stable min-heap ordered by a caller supplied less function.
// Elements that compare equal are dequeued in enqueue order.
type PriorityQueue[T any] struct {
	heap    *internalHeap[T]
	nextSeq uint64
}

// NewPriorityQueue creates a PriorityQueue with the given initial capacity.
// less must be a strict weak ordering; the smallest element is dequeued first.
func NewPriorityQueue[T any](initCapacity int, less func(a, b T) bool) *PriorityQueue[T] {
	if initCapacity < 0 {
		initCapacity = 0
	}
	if less == nil {
		panic("lazyseq.PriorityQueue: less function cannot be nil")
	}
	return &PriorityQueue[T]{
		heap: &internalHeap[T]{
			data: make([]*priorityItem[T], 0, initCapacity),
			less: less,
		},
	}
}

func (pq *PriorityQueue[T]) Enqueue(value T) {
	heap.Push(pq.heap, &priorityItem[T]{
		Value: value,
		seq:   pq.nextSeq,
	})
	pq.nextSeq++
}

func (pq *PriorityQueue[T]) Dequeue() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return heap.Pop(pq.heap).(*priorityItem[T]).Value, true
}

func (pq *PriorityQueue[T]) Size() int {
	return pq.heap.Len()
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.heap.Len() == 0
}
