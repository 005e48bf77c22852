package lists

import (
	"iter"
	"slices"
	"sync"

	"go.uber.org/atomic"
)

// SyncLinkedList guards a LinkedList with a mutex. Every method that touches
// head, tail or the membership index takes the lock; Len reads an atomic
// counter kept in step with the list and never blocks.
//
// Iteration methods return snapshots so callers never range over the list
// while another goroutine mutates it. Nodes returned by Append, Insert and
// NodeAt are handles for Remove, Contains and the relocation methods only:
// their Next and Prev read links without the lock and must not be walked
// while other goroutines use the list.
//
// Relocating a node that belongs to a different list panics, since that
// list's lock is not held.
type SyncLinkedList[T any] struct {
	mu   sync.Mutex
	list *LinkedList[T]
	size *atomic.Int64
}

// NewSyncLinkedList wraps list. The caller must stop using list directly.
func NewSyncLinkedList[T any](list *LinkedList[T]) *SyncLinkedList[T] {
	if list == nil {
		list = NewLinkedList[T]()
	}
	return &SyncLinkedList[T]{
		list: list,
		size: atomic.NewInt64(int64(list.Len())),
	}
}

func (sl *SyncLinkedList[T]) mustOwn(n *Node[T]) {
	if n.list != nil && n.list != sl.list {
		panic("lazyseq.lists: node belongs to another list")
	}
}

func (sl *SyncLinkedList[T]) sync() {
	sl.size.Store(int64(sl.list.Len()))
}

func (sl *SyncLinkedList[T]) Append(value T) *Node[T] {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	n := sl.list.Append(value)
	sl.size.Inc()
	return n
}

func (sl *SyncLinkedList[T]) AppendNode(n *Node[T]) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.mustOwn(n)
	sl.list.AppendNode(n)
	sl.sync()
}

func (sl *SyncLinkedList[T]) Insert(index int, value T) (*Node[T], error) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	n, err := sl.list.Insert(index, value)
	sl.sync()
	return n, err
}

func (sl *SyncLinkedList[T]) InsertNode(index int, n *Node[T]) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.mustOwn(n)
	err := sl.list.InsertNode(index, n)
	sl.sync()
	return err
}

func (sl *SyncLinkedList[T]) Remove(n *Node[T]) bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	ok := sl.list.Remove(n)
	if ok {
		sl.size.Dec()
	}
	return ok
}

func (sl *SyncLinkedList[T]) RemoveFirst() (T, bool) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	v, ok := sl.list.RemoveFirst()
	if ok {
		sl.size.Dec()
	}
	return v, ok
}

func (sl *SyncLinkedList[T]) RemoveLast() (T, bool) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	v, ok := sl.list.RemoveLast()
	if ok {
		sl.size.Dec()
	}
	return v, ok
}

func (sl *SyncLinkedList[T]) RemoveAll(predicate func(T) bool) int {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	removed := sl.list.RemoveAll(predicate)
	sl.size.Sub(int64(removed))
	return removed
}

func (sl *SyncLinkedList[T]) NodeAt(index int) (*Node[T], bool) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.NodeAt(index)
}

func (sl *SyncLinkedList[T]) Contains(n *Node[T]) bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.Contains(n)
}

func (sl *SyncLinkedList[T]) Len() int {
	return int(sl.size.Load())
}

func (sl *SyncLinkedList[T]) Clear() {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.list.Clear()
	sl.size.Store(0)
}

// Values yields a snapshot of the values taken under the lock.
func (sl *SyncLinkedList[T]) Values() iter.Seq[T] {
	sl.mu.Lock()
	snapshot := slices.Collect(sl.list.Values())
	sl.mu.Unlock()
	return slices.Values(snapshot)
}

func (sl *SyncLinkedList[T]) String() string {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.String()
}
