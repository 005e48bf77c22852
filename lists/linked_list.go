package lists

import (
	"fmt"
	"iter"
	"strings"
)

// Node is an element of a LinkedList. Nodes are compared by address:
// two nodes holding equal values are still distinct. A node belongs to at
// most one list at a time.
type Node[T any] struct {
	prev  *Node[T]
	next  *Node[T]
	list  *LinkedList[T]
	Value T
}

// NewNode returns a detached node holding value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node, or nil at the head.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// LinkedList is a doubly linked list that owns its nodes and keeps a membership
// index over them. Appending or inserting a node that is already in the list
// moves it instead of linking it twice.
//
// LinkedList is not safe for concurrent use; see SyncLinkedList.
type LinkedList[T any] struct {
	head    *Node[T]
	tail    *Node[T]
	members map[*Node[T]]struct{}
}

func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{
		members: make(map[*Node[T]]struct{}),
	}
}

// NewLinkedListFrom returns a list holding every value of seq in order.
func NewLinkedListFrom[T any](seq iter.Seq[T]) *LinkedList[T] {
	ll := NewLinkedList[T]()
	for v := range seq {
		ll.Append(v)
	}
	return ll
}

// linkBefore links a detached node n in front of mark, or at the tail when mark is nil.
func (ll *LinkedList[T]) linkBefore(n, mark *Node[T]) {
	if mark == nil {
		n.prev = ll.tail
		n.next = nil
		if ll.tail != nil {
			ll.tail.next = n
		} else {
			ll.head = n
		}
		ll.tail = n
	} else {
		n.prev = mark.prev
		n.next = mark
		if mark.prev != nil {
			mark.prev.next = n
		} else {
			ll.head = n
		}
		mark.prev = n
	}
	n.list = ll
	ll.members[n] = struct{}{}
}

// unlink detaches n. The caller guarantees n is a member.
func (ll *LinkedList[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		ll.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		ll.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	n.list = nil
	delete(ll.members, n)
}

// detach takes n out of any other list that holds it.
func (ll *LinkedList[T]) detach(n *Node[T]) {
	if n.list != nil && n.list != ll {
		n.list.unlink(n)
	}
}

// findNodeAt walks from whichever end is closer.
// Assumes 0 <= index < Len().
func (ll *LinkedList[T]) findNodeAt(index int) *Node[T] {
	size := len(ll.members)
	if index < size/2 {
		current := ll.head
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tail
	for i := size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

// Append adds value at the tail and returns its node.
func (ll *LinkedList[T]) Append(value T) *Node[T] {
	n := NewNode(value)
	ll.linkBefore(n, nil)
	return n
}

// AppendAll appends values in order.
func (ll *LinkedList[T]) AppendAll(values ...T) {
	for _, v := range values {
		ll.Append(v)
	}
}

// AppendNode links n at the tail. A node already in the list is moved;
// a node held by another list is removed from that list first.
func (ll *LinkedList[T]) AppendNode(n *Node[T]) {
	ll.detach(n)
	if ll.Contains(n) {
		if n == ll.tail {
			return
		}
		ll.unlink(n)
	}
	ll.linkBefore(n, nil)
}

// Insert places value before the element currently at index.
// index == Len() appends.
func (ll *LinkedList[T]) Insert(index int, value T) (*Node[T], error) {
	n := NewNode(value)
	if err := ll.InsertNode(index, n); err != nil {
		return nil, err
	}
	return n, nil
}

// InsertNode places n before the element at index. If n is already in the
// list it is unlinked first and index refers to the list without it. A node
// held by another list is removed from that list once index is validated.
func (ll *LinkedList[T]) InsertNode(index int, n *Node[T]) error {
	size := len(ll.members)
	if ll.Contains(n) {
		size--
	}
	if index < 0 || index > size {
		return outOfRange(index, size)
	}
	ll.detach(n)
	if ll.Contains(n) {
		ll.unlink(n)
	}
	if index == len(ll.members) {
		ll.linkBefore(n, nil)
		return nil
	}
	ll.linkBefore(n, ll.findNodeAt(index))
	return nil
}

// MoveToFront relocates n to the head. It reports false if n is not in the list.
func (ll *LinkedList[T]) MoveToFront(n *Node[T]) bool {
	if !ll.Contains(n) {
		return false
	}
	if n != ll.head {
		ll.unlink(n)
		ll.linkBefore(n, ll.head)
	}
	return true
}

// MoveBefore relocates n in front of mark. Both must be in the list.
func (ll *LinkedList[T]) MoveBefore(n, mark *Node[T]) bool {
	if n == mark || !ll.Contains(n) || !ll.Contains(mark) {
		return false
	}
	ll.unlink(n)
	ll.linkBefore(n, mark)
	return true
}

// MoveAfter relocates n behind mark. Both must be in the list.
func (ll *LinkedList[T]) MoveAfter(n, mark *Node[T]) bool {
	if n == mark || !ll.Contains(n) || !ll.Contains(mark) {
		return false
	}
	ll.unlink(n)
	ll.linkBefore(n, mark.next)
	return true
}

// Remove unlinks n and reports whether it was in the list.
func (ll *LinkedList[T]) Remove(n *Node[T]) bool {
	if !ll.Contains(n) {
		return false
	}
	ll.unlink(n)
	return true
}

// RemoveFirst removes the head and returns its value.
func (ll *LinkedList[T]) RemoveFirst() (value T, ok bool) {
	if ll.head == nil {
		return value, false
	}
	n := ll.head
	ll.unlink(n)
	return n.Value, true
}

// RemoveLast removes the tail and returns its value.
func (ll *LinkedList[T]) RemoveLast() (value T, ok bool) {
	if ll.tail == nil {
		return value, false
	}
	n := ll.tail
	ll.unlink(n)
	return n.Value, true
}

// RemoveAll removes every node whose value satisfies predicate in a single pass.
// predicate is called exactly once per node, head to tail.
// Returns the number of removed nodes.
func (ll *LinkedList[T]) RemoveAll(predicate func(T) bool) int {
	removed := 0
	var last *Node[T]
	current := ll.head
	ll.head = nil
	for current != nil {
		next := current.next
		if predicate(current.Value) {
			current.prev = nil
			current.next = nil
			current.list = nil
			delete(ll.members, current)
			removed++
		} else {
			current.prev = last
			if last != nil {
				last.next = current
			} else {
				ll.head = current
			}
			last = current
		}
		current = next
	}
	if last != nil {
		last.next = nil
	}
	ll.tail = last
	return removed
}

// NodeAt returns the node at index, walking from the closer end.
func (ll *LinkedList[T]) NodeAt(index int) (*Node[T], bool) {
	if index < 0 || index >= len(ll.members) {
		return nil, false
	}
	return ll.findNodeAt(index), true
}

// Contains reports whether this exact node is linked into the list.
func (ll *LinkedList[T]) Contains(n *Node[T]) bool {
	if n == nil {
		return false
	}
	_, ok := ll.members[n]
	return ok
}

func (ll *LinkedList[T]) Front() *Node[T] {
	return ll.head
}

func (ll *LinkedList[T]) Back() *Node[T] {
	return ll.tail
}

func (ll *LinkedList[T]) Len() int {
	return len(ll.members)
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return len(ll.members) == 0
}

// Clear drops every node and resets head, tail and the membership index together.
func (ll *LinkedList[T]) Clear() {
	current := ll.head
	for current != nil {
		next := current.next
		current.prev = nil
		current.next = nil
		current.list = nil
		current = next
	}
	ll.head = nil
	ll.tail = nil
	ll.members = make(map[*Node[T]]struct{})
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.head; current != nil; current = current.next {
			if !yield(current.Value) {
				return
			}
		}
	}
}

// Nodes yields the nodes head to tail. The yielded node may be removed
// during the loop; the successor is captured before yielding.
func (ll *LinkedList[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		current := ll.head
		for current != nil {
			next := current.next
			if !yield(current) {
				return
			}
			current = next
		}
	}
}

func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.tail; current != nil; current = current.prev {
			if !yield(current.Value) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) String() string {
	strBuilder := strings.Builder{}
	strBuilder.WriteString("[")
	for current := ll.head; current != nil; current = current.next {
		strBuilder.WriteString(fmt.Sprintf("%v", current.Value))
		if current.next != nil {
			strBuilder.WriteString(", ")
		}
	}
	strBuilder.WriteString("]")
	return strBuilder.String()
}
