// Package list: core chain ownership.
//
// This file holds construction and the end-point operations that run in
// O(1): InsertBack, InsertFront, Front, Back, PopFront. At and Clone walk
// the chain.

package list

import "cmp"

// New creates an empty List ordered by cmp.Compare.
// Complexity: O(1) plus any WithValues seeding.
func New[T cmp.Ordered](opts ...Option[T]) *List[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc creates an empty List ordered by compare.
// compare may be nil when MergeSorted is never called.
func NewFunc[T any](compare func(a, b T) int, opts ...Option[T]) *List[T] {
	l := &List[T]{compare: compare}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Size returns the number of elements.
func (l *List[T]) Size() int { return l.size }

// Len is an alias of Size.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// InsertBack appends value after the current tail.
// Complexity: O(1).
func (l *List[T]) InsertBack(value T) {
	n := &node[T]{value: value}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// InsertFront prepends value before the current head.
// Complexity: O(1).
func (l *List[T]) InsertFront(value T) {
	n := &node[T]{value: value, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// Front returns the head value, or false if the list is empty.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.value, true
}

// Back returns the tail value, or false if the list is empty.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}

	return l.tail.value, true
}

// At returns the value at position index.
// Returns a *RangeError unless 0 <= index < Size().
// Complexity: O(index).
func (l *List[T]) At(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, &RangeError{Op: OpAt, Index: index, Size: l.size}
	}

	return l.nodeAt(index).value, nil
}

// PopFront removes the head and returns its value, or false if the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	removed := l.unlinkFront()
	value := removed.value
	release(removed)

	return value, true
}

// Clear removes every element. Each node is released as it is unlinked.
func (l *List[T]) Clear() {
	for l.head != nil {
		release(l.unlinkFront())
	}
}

// Clone returns an independent copy sharing the compare function.
// Values are copied by assignment.
// Complexity: O(n).
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{compare: l.compare}
	for n := l.head; n != nil; n = n.next {
		out.InsertBack(n.value)
	}

	return out
}

// nodeAt walks index steps from head. Caller guarantees 0 <= index < size.
func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}

	return n
}

// unlinkFront detaches the head node and fixes tail when the list empties.
// Caller guarantees the list is non-empty.
func (l *List[T]) unlinkFront() *node[T] {
	removed := l.head
	l.head = removed.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--

	return removed
}

// release drops the references held by a node that left the chain.
func release[T any](n *node[T]) {
	var zero T
	n.value = zero
	n.next = nil
}
