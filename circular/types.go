// Package circular declares the circular List type and its errors.
package circular

import "errors"

// ErrEmpty is returned by reads on a list with no elements.
var ErrEmpty = errors.New("circular: list is empty")

// node holds one value and the link to its successor. In a non-empty list
// no next pointer is ever nil.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a circular singly linked list.
//
// Only the last node is stored: head is last.next. That keeps Insert,
// InsertFront and the head read at O(1).
//
// Invariants:
//   - size == 0 iff last == nil.
//   - following next from head visits size distinct nodes and returns to head.
//
// The zero value is an empty list ready to use. Not safe for concurrent use.
type List[T any] struct {
	last *node[T]
	size int
}
