// Package list declares the List type, its functional options and the
// error values returned by positional operations.
//
// Errors:
//
//	ErrOutOfRange - positional argument outside the valid bound.
//	ErrNoCompare  - MergeSorted/IsSorted on a List built without a compare function.
package list

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/utils"
)

// Sentinel errors for list operations.
var (
	// ErrOutOfRange indicates an index outside the valid bound of an operation.
	// Every *RangeError unwraps to it.
	ErrOutOfRange = errors.New("list: index out of range")

	// ErrNoCompare indicates an ordering operation on a List without a compare function.
	ErrNoCompare = errors.New("list: no compare function configured")
)

// Operation names carried by RangeError.
const (
	OpInsert = "insert"
	OpRemove = "remove"
	OpAt     = "at"
)

// RangeError reports a rejected positional call.
// Index is the attempted position, Size the list length at the time of the call.
type RangeError struct {
	Op    string
	Index int
	Size  int
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("list: %s at index %d out of range (size %d)", e.Op, e.Index, e.Size)
}

// Unwrap lets errors.Is(err, ErrOutOfRange) match.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// node holds one value and the link to its successor (nil for the tail).
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked positional list.
//
// Invariants:
//   - size == 0 iff head == nil iff tail == nil.
//   - following next from head visits exactly size nodes and stops at tail.
//
// A List is not safe for concurrent use. Build one with New or NewFunc;
// the zero value supports every operation except MergeSorted and IsSorted.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int

	// compare orders values for MergeSorted; nil on the zero value.
	compare func(a, b T) int
}

// Option configures a List at construction time.
type Option[T any] func(l *List[T])

// WithValues appends values in order, as repeated InsertBack calls.
func WithValues[T any](values ...T) Option[T] {
	return func(l *List[T]) {
		for _, v := range values {
			l.InsertBack(v)
		}
	}
}

// WithCompare replaces the compare function used by MergeSorted and IsSorted.
// compare must return a negative number when a < b, zero when equal
// and a positive number when a > b. A nil compare is ignored.
func WithCompare[T any](compare func(a, b T) int) Option[T] {
	return func(l *List[T]) {
		if compare != nil {
			l.compare = compare
		}
	}
}

// WithComparator adapts a gods utils.Comparator (for example utils.IntComparator)
// as the List's compare function. A nil comparator is ignored.
func WithComparator[T any](c utils.Comparator) Option[T] {
	if c == nil {
		return func(*List[T]) {}
	}

	return WithCompare(func(a, b T) int { return c(a, b) })
}
