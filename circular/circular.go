package circular

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvlist/list"
)

// New creates an empty circular list.
func New[T any]() *List[T] { return &List[T]{} }

// Len returns the number of elements.
func (c *List[T]) Len() int { return c.size }

// Empty reports whether the list holds no elements.
func (c *List[T]) Empty() bool { return c.size == 0 }

// Insert appends value after the last node, before head.
// Complexity: O(1).
func (c *List[T]) Insert(value T) {
	c.link(value)
	c.last = c.last.next
}

// InsertFront makes value the new head.
// Complexity: O(1).
func (c *List[T]) InsertFront(value T) {
	c.link(value)
}

// link places a new node right after last, which is the head position.
func (c *List[T]) link(value T) {
	n := &node[T]{value: value}
	if c.last == nil {
		n.next = n
		c.last = n
	} else {
		n.next = c.last.next
		c.last.next = n
	}
	c.size++
}

// Head returns the head value, or false if the list is empty.
func (c *List[T]) Head() (T, bool) {
	if c.last == nil {
		var zero T
		return zero, false
	}

	return c.last.next.value, true
}

// At returns the value at position index, wrapping past the end:
// At(Len()) is the head again.
//
// Returns ErrEmpty on an empty list and a *list.RangeError for negative
// indices.
// Complexity: O(index mod Len()).
func (c *List[T]) At(index int) (T, error) {
	n, err := c.nodeAt(index)
	if err != nil {
		var zero T
		return zero, err
	}

	return n.value, nil
}

// Next returns the value that follows position index, wrapping like At.
// Next(Len()-1) is the head.
func (c *List[T]) Next(index int) (T, error) {
	n, err := c.nodeAt(index)
	if err != nil {
		var zero T
		return zero, err
	}

	return n.next.value, nil
}

// nodeAt resolves a wrapping index to its node.
func (c *List[T]) nodeAt(index int) (*node[T], error) {
	if c.size == 0 {
		return nil, ErrEmpty
	}
	if index < 0 {
		return nil, &list.RangeError{Op: list.OpAt, Index: index, Size: c.size}
	}
	n := c.last.next
	for i := 0; i < index%c.size; i++ {
		n = n.next
	}

	return n, nil
}

// RemoveAt removes the element at position index (no wrapping).
//
// Valid range is 0 <= index < Len(); a *list.RangeError is returned
// otherwise and the list is left untouched. Removing the head relinks
// the last node to the new head; removing the only element empties
// the list.
// Complexity: O(index).
func (c *List[T]) RemoveAt(index int) error {
	if index < 0 || index >= c.size {
		return &list.RangeError{Op: list.OpRemove, Index: index, Size: c.size}
	}

	prev := c.last
	for i := 0; i < index; i++ {
		prev = prev.next
	}
	removed := prev.next
	if c.size == 1 {
		c.last = nil
	} else {
		prev.next = removed.next
		if removed == c.last {
			c.last = prev
		}
	}
	c.size--

	var zero T
	removed.value = zero
	removed.next = nil

	return nil
}

// Rotate advances the head by k positions; negative k rotates backwards.
// Complexity: O(k mod Len()).
func (c *List[T]) Rotate(k int) {
	if c.size == 0 {
		return
	}
	k %= c.size
	if k < 0 {
		k += c.size
	}
	for i := 0; i < k; i++ {
		c.last = c.last.next
	}
}

// ForEach calls visit once per element, one lap starting at head.
func (c *List[T]) ForEach(visit func(index int, value T)) {
	for i, v := range c.All() {
		visit(i, v)
	}
}

// All returns an iterator over one lap of (index, value) pairs from head.
// The iterator may be ranged over any number of times.
func (c *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if c.last == nil {
			return
		}
		n := c.last.next
		for i := 0; i < c.size; i++ {
			if !yield(i, n.value) {
				return
			}
			n = n.next
		}
	}
}

// ToSlice returns one lap of values from head as a new slice.
func (c *List[T]) ToSlice() []T {
	out := make([]T, 0, c.size)
	for _, v := range c.All() {
		out = append(out, v)
	}

	return out
}

// String renders one lap as "[a, b, c]".
func (c *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range c.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}
