package list

// InsertAt inserts value so that it becomes the element at position index,
// shifting later elements back by one.
//
// Valid range is 0 <= index <= Size(); index == Size() appends.
// Returns a *RangeError (matching ErrOutOfRange) otherwise and leaves the
// list untouched.
// Complexity: O(index).
func (l *List[T]) InsertAt(index int, value T) error {
	if index < 0 || index > l.size {
		return &RangeError{Op: OpInsert, Index: index, Size: l.size}
	}
	switch index {
	case 0:
		l.InsertFront(value)
	case l.size:
		l.InsertBack(value)
	default:
		prev := l.nodeAt(index - 1)
		prev.next = &node[T]{value: value, next: prev.next}
		l.size++
	}

	return nil
}

// RemoveAt removes the element at position index.
//
// Valid range is 0 <= index < Size(). Returns a *RangeError otherwise and
// leaves the list untouched. Removing the last remaining element leaves
// an empty list with no head and no tail.
// Complexity: O(index).
func (l *List[T]) RemoveAt(index int) error {
	if index < 0 || index >= l.size {
		return &RangeError{Op: OpRemove, Index: index, Size: l.size}
	}
	if index == 0 {
		release(l.unlinkFront())

		return nil
	}

	prev := l.nodeAt(index - 1)
	removed := prev.next
	prev.next = removed.next
	if removed == l.tail {
		l.tail = prev
	}
	l.size--
	release(removed)

	return nil
}
