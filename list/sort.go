package list

// MergeSorted inserts value at its sorted position using the List's
// compare function. See MergeSortedFunc.
//
// Panics with ErrNoCompare if the List has no compare function.
func (l *List[T]) MergeSorted(value T) {
	if l.compare == nil {
		panic(ErrNoCompare)
	}
	l.MergeSortedFunc(value, l.compare)
}

// MergeSortedFunc inserts value into a list already sorted in
// non-decreasing order by compare, keeping it sorted.
//
// Algorithm:
//  1. Form a working chain: value followed by the existing chain.
//  2. Drain it one node at a time from the front.
//  3. For each drained node, scan the sorted chain from its sentinel until
//     the next element compares strictly greater (or the end), and splice
//     the node there.
//  4. The sorted chain becomes the list; tail is found by walking to the end.
//
// Equal keys keep their working-chain order, so value lands ahead of any
// existing elements equal to it. An unsorted list still terminates with a
// fully linked chain, sorted as a whole.
//
// Complexity: O(n²) comparisons, O(1) extra memory.
func (l *List[T]) MergeSortedFunc(value T, compare func(a, b T) int) {
	pending := &node[T]{value: value, next: l.head}
	var sorted node[T] // sentinel; sorted.next is the first real node

	for pending != nil {
		cur := pending
		pending = pending.next

		s := &sorted
		for s.next != nil && compare(s.next.value, cur.value) <= 0 {
			s = s.next
		}
		cur.next = s.next
		s.next = cur
	}

	l.head = sorted.next
	// The last node spliced is not necessarily the last node of the chain.
	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}
	l.tail = tail
	l.size++
}

// IsSorted reports whether the list is in non-decreasing order by its
// compare function. Panics with ErrNoCompare if there is none.
func (l *List[T]) IsSorted() bool {
	if l.compare == nil {
		panic(ErrNoCompare)
	}

	return l.IsSortedFunc(l.compare)
}

// IsSortedFunc reports whether the list is in non-decreasing order by compare.
func (l *List[T]) IsSortedFunc(compare func(a, b T) int) bool {
	for n := l.head; n != nil && n.next != nil; n = n.next {
		if compare(n.value, n.next.value) > 0 {
			return false
		}
	}

	return true
}
