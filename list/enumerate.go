package list

import (
	"fmt"
	"iter"
	"strings"
)

// ForEach calls visit for every element from head to tail.
// visit must not mutate the list.
func (l *List[T]) ForEach(visit func(index int, value T)) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		visit(i, n.value)
		i++
	}
}

// Walk is ForEach with early exit: the first non-nil error returned by
// visit stops the traversal and is returned wrapped with its index.
func (l *List[T]) Walk(visit func(index int, value T) error) error {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if err := visit(i, n.value); err != nil {
			return fmt.Errorf("list: visit at index %d: %w", i, err)
		}
		i++
	}

	return nil
}

// All returns an iterator over (index, value) pairs in chain order.
// The iterator may be ranged over any number of times.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// ToSlice returns the values in chain order as a new slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// String renders the list as "[a, b, c]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		fmt.Fprint(&sb, n.value)
		if n.next != nil {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
