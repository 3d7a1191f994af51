package list

import "github.com/emirpasic/gods/containers"

// List satisfies the gods Container contract (Empty, Size, Clear, Values, String),
// so it can be handed to code written against github.com/emirpasic/gods.
var _ containers.Container = (*List[int])(nil)

// Values returns the elements boxed as interface{} in chain order.
// Prefer ToSlice in typed code.
func (l *List[T]) Values() []interface{} {
	out := make([]interface{}, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}
