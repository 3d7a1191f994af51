// Package list implements a generic singly linked positional list.
//
// What it offers:
//
//	• O(1) InsertBack / InsertFront / PopFront with head and tail tracking
//	• index-based InsertAt / RemoveAt with explicit *RangeError failures
//	• MergeSorted: merge-insertion of one value into an already sorted chain
//	• restartable enumeration: ForEach, Walk, All (iter.Seq2), ToSlice
//
// Usage:
//
//	import "github.com/katalvlaran/lvlist/list"
//
//	l := list.New[int](list.WithValues(1, 3, 5, 7))
//	l.MergeSorted(4)               // [1, 3, 4, 5, 7]
//	if err := l.RemoveAt(9); errors.Is(err, list.ErrOutOfRange) {
//	  var re *list.RangeError
//	  errors.As(err, &re)          // re.Index == 9, re.Size == 5
//	}
//	for i, v := range l.All() {
//	  fmt.Println(i, v)
//	}
//
// Failed positional calls never modify the list.
//
// Ordering uses a compare function: cmp.Compare for New, any func(a, b T) int
// for NewFunc, or a gods utils.Comparator via WithComparator.
//
// Concurrency: a List is owned by one goroutine at a time. It carries no
// locks; callers sharing it must synchronise externally.
//
// Complexity:
//
//   - InsertBack, InsertFront, PopFront, Front, Back, Size: O(1)
//   - InsertAt, RemoveAt, At: O(index)
//   - MergeSorted: O(n²) comparisons, no allocation beyond the new node
package list
