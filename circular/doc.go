// Package circular implements a generic circular singly linked list.
//
// The last node links back to the head, so reads wrap: At(Len()) is the
// head and Next(Len()-1) is the head. Positional removal does not wrap and
// reports a *list.RangeError (matching list.ErrOutOfRange) on a bad index.
//
//	c := circular.New[int]()
//	for i := 0; i < 5; i++ {
//	  c.Insert(i)                   // [0, 1, 2, 3, 4]
//	}
//	v, _ := c.At(c.Len())           // 0, wrapped to head
//	c.Rotate(2)                     // [2, 3, 4, 0, 1]
//	for c.Len() > 0 {
//	  _ = c.RemoveAt(0)             // drain from head
//	}
//
// Not safe for concurrent use.
package circular
