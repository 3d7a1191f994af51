package list_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/list"
)

// TestList_Empty verifies a fresh list reports no elements and no ends.
func TestList_Empty(t *testing.T) {
	l := list.New[int]()

	assert.Equal(t, 0, l.Size())
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Empty())
	assert.Empty(t, l.ToSlice())

	_, ok := l.Front()
	assert.False(t, ok, "empty list has no front")
	_, ok = l.Back()
	assert.False(t, ok, "empty list has no back")
}

// TestList_InsertBackFront checks size and order for mixed end inserts.
func TestList_InsertBackFront(t *testing.T) {
	l := list.New[int]()
	for i := 0; i < 10; i++ {
		l.InsertBack(i)
	}
	require.Equal(t, 10, l.Size())

	l.InsertFront(99)
	l.InsertFront(98)

	assert.Equal(t, 12, l.Size())
	assert.Equal(t, []int{98, 99, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, l.ToSlice())

	front, _ := l.Front()
	back, _ := l.Back()
	assert.Equal(t, 98, front)
	assert.Equal(t, 9, back)
}

// TestList_InsertFrontOnEmpty ensures the first InsertFront also sets the tail.
func TestList_InsertFrontOnEmpty(t *testing.T) {
	l := list.New[int]()
	l.InsertFront(7)
	l.InsertBack(8)

	assert.Equal(t, []int{7, 8}, l.ToSlice())
	back, ok := l.Back()
	assert.True(t, ok)
	assert.Equal(t, 8, back)
}

// TestList_At covers in-range reads and rejected indices.
func TestList_At(t *testing.T) {
	l := list.New(list.WithValues(10, 20, 30))

	v, err := l.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	for _, idx := range []int{-1, 3, 100} {
		_, err = l.At(idx)
		assert.ErrorIs(t, err, list.ErrOutOfRange, "index %d", idx)
	}
}

// TestList_PopFront drains the list from the head.
func TestList_PopFront(t *testing.T) {
	l := list.New(list.WithValues("a", "b"))

	v, ok := l.PopFront()
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = l.PopFront()
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = l.PopFront()
	assert.False(t, ok, "pop on empty list")
	assert.True(t, l.Empty())

	// list stays usable after being drained
	l.InsertBack("c")
	assert.Equal(t, []string{"c"}, l.ToSlice())
}

// TestList_Clear empties the list and allows reuse.
func TestList_Clear(t *testing.T) {
	l := list.New(list.WithValues(1, 2, 3))
	l.Clear()

	assert.True(t, l.Empty())
	assert.Empty(t, l.ToSlice())

	l.InsertBack(4)
	assert.Equal(t, []int{4}, l.ToSlice())
}

// TestList_Clone verifies the copy is independent and keeps ordering.
func TestList_Clone(t *testing.T) {
	a := list.New(list.WithValues(0, 10, 20, 30))
	b := a.Clone()

	a.InsertBack(40)
	require.NoError(t, a.RemoveAt(1))

	assert.Equal(t, []int{0, 20, 30, 40}, a.ToSlice())
	assert.Equal(t, []int{0, 10, 20, 30}, b.ToSlice(), "clone must not see later edits")

	b.MergeSorted(15)
	assert.Equal(t, []int{0, 10, 15, 20, 30}, b.ToSlice(), "clone keeps the compare function")
}

// TestList_ZeroValue checks the zero List works for non-ordering operations.
func TestList_ZeroValue(t *testing.T) {
	var l list.List[string]
	l.InsertBack("x")
	require.NoError(t, l.InsertAt(0, "w"))

	assert.Equal(t, []string{"w", "x"}, l.ToSlice())
	assert.PanicsWithValue(t, list.ErrNoCompare, func() { l.MergeSorted("y") })

	l.MergeSortedFunc("y", strings.Compare)
	assert.Equal(t, []string{"w", "x", "y"}, l.ToSlice())
}
