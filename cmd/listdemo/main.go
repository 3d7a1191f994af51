// Command listdemo walks through the lvlist containers and prints each step.
//
// Usage:
//
//	listdemo [-seed N] [-n N] [singly|sort|circular|all]
//
// With no mode argument every demo runs in order.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/katalvlaran/lvlist/circular"
	"github.com/katalvlaran/lvlist/list"
)

func main() {
	seed := flag.Uint64("seed", 123456789, "seed for the sort demo's generator")
	n := flag.Int("n", 10, "number of random values merged by the sort demo")
	flag.Parse()

	mode := "all"
	if flag.NArg() > 0 {
		mode = flag.Arg(0)
	}
	if err := run(os.Stdout, mode, *seed, *n); err != nil {
		fmt.Fprintln(os.Stderr, "listdemo:", err)
		os.Exit(1)
	}
}

// run dispatches one demo, or all of them, writing to w.
func run(w io.Writer, mode string, seed uint64, n int) error {
	switch mode {
	case "singly":
		return singly(w)
	case "sort":
		return sorted(w, seed, n)
	case "circular":
		return ring(w)
	case "all":
		if err := singly(w); err != nil {
			return err
		}
		if err := sorted(w, seed, n); err != nil {
			return err
		}
		return ring(w)
	default:
		return fmt.Errorf("unknown mode %q (want singly, sort, circular or all)", mode)
	}
}

// singly exercises end inserts, positional edits and a bounds failure.
func singly(w io.Writer) error {
	l := list.New[int]()
	fmt.Fprintf(w, "The list size is: %d\n", l.Size())
	fmt.Fprintln(w, "Inserting nodes ...")
	for i := 0; i < 10; i++ {
		l.InsertBack(i)
	}
	printList(w, l)

	fmt.Fprintln(w, "\nInserting data at front of list ...")
	l.InsertFront(99)
	printList(w, l)

	pos := l.Size() / 2
	fmt.Fprintf(w, "\nInserting data at position %d ...\n", pos)
	if err := l.InsertAt(pos, 55); err != nil {
		return err
	}
	printList(w, l)

	pos = l.Size() / 2
	fmt.Fprintf(w, "\nRemoving data at position %d ...\n", pos)
	if err := l.RemoveAt(pos); err != nil {
		return err
	}
	printList(w, l)

	fmt.Fprintf(w, "\nRemoving data at position %d ...\n", l.Size())
	err := l.RemoveAt(l.Size())
	if !errors.Is(err, list.ErrOutOfRange) {
		return fmt.Errorf("expected an out-of-range failure, got %v", err)
	}
	fmt.Fprintf(w, "Rejected: %v\n", err)
	printList(w, l)

	return nil
}

// sorted builds a list by merging seeded pseudo-random values in [1, 1000].
func sorted(w io.Writer, seed uint64, n int) error {
	if n < 0 {
		return fmt.Errorf("n must be non-negative, got %d", n)
	}
	rng := rand.New(rand.NewPCG(seed, 0))
	draw := func() int { return rng.IntN(1000) + 1 }

	fmt.Fprintln(w, "\nInserting nodes ...")
	l := list.New[int]()
	for i := 0; i < n; i++ {
		l.MergeSorted(draw())
	}
	printList(w, l)

	v := draw()
	fmt.Fprintf(w, "\nInserting %d and sorting list ...\n", v)
	l.MergeSorted(v)
	printList(w, l)
	if !l.IsSorted() {
		return errors.New("merge produced an unsorted list")
	}

	return nil
}

// ring fills a circular list, shows wrap-around reads and drains it.
func ring(w io.Writer) error {
	c := circular.New[int]()
	fmt.Fprintf(w, "\nThe ring size is: %d\n", c.Len())
	for i := 0; i < 5; i++ {
		c.Insert(i)
	}
	fmt.Fprintf(w, "The ring size is now: %d\nThe ring data is: %v\n", c.Len(), c)

	first, err := c.At(0)
	if err != nil {
		return err
	}
	mid, err := c.At(c.Len() / 2)
	if err != nil {
		return err
	}
	wrapped, err := c.At(c.Len())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "First: %d  middle: %d  index %d wraps to: %d\n", first, mid, c.Len(), wrapped)

	head, _ := c.Head()
	next, err := c.Next(c.Len() - 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "The head value is: %d and the last node points to: %d\n", head, next)

	fmt.Fprintln(w, "\nDraining nodes ...")
	for !c.Empty() {
		if err := c.RemoveAt(0); err != nil {
			return err
		}
		fmt.Fprintln(w, c)
	}

	return nil
}

func printList(w io.Writer, l *list.List[int]) {
	fmt.Fprintf(w, "The list size is now: %d\nThe list data is: %v\n", l.Size(), l)
}
