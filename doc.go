// Package lvlist collects small, generic, in-memory sequence containers.
//
// What is in here?
//
//	list/     — singly linked positional List[T]: O(1) end inserts, index-based
//	            InsertAt/RemoveAt with *RangeError failures, MergeSorted
//	            (merge-insertion into an already sorted chain) and restartable
//	            enumeration (ForEach, Walk, All, ToSlice)
//	circular/ — circular singly linked List[T] with wrapping reads and Rotate
//	cmd/      — listdemo, a console walkthrough of both containers
//
// Containers are single-owner: no locks, no goroutines. Failed positional
// calls return an error and leave the container unchanged.
//
// Quick ASCII picture of list.List after InsertBack(1, 2, 3):
//
//	head ─▶ [1] ─▶ [2] ─▶ [3] ─▶ nil
//	                       ▲
//	                      tail
//
//	go get github.com/katalvlaran/lvlist/list
package lvlist
