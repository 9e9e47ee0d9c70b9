// Package qsort provides a generic in-place quicksort for bidirectional sequences.
//
// The sort only needs to step a position forward or backward and compare two
// positions for equality, so it works on linked lists as well as slices.
// Containers are adapted through the Cursor interface; SliceCursor and
// ListCursor cover []T and *list.List.
//
// # Algorithm
//
// Each pass takes the last element of the range as the pivot and partitions
// the rest with two cursors converging from both ends. The pivot is then
// swapped into its final position and the two sub-ranges on either side of it
// are sorted. Sub-ranges are kept on an explicit work stack instead of the call
// stack, so adversarial inputs cannot exhaust the goroutine stack.
//
// Worst case is O(n²) on already sorted or reverse sorted input; the average is
// O(n log n). The sort is not stable.
//
// # Usage
//
//	data := []int{3, 1, 2}
//	qsort.Slice(data) // [1 2 3]
//
//	qsort.SliceFunc(data, func(a, b int) bool { return a > b }) // [3 2 1]
//
//	l := list.New()
//	l.PushBack("b")
//	l.PushBack("a")
//	qsort.List[string](l) // a, b
package qsort
