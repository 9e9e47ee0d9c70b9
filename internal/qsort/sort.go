package qsort

import (
	"cmp"
	"container/list"
)

// span is a pending half-open range [first, last).
type span[C any] struct {
	first, last C
}

// Sort sorts [first, last) in place in ascending natural order.
func Sort[T cmp.Ordered, C Cursor[T, C]](first, last C) {
	SortFunc(first, last, cmp.Less[T])
}

// SortFunc sorts [first, last) in place so that less never reports a later
// element as smaller than an earlier one. less must be a strict weak order;
// this is not checked. The sort is not stable.
func SortFunc[T any, C Cursor[T, C]](first, last C, less func(a, b T) bool) {
	stack := []span[C]{{first: first, last: last}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Zero or one element.
		if top.first.Equal(top.last) || top.first.Next().Equal(top.last) {
			continue
		}

		mid := partition(top.first, top.last, less)

		// The pivot at mid is final and belongs to neither side.
		stack = append(stack,
			span[C]{first: mid.Next(), last: top.last},
			span[C]{first: top.first, last: mid},
		)
	}
}

// partition arranges [first, last) around the value of its last element and
// returns the pivot's final position. Elements before it are less than the
// pivot; elements after it are not. The range must hold at least two elements.
func partition[T any, C Cursor[T, C]](first, last C, less func(a, b T) bool) C {
	lastExist := last.Prev()
	pivot := lastExist.Get()

	i := first
	j := lastExist.Prev()

	// Everything before i is less than the pivot; everything after j (up to
	// lastExist) is not.
	for !i.Equal(j) {
		switch {
		case !less(i.Get(), pivot) && less(j.Get(), pivot):
			swap[T](i, j)
			i = i.Next()
			if !i.Equal(j) {
				j = j.Prev()
			}
		case less(i.Get(), pivot):
			i = i.Next()
		default:
			j = j.Prev()
		}
	}

	if less(i.Get(), pivot) {
		i = i.Next()
	}
	swap[T](i, lastExist)

	return i
}

func swap[T any, C Cursor[T, C]](a, b C) {
	va, vb := a.Get(), b.Get()
	a.Set(vb)
	b.Set(va)
}

// Slice sorts s in ascending order.
func Slice[T cmp.Ordered](s []T) {
	first, last := SliceBounds(s)
	Sort[T](first, last)
}

// SliceFunc sorts s using less.
func SliceFunc[T any](s []T, less func(a, b T) bool) {
	first, last := SliceBounds(s)
	SortFunc(first, last, less)
}

// List sorts the values held by l in ascending order. Every element must hold
// a T. Values move between elements; the elements themselves stay in place.
func List[T cmp.Ordered](l *list.List) {
	first, last := ListBounds[T](l)
	Sort[T](first, last)
}

// ListFunc sorts the values held by l using less.
func ListFunc[T any](l *list.List, less func(a, b T) bool) {
	first, last := ListBounds[T](l)
	SortFunc(first, last, less)
}

// IsSortedFunc reports whether [first, last) is in order under less.
func IsSortedFunc[T any, C Cursor[T, C]](first, last C, less func(a, b T) bool) bool {
	if first.Equal(last) {
		return true
	}
	prev := first
	for cur := first.Next(); !cur.Equal(last); cur = cur.Next() {
		if less(cur.Get(), prev.Get()) {
			return false
		}
		prev = cur
	}
	return true
}
