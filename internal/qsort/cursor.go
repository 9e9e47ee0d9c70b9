package qsort

import "container/list"

// Cursor is a position in a bidirectional sequence of T.
// C is the concrete cursor type, so Next and Prev stay allocation free for
// value cursors such as SliceCursor.
type Cursor[T any, C any] interface {
	// Next returns the position after this one.
	Next() C
	// Prev returns the position before this one.
	Prev() C
	// Equal reports whether both cursors point at the same position.
	Equal(other C) bool
	// Get returns the element at this position.
	Get() T
	// Set replaces the element at this position.
	Set(v T)
}

// SliceCursor is a Cursor over a slice. The end position is len(s).
type SliceCursor[T any] struct {
	s []T
	i int
}

// SliceBounds returns the cursors delimiting [0, len(s)).
func SliceBounds[T any](s []T) (SliceCursor[T], SliceCursor[T]) {
	return SliceCursor[T]{s: s, i: 0}, SliceCursor[T]{s: s, i: len(s)}
}

func (c SliceCursor[T]) Next() SliceCursor[T] { return SliceCursor[T]{s: c.s, i: c.i + 1} }
func (c SliceCursor[T]) Prev() SliceCursor[T] { return SliceCursor[T]{s: c.s, i: c.i - 1} }

// Equal compares indexes only; both cursors must belong to the same slice.
func (c SliceCursor[T]) Equal(other SliceCursor[T]) bool { return c.i == other.i }

func (c SliceCursor[T]) Get() T  { return c.s[c.i] }
func (c SliceCursor[T]) Set(v T) { c.s[c.i] = v }

// Index returns the slice index the cursor points at.
func (c SliceCursor[T]) Index() int { return c.i }

// ListCursor is a Cursor over a container/list whose elements hold T values.
// The end position has a nil element; stepping back from it yields Back().
type ListCursor[T any] struct {
	l *list.List
	e *list.Element
}

// ListBounds returns the cursors delimiting the whole list.
func ListBounds[T any](l *list.List) (ListCursor[T], ListCursor[T]) {
	return ListCursor[T]{l: l, e: l.Front()}, ListCursor[T]{l: l, e: nil}
}

func (c ListCursor[T]) Next() ListCursor[T] {
	return ListCursor[T]{l: c.l, e: c.e.Next()}
}

func (c ListCursor[T]) Prev() ListCursor[T] {
	if c.e == nil {
		return ListCursor[T]{l: c.l, e: c.l.Back()}
	}
	return ListCursor[T]{l: c.l, e: c.e.Prev()}
}

func (c ListCursor[T]) Equal(other ListCursor[T]) bool { return c.e == other.e }

// Get panics if the element does not hold a T.
func (c ListCursor[T]) Get() T { return c.e.Value.(T) }

func (c ListCursor[T]) Set(v T) { c.e.Value = v }
