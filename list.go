// Package arraylist implements a generic growable array that owns its
// backing buffer and manages the length/capacity split itself.
package arraylist

import (
	"fmt"
	"iter"
)

// Collection is a sequence whose element count is known before it is read.
// *List implements it.
type Collection[T any] interface {
	Len() int
	CopyTo(dst []T, off int) error
}

// List is a growable array. Not goroutine-safe.
type List[T any] struct {
	items  []T    // backing buffer; len(items) is the capacity
	size   int    // live elements in items[:size]
	stamp  uint64 // bumped on every mutation
	allocs int    // backing buffers allocated so far
}

// New returns an empty list with capacity 0. It does not allocate a buffer.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWithCapacity returns an empty list whose buffer holds exactly n elements.
func NewWithCapacity[T any](n int) (*List[T], error) {
	if err := checkCapacity(n); err != nil {
		return nil, err
	}
	l := New[T]()
	if n > 0 {
		l.items = l.alloc(n)
	}
	return l, nil
}

// FromSlice returns a list holding a copy of s. The buffer is sized to
// len(s) in a single allocation.
func FromSlice[T any](s []T) *List[T] {
	l := New[T]()
	if len(s) > 0 {
		l.items = l.alloc(len(s))
		l.size = copy(l.items, s)
	}
	return l
}

// FromCollection returns a list holding the elements of c, copied into a
// buffer of exactly c.Len() elements.
func FromCollection[T any](c Collection[T]) (*List[T], error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil collection", ErrInvalidArgument)
	}
	if src, ok := c.(*List[T]); ok && src == nil {
		return nil, fmt.Errorf("%w: nil list", ErrInvalidArgument)
	}
	l := New[T]()
	n := c.Len()
	if n < 0 {
		return nil, fmt.Errorf("%w: collection length %d", ErrInvalidArgument, n)
	}
	if n == 0 {
		return l, nil
	}
	buf := l.alloc(n)
	if err := c.CopyTo(buf, 0); err != nil {
		return nil, err
	}
	l.items = buf
	l.size = n
	return l, nil
}

// FromSeq returns a list holding the elements yielded by seq. The count is
// not known in advance, so the list grows as elements arrive.
func FromSeq[T any](seq iter.Seq[T]) (*List[T], error) {
	l := New[T]()
	if err := l.AppendSeq(seq); err != nil {
		return nil, err
	}
	return l, nil
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	if uint(i) >= uint(l.size) {
		var zero T
		return zero, indexError("get", i, l.size)
	}
	return l.items[i], nil
}

// Set overwrites the element at index i. Outstanding cursors are
// invalidated even though the length is unchanged.
func (l *List[T]) Set(i int, v T) error {
	if uint(i) >= uint(l.size) {
		return indexError("set", i, l.size)
	}
	l.items[i] = v
	l.stamp++
	return nil
}

// Append adds v to the end of the list.
func (l *List[T]) Append(v T) {
	if l.size == len(l.items) {
		l.growForOne()
	}
	l.items[l.size] = v
	l.size++
	l.stamp++
}

// AppendSeq appends every element yielded by seq.
func (l *List[T]) AppendSeq(seq iter.Seq[T]) error {
	if seq == nil {
		return fmt.Errorf("%w: nil sequence", ErrInvalidArgument)
	}
	for v := range seq {
		l.Append(v)
	}
	return nil
}

// Insert places v at index i, shifting items[i:] one slot right.
// i == Len() appends.
func (l *List[T]) Insert(i int, v T) error {
	if uint(i) > uint(l.size) {
		return indexError("insert", i, l.size)
	}
	if l.size == len(l.items) {
		l.growForOne()
	}
	if i < l.size {
		copy(l.items[i+1:l.size+1], l.items[i:l.size])
	}
	l.items[i] = v
	l.size++
	l.stamp++
	return nil
}

// RemoveAt deletes the element at index i, shifting the tail left.
// The vacated slot is zeroed so the list holds no reference to it.
func (l *List[T]) RemoveAt(i int) error {
	if uint(i) >= uint(l.size) {
		return indexError("remove", i, l.size)
	}
	l.size--
	if i < l.size {
		copy(l.items[i:l.size], l.items[i+1:l.size+1])
	}
	var zero T
	l.items[l.size] = zero
	l.stamp++
	return nil
}

// Clear removes all elements and zeroes their slots. The capacity is kept.
// Clear always counts as a mutation, even on an empty list.
func (l *List[T]) Clear() {
	if l.size > 0 {
		clear(l.items[:l.size])
		l.size = 0
	}
	l.stamp++
}

// CopyTo copies every element into dst starting at dst[off].
func (l *List[T]) CopyTo(dst []T, off int) error {
	return l.CopyRange(0, dst, off, l.size)
}

// CopyRange copies count elements starting at index start into dst
// starting at dst[off]. Nothing is copied if the range does not fit.
func (l *List[T]) CopyRange(start int, dst []T, off, count int) error {
	if start < 0 || count < 0 || l.size-start < count {
		return fmt.Errorf("%w: source range [%d:+%d] of length %d", ErrIndexOutOfRange, start, count, l.size)
	}
	if off < 0 || len(dst)-off < count {
		return fmt.Errorf("%w: destination range [%d:+%d] of length %d", ErrIndexOutOfRange, off, count, len(dst))
	}
	copy(dst[off:off+count], l.items[start:start+count])
	return nil
}

// ToSlice returns a new slice holding the elements. It never shares memory
// with the list.
func (l *List[T]) ToSlice() []T {
	out := make([]T, l.size)
	copy(out, l.items[:l.size])
	return out
}

// IndexOf returns the index of the first element equal to v, or -1.
// A nil interface value matches only nil slots and is never compared with ==.
// Any other v is compared with ==, which panics when T is an interface type
// and v and a slot hold the same uncomparable dynamic type (a slice, say).
func IndexOf[T comparable](l *List[T], v T) int {
	live := l.items[:l.size]
	if isNil(v) {
		for i := range live {
			if isNil(live[i]) {
				return i
			}
		}
		return -1
	}
	for i := range live {
		if live[i] == v {
			return i
		}
	}
	return -1
}

// Contains reports whether an element equal to v is in the list.
func Contains[T comparable](l *List[T], v T) bool {
	return IndexOf(l, v) >= 0
}

// Remove deletes the first element equal to v and reports whether one was
// found. A miss leaves the list untouched.
func Remove[T comparable](l *List[T], v T) bool {
	i := IndexOf(l, v)
	if i < 0 {
		return false
	}
	// i < l.size, so RemoveAt cannot fail
	_ = l.RemoveAt(i)
	return true
}

// isNil reports whether v is a nil interface value.
func isNil[T any](v T) bool {
	return any(v) == nil
}
