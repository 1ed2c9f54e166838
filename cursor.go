package arraylist

import (
	"fmt"
	"iter"
)

// Cursor walks a list front to back. It remembers the list's mutation stamp
// when it is created and refuses to continue once the list has been mutated.
//
// A Cursor starts before the first element:
//
//	c := l.Cursor()
//	for {
//		ok, err := c.Next()
//		if err != nil || !ok {
//			break
//		}
//		v, _ := c.Current()
//		...
//	}
type Cursor[T any] struct {
	list    *List[T]
	index   int // next element; 0 before start, -1 once exhausted
	stamp   uint64
	current T
}

// errUnbound is returned by a zero Cursor, which has no list to walk.
var errUnbound = fmt.Errorf("%w: cursor not bound to a list", ErrInvalidState)

// Cursor returns a cursor positioned before the first element.
func (l *List[T]) Cursor() Cursor[T] {
	return Cursor[T]{list: l, stamp: l.stamp}
}

// Next advances to the next element. It returns false with a nil error once
// the elements are exhausted and ErrConcurrentModification if the list was
// mutated since the cursor was created or last reset. A zero Cursor, not
// obtained from List.Cursor, returns ErrInvalidState.
func (c *Cursor[T]) Next() (bool, error) {
	// Fast path: unmutated and in range
	l := c.list
	if l != nil && c.stamp == l.stamp && uint(c.index) < uint(l.size) {
		c.current = l.items[c.index]
		c.index++
		return true, nil
	}
	return c.nextSlow()
}

// nextSlow handles advancing when the fast path fails.
func (c *Cursor[T]) nextSlow() (bool, error) {
	if c.list == nil {
		return false, errUnbound
	}
	if c.stamp != c.list.stamp {
		return false, fmt.Errorf("%w: stamp %d, list at %d", ErrConcurrentModification, c.stamp, c.list.stamp)
	}
	var zero T
	c.index = -1
	c.current = zero
	return false, nil
}

// Current returns the element the cursor is positioned on.
func (c *Cursor[T]) Current() (T, error) {
	if c.index <= 0 {
		var zero T
		if c.index == 0 {
			return zero, fmt.Errorf("%w: Next not called", ErrInvalidState)
		}
		return zero, fmt.Errorf("%w: cursor exhausted", ErrInvalidState)
	}
	return c.current, nil
}

// Reset moves the cursor back before the first element. It fails if the list
// was mutated since the cursor was created.
func (c *Cursor[T]) Reset() error {
	if c.list == nil {
		return errUnbound
	}
	if c.stamp != c.list.stamp {
		return fmt.Errorf("%w: stamp %d, list at %d", ErrConcurrentModification, c.stamp, c.list.stamp)
	}
	var zero T
	c.index = 0
	c.current = zero
	return nil
}

// All returns an iterator over the elements for use with range.
// Mutating the list inside the loop body panics with an error wrapping
// ErrConcurrentModification on the next iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := l.Cursor()
		for c.advance() {
			if !yield(c.current) {
				return
			}
		}
	}
}

// Indexed is like All but also yields each element's index.
func (l *List[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c := l.Cursor()
		for c.advance() {
			if !yield(c.index-1, c.current) {
				return
			}
		}
	}
}

// advance is Next for range loops, which have no error channel.
func (c *Cursor[T]) advance() bool {
	ok, err := c.Next()
	if err != nil {
		panic(err)
	}
	return ok
}
