package arraylist

import (
	"fmt"
	"math"
)

// DefaultCapacity is the capacity of the first buffer a list allocates
// when it grows from empty.
const DefaultCapacity = 4

// MaxCapacity is the largest capacity a list will grow to. It is the
// largest element count an int can address on every supported platform.
const MaxCapacity = math.MaxInt32

// TrimExcess only reallocates when less than this fraction of the
// capacity is in use.
const trimThreshold = 0.9

// Cap returns the number of elements the backing buffer can hold.
func (l *List[T]) Cap() int {
	return len(l.items)
}

// EnsureCapacity grows the backing buffer so it holds at least min elements.
// The new capacity doubles the old one (DefaultCapacity when empty), is
// clamped to MaxCapacity and is never less than min. A min above MaxCapacity
// is rejected and the buffer is left alone.
func (l *List[T]) EnsureCapacity(min int) error {
	if len(l.items) >= min {
		return nil
	}
	if min > MaxCapacity {
		return fmt.Errorf("%w: capacity %d exceeds %d", ErrInvalidArgument, min, MaxCapacity)
	}
	newCap := DefaultCapacity
	if len(l.items) > 0 {
		newCap = len(l.items) * 2
	}
	if uint(newCap) > MaxCapacity {
		newCap = MaxCapacity
	}
	if newCap < min {
		newCap = min
	}
	l.resize(newCap)
	return nil
}

// growForOne makes room for one more element. The list is full at
// MaxCapacity, which is misuse in the way the arena treats use after Release.
func (l *List[T]) growForOne() {
	if err := l.EnsureCapacity(l.size + 1); err != nil {
		panic(err)
	}
}

// SetCapacity replaces the backing buffer with one of exactly n elements.
// It fails if n would drop live elements. Setting the current capacity is a
// no-op; n == 0 releases the buffer without allocating.
func (l *List[T]) SetCapacity(n int) error {
	if n < l.size {
		return fmt.Errorf("%w: capacity %d is less than length %d", ErrInvalidArgument, n, l.size)
	}
	if err := checkCapacity(n); err != nil {
		return err
	}
	if n != len(l.items) {
		l.resize(n)
	}
	return nil
}

// TrimExcess shrinks the capacity to the length when less than 90% of the
// buffer is in use. Otherwise it does nothing and cursors stay valid.
func (l *List[T]) TrimExcess() {
	threshold := int(float64(len(l.items)) * trimThreshold)
	if l.size < threshold {
		// size <= n <= MaxCapacity, cannot fail
		_ = l.SetCapacity(l.size)
	}
}

// resize swaps in a buffer of n elements holding the live prefix.
// The old buffer is dropped and becomes unreachable.
func (l *List[T]) resize(n int) {
	if n == 0 {
		// nil is the shared empty buffer
		l.items = nil
	} else {
		buf := l.alloc(n)
		copy(buf, l.items[:l.size])
		l.items = buf
	}
	l.stamp++
}

// alloc returns a fresh zeroed buffer of n elements.
func (l *List[T]) alloc(n int) []T {
	l.allocs++
	return make([]T, n)
}

func checkCapacity(n int) error {
	if n < 0 || n > MaxCapacity {
		return fmt.Errorf("%w: capacity %d outside [0:%d]", ErrInvalidArgument, n, MaxCapacity)
	}
	return nil
}
