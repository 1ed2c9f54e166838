// Package arraylist implements a generic growable array with an explicit
// backing buffer and mutation-checked cursors.
//
// # Overview
//
// A List owns one contiguous backing buffer and tracks how much of it is
// live. It does not delegate to append: growth allocates a fresh buffer and
// copies the live prefix, so the list is always the only owner of its buffer.
// This is useful for:
//
//   - Containers whose growth and allocation count must be predictable
//   - Iteration that must notice when the data under it changed
//   - Comparing sequence representations in benchmarks
//
// # Basic Usage
//
//	l := arraylist.New[int]() // capacity 0, no allocation
//	l.Append(10)              // grows to DefaultCapacity
//	l.Append(20)
//
//	v, err := l.Get(1)        // 20, nil
//	_, err = l.Get(5)         // wraps ErrIndexOutOfRange
//
//	_ = l.Insert(0, 5)        // [5 10 20]
//	_ = l.RemoveAt(1)         // [5 20]
//	arraylist.Remove(l, 5)    // [20]
//
// # Construction
//
// FromSlice and FromCollection know the element count up front and make a
// single allocation of exactly that size. FromSeq cannot, so it appends one
// element at a time and grows like any other list.
//
// # Growth
//
// When a list must grow to hold min elements, the new capacity is double the
// old one (DefaultCapacity when empty), clamped to MaxCapacity, and at least
// min. SetCapacity sets an exact capacity and TrimExcess releases unused
// space when less than 90% of the buffer is in use. Removed and cleared
// slots are zeroed so the list keeps nothing alive past its length.
//
// # Iteration
//
// Every mutation, including Set and Clear on an empty list, bumps the list's
// mutation stamp. A Cursor records the stamp when it is created and checks it
// on every Next and Reset; a mismatch yields ErrConcurrentModification.
//
//	c := l.Cursor()
//	for {
//		ok, err := c.Next()
//		if err != nil || !ok {
//			break
//		}
//		v, _ := c.Current()
//		fmt.Println(v)
//	}
//
// All and Indexed wrap a Cursor for range loops and panic on a mismatch:
//
//	for v := range l.All() {
//		fmt.Println(v)
//	}
//
// # Thread Safety
//
// List is not thread-safe. A list has a single owner; cursors do not lock it,
// mutation is detected lazily when a cursor next advances.
//
// # Metrics and Monitoring
//
//	m := l.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Buffers allocated: %d\n", m.Allocations)
package arraylist
