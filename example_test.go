package arraylist

import (
	"errors"
	"fmt"
	"slices"
)

// Example demonstrates basic list usage
func Example() {
	l := New[int]()

	for i := 1; i <= 5; i++ {
		l.Append(i * 10)
	}
	fmt.Printf("Length: %d, capacity: %d\n", l.Len(), l.Cap())

	v, _ := l.Get(2)
	fmt.Printf("Element 2: %d\n", v)

	_ = l.Insert(0, 5)
	_ = l.RemoveAt(3)
	Remove(l, 50)
	fmt.Printf("Elements: %v\n", l.ToSlice())

	_, err := l.Get(10)
	fmt.Println(errors.Is(err, ErrIndexOutOfRange))

	// Output:
	// Length: 5, capacity: 8
	// Element 2: 30
	// Elements: [5 10 20 40]
	// true
}

// ExampleList_Cursor demonstrates mutation detection during iteration
func ExampleList_Cursor() {
	l := FromSlice([]string{"a", "b", "c"})
	c := l.Cursor()

	for {
		ok, err := c.Next()
		if err != nil {
			fmt.Println(err)
			break
		}
		if !ok {
			break
		}
		v, _ := c.Current()
		fmt.Println(v)
		if v == "b" {
			l.Append("d")
		}
	}

	// Output:
	// a
	// b
	// arraylist: list modified during iteration: stamp 0, list at 2
}

// ExampleList_All demonstrates range iteration
func ExampleList_All() {
	l, _ := FromSeq(slices.Values([]int{3, 1, 4}))
	for v := range l.All() {
		fmt.Println(v)
	}

	// Output:
	// 3
	// 1
	// 4
}

// ExampleList_TrimExcess demonstrates capacity control
func ExampleList_TrimExcess() {
	l, _ := NewWithCapacity[int](100)
	for i := 0; i < 5; i++ {
		l.Append(i)
	}
	fmt.Printf("Before: capacity %d\n", l.Cap())

	l.TrimExcess()
	fmt.Printf("After: capacity %d\n", l.Cap())

	// Output:
	// Before: capacity 100
	// After: capacity 5
}

// ExampleListMetrics demonstrates monitoring list growth
func ExampleListMetrics() {
	l := New[int64]()
	for i := 0; i < 20; i++ {
		l.Append(int64(i))
	}

	metrics := l.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Length: %d\n", metrics.Len)
	fmt.Printf("  Capacity: %d\n", metrics.Cap)
	fmt.Printf("  Allocations: %d\n", metrics.Allocations)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)

	// Output:
	// Metrics:
	//   Length: 20
	//   Capacity: 32
	//   Allocations: 4
	//   Utilization: 62.5%
}
