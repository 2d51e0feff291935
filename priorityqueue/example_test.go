package priorityqueue_test

import (
	"fmt"

	"github.com/iotaledger/hive.go/lo"

	"github.com/iotaledger/indexedpq/priorityqueue"
)

// ExampleIndexedPriorityQueue demonstrates inserting and extracting elements.
func ExampleIndexedPriorityQueue() {
	queue := priorityqueue.New[int]()
	for _, value := range []int{5, 3, 8, 1, 9, 2} {
		_ = queue.Add(value)
	}

	fmt.Println(queue)

	for !queue.IsEmpty() {
		minimum, _ := queue.Poll()
		fmt.Print(minimum, " ")
	}
	fmt.Println()

	// Output:
	// [1, 3, 2, 5, 9, 8]
	// 1 2 3 5 8 9
}

// ExampleNewFromSlice demonstrates removing repeated values from a heapified queue.
func ExampleNewFromSlice() {
	queue := lo.PanicOnErr(priorityqueue.NewFromSlice([]string{"b", "a", "b", "c"}))

	fmt.Println(queue.Contains("b"), queue.Size())
	fmt.Println(queue.Remove("b"), queue.Contains("b"), queue.Size())
	fmt.Println(queue.Remove("b"), queue.Contains("b"), queue.Size())
	fmt.Println(queue.Remove("b"))

	// Output:
	// true 4
	// true true 3
	// true false 2
	// false
}
