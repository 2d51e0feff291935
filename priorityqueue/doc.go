// Package priorityqueue implements an indexed minimum priority queue.
//
// The queue stores its elements in an array backed binary heap and keeps a secondary index that maps every stored
// value to the ordered set of heap positions it currently occupies. Every relocation of an element inside the heap
// updates that index, which gives the queue properties a plain heap does not have:
//   - O(1) containment checks (Contains)
//   - O(log n) removal of an arbitrary value (Remove)
//   - O(n) construction from an existing slice (NewFromSlice)
//
// Values may repeat. When a value is stored more than once, Remove deletes the occurrence with the largest heap
// position.
//
// Basic usage:
//
//	queue := priorityqueue.New[int]()
//	_ = queue.Add(5)
//	_ = queue.Add(3)
//
//	if minimum, exists := queue.Peek(); exists {
//	    fmt.Println(minimum) // 3
//	}
//
//	queue.Remove(5)
//
// IndexedPriorityQueue is not safe for concurrent use. ThreadSafeIndexedPriorityQueue guards the same API with a
// single read/write mutex.
package priorityqueue
