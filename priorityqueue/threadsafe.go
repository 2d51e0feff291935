package priorityqueue

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/runtime/options"
)

// ThreadSafeIndexedPriorityQueue is an IndexedPriorityQueue that can be used by multiple goroutines.
type ThreadSafeIndexedPriorityQueue[T comparable] struct {
	queue *IndexedPriorityQueue[T]
	mutex rwMutex
}

// NewThreadSafe creates an empty ThreadSafeIndexedPriorityQueue for an ordered type.
func NewThreadSafe[T constraints.Ordered](opts ...options.Option[Options]) *ThreadSafeIndexedPriorityQueue[T] {
	return Synchronized(New[T](opts...))
}

// NewThreadSafeWithComparator creates an empty ThreadSafeIndexedPriorityQueue that orders its elements using the
// given function.
func NewThreadSafeWithComparator[T comparable](compare func(a, b T) int, opts ...options.Option[Options]) *ThreadSafeIndexedPriorityQueue[T] {
	return Synchronized(NewWithComparator(compare, opts...))
}

// Synchronized wraps the given queue. The queue must not be used directly afterwards.
func Synchronized[T comparable](queue *IndexedPriorityQueue[T]) *ThreadSafeIndexedPriorityQueue[T] {
	return &ThreadSafeIndexedPriorityQueue[T]{
		queue: queue,
	}
}

// IsEmpty returns true if the queue holds no elements.
func (t *ThreadSafeIndexedPriorityQueue[T]) IsEmpty() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.queue.IsEmpty()
}

// Size returns the number of elements in the queue.
func (t *ThreadSafeIndexedPriorityQueue[T]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.queue.Size()
}

// Add inserts the value into the queue.
func (t *ThreadSafeIndexedPriorityQueue[T]) Add(value T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.queue.Add(value)
}

// AddAll inserts the values one after another while holding the lock.
func (t *ThreadSafeIndexedPriorityQueue[T]) AddAll(values ...T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.queue.AddAll(values...)
}

// Peek returns the smallest element without removing it.
func (t *ThreadSafeIndexedPriorityQueue[T]) Peek() (element T, exists bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.queue.Peek()
}

// Poll removes and returns the smallest element.
func (t *ThreadSafeIndexedPriorityQueue[T]) Poll() (element T, exists bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.queue.Poll()
}

// PeekMin returns the smallest element without removing it or ErrEmptyCollection if the queue is empty.
func (t *ThreadSafeIndexedPriorityQueue[T]) PeekMin() (T, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.queue.PeekMin()
}

// ExtractMin removes and returns the smallest element or ErrEmptyCollection if the queue is empty.
func (t *ThreadSafeIndexedPriorityQueue[T]) ExtractMin() (T, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.queue.ExtractMin()
}

// PopAll removes all elements and returns them in ascending order.
func (t *ThreadSafeIndexedPriorityQueue[T]) PopAll() []T {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	elements := make([]T, 0, t.queue.Size())
	for element, exists := t.queue.Poll(); exists; element, exists = t.queue.Poll() {
		elements = append(elements, element)
	}

	return elements
}

// Contains returns true if the value is stored in the queue.
func (t *ThreadSafeIndexedPriorityQueue[T]) Contains(value T) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.queue.Contains(value)
}

// Remove deletes one occurrence of the value and returns true if something was removed.
func (t *ThreadSafeIndexedPriorityQueue[T]) Remove(value T) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.queue.Remove(value)
}

// Clear removes all elements.
func (t *ThreadSafeIndexedPriorityQueue[T]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.queue.Clear()
}

// Values returns a copy of the elements in heap order.
func (t *ThreadSafeIndexedPriorityQueue[T]) Values() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.queue.Values()
}

// IsMinHeap checks the heap property of the subtree rooted at position k.
func (t *ThreadSafeIndexedPriorityQueue[T]) IsMinHeap(k int) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.queue.IsMinHeap(k)
}

// String returns the elements in heap order.
func (t *ThreadSafeIndexedPriorityQueue[T]) String() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.queue.String()
}
