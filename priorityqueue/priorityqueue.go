package priorityqueue

import (
	"fmt"
	"strings"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// ComparableElement is a constraint for element types that define their own total order.
type ComparableElement[T any] interface {
	comparable
	constraints.Comparable[T]
}

// IndexedPriorityQueue is a minimum priority queue that keeps track of the heap positions of all of its values.
type IndexedPriorityQueue[T comparable] struct {
	// heap holds the elements in heap order; its length is the size of the queue.
	heap []T

	// index maps every value to the heap positions holding it.
	index *positionIndex[T]

	// compare defines the total order of the elements.
	compare func(a, b T) int

	// logger is used to report structural events.
	logger log.Logger
}

// New creates an empty IndexedPriorityQueue for an ordered type. Float elements must not be NaN, NaN has no place in
// the total order of the queue and is rejected by Add.
func New[T constraints.Ordered](opts ...options.Option[Options]) *IndexedPriorityQueue[T] {
	return NewWithComparator(lo.Compare[T], opts...)
}

// NewWithComparable creates an empty IndexedPriorityQueue for a type that implements its own Compare method.
func NewWithComparable[T ComparableElement[T]](opts ...options.Option[Options]) *IndexedPriorityQueue[T] {
	return NewWithComparator(compareElements[T], opts...)
}

// NewWithComparator creates an empty IndexedPriorityQueue that orders its elements using the given function. The
// function must define a total order and return a negative number, zero or a positive number if a is smaller than,
// equal to or greater than b.
func NewWithComparator[T comparable](compare func(a, b T) int, opts ...options.Option[Options]) *IndexedPriorityQueue[T] {
	queueOptions := newOptions(opts...)

	return &IndexedPriorityQueue[T]{
		heap:    make([]T, 0, queueOptions.Capacity),
		index:   newPositionIndex[T](queueOptions.IndexOptions...),
		compare: compare,
		logger:  queueOptions.Logger,
	}
}

// NewFromSlice creates an IndexedPriorityQueue holding the given elements in O(n). Float elements must not be NaN,
// such slices are rejected with ErrInvalidArgument.
func NewFromSlice[T constraints.Ordered](elements []T, opts ...options.Option[Options]) (*IndexedPriorityQueue[T], error) {
	return NewFromSliceWithComparator(elements, lo.Compare[T], opts...)
}

// NewFromSliceWithComparable creates an IndexedPriorityQueue holding the given elements in O(n).
func NewFromSliceWithComparable[T ComparableElement[T]](elements []T, opts ...options.Option[Options]) (*IndexedPriorityQueue[T], error) {
	return NewFromSliceWithComparator(elements, compareElements[T], opts...)
}

// NewFromSliceWithComparator creates an IndexedPriorityQueue holding the given elements in O(n). It fails with
// ErrInvalidArgument if one of the elements is absent (nil) or not equal to itself (NaN).
func NewFromSliceWithComparator[T comparable](elements []T, compare func(a, b T) int, opts ...options.Option[Options]) (*IndexedPriorityQueue[T], error) {
	for i, element := range elements {
		if err := validate(element); err != nil {
			return nil, ierrors.Wrapf(err, "invalid element at index %d", i)
		}
	}

	queue := NewWithComparator(compare, append([]options.Option[Options]{WithCapacity(len(elements))}, opts...)...)
	queue.heapify(elements)

	return queue, nil
}

// IsEmpty returns true if the queue holds no elements.
func (q *IndexedPriorityQueue[T]) IsEmpty() bool {
	return len(q.heap) == 0
}

// Size returns the number of elements in the queue.
func (q *IndexedPriorityQueue[T]) Size() int {
	return len(q.heap)
}

// Capacity returns the number of allocated heap slots.
func (q *IndexedPriorityQueue[T]) Capacity() int {
	return cap(q.heap)
}

// DistinctValues returns the number of distinct values in the queue.
func (q *IndexedPriorityQueue[T]) DistinctValues() int {
	return q.index.size()
}

// Add inserts the value into the queue in O(log n). It fails with ErrInvalidArgument if the value is absent (nil) or
// not equal to itself (NaN).
func (q *IndexedPriorityQueue[T]) Add(value T) error {
	if err := validate(value); err != nil {
		return err
	}

	q.insert(value)

	return nil
}

// AddAll inserts the values one after another. It stops at the first invalid value, values before it stay added.
func (q *IndexedPriorityQueue[T]) AddAll(values ...T) error {
	for i, value := range values {
		if err := q.Add(value); err != nil {
			return ierrors.Wrapf(err, "failed to add value at index %d", i)
		}
	}

	return nil
}

// Peek returns the smallest element without removing it.
func (q *IndexedPriorityQueue[T]) Peek() (element T, exists bool) {
	if exists = len(q.heap) != 0; exists {
		element = q.heap[0]
	}

	return element, exists
}

// Poll removes and returns the smallest element.
func (q *IndexedPriorityQueue[T]) Poll() (element T, exists bool) {
	if exists = len(q.heap) != 0; exists {
		element = q.removeAt(0)
	}

	return element, exists
}

// PeekMin returns the smallest element without removing it or ErrEmptyCollection if the queue is empty.
func (q *IndexedPriorityQueue[T]) PeekMin() (T, error) {
	element, exists := q.Peek()
	if !exists {
		return element, ierrors.Wrap(ErrEmptyCollection, "failed to peek")
	}

	return element, nil
}

// ExtractMin removes and returns the smallest element or ErrEmptyCollection if the queue is empty.
func (q *IndexedPriorityQueue[T]) ExtractMin() (T, error) {
	element, exists := q.Poll()
	if !exists {
		return element, ierrors.Wrap(ErrEmptyCollection, "failed to extract minimum")
	}

	return element, nil
}

// Contains returns true if the value is stored in the queue.
func (q *IndexedPriorityQueue[T]) Contains(value T) bool {
	return validate(value) == nil && q.index.has(value)
}

// Remove deletes one occurrence of the value in O(log n) and returns true if something was removed. If the value
// is stored more than once, the occurrence with the largest heap position is removed.
func (q *IndexedPriorityQueue[T]) Remove(value T) (removed bool) {
	if validate(value) != nil {
		return false
	}

	position, exists := q.index.last(value)
	if exists {
		q.removeAt(position)
	}

	return exists
}

// Clear removes all elements. The allocated heap slots are kept.
func (q *IndexedPriorityQueue[T]) Clear() {
	q.logger.LogDebug("clearing queue", "size", len(q.heap), "distinctValues", q.index.size())

	clear(q.heap)
	q.heap = q.heap[:0]
	q.index.clear()
}

// Values returns a copy of the elements in heap order.
func (q *IndexedPriorityQueue[T]) Values() []T {
	return lo.CopySlice(q.heap)
}

// Positions returns the ascending heap positions of the value.
func (q *IndexedPriorityQueue[T]) Positions(value T) []int {
	return q.index.get(value)
}

// IsMinHeap recursively checks the heap property of the subtree rooted at position k. IsMinHeap(0) checks the whole
// heap.
func (q *IndexedPriorityQueue[T]) IsMinHeap(k int) bool {
	size := len(q.heap)
	if k < 0 || k >= size {
		return true
	}

	left, right := leftChild(k), rightChild(k)
	if left < size && !q.less(k, left) {
		return false
	}
	if right < size && !q.less(k, right) {
		return false
	}

	return q.IsMinHeap(left) && q.IsMinHeap(right)
}

// String returns the elements in heap order.
func (q *IndexedPriorityQueue[T]) String() string {
	return "[" + strings.Join(lo.Map(q.heap, func(element T) string { return fmt.Sprint(element) }), ", ") + "]"
}

// compareElements compares two elements that implement their own order.
func compareElements[T constraints.Comparable[T]](a, b T) int {
	return a.Compare(b)
}
