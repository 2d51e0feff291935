package priorityqueue

// heapify fills an empty heap with the elements and restores the heap property bottom up in O(n).
func (q *IndexedPriorityQueue[T]) heapify(elements []T) {
	q.heap = append(q.heap, elements...)
	for position, element := range q.heap {
		q.index.add(element, position)
	}

	for k := parent(len(q.heap) - 1); k >= 0; k-- {
		q.sink(k)
	}

	q.logger.LogDebug("heapified elements", "size", len(q.heap), "distinctValues", q.index.size())
}

// insert appends the value at the next free slot and swims it up.
func (q *IndexedPriorityQueue[T]) insert(value T) {
	if previousCapacity := cap(q.heap); len(q.heap) == previousCapacity {
		q.heap = append(q.heap, value)
		q.logger.LogTrace("grew heap storage", "previousCapacity", previousCapacity, "capacity", cap(q.heap))
	} else {
		q.heap = append(q.heap, value)
	}

	position := len(q.heap) - 1
	q.index.add(value, position)
	q.swim(position)
}

// removeAt removes the element at the given position and returns it. The position must be valid.
func (q *IndexedPriorityQueue[T]) removeAt(position int) (removed T) {
	last := len(q.heap) - 1
	removed = q.heap[position]

	q.swap(position, last)

	var zero T
	q.heap[last] = zero
	q.heap = q.heap[:last]
	q.index.remove(removed, last)

	if position == last {
		return removed
	}

	if !q.sink(position) {
		q.swim(position)
	}

	return removed
}

// swim moves the element at position k up until its parent is smaller.
func (q *IndexedPriorityQueue[T]) swim(k int) {
	for p := parent(k); k > 0 && q.less(k, p); p = parent(k) {
		q.swap(p, k)
		k = p
	}
}

// sink moves the element at position k down along its smaller children and returns true if it moved.
func (q *IndexedPriorityQueue[T]) sink(k int) (moved bool) {
	size := len(q.heap)
	for {
		left, right := leftChild(k), rightChild(k)
		if left >= size {
			return moved
		}

		smallest := left
		if right < size && q.less(right, left) {
			smallest = right
		}

		if q.less(k, smallest) {
			return moved
		}

		q.swap(smallest, k)
		k, moved = smallest, true
	}
}

// swap exchanges the elements at positions i and j and updates their positions in the index.
func (q *IndexedPriorityQueue[T]) swap(i, j int) {
	first, second := q.heap[i], q.heap[j]

	q.heap[i], q.heap[j] = second, first
	q.index.swap(first, second, i, j)
}

// less returns true if the element at position i is smaller than or equal to the element at position j.
func (q *IndexedPriorityQueue[T]) less(i, j int) bool {
	return q.compare(q.heap[i], q.heap[j]) <= 0
}

func parent(k int) int     { return (k - 1) / 2 }
func leftChild(k int) int  { return 2*k + 1 }
func rightChild(k int) int { return 2*k + 2 }
