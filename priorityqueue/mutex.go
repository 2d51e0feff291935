//go:build !deadlock

package priorityqueue

import "sync"

// rwMutex guards ThreadSafeIndexedPriorityQueue.
type rwMutex = sync.RWMutex
