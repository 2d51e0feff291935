//go:build deadlock

package priorityqueue

import (
	"time"

	"github.com/sasha-s/go-deadlock"
)

// rwMutex guards ThreadSafeIndexedPriorityQueue and reports lock ordering problems when built with the deadlock tag.
type rwMutex = deadlock.RWMutex

func init() {
	deadlock.Opts.DeadlockTimeout = 20 * time.Second
}
