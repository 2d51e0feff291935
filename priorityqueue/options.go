package priorityqueue

import (
	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// Options contains the configuration options of an IndexedPriorityQueue.
type Options struct {
	// Capacity is the number of heap slots that are allocated up front.
	Capacity int

	// Logger is the logger used to report structural events (growth, heapify, clear).
	Logger log.Logger

	// IndexOptions are handed to the map that backs the position index.
	IndexOptions []shrinkingmap.Option
}

// WithCapacity is an option to pre-allocate the given number of heap slots.
func WithCapacity(capacity int) options.Option[Options] {
	return func(opts *Options) {
		if capacity > 0 {
			opts.Capacity = capacity
		}
	}
}

// WithLogger is an option to set the logger of the queue.
func WithLogger(logger log.Logger) options.Option[Options] {
	return func(opts *Options) {
		opts.Logger = lo.Cond(logger != nil, logger, log.EmptyLogger)
	}
}

// WithIndexShrinkingThresholdRatio is an option to set the ratio between deleted and live values of the position
// index that triggers shrinking of its map (0 disables the check).
func WithIndexShrinkingThresholdRatio(ratio float32) options.Option[Options] {
	return func(opts *Options) {
		opts.IndexOptions = append(opts.IndexOptions, shrinkingmap.WithShrinkingThresholdRatio(ratio))
	}
}

// WithIndexShrinkingThresholdCount is an option to set the number of deleted values of the position index that
// triggers shrinking of its map (0 disables the check).
func WithIndexShrinkingThresholdCount(count int) options.Option[Options] {
	return func(opts *Options) {
		opts.IndexOptions = append(opts.IndexOptions, shrinkingmap.WithShrinkingThresholdCount(count))
	}
}

func newOptions(opts ...options.Option[Options]) *Options {
	return options.Apply(&Options{
		Logger: log.EmptyLogger,
	}, opts)
}
