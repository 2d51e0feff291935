package priorityqueue

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// positionIndex maps every value stored in the heap to the ordered set of heap positions holding it.
type positionIndex[T comparable] struct {
	// positions holds one non-empty set of int positions per distinct value.
	positions *shrinkingmap.ShrinkingMap[T, *treeset.Set]

	// opts are kept to recreate the map on clear.
	opts []shrinkingmap.Option
}

// newPositionIndex creates an empty positionIndex.
func newPositionIndex[T comparable](opts ...shrinkingmap.Option) *positionIndex[T] {
	return &positionIndex[T]{
		positions: shrinkingmap.New[T, *treeset.Set](opts...),
		opts:      opts,
	}
}

// add records that the value is stored at the given position.
func (p *positionIndex[T]) add(value T, position int) {
	set, _ := p.positions.GetOrCreate(value, func() *treeset.Set {
		return treeset.NewWithIntComparator()
	})

	set.Add(position)
}

// remove drops the given position of the value and forgets the value once no position is left.
func (p *positionIndex[T]) remove(value T, position int) {
	set, exists := p.positions.Get(value)
	if !exists {
		return
	}

	set.Remove(position)
	if set.Empty() {
		p.positions.Delete(value)
	}
}

// swap exchanges the positions of two values that traded places in the heap. The first value moves from
// firstPosition to secondPosition and the second value the other way round.
func (p *positionIndex[T]) swap(first, second T, firstPosition, secondPosition int) {
	firstSet, secondSet := p.mustGet(first), p.mustGet(second)

	firstSet.Remove(firstPosition)
	secondSet.Remove(secondPosition)

	firstSet.Add(secondPosition)
	secondSet.Add(firstPosition)
}

// last returns the largest position holding the value.
func (p *positionIndex[T]) last(value T) (position int, exists bool) {
	set, exists := p.positions.Get(value)
	if !exists {
		return 0, false
	}

	iterator := set.Iterator()
	if !iterator.Last() {
		return 0, false
	}

	//nolint:forcetypeassert // the set only ever holds ints
	return iterator.Value().(int), true
}

// has returns true if the value is stored at least once.
func (p *positionIndex[T]) has(value T) bool {
	return p.positions.Has(value)
}

// get returns the ascending positions of the value.
func (p *positionIndex[T]) get(value T) []int {
	set, exists := p.positions.Get(value)
	if !exists {
		return nil
	}

	return lo.Map(set.Values(), func(position interface{}) int {
		//nolint:forcetypeassert // the set only ever holds ints
		return position.(int)
	})
}

// size returns the number of distinct values.
func (p *positionIndex[T]) size() int {
	return p.positions.Size()
}

// clear forgets all values.
func (p *positionIndex[T]) clear() {
	p.positions = shrinkingmap.New[T, *treeset.Set](p.opts...)
}

// mustGet returns the position set of a value that is known to be stored in the heap.
func (p *positionIndex[T]) mustGet(value T) *treeset.Set {
	set, exists := p.positions.Get(value)
	if !exists {
		panic(ierrors.Errorf("position index is out of sync: no positions recorded for %v", value))
	}

	return set
}
