package host

import "iter"

// column is a type-erased block store for one component type.
type column interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Compact() map[int]int
	Iter() iter.Seq[int]
	Len() int
}

const blockSize = 64

// blockStore keeps values of T in fixed-size blocks. Indices are stable until
// Compact; deleted slots are reused before the store grows.
type blockStore[T any] struct {
	blocks    [][blockSize]T
	filled    [][blockSize]bool
	freeSlots []int
	nextIndex int
}

func newColumn[T any]() column {
	return &blockStore[T]{}
}

// Append stores item, which must be a T or *T, and returns its index.
// It returns -1 for any other type.
func (bs *blockStore[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		if v == nil {
			return -1
		}
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(bs.freeSlots); n > 0 {
		index = bs.freeSlots[n-1]
		bs.freeSlots = bs.freeSlots[:n-1]
	} else {
		index = bs.nextIndex
		bs.nextIndex++
		if index/blockSize >= len(bs.blocks) {
			bs.blocks = append(bs.blocks, [blockSize]T{})
			bs.filled = append(bs.filled, [blockSize]bool{})
		}
	}

	b, s := index/blockSize, index%blockSize
	bs.blocks[b][s] = value
	bs.filled[b][s] = true
	return index
}

// Get returns a *T for the slot, or nil when the slot is empty.
func (bs *blockStore[T]) Get(index int) any {
	if p := bs.ptr(index); p != nil {
		return p
	}
	return nil
}

func (bs *blockStore[T]) ptr(index int) *T {
	if !bs.Has(index) {
		return nil
	}
	return &bs.blocks[index/blockSize][index%blockSize]
}

func (bs *blockStore[T]) Delete(index int) {
	if !bs.Has(index) {
		return
	}
	b, s := index/blockSize, index%blockSize
	var zero T
	bs.blocks[b][s] = zero
	bs.filled[b][s] = false
	bs.freeSlots = append(bs.freeSlots, index)
}

func (bs *blockStore[T]) Has(index int) bool {
	if index < 0 || index >= bs.nextIndex {
		return false
	}
	return bs.filled[index/blockSize][index%blockSize]
}

// Len is the number of filled slots.
func (bs *blockStore[T]) Len() int {
	return bs.nextIndex - len(bs.freeSlots)
}

// Compact packs filled slots to the front, preserving their order, and
// returns the old→new index mapping.
func (bs *blockStore[T]) Compact() map[int]int {
	moved := make(map[int]int)
	live := bs.Len()
	if live == 0 {
		bs.blocks = nil
		bs.filled = nil
		bs.freeSlots = nil
		bs.nextIndex = 0
		return moved
	}

	n := (live + blockSize - 1) / blockSize
	blocks := make([][blockSize]T, n)
	filled := make([][blockSize]bool, n)

	w := 0
	for r := range bs.Iter() {
		moved[r] = w
		blocks[w/blockSize][w%blockSize] = bs.blocks[r/blockSize][r%blockSize]
		filled[w/blockSize][w%blockSize] = true
		w++
	}

	bs.blocks = blocks
	bs.filled = filled
	bs.freeSlots = nil
	bs.nextIndex = w
	return moved
}

func (bs *blockStore[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < bs.nextIndex; i++ {
			if bs.filled[i/blockSize][i%blockSize] && !yield(i) {
				return
			}
		}
	}
}
