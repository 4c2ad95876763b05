package bitvec

import "iter"

// Iterator is a forward-only cursor over the indices of currently-set bits.
// It takes no snapshot: concurrent mutation of the bitmap during iteration
// yields unspecified (but memory-safe) results, so iterate only in phases
// where the bitmap is not concurrently mutated, e.g. a compaction scan.
type Iterator[S Strategy] struct {
	bm  *Bitmap[S]
	idx uint64
}

// Begin returns an iterator positioned at the lowest set bit, or at the end
// sentinel if no bit is set.
func (b *Bitmap[S]) Begin() Iterator[S] {
	return Iterator[S]{bm: b, idx: b.LowestSetBitAt(0)}
}

// End returns the end sentinel iterator, whose index is BitCount.
func (b *Bitmap[S]) End() Iterator[S] {
	return Iterator[S]{bm: b, idx: b.bitCount}
}

// Index returns the set-bit index the iterator is positioned at.
func (it Iterator[S]) Index() uint64 {
	return it.idx
}

// Next advances to the next set bit, or to the end sentinel when none
// remains.
func (it *Iterator[S]) Next() {
	if it.idx+1 >= it.bm.bitCount {
		it.idx = it.bm.bitCount
		return
	}
	it.idx = it.bm.LowestSetBitAt(it.idx + 1)
}

// Equal reports whether both iterators reference the same underlying word
// storage and have the same current index.
func (it Iterator[S]) Equal(other Iterator[S]) bool {
	return it.bm == other.bm && it.idx == other.idx
}

// SetBits returns the set-bit indices in ascending order. The same
// no-snapshot hazard as Iterator applies.
func (b *Bitmap[S]) SetBits() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for it, end := b.Begin(), b.End(); !it.Equal(end); it.Next() {
			if !yield(it.Index()) {
				return
			}
		}
	}
}
