package bitvec

import (
	"encoding/binary"
	"io"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Snapshot copies the set-bit indices into a compressed roaring bitmap for
// offline occupancy and fragmentation analysis by the span logic above this
// core. The copy is taken through the lazy iterator, so the usual
// no-snapshot-isolation hazard applies: take snapshots only while the bitmap
// is not concurrently mutated.
func (b *Bitmap[S]) Snapshot() *roaring64.Bitmap {
	rb := roaring64.New()
	for idx := range b.SetBits() {
		rb.Add(idx)
	}
	return rb
}

// WriteTo dumps the bitmap as a little-endian bit count followed by the raw
// words. A diagnostic/checkpoint surface, not a versioned wire format.
func (b *Bitmap[S]) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, b.bitCount); err != nil {
		return 0, err
	}
	n := int64(WordBytes)

	for i := range b.words {
		if err := binary.Write(w, binary.LittleEndian, b.strategy.Load(b.words, i)); err != nil {
			return n, err
		}
		n += WordBytes
	}
	return n, nil
}

// NewFromReader reconstructs a Bitmap from a WriteTo dump. Construction is
// single-threaded; the resulting bitmap carries the strategy S regardless of
// the strategy that produced the dump, since the word layout is identical.
func NewFromReader[S Strategy](r io.Reader, opts ...Option) (*Bitmap[S], error) {
	var bitCount uint64
	if err := binary.Read(r, binary.LittleEndian, &bitCount); err != nil {
		return nil, err
	}

	b, err := New[S](bitCount, opts...)
	if err != nil {
		return nil, err
	}

	for i := range b.words {
		if err := binary.Read(r, binary.LittleEndian, &b.words[i]); err != nil {
			_ = b.Close()
			return nil, err
		}
	}
	return b, nil
}
