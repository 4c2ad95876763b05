package bitvec

import (
	"fmt"
	"math/bits"
	"os"

	"github.com/hupe1980/bitvec/internal/mem"
)

// exitFn terminates the process on logical exhaustion. Swapped in tests.
var exitFn = func() { os.Exit(1) }

// Bitmap is a fixed-size bit vector over an owned word array, parameterized
// by the bit-operation strategy S. The zero value is not usable; construct
// with New, FromBitString or NewFromReader.
//
// A Bitmap must not be copied. Constructors return pointers and Close
// releases the word array back to the configured Allocator.
type Bitmap[S Strategy] struct {
	strategy S
	bitCount uint64
	words    []uint64
	raw      []byte
	cfg      config
}

// New creates a Bitmap with bitCount bits, all initially clear. The backing
// word array is obtained from the configured Allocator (heap by default) and
// its byte length is rounded up to a multiple of the word size.
func New[S Strategy](bitCount uint64, opts ...Option) (*Bitmap[S], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	wordCount := (bitCount + WordBits - 1) / WordBits
	raw, err := cfg.alloc.Allocate(int(wordCount) * WordBytes)
	if err != nil {
		return nil, fmt.Errorf("bitvec: allocate %d words: %w", wordCount, err)
	}

	b := &Bitmap[S]{
		bitCount: bitCount,
		words:    mem.Words(raw),
		raw:      raw,
		cfg:      cfg,
	}
	b.Clear()

	return b, nil
}

// FromBitString creates a Bitmap whose bit count is len(s); each '1' in s
// sets the corresponding bit and each '0' leaves it clear. Any other
// character is an input-validation failure reported as *ErrInvalidBitChar.
func FromBitString[S Strategy](s string, opts ...Option) (*Bitmap[S], error) {
	b, err := New[S](uint64(len(s)), opts...)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			b.TryToSet(uint64(i))
		case '0':
		default:
			_ = b.Close()
			return nil, &ErrInvalidBitChar{Position: i, Char: s[i]}
		}
	}

	return b, nil
}

// position decomposes a bit index into its word index and intra-word
// position. An index at or beyond the bit count is a caller programming
// error.
func (b *Bitmap[S]) position(index uint64) (word int, pos uint32) {
	if index >= b.bitCount {
		panic(fmt.Sprintf("bitvec: index %d out of range [0, %d)", index, b.bitCount))
	}
	return int(index >> wordShift), uint32(index & wordMask)
}

// TryToSet sets the bit at index and returns true iff it was previously
// clear, i.e. the caller won the set.
func (b *Bitmap[S]) TryToSet(index uint64) bool {
	word, pos := b.position(index)
	return b.strategy.SetAt(b.words, word, pos)
}

// Unset clears the bit at index and returns true iff it was previously set.
func (b *Bitmap[S]) Unset(index uint64) bool {
	word, pos := b.position(index)
	return b.strategy.UnsetAt(b.words, word, pos)
}

// IsSet returns the current value of the bit at index. Under concurrent
// mutation the result is advisory only and must not be used for mutual
// exclusion; TryToSet's return value is the ownership signal.
func (b *Bitmap[S]) IsSet(index uint64) bool {
	word, pos := b.position(index)
	return b.strategy.Load(b.words, word)&mask(pos) != 0
}

// Clear resets every bit to 0, including any padding bits beyond the bit
// count. Not safe to call concurrently with other mutators; the caller must
// hold exclusive access.
func (b *Bitmap[S]) Clear() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// BitCount returns the logical number of bits.
func (b *Bitmap[S]) BitCount() uint64 {
	return b.bitCount
}

// ByteCount returns the physical storage size in bytes, rounded up to the
// word size.
func (b *Bitmap[S]) ByteCount() uint64 {
	return uint64(len(b.words)) * WordBytes
}

// InUseCount returns the population count of set bits across the full word
// array. Padding bits beyond BitCount are included in the scan; callers must
// keep them clear by convention.
func (b *Bitmap[S]) InUseCount() uint64 {
	var count int
	for i := range b.words {
		count += bits.OnesCount64(b.strategy.Load(b.words, i))
	}
	return uint64(count)
}

// SetFirstEmpty finds and claims the lowest-indexed clear bit at or after
// startingAt, returning its index. Bits below startingAt are never selected
// even if clear.
//
// On a lost race for a candidate bit the scan does not re-read the word; it
// advances to the next candidate position in the value it already observed,
// so progress is a bounded linear scan rather than a spin on one bit.
//
// Finding no claimable bit anywhere means the span accounting above this
// bitmap said a slot was free when none is. That is an unrecoverable
// invariant violation: the process is aborted rather than returning an error
// that would let the allocator double-account slots.
func (b *Bitmap[S]) SetFirstEmpty(startingAt uint64) uint64 {
	startWord, off := b.position(startingAt)

	for i := startWord; i < len(b.words); i++ {
		w := b.strategy.Load(b.words, i)
		if w == allOnes {
			off = 0
			continue
		}

		// Mark everything below the offset as unavailable so bits before
		// startingAt are never selected.
		unset := ^w &^ (mask(off) - 1)

		// The last word may extend past the bit count; its padding bits are
		// never claimable.
		if i == len(b.words)-1 {
			if tail := uint32(b.bitCount & wordMask); tail != 0 {
				unset &= mask(tail) - 1
			}
		}

		if unset == 0 {
			off = 0
			continue
		}

		for unset != 0 {
			pos := uint32(bits.TrailingZeros64(unset))
			if b.strategy.SetAt(b.words, i, pos) {
				return uint64(i)*WordBits + uint64(pos)
			}
			// Raced with another goroutine; try the next candidate from the
			// already observed value.
			unset &^= mask(pos)
		}
		off = 0
	}

	b.cfg.logger.Error("bitmap completely full, aborting", "bit_count", b.bitCount)
	exitFn()
	panic("bitvec: bitmap completely full")
}

// LowestSetBitAt returns the index of the first set bit at or after
// startingAt, or BitCount if none exists.
func (b *Bitmap[S]) LowestSetBitAt(startingAt uint64) uint64 {
	if startingAt >= b.bitCount {
		return b.bitCount
	}

	off := uint32(startingAt & wordMask)
	for i := int(startingAt >> wordShift); i < len(b.words); i++ {
		w := b.strategy.Load(b.words, i) &^ (mask(off) - 1)
		off = 0

		if w == 0 {
			continue
		}

		bit := uint64(i)*WordBits + uint64(bits.TrailingZeros64(w))
		if bit < b.bitCount {
			return bit
		}
		return b.bitCount
	}

	return b.bitCount
}

// Intersects reports whether b and other have any set bit in common. Two
// span bitmaps that do not intersect can have their live slots merged onto
// one span. Both bitmaps must have the same bit count.
func (b *Bitmap[S]) Intersects(other *Bitmap[S]) bool {
	if b.bitCount != other.bitCount {
		panic(fmt.Sprintf("bitvec: bit count mismatch: %d != %d", b.bitCount, other.bitCount))
	}

	for i := range b.words {
		if b.strategy.Load(b.words, i)&other.strategy.Load(other.words, i) != 0 {
			return true
		}
	}
	return false
}

// BitString renders the first limit bits as a '0'/'1' sequence in index
// order. limit must not exceed BitCount.
func (b *Bitmap[S]) BitString(limit uint64) string {
	if limit > b.bitCount {
		panic(fmt.Sprintf("bitvec: limit %d exceeds bit count %d", limit, b.bitCount))
	}

	buf := make([]byte, limit)
	for i := uint64(0); i < limit; i++ {
		if b.IsSet(i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// String renders all bits. For diagnostics and logging only, not a persisted
// format.
func (b *Bitmap[S]) String() string {
	return b.BitString(b.bitCount)
}

// Close releases the word array back to the allocator. It is idempotent;
// after the first call the bitmap is inert and any bit operation panics.
func (b *Bitmap[S]) Close() error {
	if b.raw == nil {
		return nil
	}

	raw := b.raw
	b.raw = nil
	b.words = nil
	b.bitCount = 0

	return b.cfg.alloc.Release(raw)
}
