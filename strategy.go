package bitvec

import "sync/atomic"

const (
	// WordBits is the number of bits per storage word.
	WordBits = 64
	// WordBytes is the size of a storage word in bytes.
	WordBytes = 8

	wordShift = 6
	wordMask  = WordBits - 1

	allOnes = ^uint64(0)
)

// mask returns the single-bit mask for the given intra-word position.
// To find the bit in a word, do this: word & mask(pos).
func mask(pos uint32) uint64 {
	return uint64(1) << pos
}

// Strategy is the bit-operation policy of a Bitmap. SetAt and UnsetAt ensure
// the target state for the addressed bit and return true iff the bit's
// previous value differed from that target, i.e. true means "this call
// actually changed the bit".
//
// Load exists because scans over words that are concurrently mutated through
// SetAt/UnsetAt must observe them through the same discipline: the Atomic
// strategy loads atomically, the Relaxed strategy reads plainly.
type Strategy interface {
	SetAt(words []uint64, word int, pos uint32) bool
	UnsetAt(words []uint64, word int, pos uint32) bool
	Load(words []uint64, word int) uint64
}

// Atomic performs compare-and-swap retry loops on the word and is safe under
// concurrent access from multiple goroutines.
type Atomic struct{}

// SetAt sets the bit and returns true iff it was previously clear.
func (Atomic) SetAt(words []uint64, word int, pos uint32) bool {
	m := mask(pos)
	for {
		old := atomic.LoadUint64(&words[word])
		if atomic.CompareAndSwapUint64(&words[word], old, old|m) {
			return old&m == 0
		}
	}
}

// UnsetAt clears the bit and returns true iff it was previously set.
func (Atomic) UnsetAt(words []uint64, word int, pos uint32) bool {
	m := mask(pos)
	for {
		old := atomic.LoadUint64(&words[word])
		if atomic.CompareAndSwapUint64(&words[word], old, old&^m) {
			return old&m != 0
		}
	}
}

// Load atomically reads the word.
func (Atomic) Load(words []uint64, word int) uint64 {
	return atomic.LoadUint64(&words[word])
}

// Relaxed performs unconditional read-modify-write with no synchronization.
// Legal only when the caller guarantees exclusive access, e.g. under an
// external lock or in a single-threaded context.
type Relaxed struct{}

// SetAt sets the bit and returns true iff it was previously clear.
func (Relaxed) SetAt(words []uint64, word int, pos uint32) bool {
	m := mask(pos)
	old := words[word]
	words[word] = old | m
	return old&m == 0
}

// UnsetAt clears the bit and returns true iff it was previously set.
func (Relaxed) UnsetAt(words []uint64, word int, pos uint32) bool {
	m := mask(pos)
	old := words[word]
	words[word] = old &^ m
	return old&m != 0
}

// Load reads the word.
func (Relaxed) Load(words []uint64, word int) uint64 {
	return words[word]
}
