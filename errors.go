package bitvec

import (
	"fmt"

	"github.com/hupe1980/bitvec/internal/resource"
)

// ErrMemoryLimitExceeded is returned by allocators with a memory budget when
// an allocation would exceed it.
var ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

// ErrInvalidBitChar indicates a bit-string constructor encountered a
// character other than '0' or '1'.
type ErrInvalidBitChar struct {
	Position int
	Char     byte
}

func (e *ErrInvalidBitChar) Error() string {
	return fmt.Sprintf("expected 0 or 1 in bitstring, not %q at position %d", e.Char, e.Position)
}

// ErrForeignBuffer indicates a buffer handed to an allocator's Release was
// not produced by that allocator's Allocate.
type ErrForeignBuffer struct {
	Allocator string
}

func (e *ErrForeignBuffer) Error() string {
	return fmt.Sprintf("%s: buffer was not allocated by this allocator", e.Allocator)
}
