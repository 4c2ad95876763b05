// Package mem provides memory allocation utilities.
package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of allocated buffers (one cache line).
const Alignment = 64

// WordBytes is the size of a bitmap word in bytes.
const WordBytes = 8

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size == 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	// Calculate the offset to the first aligned byte
	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	// Return the slice starting at the aligned offset
	return buf[offset : offset+uintptr(size)]
}

// Words reinterprets an 8-byte-aligned buffer as a slice of uint64 words.
// The buffer length must be a multiple of WordBytes and the buffer must be
// at least 8-byte aligned, otherwise atomic operations on the words fault
// on some architectures.
func Words(buf []byte) []uint64 {
	if len(buf) == 0 {
		return nil
	}

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for the word view
	if uintptr(ptr)&(WordBytes-1) != 0 {
		panic("mem: buffer is not word aligned")
	}

	return unsafe.Slice((*uint64)(ptr), len(buf)/WordBytes) //nolint:gosec // unsafe is required for the word view
}
