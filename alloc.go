package bitvec

import (
	"sync"

	"github.com/hupe1980/bitvec/internal/mem"
	"github.com/hupe1980/bitvec/internal/mmap"
	"github.com/hupe1980/bitvec/internal/resource"
)

// Allocator provides the backing storage for a Bitmap's word array. Returned
// buffers must be zero-length or at least 8-byte aligned so atomic word
// operations are legal on them.
type Allocator interface {
	// Allocate returns a buffer of exactly size bytes.
	Allocate(size int) ([]byte, error)
	// Release returns a buffer previously obtained from Allocate.
	Release(buf []byte) error
}

// HeapAllocator allocates word arrays on the Go heap, cache-line aligned.
// Release is a no-op; the garbage collector reclaims the buffer once the
// bitmap drops it.
type HeapAllocator struct{}

// Allocate returns a 64-byte aligned buffer of the given size.
func (HeapAllocator) Allocate(size int) ([]byte, error) {
	return mem.AllocAligned(size), nil
}

// Release drops the buffer.
func (HeapAllocator) Release([]byte) error {
	return nil
}

// MmapAllocator allocates word arrays as anonymous memory mappings outside
// the Go heap, optionally enforcing a byte budget across all outstanding
// buffers. Buffers must be handed back through Release to be unmapped.
type MmapAllocator struct {
	mu       sync.Mutex
	mappings map[*byte]*mmap.Mapping
	budget   *resource.Controller
}

// NewMmapAllocator creates an MmapAllocator. A memoryLimitBytes of 0 means
// no budget is enforced, only tracked.
func NewMmapAllocator(memoryLimitBytes int64) *MmapAllocator {
	return &MmapAllocator{
		mappings: make(map[*byte]*mmap.Mapping),
		budget:   resource.NewController(resource.Config{MemoryLimitBytes: memoryLimitBytes}),
	}
}

// Allocate maps an anonymous region of the given size. It fails with
// ErrMemoryLimitExceeded when the budget would be exceeded.
func (a *MmapAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}

	if err := a.budget.AcquireMemory(int64(size)); err != nil {
		return nil, err
	}

	m, err := mmap.MapAnon(size)
	if err != nil {
		a.budget.ReleaseMemory(int64(size))
		return nil, err
	}

	buf := m.Bytes()

	a.mu.Lock()
	a.mappings[&buf[0]] = m
	a.mu.Unlock()

	return buf, nil
}

// Release unmaps a buffer previously returned by Allocate.
func (a *MmapAllocator) Release(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	a.mu.Lock()
	m, ok := a.mappings[&buf[0]]
	if ok {
		delete(a.mappings, &buf[0])
	}
	a.mu.Unlock()

	if !ok {
		return &ErrForeignBuffer{Allocator: "mmap"}
	}

	a.budget.ReleaseMemory(int64(m.Size()))
	return m.Close()
}

// MemoryUsage returns the bytes currently held by outstanding buffers.
func (a *MmapAllocator) MemoryUsage() int64 {
	return a.budget.MemoryUsage()
}

// Close unmaps every outstanding buffer. Bitmaps still holding storage from
// this allocator become invalid.
func (a *MmapAllocator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var firstErr error
	for key, m := range a.mappings {
		a.budget.ReleaseMemory(int64(m.Size()))
		if err := m.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(a.mappings, key)
	}
	return firstErr
}
