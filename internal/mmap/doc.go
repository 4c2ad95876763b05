// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// MapAnon() creates read-write anonymous mappings for off-heap memory
// allocation. This is used to obtain bitmap word storage outside the Go
// garbage collector's control, mirroring how a native allocator acquires
// pages for its own metadata.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Thread Safety
//
// Mappings are safe for concurrent read/write access to their bytes. The
// Close() method is idempotent and protected by atomic operations. Callers
// must ensure no goroutines access Bytes() after Close() returns.
package mmap
