// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation so that bitmap word arrays start on a
// cache-line boundary and satisfy the 8-byte alignment required by atomic
// word operations.
package mem
