// Package bitvec implements the concurrent occupancy bitmap used by a memory
// allocator to track, per fixed-size slot, whether that slot is currently
// allocated. One bit represents one slot in a span of memory.
//
// # Architecture
//
//   - Flat storage: a fixed, word-aligned array of uint64 words obtained from
//     an injected Allocator; the bitmap never grows or shrinks.
//   - Strategy-parameterized mutation: Bitmap is generic over a bit-operation
//     Strategy, either Atomic (CAS-based, safe under concurrent access) or
//     Relaxed (plain read-modify-write for single-threaded or externally
//     locked contexts). The strategy is resolved statically, not through
//     dynamic dispatch.
//   - Lazy iteration: forward-only traversal over the set-bit indices, backed
//     by the LowestSetBitAt scan primitive.
//
// # Concurrency Model
//
// Under the Atomic strategy, concurrent TryToSet/Unset calls on the same bit
// are linearizable: exactly one concurrent set observes "previously clear",
// which is the allocator's mutual-exclusion primitive for slot ownership.
// IsSet carries no ordering guarantee against concurrent mutators and is
// advisory only. Clear and iteration require the caller to exclude mutators.
// A bitmap commits to exactly one strategy for its lifetime; never operate on
// the same storage with both.
//
// # Failure Model
//
// Races on a single bit are not errors; they surface as a boolean "did I win"
// result. Out-of-range indices are caller programming errors and panic.
// SetFirstEmpty finding no claimable bit means upstream accounting is broken
// and aborts the process rather than corrupting allocator invariants.
package bitvec
