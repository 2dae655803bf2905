// Package bitmap provides the fixed-length bit vectors that back each heap
// segment of an address set.
//
// Two representations share the Bitmap interface:
//
//   - Dense allocates one bit per slot up front (bits-and-blooms/bitset).
//     Lookups are a single word access. This is the default.
//   - Sparse stores only the set bits in a Roaring bitmap. Large segments
//     touched by a small fraction of a traversal stay small.
//
// Memory layout of Dense for a segment of n slots:
//
//	┌──────────────┬──────────────┬─────┬──────────────────────┐
//	│ word 0       │ word 1       │ ... │ word ceil(n/64)-1    │
//	│ slots [0,63] │ slots[64,127]│     │ tail bits unused     │
//	└──────────────┴──────────────┴─────┴──────────────────────┘
//
// The length of a bitmap is fixed at construction. Indexes at or beyond Len
// are ignored by every method; neither implementation grows.
//
// Bitmaps are not safe for concurrent use.
package bitmap
