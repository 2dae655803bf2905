package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/addrset"
)

// HeapBase is the start address of the first generated segment.
const HeapBase = 0x10000

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// HeapLayout generates numSegments sorted, non-overlapping segments for a
// 64-bit heap. Each segment holds between 1 and maxSlots slots and is
// followed by a gap of 1 to maxGap slots. Segment lengths are not multiples
// of the quantum, so the last slot of a segment is partial.
func (r *RNG) HeapLayout(numSegments, maxGap, maxSlots int) addrset.Layout {
	r.mu.Lock()
	defer r.mu.Unlock()

	const quantum = 8 * 3

	ranges := make([]addrset.Range, numSegments)
	next := uint64(HeapBase)
	for i := range ranges {
		slots := uint64(1 + r.rand.Intn(maxSlots))
		size := slots*quantum - uint64(r.rand.Intn(quantum))
		ranges[i] = addrset.Range{Start: next, End: next + size}
		next += size + uint64(1+r.rand.Intn(maxGap))*quantum
	}

	return addrset.Layout{Pointer: 8, Ranges: ranges}
}

// ObjectAddresses returns n random slot-aligned addresses inside the
// layout's segments. Duplicates are possible.
func (r *RNG) ObjectAddresses(layout addrset.Layout, n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	quantum := uint64(layout.Pointer) * 3
	addrs := make([]uint64, n)
	for i := range addrs {
		seg := layout.Ranges[r.rand.Intn(len(layout.Ranges))]
		slots := (seg.Len() + quantum - 1) / quantum
		addrs[i] = seg.Start + uint64(r.rand.Int63n(int64(slots)))*quantum
	}
	return addrs
}

// GapAddresses returns n random non-zero addresses that lie outside every
// segment of the layout: below the first segment, between segments, or past
// the last one.
func (r *RNG) GapAddresses(layout addrset.Layout, n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	ranges := layout.Ranges
	addrs := make([]uint64, n)
	for i := range addrs {
		k := r.rand.Intn(len(ranges) + 1)
		var lo, hi uint64
		switch {
		case k == 0:
			lo, hi = 1, ranges[0].Start
		case k == len(ranges):
			lo, hi = ranges[k-1].End, ranges[k-1].End+1<<20
		default:
			lo, hi = ranges[k-1].End, ranges[k].Start
		}
		addrs[i] = lo + uint64(r.rand.Int63n(int64(hi-lo)))
	}
	return addrs
}

// Shuffle returns a shuffled copy of addrs.
func (r *RNG) Shuffle(addrs []uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, len(addrs))
	copy(out, addrs)
	r.rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
