package addrset

import (
	"fmt"

	"github.com/hupe1980/addrset/internal/bitmap"
	"github.com/hupe1980/addrset/internal/conv"
)

// quantumFactor times the pointer size is the minimum distance between two
// object start addresses.
const quantumFactor = 3

type segment struct {
	Range
	bits bitmap.Bitmap
}

// AddressSet records which object addresses of a heap snapshot have been seen.
//
// The set holds one bit per quantum of every heap segment supplied at
// construction. It never grows: addresses outside every segment are ignored
// by mutations and reported absent by Contains. Address 0 is never a member.
//
// An AddressSet is NOT safe for concurrent use, including concurrent reads:
// every lookup updates a private last-segment cache. Use one set per
// goroutine, or wrap a shared set with NewSynchronized.
type AddressSet struct {
	segments []segment
	quantum  uint64

	// last is the index of the most recently resolved segment, or -1.
	// A stale value is harmless: it is only used after a bounds check.
	last int

	stats Stats
}

// New builds an empty AddressSet over the segments of heap.
//
// Segments are trusted to be sorted and non-overlapping unless
// WithValidation is given. New fails with ErrInvalidPointerSize, an
// *OverflowError if a segment holds more slots than a uint32 can index, or a
// *SegmentError for a segment that ends before it starts.
func New(heap Heap, optFns ...Option) (*AddressSet, error) {
	o := applyOptions(optFns)

	s, err := build(heap, o)
	o.logger.LogBuild(s, o.storage, err)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func build(heap Heap, o options) (*AddressSet, error) {
	pointerSize, err := conv.IntToUint64(heap.PointerSize())
	if err != nil || pointerSize == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPointerSize, heap.PointerSize())
	}
	quantum, err := conv.MulUint64(pointerSize, quantumFactor)
	if err != nil {
		return nil, &OverflowError{Segment: -1, cause: err}
	}

	ranges := heap.Segments()
	segments := make([]segment, len(ranges))
	for i, r := range ranges {
		if r.End < r.Start {
			return nil, &SegmentError{Index: i, Range: r, Kind: ErrInvalidSegment}
		}
		if o.validate && i > 0 {
			prev := ranges[i-1]
			if r.Start < prev.Start {
				return nil, &SegmentError{Index: i, Range: r, Kind: ErrUnsortedSegments}
			}
			if r.Start < prev.End {
				return nil, &SegmentError{Index: i, Range: r, Kind: ErrOverlappingSegments}
			}
		}

		n, err := conv.SlotCount(r.End-r.Start, quantum)
		if err != nil {
			return nil, &OverflowError{Segment: i, Range: r, cause: err}
		}
		segments[i] = segment{Range: r, bits: bitmap.New(o.storage.kind(), n)}
	}

	return &AddressSet{
		segments: segments,
		quantum:  quantum,
		last:     -1,
	}, nil
}

// Contains reports whether addr was added and not removed since.
func (s *AddressSet) Contains(addr uint64) bool {
	bits, slot, ok := s.locate(addr)
	if !ok {
		return false
	}
	return bits.Test(slot)
}

// Add marks addr as a member. Addresses outside every segment are ignored.
func (s *AddressSet) Add(addr uint64) {
	if bits, slot, ok := s.locate(addr); ok {
		bits.Set(slot)
	}
}

// TryAdd marks addr as a member and reports whether this call changed its
// membership. It returns false if addr was already a member or lies outside
// every segment.
//
// Traversals use TryAdd to visit each object once:
//
//	if set.TryAdd(addr) {
//	    stack = append(stack, addr)
//	}
func (s *AddressSet) TryAdd(addr uint64) bool {
	bits, slot, ok := s.locate(addr)
	if !ok {
		return false
	}
	return bits.TestAndSet(slot)
}

// Remove clears addr's membership. Addresses outside every segment are ignored.
func (s *AddressSet) Remove(addr uint64) {
	if bits, slot, ok := s.locate(addr); ok {
		bits.Unset(slot)
	}
}

// Clear removes every member. Segment storage is kept for reuse.
func (s *AddressSet) Clear() {
	for i := range s.segments {
		s.segments[i].bits.ClearAll()
	}
}

// Count returns the number of members.
func (s *AddressSet) Count() uint64 {
	var n uint64
	for i := range s.segments {
		n += s.segments[i].bits.Count()
	}
	return n
}

// Segments returns the number of heap segments covered by the set.
func (s *AddressSet) Segments() int { return len(s.segments) }

// Quantum returns the address distance covered by one slot.
func (s *AddressSet) Quantum() uint64 { return s.quantum }

// Slots returns the total number of slots across all segments.
func (s *AddressSet) Slots() uint64 {
	var n uint64
	for i := range s.segments {
		n += s.segments[i].bits.Len()
	}
	return n
}

// SizeInBytes returns the memory currently held by segment storage.
func (s *AddressSet) SizeInBytes() uint64 {
	var n uint64
	for i := range s.segments {
		n += s.segments[i].bits.SizeInBytes()
	}
	return n
}

// Stats returns the resolution counters accumulated since construction or
// the last ResetStats.
func (s *AddressSet) Stats() Stats { return s.stats }

// ResetStats zeroes the resolution counters.
func (s *AddressSet) ResetStats() { s.stats = Stats{} }

// locate maps addr to its segment's bitmap and slot.
//
// It panics with an *OverflowError if the slot index does not fit the index
// type, which New rules out for every address inside a segment.
func (s *AddressSet) locate(addr uint64) (bitmap.Bitmap, uint32, bool) {
	i := s.resolve(addr)
	if i < 0 {
		return nil, 0, false
	}
	seg := &s.segments[i]
	slot, err := conv.SlotIndex(addr, seg.Start, s.quantum)
	if err != nil {
		panic(&OverflowError{Segment: i, Range: seg.Range, cause: err})
	}
	return seg.bits, slot, true
}

// resolve returns the index of the segment containing addr, or -1.
func (s *AddressSet) resolve(addr uint64) int {
	s.stats.Lookups++
	if addr == 0 {
		s.stats.Misses++
		return -1
	}

	if s.last >= 0 && s.segments[s.last].Contains(addr) {
		s.stats.CacheHits++
		return s.last
	}

	s.stats.Searches++
	lower, upper := 0, len(s.segments)-1
	for lower <= upper {
		mid := int(uint(lower+upper) >> 1)
		seg := &s.segments[mid]
		switch {
		case addr < seg.Start:
			upper = mid - 1
		case addr >= seg.End:
			lower = mid + 1
		default:
			s.last = mid
			return mid
		}
	}

	s.stats.Misses++
	return -1
}
