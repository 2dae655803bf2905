package addrset

import (
	"fmt"
	"strconv"
)

// HostPointerSize is the pointer width, in bytes, of the running process.
const HostPointerSize = strconv.IntSize / 8

// Range is a half-open address range [Start, End).
type Range struct {
	Start uint64
	End   uint64
}

// Len returns the number of bytes covered by the range, or 0 if End < Start.
func (r Range) Len() uint64 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether addr lies in [Start, End).
func (r Range) Contains(addr uint64) bool {
	return addr >= r.Start && addr < r.End
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("[%#x, %#x)", r.Start, r.End)
}

// Heap describes the memory layout of a heap snapshot.
//
// Segments must be sorted ascending by Start and must not overlap. A layout
// that breaks this contract yields undefined membership results unless the
// set is built WithValidation.
type Heap interface {
	// PointerSize returns the pointer width of the target platform in bytes.
	PointerSize() int

	// Segments returns the heap's address ranges. The slice is read once,
	// during New, and is not retained.
	Segments() []Range
}

// Layout is a Heap backed by plain values.
type Layout struct {
	Pointer int
	Ranges  []Range
}

var _ Heap = Layout{}

// PointerSize implements Heap.
func (l Layout) PointerSize() int { return l.Pointer }

// Segments implements Heap.
func (l Layout) Segments() []Range { return l.Ranges }
