package addrset

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when a segment's slot count or an address offset
	// cannot be represented in the 32-bit slot index type.
	ErrOverflow = errors.New("address set overflow")

	// ErrInvalidPointerSize is returned when the heap reports a non-positive
	// pointer size.
	ErrInvalidPointerSize = errors.New("invalid pointer size")

	// ErrInvalidSegment is returned for a segment whose end lies below its start.
	ErrInvalidSegment = errors.New("invalid segment")

	// ErrUnsortedSegments is returned by validation when segments are not
	// sorted ascending by start address.
	ErrUnsortedSegments = errors.New("segments not sorted by start address")

	// ErrOverlappingSegments is returned by validation when two segments overlap.
	ErrOverlappingSegments = errors.New("segments overlap")
)

// OverflowError describes a segment whose slots cannot be indexed.
//
// It is returned by New, and raised as a panic value by lookups whose offset
// computation overflows. Both cases mean the heap layout violates the set's
// sizing assumptions; the instance must not be trusted.
//
// The underlying arithmetic error can be accessed via errors.Unwrap.
type OverflowError struct {
	// Segment is the index of the offending segment, or -1 when the quantum
	// itself cannot be represented.
	Segment int
	Range   Range
	cause   error
}

func (e *OverflowError) Error() string {
	if e.Segment < 0 {
		return fmt.Sprintf("%v: %v", ErrOverflow, e.cause)
	}
	return fmt.Sprintf("%v: segment %d %v: %v", ErrOverflow, e.Segment, e.Range, e.cause)
}

func (e *OverflowError) Unwrap() error { return e.cause }

// Is reports whether target is ErrOverflow.
func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

// SegmentError describes a segment rejected at construction.
//
// Kind is one of ErrInvalidSegment, ErrUnsortedSegments or
// ErrOverlappingSegments, and errors.Is matches against it.
type SegmentError struct {
	Index int
	Range Range
	Kind  error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("%v: segment %d %v", e.Kind, e.Index, e.Range)
}

func (e *SegmentError) Unwrap() error { return e.Kind }
