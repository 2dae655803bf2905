package bitmap

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Sparse is a Bitmap that only stores set slots, backed by a 32-bit
// Roaring bitmap.
type Sparse struct {
	rb *roaring.Bitmap
	n  uint64
}

var _ Bitmap = (*Sparse)(nil)

// NewSparse creates an empty Sparse bitmap of n slots.
func NewSparse(n uint64) *Sparse {
	return &Sparse{
		rb: roaring.New(),
		n:  n,
	}
}

// Len implements Bitmap.
func (s *Sparse) Len() uint64 { return s.n }

// Test implements Bitmap.
func (s *Sparse) Test(i uint32) bool {
	if uint64(i) >= s.n {
		return false
	}
	return s.rb.Contains(i)
}

// Set implements Bitmap.
func (s *Sparse) Set(i uint32) {
	if uint64(i) >= s.n {
		return
	}
	s.rb.Add(i)
}

// TestAndSet implements Bitmap.
func (s *Sparse) TestAndSet(i uint32) bool {
	if uint64(i) >= s.n {
		return false
	}
	return s.rb.CheckedAdd(i)
}

// Unset implements Bitmap.
func (s *Sparse) Unset(i uint32) {
	if uint64(i) >= s.n {
		return
	}
	s.rb.Remove(i)
}

// ClearAll implements Bitmap.
func (s *Sparse) ClearAll() {
	s.rb.Clear()
}

// Count implements Bitmap.
func (s *Sparse) Count() uint64 {
	return s.rb.GetCardinality()
}

// SizeInBytes implements Bitmap.
func (s *Sparse) SizeInBytes() uint64 {
	return s.rb.GetSizeInBytes()
}
