package bitmap

import (
	"github.com/bits-and-blooms/bitset"
)

// Dense is a Bitmap with one preallocated bit per slot.
type Dense struct {
	bs *bitset.BitSet
	n  uint64
}

var _ Bitmap = (*Dense)(nil)

// NewDense allocates a cleared Dense bitmap of n slots.
func NewDense(n uint64) *Dense {
	return &Dense{
		bs: bitset.New(uint(n)),
		n:  n,
	}
}

// Len implements Bitmap.
func (d *Dense) Len() uint64 { return d.n }

// Test implements Bitmap.
func (d *Dense) Test(i uint32) bool {
	if uint64(i) >= d.n {
		return false
	}
	return d.bs.Test(uint(i))
}

// Set implements Bitmap.
//
// bitset.Set extends the set past its length, so the bound is enforced here.
func (d *Dense) Set(i uint32) {
	if uint64(i) >= d.n {
		return
	}
	d.bs.Set(uint(i))
}

// TestAndSet implements Bitmap.
func (d *Dense) TestAndSet(i uint32) bool {
	if uint64(i) >= d.n {
		return false
	}
	if d.bs.Test(uint(i)) {
		return false
	}
	d.bs.Set(uint(i))
	return true
}

// Unset implements Bitmap.
func (d *Dense) Unset(i uint32) {
	if uint64(i) >= d.n {
		return
	}
	d.bs.Clear(uint(i))
}

// ClearAll implements Bitmap.
func (d *Dense) ClearAll() {
	d.bs.ClearAll()
}

// Count implements Bitmap.
func (d *Dense) Count() uint64 {
	return uint64(d.bs.Count())
}

// SizeInBytes implements Bitmap.
func (d *Dense) SizeInBytes() uint64 {
	return (d.n + 63) / 64 * 8
}
