package bitmap

// Bitmap is a fixed-length bit vector indexed by slot.
type Bitmap interface {
	// Len returns the number of slots.
	Len() uint64

	// Test reports whether slot i is set.
	Test(i uint32) bool

	// Set sets slot i.
	Set(i uint32)

	// TestAndSet sets slot i and reports whether it was previously unset.
	TestAndSet(i uint32) bool

	// Unset clears slot i.
	Unset(i uint32)

	// ClearAll clears every slot without releasing storage.
	ClearAll()

	// Count returns the number of set slots.
	Count() uint64

	// SizeInBytes returns the memory held by the bitmap's storage.
	SizeInBytes() uint64
}

// Kind selects a Bitmap implementation.
type Kind int

const (
	// KindDense selects Dense.
	KindDense Kind = iota
	// KindSparse selects Sparse.
	KindSparse
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// New returns an empty bitmap of the given kind covering n slots.
// Unknown kinds fall back to Dense.
func New(kind Kind, n uint64) Bitmap {
	if kind == KindSparse {
		return NewSparse(n)
	}
	return NewDense(n)
}
