package bitmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kinds = []Kind{KindDense, KindSparse}

func TestBitmap_Basic(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			b := New(kind, 1000)
			assert.Equal(t, uint64(1000), b.Len())

			assert.False(t, b.Test(100))
			assert.True(t, b.TestAndSet(100), "first TestAndSet should report a new bit")
			assert.False(t, b.TestAndSet(100), "second TestAndSet should report an existing bit")
			assert.True(t, b.Test(100))
			assert.False(t, b.Test(101))

			b.Set(999)
			assert.True(t, b.Test(999))
			assert.Equal(t, uint64(2), b.Count())

			b.Unset(100)
			assert.False(t, b.Test(100))
			assert.Equal(t, uint64(1), b.Count())

			b.ClearAll()
			assert.Zero(t, b.Count())
			assert.False(t, b.Test(999))
			assert.Equal(t, uint64(1000), b.Len(), "ClearAll must not shrink the bitmap")
		})
	}
}

func TestBitmap_OutOfRange(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			b := New(kind, 64)

			b.Set(64)
			b.Set(1 << 20)
			assert.False(t, b.Test(64))
			assert.False(t, b.TestAndSet(64))
			b.Unset(64)

			assert.Zero(t, b.Count())
			assert.Equal(t, uint64(64), b.Len())
		})
	}
}

func TestBitmap_Empty(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			b := New(kind, 0)
			b.Set(0)
			assert.False(t, b.Test(0))
			assert.False(t, b.TestAndSet(0))
			assert.Zero(t, b.Count())
		})
	}
}

func TestBitmap_DenseSparseEquivalence(t *testing.T) {
	const n = 10_000

	rng := rand.New(rand.NewSource(42))
	dense := NewDense(n)
	sparse := NewSparse(n)

	for range 50_000 {
		i := uint32(rng.Intn(n + 100))
		switch rng.Intn(4) {
		case 0:
			dense.Set(i)
			sparse.Set(i)
		case 1:
			require.Equal(t, dense.TestAndSet(i), sparse.TestAndSet(i), "TestAndSet(%d)", i)
		case 2:
			dense.Unset(i)
			sparse.Unset(i)
		default:
			require.Equal(t, dense.Test(i), sparse.Test(i), "Test(%d)", i)
		}
	}

	assert.Equal(t, dense.Count(), sparse.Count())
}

func TestDense_SizeInBytes(t *testing.T) {
	assert.Equal(t, uint64(0), NewDense(0).SizeInBytes())
	assert.Equal(t, uint64(8), NewDense(1).SizeInBytes())
	assert.Equal(t, uint64(8), NewDense(64).SizeInBytes())
	assert.Equal(t, uint64(16), NewDense(65).SizeInBytes())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "dense", KindDense.String())
	assert.Equal(t, "sparse", KindSparse.String())
	assert.Equal(t, "unknown", Kind(7).String())
	assert.IsType(t, &Dense{}, New(Kind(7), 8))
}
