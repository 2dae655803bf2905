package conv

import (
	"errors"
	"fmt"
	"math"
)

// MaxSlots is the largest slot count a single segment may have: every index
// in [0, MaxSlots) fits in a uint32.
const MaxSlots = uint64(math.MaxUint32) + 1

var errZeroQuantum = errors.New("quantum must be positive")

// SlotCount returns ceil(length / quantum), the number of slots needed to
// cover length bytes. It fails if the highest slot index would not fit in a
// uint32.
func SlotCount(length, quantum uint64) (uint64, error) {
	if quantum == 0 {
		return 0, errZeroQuantum
	}
	n := length / quantum
	if length%quantum != 0 {
		n++
	}
	if n > MaxSlots {
		return 0, fmt.Errorf("%w: %d slots exceed the %d slot limit", ErrOverflow, n, MaxSlots)
	}
	return n, nil
}

// SlotIndex returns (addr - start) / quantum as a uint32.
func SlotIndex(addr, start, quantum uint64) (uint32, error) {
	if quantum == 0 {
		return 0, errZeroQuantum
	}
	if addr < start {
		return 0, fmt.Errorf("%w: address %#x below segment start %#x", ErrOverflow, addr, start)
	}
	return Uint64ToUint32((addr - start) / quantum)
}
