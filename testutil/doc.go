// Package testutil provides testing utilities for addrset.
//
// This package is intended for use in tests and benchmarks only.
// It generates deterministic heap layouts and object addresses from a seed.
//
// # Heap Layouts
//
//	rng := testutil.NewRNG(seed)
//	layout := rng.HeapLayout(8, 16, 4096)   // 8 segments, 16-slot gaps, up to 4096 slots each
//
// # Addresses
//
//	objs := rng.ObjectAddresses(layout, 1000)   // slot-aligned addresses inside segments
//	gaps := rng.GapAddresses(layout, 100)       // addresses outside every segment
package testutil
