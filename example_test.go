package addrset_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/addrset"
)

// Example demonstrates the visit-once pattern of a heap traversal.
func Example() {
	heap := addrset.Layout{
		Pointer: 8,
		Ranges: []addrset.Range{
			{Start: 0x1000, End: 0x2000},
			{Start: 0x5000, End: 0x6000},
		},
	}

	visited, err := addrset.New(heap)
	if err != nil {
		log.Fatal(err)
	}

	for _, addr := range []uint64{0x1000, 0x5000, 0x1000, 0x3000} {
		fmt.Printf("%#x first visit: %v\n", addr, visited.TryAdd(addr))
	}
	fmt.Println("visited:", visited.Count())
	// Output:
	// 0x1000 first visit: true
	// 0x5000 first visit: true
	// 0x1000 first visit: false
	// 0x3000 first visit: false
	// visited: 2
}

// ExampleWithStorage demonstrates sparse storage for a large heap segment.
func ExampleWithStorage() {
	heap := addrset.Layout{
		Pointer: 8,
		Ranges:  []addrset.Range{{Start: 0x7f0000000000, End: 0x7f0040000000}},
	}

	visited, err := addrset.New(heap, addrset.WithStorage(addrset.StorageSparse))
	if err != nil {
		log.Fatal(err)
	}

	visited.Add(0x7f0000000018)
	fmt.Println(visited.Contains(0x7f0000000018), visited.Slots())
	// Output: true 44739243
}

// ExampleWithValidation demonstrates rejecting a malformed heap layout.
func ExampleWithValidation() {
	heap := addrset.Layout{
		Pointer: 8,
		Ranges: []addrset.Range{
			{Start: 0x5000, End: 0x6000},
			{Start: 0x1000, End: 0x2000},
		},
	}

	_, err := addrset.New(heap, addrset.WithValidation())
	fmt.Println(err)
	// Output: segments not sorted by start address: segment 1 [0x1000, 0x2000)
}
