// Package addrset provides a compact presence set for object addresses in a
// heap snapshot.
//
// Heap walkers (reachability analysis, leak detection, object enumeration)
// need to remember which objects they have already visited. A general hash
// set keyed on 64-bit addresses costs tens of bytes per entry; an AddressSet
// costs one bit per possible object position.
//
// # Quick Start
//
//	heap := addrset.Layout{
//	    Pointer: 8,
//	    Ranges: []addrset.Range{
//	        {Start: 0x1000, End: 0x2000},
//	        {Start: 0x5000, End: 0x6000},
//	    },
//	}
//	set, err := addrset.New(heap)
//	if err != nil {
//	    return err
//	}
//
//	for len(stack) > 0 {
//	    obj := stack[len(stack)-1]
//	    stack = stack[:len(stack)-1]
//	    for _, ref := range refs(obj) {
//	        if set.TryAdd(ref) {
//	            stack = append(stack, ref)
//	        }
//	    }
//	}
//
// # Layout
//
// The set is built once from the heap's segments: sorted, non-overlapping
// half-open address ranges. Each segment gets a fixed bit vector with one bit
// per quantum, where quantum = 3 * pointer size is the minimum distance
// between two object start addresses. Address a in segment [start, end) maps
// to bit (a - start) / quantum.
//
//	segment 0 [0x1000, 0x2000)            segment 1 [0x5000, 0x6000)
//	┌───┬───┬───┬─────┬───┐               ┌───┬───┬───┬─────┬───┐
//	│ 0 │ 1 │ 2 │ ... │170│               │ 0 │ 1 │ 2 │ ... │170│
//	└───┴───┴───┴─────┴───┘               └───┴───┴───┴─────┴───┘
//	 0x1000 0x1018 0x1030                  0x5000 0x5018 0x5030
//
// Finding the segment for an address first checks the segment matched by the
// previous call, then binary-searches the segment table. Traversals touch
// nearby objects in bursts, so most lookups never search.
//
// # Storage
//
// StorageDense (default) preallocates every bit. StorageSparse keeps set bits
// in Roaring bitmaps, trading lookup speed for memory on huge, sparsely
// visited heaps:
//
//	set, _ := addrset.New(heap, addrset.WithStorage(addrset.StorageSparse))
//
// # Errors
//
// Addresses outside every segment are not errors: Contains and TryAdd return
// false and Add and Remove do nothing. Address 0 is never a member.
//
// New rejects layouts it cannot index (ErrOverflow, ErrInvalidSegment,
// ErrInvalidPointerSize). With WithValidation it also rejects unsorted and
// overlapping segments.
//
// # Concurrency
//
// An AddressSet must be used from one goroutine at a time, reads included.
// Shard the heap across one set per worker, or wrap a shared set with
// NewSynchronized.
package addrset
