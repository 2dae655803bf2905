package addrset

// Stats counts segment resolutions performed by an AddressSet.
//
// Every Contains, Add, TryAdd and Remove performs exactly one resolution.
// Counters are plain integers: they share the set's single-threaded contract.
type Stats struct {
	// Lookups is the total number of resolutions.
	Lookups uint64
	// CacheHits counts resolutions answered by the last-segment cache.
	CacheHits uint64
	// Searches counts resolutions that fell through to the binary search.
	Searches uint64
	// Misses counts addresses that fell outside every segment, including 0.
	Misses uint64
}

// HitRate returns CacheHits / Lookups, or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	if s.Lookups == 0 {
		return 0
	}
	return float64(s.CacheHits) / float64(s.Lookups)
}
