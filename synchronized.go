package addrset

import "sync"

// Synchronized serializes access to a shared AddressSet with a mutex.
//
// Prefer one AddressSet per worker when the address space can be split; a
// single lock around every lookup serializes the whole traversal.
type Synchronized struct {
	mu  sync.Mutex
	set *AddressSet
}

// NewSynchronized wraps set. The caller must not use set directly afterwards.
func NewSynchronized(set *AddressSet) *Synchronized {
	return &Synchronized{set: set}
}

// Contains is AddressSet.Contains under the lock.
func (s *Synchronized) Contains(addr uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Contains(addr)
}

// Add is AddressSet.Add under the lock.
func (s *Synchronized) Add(addr uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Add(addr)
}

// TryAdd is AddressSet.TryAdd under the lock. Exactly one of any number of
// concurrent TryAdd calls for the same address returns true.
func (s *Synchronized) TryAdd(addr uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.TryAdd(addr)
}

// Remove is AddressSet.Remove under the lock.
func (s *Synchronized) Remove(addr uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Remove(addr)
}

// Clear is AddressSet.Clear under the lock.
func (s *Synchronized) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Clear()
}

// Count is AddressSet.Count under the lock.
func (s *Synchronized) Count() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Count()
}

// Stats is AddressSet.Stats under the lock.
func (s *Synchronized) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Stats()
}
