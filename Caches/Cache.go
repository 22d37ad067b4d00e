// Package Caches holds the contract shared by the bounded caches in its subpackages.
package Caches

// Stats are counters a cache keeps only when asked to.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64 // removed to make room, including by a shrinking resize.
	Expirations uint64 // removed because their TTL ran out.
	Sets        uint64
}

// HitRate is Hits/(Hits+Misses), 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Cache is a bounded key value store.
// Receivers that have a bool as the last return value use it to report whether the other return
// values are defined.
type Cache[K comparable, V any] interface {
	//Get the value under k, counting as a use of k.
	Get(k K) (V, bool)
	//Set v under k, possibly evicting another key.
	Set(k K, v V)
	//Has key k. Doesn't count as a use.
	Has(k K) bool
	//Delete k. Returns the removed value, if any.
	Delete(k K) (V, bool)
	//Len is the number of keys held.
	Len() int
	//Stats so far; all zero when the cache doesn't keep them.
	Stats() Stats
}
