package LRU

import (
	"log/slog"
	"time"
)

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithTTL expires entries d after they were last set. Expiry is checked lazily when an entry is
// touched, or by Prune; an expired entry nobody touches keeps occupying capacity. d<=0 disables it.
func WithTTL[K comparable, V any](d time.Duration) Option[K, V] {
	return func(u *LRU[K, V]) {
		u.ttl = d
	}
}

// WithOnEvict calls f with every entry removed for capacity or expiry, after it's been removed.
// Delete and Clear don't call it. A non nil error or a panic is logged and otherwise ignored.
// f mustn't use the cache.
func WithOnEvict[K comparable, V any](f func(K, V) error) Option[K, V] {
	return func(u *LRU[K, V]) {
		u.onEvict = f
	}
}

// WithOnResize calls f whenever Resize changes the capacity, after the excess has been evicted.
func WithOnResize[K comparable, V any](f func(old, new int)) Option[K, V] {
	return func(u *LRU[K, V]) {
		u.onResize = f
	}
}

// WithStats turns on the counters reported by Stats.
func WithStats[K comparable, V any]() Option[K, V] {
	return func(u *LRU[K, V]) {
		u.statsOn = true
	}
}

// WithClock replaces time.Now for TTL bookkeeping.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(u *LRU[K, V]) {
		u.now = now
	}
}

// WithLogger sets where eviction callback failures go. Defaults to slog.Default().
func WithLogger[K comparable, V any](l *slog.Logger) Option[K, V] {
	return func(u *LRU[K, V]) {
		u.log = l
	}
}
