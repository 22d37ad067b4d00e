// Package LRU implements a least recently used cache with O(1) operations.
//
// Entries live in a slab and link to each other by uint32 handles instead of pointers. Slot 0 is
// the sentinel of the circular list: its next is the most recently used entry and its prev the
// least recently used one, so a handle of 0 also means "none". Released slots are chained through
// next into a free list and reused before the slab grows.
package LRU

import (
	"log/slog"
	"time"

	Go_Utils "github.com/g-m-twostay/scale-utils"
	"github.com/g-m-twostay/scale-utils/Caches"
)

// MaxCapacity is the largest capacity whose slab handles still fit.
const MaxCapacity = 1<<31 - 1

type entry[K comparable, V any] struct {
	key         K
	value       V
	created     time.Time
	lastAccess  time.Time
	accessCount uint64
	prev, next  uint32
}

// Meta describes an entry without touching it.
type Meta struct {
	Created     time.Time // when the value was last set.
	LastAccess  time.Time
	AccessCount uint64    // Get hits since the key was first set.
	Expires     time.Time // zero without a TTL.
}

// LRU is a bounded cache that evicts the entry unused for the longest time. It isn't safe for
// concurrent use.
type LRU[K comparable, V any] struct {
	slab     []entry[K, V]
	index    map[K]uint32
	free     uint32 // first free slot, 0 when there's none.
	capacity int
	ttl      time.Duration
	onEvict  func(K, V) error
	onResize func(old, new int)
	statsOn  bool
	stats    Caches.Stats
	now      func() time.Time
	log      *slog.Logger
}

var _ Caches.Cache[string, int] = (*LRU[string, int])(nil)

// New cache holding at most capacity entries. A capacity outside [1, MaxCapacity] panics with a
// *Go_Utils.ConfigError.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if err := checkCapacity("New", capacity); err != nil {
		panic(err)
	}
	u := &LRU[K, V]{capacity: capacity, now: time.Now}
	for _, o := range opts {
		o(u)
	}
	if u.now == nil {
		u.now = time.Now
	}
	if u.log == nil {
		u.log = slog.Default()
	}
	u.reset()
	return u
}

func checkCapacity(op string, n int) error {
	if n < 1 || n > MaxCapacity {
		return Go_Utils.NewConfigError(op, "capacity must be in [1, 2147483647]", nil)
	}
	return nil
}

func (u *LRU[K, V]) reset() {
	u.slab = make([]entry[K, V], 1, min(u.capacity, 64)+1)
	u.index = make(map[K]uint32, min(u.capacity, 64))
	u.free = 0
}

// alloc a slot, from the free list if possible.
func (u *LRU[K, V]) alloc() uint32 {
	if h := u.free; h != 0 {
		u.free = u.slab[h].next
		return h
	}
	u.slab = append(u.slab, entry[K, V]{})
	return uint32(len(u.slab) - 1)
}

// release slot h into the free list, dropping what it referenced.
func (u *LRU[K, V]) release(h uint32) {
	u.slab[h] = entry[K, V]{next: u.free}
	u.free = h
}

func (u *LRU[K, V]) unlink(h uint32) {
	e := &u.slab[h]
	u.slab[e.prev].next = e.next
	u.slab[e.next].prev = e.prev
}

func (u *LRU[K, V]) pushFront(h uint32) {
	first := u.slab[0].next
	u.slab[h].prev, u.slab[h].next = 0, first
	u.slab[first].prev = h
	u.slab[0].next = h
}

func (u *LRU[K, V]) moveToFront(h uint32) {
	if u.slab[0].next != h {
		u.unlink(h)
		u.pushFront(h)
	}
}

// remove h entirely and return what it held.
func (u *LRU[K, V]) remove(h uint32) (K, V) {
	u.unlink(h)
	k, v := u.slab[h].key, u.slab[h].value
	delete(u.index, k)
	u.release(h)
	return k, v
}

// discard h for capacity or expiry, then tell the callback. A failing callback can't bring the
// entry back.
func (u *LRU[K, V]) discard(h uint32, expired bool) {
	k, v := u.remove(h)
	if u.statsOn {
		if expired {
			u.stats.Expirations++
		} else {
			u.stats.Evictions++
		}
	}
	if u.onEvict != nil {
		u.notifyEvict(k, v, expired)
	}
}

// notifyEvict runs the callback, logging an error or a panic instead of passing it to the caller.
func (u *LRU[K, V]) notifyEvict(k K, v V, expired bool) {
	defer func() {
		if r := recover(); r != nil {
			u.log.Warn("lru: eviction callback failed", slog.Any("key", k), slog.Bool("expired", expired), slog.Any("panic", r))
		}
	}()
	if err := u.onEvict(k, v); err != nil {
		u.log.Warn("lru: eviction callback failed", slog.Any("key", k), slog.Bool("expired", expired), slog.Any("error", err))
	}
}

func (u *LRU[K, V]) expired(h uint32, now time.Time) bool {
	return u.ttl > 0 && now.Sub(u.slab[h].created) >= u.ttl
}

// lookup k, discarding it when it has expired.
func (u *LRU[K, V]) lookup(k K, now time.Time) (uint32, bool) {
	h, ok := u.index[k]
	if !ok {
		return 0, false
	}
	if u.expired(h, now) {
		u.discard(h, true)
		return 0, false
	}
	return h, true
}

// Get the value under k and make k the most recently used key. An expired entry is evicted and
// reported as a miss.
// Time: O(1)
func (u *LRU[K, V]) Get(k K) (V, bool) {
	now := u.now()
	h, ok := u.lookup(k, now)
	if !ok {
		if u.statsOn {
			u.stats.Misses++
		}
		return *new(V), false
	}
	if u.statsOn {
		u.stats.Hits++
	}
	e := &u.slab[h]
	e.lastAccess = now
	e.accessCount++
	u.moveToFront(h)
	return e.value, true
}

// Set v under k and make k the most recently used key. Setting a present key restarts its TTL.
// A new key evicts the least recently used entry first when the cache is full.
// Time: O(1)
func (u *LRU[K, V]) Set(k K, v V) {
	now := u.now()
	if u.statsOn {
		u.stats.Sets++
	}
	if h, ok := u.index[k]; ok {
		e := &u.slab[h]
		e.value, e.created, e.lastAccess = v, now, now
		u.moveToFront(h)
		return
	}
	for len(u.index) >= u.capacity {
		u.discard(u.slab[0].prev, false)
	}
	h := u.alloc()
	u.slab[h] = entry[K, V]{key: k, value: v, created: now, lastAccess: now}
	u.pushFront(h)
	u.index[k] = h
}

// Has key k that hasn't expired. Doesn't change the order; an expired entry is evicted.
// Time: O(1)
func (u *LRU[K, V]) Has(k K) bool {
	_, ok := u.lookup(k, u.now())
	return ok
}

// Peek at the value under k without changing the order or any metadata. Expired entries are
// reported missing but left in place.
// Time: O(1)
func (u *LRU[K, V]) Peek(k K) (V, bool) {
	h, ok := u.index[k]
	if !ok || u.expired(h, u.now()) {
		return *new(V), false
	}
	return u.slab[h].value, true
}

// Delete k without calling the eviction callback.
// Time: O(1)
func (u *LRU[K, V]) Delete(k K) (V, bool) {
	h, ok := u.index[k]
	if !ok {
		return *new(V), false
	}
	_, v := u.remove(h)
	return v, true
}

// Inspect the metadata of k without touching it.
func (u *LRU[K, V]) Inspect(k K) (Meta, bool) {
	h, ok := u.index[k]
	if !ok {
		return Meta{}, false
	}
	e := &u.slab[h]
	m := Meta{Created: e.created, LastAccess: e.lastAccess, AccessCount: e.accessCount}
	if u.ttl > 0 {
		m.Expires = e.created.Add(u.ttl)
	}
	return m, true
}

// Resize to capacity n, evicting least recently used entries until they fit.
// An n outside [1, MaxCapacity] is a *Go_Utils.ConfigError and leaves the cache unchanged.
// Time: O(evicted), or O(Len) when the slab is compacted
func (u *LRU[K, V]) Resize(n int) error {
	if err := checkCapacity("Resize", n); err != nil {
		return err
	}
	old := u.capacity
	u.capacity = n
	for len(u.index) > n {
		u.discard(u.slab[0].prev, false)
	}
	if len(u.slab) > 2*(n+1) {
		u.compact()
	}
	if old != n && u.onResize != nil {
		u.onResize(old, n)
	}
	return nil
}

// compact copies the live entries into a fresh slab in list order, dropping the free list.
func (u *LRU[K, V]) compact() {
	slab := make([]entry[K, V], len(u.index)+1)
	i := uint32(0)
	for h := u.slab[0].next; h != 0; h = u.slab[h].next {
		i++
		slab[i] = u.slab[h]
		slab[i].prev, slab[i].next = i-1, i+1
		u.index[slab[i].key] = i
	}
	if i == 0 {
		u.slab, u.free = slab, 0
		return
	}
	slab[i].next = 0
	slab[0].next, slab[0].prev = 1, i
	u.slab, u.free = slab, 0
}

// Prune evicts every expired entry and returns how many there were.
// Time: O(Len)
func (u *LRU[K, V]) Prune() int {
	if u.ttl <= 0 {
		return 0
	}
	now, cnt := u.now(), 0
	for h := u.slab[0].prev; h != 0; {
		prev := u.slab[h].prev
		if u.expired(h, now) {
			u.discard(h, true)
			cnt++
		}
		h = prev
	}
	return cnt
}

// Clear removes every entry without calling the eviction callback.
func (u *LRU[K, V]) Clear() {
	u.reset()
}

// Keys from the most to the least recently used, expired ones included.
func (u *LRU[K, V]) Keys() []K {
	ks := make([]K, 0, len(u.index))
	for h := u.slab[0].next; h != 0; h = u.slab[h].next {
		ks = append(ks, u.slab[h].key)
	}
	return ks
}

// Len is the number of entries held, expired ones included.
func (u *LRU[K, V]) Len() int {
	return len(u.index)
}

// Cap is the capacity.
func (u *LRU[K, V]) Cap() int {
	return u.capacity
}

func (u *LRU[K, V]) Stats() Caches.Stats {
	return u.stats
}

func (u *LRU[K, V]) ResetStats() {
	u.stats = Caches.Stats{}
}
