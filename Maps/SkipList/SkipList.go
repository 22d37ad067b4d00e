// Package SkipList implements an ordered map as a probabilistic skip list.
//
// Search, insertion and deletion take O(log n) expected time. There's no deterministic bound: an
// unlucky sequence of coin flips degrades any of them to O(n).
package SkipList

import (
	"cmp"
	"math/rand/v2"

	Go_Utils "github.com/g-m-twostay/scale-utils"
	"github.com/g-m-twostay/scale-utils/Maps"
	"github.com/g-m-twostay/scale-utils/Search"
)

const (
	DefaultMaxLevel            = 32
	DefaultProbability float64 = 0.5
	maxMaxLevel                = 64
)

// A node in the list. len(next) is the node's level+1.
type node[K, V any] struct {
	k    K
	v    V
	next []*node[K, V]
}

// SkipList is an ordered map. Level 0 links every node in ascending key order; each higher level
// links a strictly sorted subsequence of the level below it.
// Keys comparing equal under the comparator are the same key.
// The zero value is meaningless; use New or NewFunc.
type SkipList[K, V any] struct {
	head     *node[K, V] // sentinel; len(head.next)==level+1.
	level    int         // highest level in use.
	n        int
	maxLevel int
	p        float64
	cmp      Search.Comparator[K]
	rng      *rand.Rand
	prev     []*node[K, V] // predecessor of the key being inserted or deleted at every level.
}

var _ Maps.OrderedMap[int, string] = (*SkipList[int, string])(nil)

type config struct {
	maxLevel int
	p        float64
	seeded   bool
	seed     uint64
}

// Option configures a SkipList.
type Option func(*config)

// WithMaxLevel caps node levels to [0, n). 1<=n<=64.
func WithMaxLevel(n int) Option {
	return func(c *config) {
		c.maxLevel = n
	}
}

// WithProbability sets the chance a node is promoted one level further. 0<p<1.
func WithProbability(p float64) Option {
	return func(c *config) {
		c.p = p
	}
}

// WithSeed makes the level generation deterministic.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seeded, c.seed = true, seed
	}
}

// New skip list ordered by cmp.Compare.
func New[K cmp.Ordered, V any](opts ...Option) *SkipList[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc makes a skip list ordered by c, which must be a strict total order. Invalid options or a
// nil c panic with a *Go_Utils.ConfigError.
func NewFunc[K, V any](c Search.Comparator[K], opts ...Option) *SkipList[K, V] {
	cfg := config{maxLevel: DefaultMaxLevel, p: DefaultProbability}
	for _, o := range opts {
		o(&cfg)
	}
	switch {
	case c == nil:
		panic(Go_Utils.NewConfigError("NewFunc", "nil comparator", nil))
	case cfg.maxLevel < 1 || cfg.maxLevel > maxMaxLevel:
		panic(Go_Utils.NewConfigError("NewFunc", "max level must be in [1, 64]", nil))
	case !(cfg.p > 0 && cfg.p < 1):
		panic(Go_Utils.NewConfigError("NewFunc", "probability must be in (0, 1)", nil))
	}
	var src rand.Source
	if cfg.seeded {
		src = rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &SkipList[K, V]{
		head:     &node[K, V]{next: make([]*node[K, V], 1, cfg.maxLevel)},
		maxLevel: cfg.maxLevel,
		p:        cfg.p,
		cmp:      c,
		rng:      rand.New(src),
		prev:     make([]*node[K, V], cfg.maxLevel),
	}
}

// randomLevel flips coins until one fails or the cap is reached.
func (u *SkipList[K, V]) randomLevel() int {
	l := 0
	for l < u.maxLevel-1 && u.rng.Float64() < u.p {
		l++
	}
	return l
}

// findPrev records in u.prev the last node with a key <k on every level in use, and returns the
// level 0 one.
func (u *SkipList[K, V]) findPrev(k K) *node[K, V] {
	x := u.head
	for i := u.level; i > -1; i-- {
		for y := x.next[i]; y != nil && u.cmp(y.k, k) < 0; y = x.next[i] {
			x = y
		}
		u.prev[i] = x
	}
	return x
}

// lowerBound is the first node with a key >=k, nil if there's none.
func (u *SkipList[K, V]) lowerBound(k K) *node[K, V] {
	x := u.head
	for i := u.level; i > -1; i-- {
		for y := x.next[i]; y != nil && u.cmp(y.k, k) < 0; y = x.next[i] {
			x = y
		}
	}
	return x.next[0]
}

// Len is the number of keys.
// Time: O(1)
func (u *SkipList[K, V]) Len() int {
	return u.n
}

// Level is the highest level currently in use.
func (u *SkipList[K, V]) Level() int {
	return u.level
}

// Set v under k, overwriting and returning the previous value if k is present.
// Time: O(log n) expected
func (u *SkipList[K, V]) Set(k K, v V) (V, bool) {
	x := u.findPrev(k)
	if y := x.next[0]; y != nil && u.cmp(y.k, k) == 0 {
		old := y.v
		y.v = v
		clear(u.prev)
		return old, true
	}
	lvl := u.randomLevel()
	for u.level < lvl {
		u.level++
		u.head.next = append(u.head.next, nil)
		u.prev[u.level] = u.head
	}
	nd := &node[K, V]{k: k, v: v, next: make([]*node[K, V], lvl+1)}
	for i := 0; i <= lvl; i++ {
		nd.next[i] = u.prev[i].next[i]
		u.prev[i].next[i] = nd
	}
	u.n++
	clear(u.prev)
	return *new(V), false
}

// Get the value under k.
// Time: O(log n) expected, O(n) worst case
func (u *SkipList[K, V]) Get(k K) (V, bool) {
	if y := u.lowerBound(k); y != nil && u.cmp(y.k, k) == 0 {
		return y.v, true
	}
	return *new(V), false
}

// Has key k.
// Time: O(log n) expected, O(n) worst case
func (u *SkipList[K, V]) Has(k K) bool {
	y := u.lowerBound(k)
	return y != nil && u.cmp(y.k, k) == 0
}

// Delete k, unlinking it on every level it's on, then lower the list's level while the top
// levels are empty.
// Time: O(log n) expected
func (u *SkipList[K, V]) Delete(k K) (V, bool) {
	x := u.findPrev(k)
	y := x.next[0]
	if y == nil || u.cmp(y.k, k) != 0 {
		clear(u.prev)
		return *new(V), false
	}
	for i := range y.next {
		u.prev[i].next[i] = y.next[i]
	}
	for u.level > 0 && u.head.next[u.level] == nil {
		u.head.next = u.head.next[:u.level]
		u.level--
	}
	u.n--
	clear(u.prev)
	return y.v, true
}

// Clear removes every key.
func (u *SkipList[K, V]) Clear() {
	u.head = &node[K, V]{next: make([]*node[K, V], 1, u.maxLevel)}
	u.level, u.n = 0, 0
}
