package Trees

import (
	"math/bits"

	Go_Utils "github.com/g-m-twostay/scale-utils"
)

// SegmentTree aggregates a sequence over index ranges. It's an implicit binary tree stored in an
// array: node k has children 2k and 2k+1, the root is 1 and leaf i is at size+i, where size is n
// rounded up to a power of 2. Padding leaves hold the identity.
// Every internal node equals combine of its children, except below a node with a pending lazy
// tag; such a tag is pushed to both children before anything descends into them.
// All traversals are iterative.
// The zero value is meaningless; use New or NewFunc.
type SegmentTree[N Go_Utils.Number] struct {
	n, size, log int
	d            []N // len(d)==2*size. d[0] is unused.
	lz           []N // pending deltas of internal nodes; nil unless lazy.
	kind         Kind
	combine      func(a, b N) N
	id           N
}

type config struct {
	lazy bool
}

// Option configures a SegmentTree.
type Option func(*config)

// WithLazy enables lazy propagation so that RangeUpdate is O(log n). Point reads become O(log n).
func WithLazy() Option {
	return func(c *config) {
		c.lazy = true
	}
}

// New builds a tree over values with one of the built in aggregations. O(n). values is copied.
// Custom isn't accepted here, New panics with a *Go_Utils.ConfigError; use NewFunc instead.
func New[N Go_Utils.Number](values []N, kind Kind, opts ...Option) *SegmentTree[N] {
	combine, id, ok := aggregation[N](kind)
	if !ok {
		panic(Go_Utils.NewConfigError("New", "unsupported aggregation "+kind.String(), nil))
	}
	return build(values, kind, combine, id, opts)
}

// NewFunc builds a tree aggregating with combine, which must be associative and have identity as
// its identity element. Lazy propagation can't be derived for an arbitrary combine, so WithLazy
// makes NewFunc panic with a *Go_Utils.ConfigError, as does a nil combine.
func NewFunc[N Go_Utils.Number](values []N, combine func(a, b N) N, identity N, opts ...Option) *SegmentTree[N] {
	if combine == nil {
		panic(Go_Utils.NewConfigError("NewFunc", "nil combine function", nil))
	}
	return build(values, Custom, combine, identity, opts)
}

func build[N Go_Utils.Number](values []N, kind Kind, combine func(a, b N) N, id N, opts []Option) *SegmentTree[N] {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.lazy && kind == Custom {
		panic(Go_Utils.NewConfigError("NewFunc", "lazy propagation needs a sum, min or max aggregation", nil))
	}
	u := &SegmentTree[N]{kind: kind, combine: combine, id: id}
	u.Reset(values)
	if cfg.lazy {
		u.lz = make([]N, u.size)
	}
	return u
}

// Reset rebuilds the tree over values keeping its configuration, O(n). Values aren't checked for
// sign; see Positional.
func (u *SegmentTree[N]) Reset(values []N) {
	u.n = len(values)
	u.log = bits.Len(uint(max(u.n, 1) - 1))
	u.size = 1 << u.log
	u.d = make([]N, 2*u.size)
	copy(u.d[u.size:], values)
	for i := u.size + u.n; i < len(u.d); i++ {
		u.d[i] = u.id
	}
	for k := u.size - 1; k > 0; k-- {
		u.pull(k)
	}
	if u.lz != nil {
		u.lz = make([]N, u.size)
	}
}

// Len is the number of positions.
func (u *SegmentTree[N]) Len() int {
	return u.n
}

// Kind of aggregation.
func (u *SegmentTree[N]) Kind() Kind {
	return u.kind
}

// Lazy reports whether range updates are propagated lazily.
func (u *SegmentTree[N]) Lazy() bool {
	return u.lz != nil
}

// Total is the aggregate of the whole sequence, the identity when empty. O(1).
func (u *SegmentTree[N]) Total() N {
	return u.d[1]
}

func (u *SegmentTree[N]) pull(k int) {
	u.d[k] = u.combine(u.d[2*k], u.d[2*k+1])
}

// width is the number of leaves under k.
func (u *SegmentTree[N]) width(k int) int {
	return u.size >> (bits.Len(uint(k)) - 1)
}

// apply delta to every position under k, deferring the children through a tag.
func (u *SegmentTree[N]) apply(k int, delta N) {
	if u.kind == Sum {
		u.d[k] += delta * N(u.width(k))
	} else {
		u.d[k] += delta
	}
	if k < u.size {
		u.lz[k] += delta
	}
}

// push the pending tag of k down to its children.
func (u *SegmentTree[N]) push(k int) {
	if u.lz != nil && u.lz[k] != 0 {
		u.apply(2*k, u.lz[k])
		u.apply(2*k+1, u.lz[k])
		u.lz[k] = 0
	}
}

// pushPath flushes every tag above leaf slot p.
func (u *SegmentTree[N]) pushPath(p int) {
	if u.lz != nil {
		for i := u.log; i > 0; i-- {
			u.push(p >> i)
		}
	}
}

// pushBounds flushes the tags above the half open slot range [l, r) that the range doesn't fully cover.
func (u *SegmentTree[N]) pushBounds(l, r int) {
	if u.lz == nil {
		return
	}
	for i := u.log; i > 0; i-- {
		if (l>>i)<<i != l {
			u.push(l >> i)
		}
		if (r>>i)<<i != r {
			u.push((r - 1) >> i)
		}
	}
}

// Get the value at i. O(1), or O(log n) in lazy mode.
func (u *SegmentTree[N]) Get(i int) (N, error) {
	if err := Go_Utils.CheckIndex("Get", i, 0, u.n-1); err != nil {
		return u.id, err
	}
	p := i + u.size
	u.pushPath(p)
	return u.d[p], nil
}

// Update sets the value at i to v and recombines its ancestors. O(log n).
func (u *SegmentTree[N]) Update(i int, v N) error {
	if err := Go_Utils.CheckIndex("Update", i, 0, u.n-1); err != nil {
		return err
	}
	p := i + u.size
	u.pushPath(p)
	u.d[p] = v
	for p >>= 1; p > 0; p >>= 1 {
		u.pull(p)
	}
	return nil
}

// Add delta to the value at i. O(log n).
func (u *SegmentTree[N]) Add(i int, delta N) error {
	if err := Go_Utils.CheckIndex("Add", i, 0, u.n-1); err != nil {
		return err
	}
	p := i + u.size
	u.pushPath(p)
	u.d[p] += delta
	for p >>= 1; p > 0; p >>= 1 {
		u.pull(p)
	}
	return nil
}

// Query the aggregate of the inclusive range [l, r]. O(log n).
// The range is tiled by the minimal set of nodes; results are combined left to right, so combine
// needn't be commutative.
func (u *SegmentTree[N]) Query(l, r int) (N, error) {
	if err := Go_Utils.CheckIndex("Query", r, 0, u.n-1); err != nil {
		return u.id, err
	}
	if err := Go_Utils.CheckIndex("Query", l, 0, r); err != nil {
		return u.id, err
	}
	l, r = l+u.size, r+u.size+1
	u.pushBounds(l, r)
	sml, smr := u.id, u.id
	for l < r {
		if l&1 == 1 {
			sml = u.combine(sml, u.d[l])
			l++
		}
		if r&1 == 1 {
			r--
			smr = u.combine(u.d[r], smr)
		}
		l >>= 1
		r >>= 1
	}
	return u.combine(sml, smr), nil
}

// RangeUpdate adds delta to every value in the inclusive range [l, r]. For Min and Max every
// aggregate shifts by delta, for Sum by delta times the number of positions covered.
// O(log n) in lazy mode; otherwise every position is updated, O((r-l+1) log n).
func (u *SegmentTree[N]) RangeUpdate(l, r int, delta N) error {
	if err := Go_Utils.CheckIndex("RangeUpdate", r, 0, u.n-1); err != nil {
		return err
	}
	if err := Go_Utils.CheckIndex("RangeUpdate", l, 0, r); err != nil {
		return err
	}
	if u.lz == nil {
		for i := l; i <= r; i++ {
			_ = u.Add(i, delta)
		}
		return nil
	}
	l, r = l+u.size, r+u.size+1
	u.pushBounds(l, r)
	for a, b := l, r; a < b; a, b = a>>1, b>>1 {
		if a&1 == 1 {
			u.apply(a, delta)
			a++
		}
		if b&1 == 1 {
			b--
			u.apply(b, delta)
		}
	}
	for i := 1; i <= u.log; i++ {
		if (l>>i)<<i != l {
			u.pull(l >> i)
		}
		if (r>>i)<<i != r {
			u.pull((r - 1) >> i)
		}
	}
	return nil
}

// FindIndexAtSum returns the first index whose inclusive prefix sum is >= target, descending from
// the root: go left while the left child covers target, otherwise subtract it and go right.
// target<=0 gives 0, target>=Total() gives Len()-1. O(log n).
// It assumes non-negative values. Only Sum trees support it; others return an error matching
// Go_Utils.ErrNotSum.
func (u *SegmentTree[N]) FindIndexAtSum(target N) (int, error) {
	if u.kind != Sum {
		return -1, Go_Utils.NewConfigError("FindIndexAtSum", "tree aggregates "+u.kind.String(), Go_Utils.ErrNotSum)
	}
	if u.n == 0 {
		return -1, &Go_Utils.RangeError{Op: "FindIndexAtSum", Low: 0, High: -1}
	}
	if target <= 0 {
		return 0, nil
	}
	if target >= u.d[1] {
		return u.n - 1, nil
	}
	k := 1
	for k < u.size {
		u.push(k)
		if target <= u.d[2*k] {
			k = 2 * k
		} else {
			target -= u.d[2*k]
			k = 2*k + 1
		}
	}
	return min(k-u.size, u.n-1), nil
}

// Values returns a copy of the sequence, flushing every pending tag. O(n).
func (u *SegmentTree[N]) Values() []N {
	for k := 1; k < u.size; k++ {
		u.push(k)
	}
	return append([]N(nil), u.d[u.size:u.size+u.n]...)
}
