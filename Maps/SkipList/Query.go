package SkipList

import "github.com/g-m-twostay/scale-utils/Maps"

// Range returns the entries with lo<=key<=hi in ascending order, empty when lo>hi.
// Time: O(log n + m) expected for m results
func (u *SkipList[K, V]) Range(lo, hi K) []Maps.Entry[K, V] {
	var es []Maps.Entry[K, V]
	if u.cmp(lo, hi) > 0 {
		return es
	}
	for x := u.lowerBound(lo); x != nil && u.cmp(x.k, hi) <= 0; x = x.next[0] {
		es = append(es, Maps.Entry[K, V]{Key: x.k, Value: x.v})
	}
	return es
}

// Floor is the entry with the greatest key <=k.
// Time: O(log n) expected
func (u *SkipList[K, V]) Floor(k K) (Maps.Entry[K, V], bool) {
	x := u.head
	for i := u.level; i > -1; i-- {
		for y := x.next[i]; y != nil && u.cmp(y.k, k) <= 0; y = x.next[i] {
			x = y
		}
	}
	if x == u.head {
		return Maps.Entry[K, V]{}, false
	}
	return Maps.Entry[K, V]{Key: x.k, Value: x.v}, true
}

// Ceiling is the entry with the smallest key >=k.
// Time: O(log n) expected
func (u *SkipList[K, V]) Ceiling(k K) (Maps.Entry[K, V], bool) {
	if x := u.lowerBound(k); x != nil {
		return Maps.Entry[K, V]{Key: x.k, Value: x.v}, true
	}
	return Maps.Entry[K, V]{}, false
}

// Min is the entry with the smallest key.
// Time: O(1)
func (u *SkipList[K, V]) Min() (Maps.Entry[K, V], bool) {
	if x := u.head.next[0]; x != nil {
		return Maps.Entry[K, V]{Key: x.k, Value: x.v}, true
	}
	return Maps.Entry[K, V]{}, false
}

// Max is the entry with the greatest key, found by running to the end of every level from the top.
// Time: O(log n) expected
func (u *SkipList[K, V]) Max() (Maps.Entry[K, V], bool) {
	x := u.head
	for i := u.level; i > -1; i-- {
		for x.next[i] != nil {
			x = x.next[i]
		}
	}
	if x == u.head {
		return Maps.Entry[K, V]{}, false
	}
	return Maps.Entry[K, V]{Key: x.k, Value: x.v}, true
}

// Kth is the entry at ascending position k, starting from 0.
// Nodes don't record how many keys their forward pointers skip, so this walks level 0.
// That's a known limitation of this list, not a bug.
// Time: O(k)
func (u *SkipList[K, V]) Kth(k int) (Maps.Entry[K, V], bool) {
	if k < 0 || k >= u.n {
		return Maps.Entry[K, V]{}, false
	}
	x := u.head.next[0]
	for ; k > 0; k-- {
		x = x.next[0]
	}
	return Maps.Entry[K, V]{Key: x.k, Value: x.v}, true
}

// Rank is the number of keys less than k, and whether k itself is present. Like Kth it walks level 0.
// Time: O(n)
func (u *SkipList[K, V]) Rank(k K) (int, bool) {
	r := 0
	x := u.head.next[0]
	for ; x != nil && u.cmp(x.k, k) < 0; x = x.next[0] {
		r++
	}
	return r, x != nil && u.cmp(x.k, k) == 0
}

// Each calls f on every entry in ascending order until f returns false.
// The list mustn't be modified during the iteration.
func (u *SkipList[K, V]) Each(f func(K, V) bool) {
	for x := u.head.next[0]; x != nil; x = x.next[0] {
		if !f(x.k, x.v) {
			return
		}
	}
}

// Keys in ascending order.
func (u *SkipList[K, V]) Keys() []K {
	ks := make([]K, 0, u.n)
	for x := u.head.next[0]; x != nil; x = x.next[0] {
		ks = append(ks, x.k)
	}
	return ks
}

// Values in ascending key order.
func (u *SkipList[K, V]) Values() []V {
	vs := make([]V, 0, u.n)
	for x := u.head.next[0]; x != nil; x = x.next[0] {
		vs = append(vs, x.v)
	}
	return vs
}

// Corrupt returns whether the list's structure is broken: a level that isn't strictly sorted or
// isn't a subsequence of the level below, a node linked above its own level, an empty top level,
// or a length that disagrees with level 0.
// Time: O(n log n) expected
func (u *SkipList[K, V]) Corrupt() bool {
	if len(u.head.next) != u.level+1 || (u.level > 0 && u.head.next[u.level] == nil) {
		return true
	}
	cnt := 0
	for x := u.head.next[0]; x != nil; x = x.next[0] {
		if cnt++; x.next[0] != nil && u.cmp(x.k, x.next[0].k) >= 0 {
			return true
		}
	}
	if cnt != u.n {
		return true
	}
	for i := 1; i <= u.level; i++ {
		below := u.head.next[i-1]
		for x := u.head.next[i]; x != nil; x = x.next[i] {
			if len(x.next) <= i {
				return true
			}
			for below != nil && below != x {
				below = below.next[i-1]
			}
			if below == nil {
				return true
			}
			if x.next[i] != nil && u.cmp(x.k, x.next[i].k) >= 0 {
				return true
			}
		}
	}
	return false
}
