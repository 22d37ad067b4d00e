// Package Search implements binary search over sorted slices with a pluggable ordering.
// Every function runs in O(log n) comparisons and O(1) extra space.
package Search

import "cmp"

// Result of a search. Index is -1 on a miss unless an insertion point was requested.
type Result struct {
	Found bool
	Index int
}

type config struct {
	insertionPoint bool
}

// Option configures Search and SearchFunc.
type Option func(*config)

// WithInsertionPoint makes a miss report the position in [0, len(s)] at which the target would be
// inserted to keep s sorted, instead of -1.
func WithInsertionPoint() Option {
	return func(c *config) {
		c.insertionPoint = true
	}
}

// Search s for target under the natural order of T.
func Search[T cmp.Ordered](s []T, target T, opts ...Option) Result {
	return SearchFunc(s, target, cmp.Compare[T], opts...)
}

// SearchFunc searches s, which must be sorted ascending under c, for target. When target occurs
// more than once, any one of the equal positions may be reported; use Leftmost or Rightmost for a
// specific one.
func SearchFunc[T any](s []T, target T, c Comparator[T], opts ...Option) Result {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		if r := c(s[mid], target); r < 0 {
			lo = mid + 1
		} else if r > 0 {
			hi = mid - 1
		} else {
			return Result{true, mid}
		}
	}
	if cfg.insertionPoint {
		return Result{false, lo}
	}
	return Result{false, -1}
}

// LowerBound is the first index i with s[i]>=target, len(s) if there is none.
func LowerBound[T cmp.Ordered](s []T, target T) int {
	return LowerBoundFunc(s, target, cmp.Compare[T])
}

// LowerBoundFunc is LowerBound under c.
func LowerBoundFunc[T any](s []T, target T, c Comparator[T]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		if mid := int(uint(lo+hi) >> 1); c(s[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// UpperBound is the first index i with s[i]>target, len(s) if there is none.
func UpperBound[T cmp.Ordered](s []T, target T) int {
	return UpperBoundFunc(s, target, cmp.Compare[T])
}

// UpperBoundFunc is UpperBound under c.
func UpperBoundFunc[T any](s []T, target T, c Comparator[T]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		if mid := int(uint(lo+hi) >> 1); c(s[mid], target) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Leftmost is the first index whose element equals target, -1 if none does.
func Leftmost[T cmp.Ordered](s []T, target T) int {
	return LeftmostFunc(s, target, cmp.Compare[T])
}

// LeftmostFunc is Leftmost under c.
func LeftmostFunc[T any](s []T, target T, c Comparator[T]) int {
	if i := LowerBoundFunc(s, target, c); i < len(s) && c(s[i], target) == 0 {
		return i
	}
	return -1
}

// Rightmost is the last index whose element equals target, -1 if none does.
func Rightmost[T cmp.Ordered](s []T, target T) int {
	return RightmostFunc(s, target, cmp.Compare[T])
}

// RightmostFunc is Rightmost under c.
func RightmostFunc[T any](s []T, target T, c Comparator[T]) int {
	if i := UpperBoundFunc(s, target, c) - 1; i >= 0 && c(s[i], target) == 0 {
		return i
	}
	return -1
}
