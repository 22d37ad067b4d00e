package Trees

import Go_Utils "github.com/g-m-twostay/scale-utils"

// A Sum tree is a Positional index; it takes over from Sums.PrefixSumArray when many elements
// are resized between queries.
// Unlike Sums.PrefixSumArray the tree doesn't reject negative values, since Min, Max and RangeTree
// users need them. Offsets are only meaningful while every value is >=0; otherwise IndexAt and
// FindIndexAtSum still return an index in [0, Len()) but it may not contain the offset.
var _ Go_Utils.Positional[float64] = (*SegmentTree[float64])(nil)

func (u *SegmentTree[N]) notSum(op string) error {
	return Go_Utils.NewConfigError(op, "tree aggregates "+u.kind.String(), Go_Utils.ErrNotSum)
}

// Offset is the sum of the values before i, 0<=i<=Len(). O(log n). Sum trees only.
func (u *SegmentTree[N]) Offset(i int) (N, error) {
	if u.kind != Sum {
		return 0, u.notSum("Offset")
	}
	if err := Go_Utils.CheckIndex("Offset", i, 0, u.n); err != nil {
		return 0, err
	}
	if i == 0 {
		return 0, nil
	}
	return u.Query(0, i-1)
}

// Size is Get under the Positional name. Sum trees only.
func (u *SegmentTree[N]) Size(i int) (N, error) {
	if u.kind != Sum {
		return 0, u.notSum("Size")
	}
	return u.Get(i)
}

// IndexAt returns the index of the element containing offset, using the same convention as
// Sums.PrefixSumArray.IndexAt: the first index whose inclusive prefix sum is strictly greater
// than offset. Note the difference with FindIndexAtSum, which stops at the first prefix sum
// that is >= its target.
// offset<0 and an empty or zero total tree give 0; offset>=Total() gives Len()-1.
// A tree that doesn't aggregate Sum has no offsets and gives -1. O(log n).
func (u *SegmentTree[N]) IndexAt(offset N) int {
	if u.kind != Sum {
		return -1
	}
	if offset < 0 || u.n == 0 || u.d[1] == 0 {
		return 0
	}
	if offset >= u.d[1] {
		return u.n - 1
	}
	k := 1
	for k < u.size {
		u.push(k)
		if offset < u.d[2*k] {
			k = 2 * k
		} else {
			offset -= u.d[2*k]
			k = 2*k + 1
		}
	}
	return min(k-u.size, u.n-1)
}
