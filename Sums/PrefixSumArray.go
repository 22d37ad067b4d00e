// Package Sums holds positional indexes backed by a precomputed prefix sum table. They answer
// offset queries in O(1) and position lookups in O(log n), at the cost of O(n) updates, which
// suits sequences that are resized rarely but queried on every frame.
package Sums

import (
	Go_Utils "github.com/g-m-twostay/scale-utils"
	"github.com/g-m-twostay/scale-utils/Search"
)

// PrefixSumArray stores a sequence of non-negative magnitudes together with sums, where sums[i]
// is the total of values[0:i]. len(sums)==len(values)+1 and sums[0]==0 at all times.
// The zero value is not usable; use New.
type PrefixSumArray[N Go_Utils.Number] struct {
	values []N
	sums   []N
}

var _ Go_Utils.Positional[float64] = (*PrefixSumArray[float64])(nil)

// New builds the table from values in O(n). values is copied. A negative magnitude is rejected
// with a *Go_Utils.RangeError.
func New[N Go_Utils.Number](values []N) (*PrefixSumArray[N], error) {
	u := &PrefixSumArray[N]{}
	if err := u.Reset(values); err != nil {
		return nil, err
	}
	return u, nil
}

// Reset replaces the whole sequence, O(n). On error the array is left unchanged.
func (u *PrefixSumArray[N]) Reset(values []N) error {
	for i, v := range values {
		if v < 0 {
			return &Go_Utils.RangeError{Op: "Reset", Index: i, Negative: true}
		}
	}
	u.values = append(make([]N, 0, len(values)), values...)
	u.sums = make([]N, len(values)+1, cap(u.values)+1)
	for i, v := range values {
		u.sums[i+1] = u.sums[i] + v
	}
	return nil
}

// Len is the number of elements.
func (u *PrefixSumArray[N]) Len() int {
	return len(u.values)
}

// Total of all magnitudes, O(1).
func (u *PrefixSumArray[N]) Total() N {
	return u.sums[len(u.sums)-1]
}

// Offset is the sum of the magnitudes before i. 0<=i<=Len(). O(1).
func (u *PrefixSumArray[N]) Offset(i int) (N, error) {
	if err := Go_Utils.CheckIndex("Offset", i, 0, len(u.values)); err != nil {
		return 0, err
	}
	return u.sums[i], nil
}

// Size is the magnitude at i. O(1).
func (u *PrefixSumArray[N]) Size(i int) (N, error) {
	if err := Go_Utils.CheckIndex("Size", i, 0, len(u.values)-1); err != nil {
		return 0, err
	}
	return u.values[i], nil
}

// RangeSum is the sum of values[a:b], 0<=a<=b<=Len(). O(1).
func (u *PrefixSumArray[N]) RangeSum(a, b int) (N, error) {
	if err := Go_Utils.CheckIndex("RangeSum", b, 0, len(u.values)); err != nil {
		return 0, err
	}
	if err := Go_Utils.CheckIndex("RangeSum", a, 0, b); err != nil {
		return 0, err
	}
	return u.sums[b] - u.sums[a], nil
}

// IndexAt returns the index of the element containing offset: the i with
// sums[i]<=offset<sums[i+1], equivalently the first index whose inclusive prefix sum is strictly
// greater than offset. Zero sized elements never contain an offset, so an offset landing exactly on
// a boundary belongs to the next element with a positive size.
// offset<0 and an empty or zero total sequence give 0; offset>=Total() gives Len()-1.
// O(log n).
func (u *PrefixSumArray[N]) IndexAt(offset N) int {
	if offset < 0 || len(u.values) == 0 || u.Total() == 0 {
		return 0
	}
	if offset >= u.Total() {
		return len(u.values) - 1
	}
	// sums[0]==0<=offset, so the upper bound is at least 1.
	return Search.UpperBound(u.sums, offset) - 1
}

// Update sets the magnitude at i to v. Every later cumulative entry is shifted by the difference,
// O(n).
func (u *PrefixSumArray[N]) Update(i int, v N) error {
	if err := Go_Utils.CheckIndex("Update", i, 0, len(u.values)-1); err != nil {
		return err
	}
	if v < 0 {
		return &Go_Utils.RangeError{Op: "Update", Index: i, Negative: true}
	}
	if d := v - u.values[i]; d != 0 {
		u.values[i] = v
		for j := i + 1; j < len(u.sums); j++ {
			u.sums[j] += d
		}
	}
	return nil
}

// Push appends v, amortized O(1).
func (u *PrefixSumArray[N]) Push(v N) error {
	if v < 0 {
		return &Go_Utils.RangeError{Op: "Push", Index: len(u.values), Negative: true}
	}
	u.values = append(u.values, v)
	u.sums = append(u.sums, u.sums[len(u.sums)-1]+v)
	return nil
}

// Pop removes and returns the last magnitude, O(1). Returns false when empty.
func (u *PrefixSumArray[N]) Pop() (N, bool) {
	if len(u.values) == 0 {
		return 0, false
	}
	v := u.values[len(u.values)-1]
	u.values = u.values[:len(u.values)-1]
	u.sums = u.sums[:len(u.sums)-1]
	return v, true
}

// Insert v before index i, 0<=i<=Len(). O(n).
func (u *PrefixSumArray[N]) Insert(i int, v N) error {
	if err := Go_Utils.CheckIndex("Insert", i, 0, len(u.values)); err != nil {
		return err
	}
	if v < 0 {
		return &Go_Utils.RangeError{Op: "Insert", Index: i, Negative: true}
	}
	var zero N
	u.values = append(u.values, zero)
	copy(u.values[i+1:], u.values[i:])
	u.values[i] = v
	u.sums = append(u.sums, zero)
	for j := len(u.sums) - 1; j > i; j-- {
		u.sums[j] = u.sums[j-1] + v
	}
	return nil
}

// Remove the element at i and return its magnitude. O(n).
func (u *PrefixSumArray[N]) Remove(i int) (N, error) {
	if err := Go_Utils.CheckIndex("Remove", i, 0, len(u.values)-1); err != nil {
		return 0, err
	}
	v := u.values[i]
	u.values = append(u.values[:i], u.values[i+1:]...)
	for j := i + 1; j < len(u.sums)-1; j++ {
		u.sums[j] = u.sums[j+1] - v
	}
	u.sums = u.sums[:len(u.sums)-1]
	return v, nil
}

// Values is a read-only view of the magnitudes; it must not be modified and is invalidated by the
// next mutation.
func (u *PrefixSumArray[N]) Values() []N {
	return u.values
}

// Sums is a read-only view of the cumulative table, len(Sums())==Len()+1.
func (u *PrefixSumArray[N]) Sums() []N {
	return u.sums
}
