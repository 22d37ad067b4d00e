package Trees

import (
	"math"
	"math/rand"
	"testing"

	Go_Utils "github.com/g-m-twostay/scale-utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _R = rand.New(rand.NewSource(0))

// corrupt reports whether some internal node without a pending tag differs from combine of its
// children after accounting for the children's own tags.
func (u *SegmentTree[N]) corrupt() bool {
	for k := u.size - 1; k > 0; k-- {
		if u.lz != nil && u.lz[k] != 0 {
			continue
		}
		if u.d[k] != u.combine(u.d[2*k], u.d[2*k+1]) {
			return true
		}
	}
	return false
}

func randInts(n, bound int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = _R.Intn(bound)
	}
	return a
}

func naive(vs []int, l, r int, kind Kind) int {
	acc := vs[l]
	for _, v := range vs[l+1 : r+1] {
		switch kind {
		case Sum:
			acc += v
		case Min:
			acc = min(acc, v)
		case Max:
			acc = max(acc, v)
		}
	}
	return acc
}

func TestSegmentTree_Scenario(t *testing.T) {
	for _, opts := range [][]Option{nil, {WithLazy()}} {
		tree := New([]int{1, 3, 5, 7, 9, 11}, Sum, opts...)
		s, err := tree.Query(1, 4)
		require.NoError(t, err)
		assert.Equal(t, 24, s)
		require.NoError(t, tree.Update(2, 10))
		assert.Equal(t, 41, tree.Total())
		v, err := tree.Query(2, 2)
		require.NoError(t, err)
		assert.Equal(t, 10, v)
	}
}

func TestSegmentTree_Aggregations(t *testing.T) {
	vs := []int{5, -2, 8, 3, 3, -7, 4}
	for _, kind := range []Kind{Sum, Min, Max} {
		tree := New(vs, kind)
		for l := range vs {
			for r := l; r < len(vs); r++ {
				got, err := tree.Query(l, r)
				require.NoError(t, err)
				assert.Equal(t, naive(vs, l, r, kind), got, "%v [%d, %d]", kind, l, r)
			}
		}
		all, _ := tree.Query(0, len(vs)-1)
		assert.Equal(t, all, tree.Total())
	}
}

func TestSegmentTree_Identity(t *testing.T) {
	assert.Equal(t, 0, New[int](nil, Sum).Total())
	assert.Equal(t, math.MaxInt, New[int](nil, Min).Total())
	assert.Equal(t, math.MinInt, New[int](nil, Max).Total())
	assert.Equal(t, int8(math.MinInt8), New[int8](nil, Max).Total())
	assert.Equal(t, uint16(math.MaxUint16), New[uint16](nil, Min).Total())
	assert.Equal(t, uint16(0), New[uint16](nil, Max).Total())
	assert.True(t, math.IsInf(New[float64](nil, Min).Total(), 1))
	assert.True(t, math.IsInf(float64(New[float32](nil, Max).Total()), -1))

	// padding leaves never leak into an aggregate.
	tree := New([]int8{-3, -9, -1}, Max)
	assert.Equal(t, int8(-1), tree.Total())
	tree = New([]int8{3, 9, 1}, Min)
	assert.Equal(t, int8(1), tree.Total())
}

func TestSegmentTree_Errors(t *testing.T) {
	tree := New([]int{1, 2, 3}, Min)
	_, err := tree.Query(2, 1)
	assert.ErrorIs(t, err, Go_Utils.ErrOutOfRange)
	_, err = tree.Query(0, 3)
	assert.ErrorIs(t, err, Go_Utils.ErrOutOfRange)
	_, err = tree.Get(-1)
	assert.ErrorIs(t, err, Go_Utils.ErrOutOfRange)
	assert.ErrorIs(t, tree.Update(3, 0), Go_Utils.ErrOutOfRange)
	assert.ErrorIs(t, tree.Add(3, 0), Go_Utils.ErrOutOfRange)
	assert.ErrorIs(t, tree.RangeUpdate(1, 3, 1), Go_Utils.ErrOutOfRange)

	_, err = tree.FindIndexAtSum(2)
	assert.ErrorIs(t, err, Go_Utils.ErrNotSum)
	assert.ErrorIs(t, err, Go_Utils.ErrInvalidConfig)
	_, err = tree.Offset(1)
	assert.ErrorIs(t, err, Go_Utils.ErrNotSum)
	assert.Equal(t, -1, tree.IndexAt(1))

	_, err = New[int](nil, Sum).FindIndexAtSum(1)
	assert.ErrorIs(t, err, Go_Utils.ErrOutOfRange)
	_, err = New[int](nil, Sum).Query(0, 0)
	assert.ErrorIs(t, err, Go_Utils.ErrOutOfRange)

	assert.PanicsWithError(t, "New: unsupported aggregation custom", func() {
		New([]int{1}, Custom)
	})
	assert.Panics(t, func() {
		NewFunc([]int{1}, func(a, b int) int { return a * b }, 1, WithLazy())
	})
	assert.Panics(t, func() {
		NewFunc[int]([]int{1}, nil, 0)
	})
}

func TestSegmentTree_UpdateThenQuery(t *testing.T) {
	for _, opts := range [][]Option{nil, {WithLazy()}} {
		vs := randInts(1000, 100)
		tree := New(vs, Max, opts...)
		for range 5000 {
			i, v := _R.Intn(len(vs)), _R.Intn(100)
			require.NoError(t, tree.Update(i, v))
			vs[i] = v
			got, err := tree.Query(i, i)
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		assert.False(t, tree.corrupt())
		assert.Equal(t, vs, tree.Values())
	}
}

func TestSegmentTree_FindIndexAtSum(t *testing.T) {
	vs := randInts(777, 50)
	for i := range vs {
		vs[i]++
	}
	for _, opts := range [][]Option{nil, {WithLazy()}} {
		tree := New(vs, Sum, opts...)
		cum := 0
		for i, v := range vs {
			cum += v
			idx, err := tree.FindIndexAtSum(cum)
			require.NoError(t, err)
			assert.Equal(t, i, idx, "inclusive prefix %d", cum)
			// one below the inclusive prefix still lands on i.
			idx, _ = tree.FindIndexAtSum(cum - v + 1)
			assert.Equal(t, i, idx)
		}
	}

	tree := New([]int{20, 40, 30, 50, 10}, Sum)
	at := func(target int) int {
		i, err := tree.FindIndexAtSum(target)
		require.NoError(t, err)
		return i
	}
	assert.Equal(t, 0, at(-5))
	assert.Equal(t, 0, at(0))
	assert.Equal(t, 0, at(20))
	assert.Equal(t, 1, at(21))
	assert.Equal(t, 1, at(60))
	assert.Equal(t, 2, at(61))
	assert.Equal(t, 4, at(141))
	assert.Equal(t, 4, at(150))
	assert.Equal(t, 4, at(1000))

	// exact boundaries differ from IndexAt, which picks the element starting at the offset.
	assert.Equal(t, 1, tree.IndexAt(20))
	assert.Equal(t, 0, tree.IndexAt(19))
	assert.Equal(t, 2, tree.IndexAt(61))
	assert.Equal(t, 4, tree.IndexAt(150))
}

func TestSegmentTree_NegativeSums(t *testing.T) {
	vs := []int{5, -8, 3, -2, 7, -9, 4}
	tree := New(vs, Sum)
	assert.Equal(t, 0, tree.Total())
	s, err := tree.Query(1, 3)
	require.NoError(t, err)
	assert.Equal(t, -7, s)
	// offsets lose their meaning but indexes stay in range.
	for off := -20; off <= 20; off++ {
		i := tree.IndexAt(off)
		assert.True(t, i >= 0 && i < len(vs), "index at %d: %d", off, i)
	}
	require.NoError(t, tree.Update(5, 9))
	for target := -20; target <= 40; target++ {
		i, err := tree.FindIndexAtSum(target)
		require.NoError(t, err)
		assert.True(t, i >= 0 && i < len(vs), "find %d: %d", target, i)
	}
	// on non-negative values it agrees with the positional contract again.
	tree.Reset([]int{5, 8, 3})
	assert.Equal(t, 1, tree.IndexAt(5))
	i, _ := tree.FindIndexAtSum(5)
	assert.Equal(t, 0, i)
}

func TestSegmentTree_LazyMatchesEager(t *testing.T) {
	for _, kind := range []Kind{Sum, Min, Max} {
		vs := randInts(513, 1000)
		et, lt := New(vs, kind), New(vs, kind, WithLazy())
		require.True(t, lt.Lazy())
		require.False(t, et.Lazy())
		var eager, lazy RangeTree[int] = et, lt
		for range 3000 {
			l := _R.Intn(len(vs))
			r := l + _R.Intn(len(vs)-l)
			switch _R.Intn(4) {
			case 0, 1:
				d := _R.Intn(21) - 10
				require.NoError(t, eager.RangeUpdate(l, r, d))
				require.NoError(t, lazy.RangeUpdate(l, r, d))
				for i := l; i <= r; i++ {
					vs[i] += d
				}
			case 2:
				v := _R.Intn(1000)
				require.NoError(t, eager.Update(l, v))
				require.NoError(t, lazy.Update(l, v))
				vs[l] = v
			case 3:
				require.NoError(t, eager.Add(r, 3))
				require.NoError(t, lazy.Add(r, 3))
				vs[r] += 3
			}
			a, err := eager.Query(l, r)
			require.NoError(t, err)
			b, err := lazy.Query(l, r)
			require.NoError(t, err)
			require.Equal(t, a, b)
			require.Equal(t, naive(vs, l, r, kind), b)
			require.Equal(t, eager.Total(), lazy.Total())
		}
		assert.False(t, et.corrupt())
		assert.False(t, lt.corrupt())
		for l := 0; l < len(vs); l += 17 {
			for r := l; r < len(vs); r += 31 {
				a, _ := eager.Query(l, r)
				b, _ := lazy.Query(l, r)
				assert.Equal(t, a, b)
			}
		}
		for i := range vs {
			g, err := lazy.Get(i)
			require.NoError(t, err)
			assert.Equal(t, vs[i], g)
		}
		assert.Equal(t, vs, lt.Values())
		assert.Equal(t, vs, et.Values())
	}
}

func TestSegmentTree_Custom(t *testing.T) {
	// first value that isn't -1: associative but not commutative.
	first := func(a, b int) int {
		if a != -1 {
			return a
		}
		return b
	}
	vs := []int{-1, -1, 7, -1, 4, 9, -1}
	tree := NewFunc(vs, first, -1)
	assert.Equal(t, Custom, tree.Kind())
	q := func(l, r int) int {
		v, err := tree.Query(l, r)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, 7, q(0, 6))
	assert.Equal(t, 4, q(3, 6))
	assert.Equal(t, -1, q(0, 1))
	assert.Equal(t, 9, q(5, 6))
	require.NoError(t, tree.Update(1, 2))
	assert.Equal(t, 2, q(0, 6))
	require.NoError(t, tree.RangeUpdate(3, 3, 6))
	assert.Equal(t, 5, q(3, 6))

	gcd := func(a, b uint) uint {
		for b != 0 {
			a, b = b, a%b
		}
		return a
	}
	g := NewFunc([]uint{12, 18, 24, 36}, gcd, 0)
	v, _ := g.Query(0, 3)
	assert.Equal(t, uint(6), v)
	v, _ = g.Query(2, 3)
	assert.Equal(t, uint(12), v)
}

func TestSegmentTree_Reset(t *testing.T) {
	tree := New([]int{1, 2, 3}, Sum, WithLazy())
	require.NoError(t, tree.RangeUpdate(0, 2, 5))
	tree.Reset([]int{4, 4, 4, 4, 4})
	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, 20, tree.Total())
	require.NoError(t, tree.RangeUpdate(1, 3, 1))
	assert.Equal(t, []int{4, 5, 5, 5, 4}, tree.Values())
	assert.True(t, tree.Lazy())
}

func BenchmarkSegmentTree_RangeUpdate(b *testing.B) {
	vs := randInts(1<<16, 40)
	tree := New(vs, Sum, WithLazy())
	b.ResetTimer()
	for i := range b.N {
		l := i & (1<<15 - 1)
		_ = tree.RangeUpdate(l, l+1<<15, 1)
	}
}

func BenchmarkSegmentTree_FindIndexAtSum(b *testing.B) {
	vs := randInts(1<<20, 40)
	tree := New(vs, Sum)
	total := tree.Total()
	b.ResetTimer()
	for i := range b.N {
		_, _ = tree.FindIndexAtSum(i % total)
	}
}
