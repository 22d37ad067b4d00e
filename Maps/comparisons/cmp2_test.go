package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/scale-utils/Caches/LRU"
)

// lookups: LRU against the plain hash maps https://github.com/alphadose/haxmap and
// https://github.com/cornelk/hashmap, which keep no recency order and never evict. The LRU isn't
// concurrent so everything runs on one goroutine.
const lookupItemCount uintptr = 1 << 10

func setupLRU(b *testing.B, capacity int) *LRU.LRU[uintptr, uintptr] {
	b.Helper()
	m := LRU.New[uintptr, uintptr](capacity)
	for i := uintptr(0); i < lookupItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()
	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < lookupItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()
	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < lookupItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func Benchmark2ReadLRU(b *testing.B) {
	m := setupLRU(b, int(lookupItemCount))
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < lookupItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark2PeekLRU(b *testing.B) {
	m := setupLRU(b, int(lookupItemCount))
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < lookupItemCount; i++ {
			if j, _ := m.Peek(i); j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark2ReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < lookupItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark2ReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < lookupItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

// every Set misses and evicts.
func Benchmark2ChurnLRU(b *testing.B) {
	m := setupLRU(b, int(lookupItemCount)/2)
	b.ResetTimer()
	for n := range b.N {
		base := uintptr(n) * lookupItemCount
		for i := uintptr(0); i < lookupItemCount; i++ {
			m.Set(base+i, i)
		}
	}
}

func Benchmark2ChurnHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for n := range b.N {
		base := uintptr(n) * lookupItemCount
		for i := uintptr(0); i < lookupItemCount; i++ {
			m.Set(base+i, i)
			m.Del(base + i - lookupItemCount)
		}
	}
}

func Benchmark2ChurnHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for n := range b.N {
		base := uintptr(n) * lookupItemCount
		for i := uintptr(0); i < lookupItemCount; i++ {
			m.Set(base+i, i)
			m.Del(base + i - lookupItemCount)
		}
	}
}
