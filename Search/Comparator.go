package Search

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
)

// Comparator returns a negative number when a<b, zero when a==b and a positive number when a>b.
// It must be a strict weak ordering.
type Comparator[T any] func(a, b T) int

// Reverse the order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// By orders values of T by a projected key, for example a struct field.
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Then breaks ties of c with next.
func Then[T any](c, next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// FromGods adapts a gods comparator, such as utils.StringComparator or utils.TimeComparator.
// The comparator sees the values boxed as interface{}, so it must accept T's dynamic type.
func FromGods[T any](c utils.Comparator) Comparator[T] {
	return func(a, b T) int {
		return c(a, b)
	}
}
