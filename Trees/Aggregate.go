package Trees

import (
	"math"
	"reflect"

	Go_Utils "github.com/g-m-twostay/scale-utils"
)

// Kind of aggregation a SegmentTree maintains.
type Kind uint8

const (
	Sum Kind = iota
	Min
	Max
	// Custom is a caller supplied associative combine function, see NewFunc.
	Custom
)

func (k Kind) String() string {
	switch k {
	case Sum:
		return "sum"
	case Min:
		return "min"
	case Max:
		return "max"
	case Custom:
		return "custom"
	}
	return "unknown"
}

// aggregation returns the combine function and its identity element for k.
// Min uses the largest value of N as identity, +Inf for floats; Max uses the smallest, -Inf for floats.
func aggregation[N Go_Utils.Number](k Kind) (func(a, b N) N, N, bool) {
	switch k {
	case Sum:
		return func(a, b N) N { return a + b }, 0, true
	case Min:
		return func(a, b N) N { return min(a, b) }, maxValue[N](), true
	case Max:
		return func(a, b N) N { return max(a, b) }, minValue[N](), true
	}
	return nil, 0, false
}

func maxValue[N Go_Utils.Number]() N {
	var z N
	switch t := reflect.TypeOf(z); t.Kind() {
	case reflect.Float32, reflect.Float64:
		inf := math.Inf(1)
		return N(inf)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		m := uint64(1)<<(t.Bits()-1) - 1
		return N(m)
	default:
		m := ^uint64(0)
		return N(m)
	}
}

func minValue[N Go_Utils.Number]() N {
	var z N
	switch t := reflect.TypeOf(z); t.Kind() {
	case reflect.Float32, reflect.Float64:
		inf := math.Inf(-1)
		return N(inf)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		m := int64(-1) << (t.Bits() - 1)
		return N(m)
	default:
		return 0
	}
}
