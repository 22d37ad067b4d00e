package Go_Utils

import "golang.org/x/exp/constraints"

// Number is any type that can be used as a magnitude: row heights, column widths or arbitrary weights.
type Number interface {
	constraints.Integer | constraints.Float
}

// Positional indexes a dense, zero based sequence of non-negative magnitudes by cumulative offset.
// Implementations are interchangeable: a consumer that only needs offsets can switch between a
// prefix sum table and a segment tree without other changes.
type Positional[N Number] interface {
	//Offset is the cumulative size of all elements before i. 0<=i<=Len().
	Offset(i int) (N, error)
	//Size of the element at i. 0<=i<Len().
	Size(i int) (N, error)
	//IndexAt returns the index of the element that contains offset, that is the i with
	//Offset(i)<=offset<Offset(i+1). offset<0 gives 0; offset>=Total() gives Len()-1;
	//an empty sequence gives 0. An implementation that can't hold offsets at all, such as a
	//segment tree that doesn't aggregate sums, gives -1, matching the ErrNotSum of Offset and Size.
	IndexAt(offset N) int
	//Total size of the sequence.
	Total() N
	//Len is the number of elements.
	Len() int
}
