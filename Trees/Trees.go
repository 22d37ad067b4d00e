package Trees

import Go_Utils "github.com/g-m-twostay/scale-utils"

// RangeTree aggregates contiguous index ranges of a fixed length sequence.
// Every index and range argument is checked; a violation is returned as a *Go_Utils.RangeError and
// leaves the tree unchanged. Methods implemented recursively should be noted, otherwise they're
// iterative.
type RangeTree[N Go_Utils.Number] interface {
	//Query the aggregate of [l, r], 0<=l<=r<Len().
	Query(l, r int) (N, error)
	//Get the value at i.
	Get(i int) (N, error)
	//Update sets the value at i to v.
	Update(i int, v N) error
	//Add delta to the value at i.
	Add(i int, delta N) error
	//RangeUpdate adds delta to every value in [l, r].
	RangeUpdate(l, r int, delta N) error
	//Total is the aggregate of the whole sequence, the identity when it's empty.
	Total() N
	//Len of the sequence.
	Len() int
}

var _ RangeTree[int] = (*SegmentTree[int])(nil)
