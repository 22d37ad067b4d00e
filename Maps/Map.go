package Maps

// Entry is a key and the value stored under it.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// OrderedMap is a map that keeps its keys sorted.
// Receivers that have a bool as the last return value use it to report whether the other return
// values are defined; when it's false they're zero values and mustn't be used.
type OrderedMap[K, V any] interface {
	//Set v under k. Returns the replaced value, if any.
	Set(k K, v V) (V, bool)
	//Get the value under k.
	Get(k K) (V, bool)
	//Has key k.
	Has(k K) bool
	//Delete k. Returns the removed value, if any.
	Delete(k K) (V, bool)
	//Range returns every entry with lo<=key<=hi in ascending order.
	Range(lo, hi K) []Entry[K, V]
	//Floor is the entry with the greatest key <=k.
	Floor(k K) (Entry[K, V], bool)
	//Ceiling is the entry with the smallest key >=k.
	Ceiling(k K) (Entry[K, V], bool)
	//Len is the number of keys.
	Len() int
}
