package Multisets

import "fmt"

// Multiset is a sorted collection in which equal elements may occur more
// than once. Receivers that has a bool as a second return value indicates
// whether the first return value is defined, following the convention of
// Trees.Tree.
// Implementations are single owner: mutating one instance from several
// goroutines at once, or mutating it while an iteration or a binary
// operation involving it is in flight, gives undefined results.
type Multiset[E any] interface {
	//Insert every given value. Repeated values accumulate.
	Insert(vs ...E)
	//Remove one instance per given value, returning how many instances were
	//actually removed. Values that aren't present are skipped silently.
	Remove(vs ...E) uint
	//Clear the multiset, dropping every element.
	Clear()
	//Size of the multiset, counting repeated elements separately.
	Size() uint
	//Empty reports whether Size()==0.
	Empty() bool
	//At returns the element at index i of the ascending order, 0<=i<Size().
	//Implementations must fail on an out of range i, never clamp it.
	At(i uint) E
	//IndexOf returns the index of the first instance of v in ascending
	//order; when v is absent, the index at which it would be inserted and
	//false.
	IndexOf(v E) (uint, bool)
	//Contains reports whether every given value has at least one instance.
	//Multiplicity is ignored: a single instance satisfies any number of
	//repetitions among vs.
	Contains(vs ...E) bool
	//Minimum element of the multiset.
	Minimum() (E, bool)
	//Maximum element of the multiset.
	Maximum() (E, bool)
	//All returns a closure function f acting like an iterator over the
	//ascending order, following the contract of Trees.Tree.InOrder. Each
	//call to All owns an independent cursor.
	All() func() (E, bool)
}

// RangeError is the error At panics with when the index lies outside
// [0, Size()).
type RangeError struct {
	Index, Size uint
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}
