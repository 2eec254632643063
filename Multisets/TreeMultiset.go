package Multisets

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-multisets/Trees"
	"golang.org/x/exp/constraints"
)

// TreeMultiset is a Multiset backed by a single Trees.RBTree, which gives
// O(log n) insertion, removal, membership, rank and positional access.
// T is the type of values it will hold, S is the type used by the tree for
// subtree sizes; see the note on RBTree about choosing S wide enough.
// The element count is cached and refreshed from the tree after every
// mutation, it is never computed independently of the tree.
type TreeMultiset[T constraints.Ordered, S constraints.Unsigned] struct {
	t  *Trees.RBTree[T, S]
	sz uint
}

// New returns an empty TreeMultiset.
// TreeMultiset shouldn't be created directly using struct literal.
func New[T constraints.Ordered, S constraints.Unsigned]() *TreeMultiset[T, S] {
	return &TreeMultiset[T, S]{t: Trees.MakeRBTree[T, S]()}
}

// From returns a TreeMultiset holding every element of vs, inserting them
// in the given order. vs doesn't need to be sorted and may repeat values.
// Time: O(n*D)
func From[T constraints.Ordered, S constraints.Unsigned](vs []T) *TreeMultiset[T, S] {
	u := New[T, S]()
	u.Insert(vs...)
	return u
}

// Size [Multiset.Size]
// Time: O(1); Space: O(1)
func (u *TreeMultiset[T, S]) Size() uint {
	return u.sz
}

// Empty [Multiset.Empty]
// Time: O(1); Space: O(1)
func (u *TreeMultiset[T, S]) Empty() bool {
	return u.sz == 0
}

// Insert [Multiset.Insert]
// Time: O(len(vs)*D)
func (u *TreeMultiset[T, S]) Insert(vs ...T) {
	for _, v := range vs {
		u.t.Insert(v)
	}
	u.sz = u.t.Size()
}

// Remove [Multiset.Remove]. One instance per named value: removing a value
// that occurs 3 times while naming it once leaves 2 instances behind.
// Time: O(len(vs)*D)
func (u *TreeMultiset[T, S]) Remove(vs ...T) uint {
	var n uint
	for _, v := range vs {
		if u.t.Remove(v) {
			n++
		}
	}
	u.sz = u.t.Size()
	return n
}

// Clear [Multiset.Clear]
// Time: O(1); Space: O(1)
func (u *TreeMultiset[T, S]) Clear() {
	u.t.Clear()
	u.sz = 0
}

// At [Multiset.At]. Panics with *RangeError when i is outside [0, Size()).
// Time: O(D); Space: O(1)
func (u *TreeMultiset[T, S]) At(i uint) T {
	v, ok := u.t.KSmallest(i)
	if !ok {
		panic(&RangeError{i, u.sz})
	}
	return v
}

// IndexOf [Multiset.IndexOf]
// Time: O(D); Space: O(1)
func (u *TreeMultiset[T, S]) IndexOf(v T) (uint, bool) {
	return u.t.RankOf(v)
}

// Contains [Multiset.Contains]
// Time: O(len(vs)*D); Space: O(1)
func (u *TreeMultiset[T, S]) Contains(vs ...T) bool {
	for _, v := range vs {
		if !u.t.Has(v) {
			return false
		}
	}
	return true
}

// Minimum [Multiset.Minimum]
// Time: O(D); Space: O(1)
func (u *TreeMultiset[T, S]) Minimum() (T, bool) {
	return u.t.Minimum()
}

// Maximum [Multiset.Maximum]
// Time: O(D); Space: O(1)
func (u *TreeMultiset[T, S]) Maximum() (T, bool) {
	return u.t.Maximum()
}

// All [Multiset.All]
// Time: f(): amortized O(1) at each call to the returned function.
func (u *TreeMultiset[T, S]) All() func() (T, bool) {
	return u.t.InOrder()
}

// Eq reports whether u and o hold exactly the same elements with the same
// multiplicities. Since both sides are fully sorted, positional comparison
// is well defined even though the order inside a run of equal elements
// isn't.
// Time: O(n)
func (u *TreeMultiset[T, S]) Eq(o *TreeMultiset[T, S]) bool {
	if u.sz != o.sz {
		return false
	}
	f, g := u.All(), o.All()
	for a, ok := f(); ok; a, ok = f() {
		if b, _ := g(); a != b {
			return false
		}
	}
	return true
}

// String renders the elements in ascending order as "[a, b, c]". The result
// is for humans, it isn't meant to be parsed back.
func (u *TreeMultiset[T, S]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	f := u.All()
	for v, ok := f(); ok; v, ok = f() {
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}
