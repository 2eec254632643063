package Multisets

// The binary operations below treat each operand as its ascending indexed
// view A[0..Size()) accessed through At, and walk both views with a pair of
// cursors that always advance the smaller side. The loop stops when either
// side runs out, then the survivor is drained according to the operation.
// Per value v with multiplicities mA(v) and mB(v), the results hold:
//
//	Union:       max(mA, mB)
//	Intersect:   min(mA, mB)
//	Subtract:    max(mA-mB, 0)
//	ExclusiveOr: 0 whenever v occurs on both sides, mA or mB otherwise
//
// The pure forms construct a fresh TreeMultiset by inserting in ascending
// order and leave both operands untouched; the InPlace forms apply the same
// cursor logic but mutate the receiver through single inserts and removals,
// reading the second operand only.

// Union returns a new multiset where each value keeps the larger of its two
// multiplicities. Matched instances advance both cursors and emit once;
// unmatched instances emit from whichever side is smaller.
// Time: O(n*D)
func (u *TreeMultiset[T, S]) Union(o *TreeMultiset[T, S]) *TreeMultiset[T, S] {
	r := New[T, S]()
	var i, j uint
	for i < u.sz && j < o.sz {
		if a, b := u.At(i), o.At(j); a < b {
			r.Insert(a)
			i++
		} else if b < a {
			r.Insert(b)
			j++
		} else {
			r.Insert(a)
			i++
			j++
		}
	}
	for ; i < u.sz; i++ {
		r.Insert(u.At(i))
	}
	for ; j < o.sz; j++ {
		r.Insert(o.At(j))
	}
	return r
}

// UnionInPlace grows u so that each value holds the larger of the two
// multiplicities. o is read-only.
// Time: O(n*D)
func (u *TreeMultiset[T, S]) UnionInPlace(o *TreeMultiset[T, S]) {
	var i, j uint
	for i < u.sz && j < o.sz {
		if a, b := u.At(i), o.At(j); a < b {
			i++
		} else if b < a {
			// b slots in right at index i: everything before i is <b and
			// everything from i on is >b.
			u.Insert(b)
			i++
			j++
		} else {
			i++
			j++
		}
	}
	for ; j < o.sz; j++ {
		u.Insert(o.At(j))
	}
}

// Intersect returns a new multiset where each value keeps the smaller of
// its two multiplicities. Only matched instances emit; unmatched instances
// advance the smaller side silently.
// Time: O(n*D)
func (u *TreeMultiset[T, S]) Intersect(o *TreeMultiset[T, S]) *TreeMultiset[T, S] {
	r := New[T, S]()
	var i, j uint
	for i < u.sz && j < o.sz {
		if a, b := u.At(i), o.At(j); a < b {
			i++
		} else if b < a {
			j++
		} else {
			r.Insert(a)
			i++
			j++
		}
	}
	return r
}

// IntersectInPlace shrinks u so that each value holds the smaller of the
// two multiplicities. o is read-only.
// Time: O(n*D)
func (u *TreeMultiset[T, S]) IntersectInPlace(o *TreeMultiset[T, S]) {
	var i, j uint
	for i < u.sz && j < o.sz {
		if a, b := u.At(i), o.At(j); a < b {
			u.Remove(a) // unmatched receiver instance, the view closes up at i
		} else if b < a {
			j++
		} else {
			i++
			j++
		}
	}
	for i < u.sz {
		u.Remove(u.At(i))
	}
}

// Subtract returns a new multiset holding u minus o: each value keeps
// max(mA-mB, 0) instances. Matched instances cancel silently; receiver
// instances below the other cursor emit.
// Time: O(n*D)
func (u *TreeMultiset[T, S]) Subtract(o *TreeMultiset[T, S]) *TreeMultiset[T, S] {
	r := New[T, S]()
	var i, j uint
	for i < u.sz && j < o.sz {
		if a, b := u.At(i), o.At(j); a < b {
			r.Insert(a)
			i++
		} else if b < a {
			j++
		} else {
			i++
			j++
		}
	}
	for ; i < u.sz; i++ {
		r.Insert(u.At(i))
	}
	return r
}

// SubtractInPlace removes one receiver instance per matched instance of o.
// o is read-only.
// Time: O(n*D)
func (u *TreeMultiset[T, S]) SubtractInPlace(o *TreeMultiset[T, S]) {
	var i, j uint
	for i < u.sz && j < o.sz {
		if a, b := u.At(i), o.At(j); a < b {
			i++
		} else if b < a {
			j++
		} else {
			u.Remove(a) // the view closes up at i, don't advance
			j++
		}
	}
}

// ExclusiveOr returns a new multiset holding the values present on exactly
// one side. A matched value discards its ENTIRE run on both sides at once,
// so a value held 3 times by u and once by o contributes nothing, not 2
// instances. Callers expecting |mA-mB| should combine Subtract both ways
// instead.
// Time: O(n*D)
func (u *TreeMultiset[T, S]) ExclusiveOr(o *TreeMultiset[T, S]) *TreeMultiset[T, S] {
	r := New[T, S]()
	var i, j uint
	for i < u.sz && j < o.sz {
		if a, b := u.At(i), o.At(j); a < b {
			r.Insert(a)
			i++
		} else if b < a {
			r.Insert(b)
			j++
		} else {
			for i++; i < u.sz && u.At(i) == a; i++ {
			}
			for j++; j < o.sz && o.At(j) == a; j++ {
			}
		}
	}
	for ; i < u.sz; i++ {
		r.Insert(u.At(i))
	}
	for ; j < o.sz; j++ {
		r.Insert(o.At(j))
	}
	return r
}

// ExclusiveOrInPlace applies the ExclusiveOr semantics to u, whole-run
// discard included. o is read-only.
// Time: O(n*D)
func (u *TreeMultiset[T, S]) ExclusiveOrInPlace(o *TreeMultiset[T, S]) {
	var i, j uint
	for i < u.sz && j < o.sz {
		if a, b := u.At(i), o.At(j); a < b {
			i++
		} else if b < a {
			// b slots in at index i, skip over it
			u.Insert(b)
			i++
			j++
		} else {
			u.t.RemoveAll(a)
			u.sz = u.t.Size()
			for j++; j < o.sz && o.At(j) == a; j++ {
			}
		}
	}
	for ; j < o.sz; j++ {
		u.Insert(o.At(j))
	}
}

// DisjointWith reports whether u and o share no value. The sweep runs from
// the highest index of both sides downward and exits on the first equality.
// Time: O(n*D); O(D) when the ranges barely overlap
func (u *TreeMultiset[T, S]) DisjointWith(o *TreeMultiset[T, S]) bool {
	i, j := u.sz, o.sz
	for i > 0 && j > 0 {
		if a, b := u.At(i-1), o.At(j-1); a == b {
			return false
		} else if b < a {
			i--
		} else {
			j--
		}
	}
	return true
}

// SubsetOf reports whether o covers u: u holds no more elements in total
// than o and every value present in u is present in o. Presence only, the
// multiplicities of individual values aren't compared.
// Time: O(n*D)
func (u *TreeMultiset[T, S]) SubsetOf(o *TreeMultiset[T, S]) bool {
	if u.sz > o.sz {
		return false
	}
	f := u.All()
	for v, ok := f(); ok; v, ok = f() {
		if !o.t.Has(v) {
			return false
		}
	}
	return true
}

// StrictSubsetOf is SubsetOf with strictly fewer total elements.
// Time: O(n*D)
func (u *TreeMultiset[T, S]) StrictSubsetOf(o *TreeMultiset[T, S]) bool {
	return u.sz < o.sz && u.SubsetOf(o)
}

// SupersetOf is the mirror of SubsetOf.
// Time: O(n*D)
func (u *TreeMultiset[T, S]) SupersetOf(o *TreeMultiset[T, S]) bool {
	return o.SubsetOf(u)
}

// StrictSupersetOf is the mirror of StrictSubsetOf.
// Time: O(n*D)
func (u *TreeMultiset[T, S]) StrictSupersetOf(o *TreeMultiset[T, S]) bool {
	return o.StrictSubsetOf(u)
}
