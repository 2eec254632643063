package Multisets

// Frequency helpers over the multiplicities the tree already maintains.
// They are plain arithmetic on counts: nothing here touches tree internals.

// CountOf returns the total number of instances across all named values.
// Naming a value twice counts its instances twice.
// Time: O(len(vs)*D); Space: O(1)
func (u *TreeMultiset[T, S]) CountOf(vs ...T) uint {
	var n uint
	for _, v := range vs {
		n += u.t.Count(v)
	}
	return n
}

// ProbabilityOf returns CountOf(vs...)/Size(), the chance that an element
// drawn uniformly from the multiset is one of the named values. Returns 0
// on an empty multiset.
// Time: O(len(vs)*D); Space: O(1)
func (u *TreeMultiset[T, S]) ProbabilityOf(vs ...T) float64 {
	if u.sz == 0 {
		return 0
	}
	return float64(u.CountOf(vs...)) / float64(u.sz)
}

// ProbabilityWhere returns the fraction of elements satisfying pred,
// counting repeated elements separately. Returns 0 on an empty multiset.
// Time: O(n)
func (u *TreeMultiset[T, S]) ProbabilityWhere(pred func(T) bool) float64 {
	if u.sz == 0 {
		return 0
	}
	var n uint
	f := u.All()
	for v, ok := f(); ok; v, ok = f() {
		if pred(v) {
			n++
		}
	}
	return float64(n) / float64(u.sz)
}

// ExpectedValue returns trials*ProbabilityOf(vs...), the expected number of
// draws (with replacement) among trials that hit one of the named values.
// Time: O(len(vs)*D); Space: O(1)
func (u *TreeMultiset[T, S]) ExpectedValue(trials uint, vs ...T) float64 {
	return float64(trials) * u.ProbabilityOf(vs...)
}
