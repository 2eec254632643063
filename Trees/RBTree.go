package Trees

import (
	"golang.org/x/exp/constraints"
)

// RBTree is a binary search tree that permits repeated values. It maintains
// balance through the red-black coloring rules and keeps a subtree size on
// every node, so rank and select queries run in O(D) without traversal.
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees.
// This struct holds a root pointer and a corresponding nilPtr used
// as nil described in nodePtr. nilPtr is shared by every leaf position and
// by the parent of the root; its sz is always 0 and its color always black,
// which lets the fixup loops run without nil checks.
// Repeated values descend to the right on insertion, so all instances of
// one value occupy a contiguous run of the in-order traversal. The relative
// order of instances inside a run is unspecified.
// The height D of the tree is at most 2*log2(n+1), so all positional and
// search operations are O(log n).
// Note that due to the way uint works in Go, and that the Tree interface
// defines the return value of some functions to be uint, S shouldn't be
// any type that will cause overflow when converted to uint. Generally, you
// should let S be a wide upperbound for the size of the tree.
type RBTree[T constraints.Ordered, S constraints.Unsigned] struct {
	root   nodePtr[T, S] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[T, S] // nilPtr is the pointer used instead of nil here, it follows the description in nodePtr
}

// MakeRBTree returns an empty RBTree satisfying the above definitions for
// nilPtr, root, and types.
// RBTree shouldn't be created directly using struct literal.
func MakeRBTree[T constraints.Ordered, S constraints.Unsigned]() *RBTree[T, S] {
	z := new(node[T, S])
	z.l, z.r, z.p = z, z, z
	return &RBTree[T, S]{z, z}
}

// Size returns the number of nodes in the tree, counting repeated values
// separately.
// Time: O(1); Space: O(1)
func (u *RBTree[T, S]) Size() uint {
	return uint(u.root.sz)
}

// Insert [Tree.Insert]. Duplicates of v descend right so equal values stay
// contiguous in-order. Every node on the descent gains 1 in sz before the
// fixup runs; rotations inside the fixup rewrite sizes themselves.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Insert(v T) {
	p := u.nilPtr
	for cur := u.root; cur != u.nilPtr; {
		p = cur
		cur.sz++
		if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	n := &node[T, S]{v: v, l: u.nilPtr, r: u.nilPtr, p: p, sz: 1, red: true}
	if p == u.nilPtr {
		u.root = n
	} else if v < p.v {
		p.l = n
	} else {
		p.r = n
	}
	u.insertFixup(n)
}

// insertFixup restores the red-black properties after attaching the red
// node x at a leaf position. Cases: red uncle recolors and continues at the
// grandparent; black uncle with x on the inner side rotates into the outer
// shape first; black uncle with x outer rotates the grandparent and stops.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) insertFixup(x nodePtr[T, S]) {
	for x.p.red {
		if g := x.p.p; x.p == g.l {
			if y := g.r; y.red {
				x.p.red, y.red, g.red = false, false, true
				x = g
			} else {
				if x == x.p.r {
					x = x.p
					u.rotateLeft(x)
				}
				x.p.red, x.p.p.red = false, true
				u.rotateRight(x.p.p)
			}
		} else {
			if y := g.l; y.red {
				x.p.red, y.red, g.red = false, false, true
				x = g
			} else {
				if x == x.p.l {
					x = x.p
					u.rotateRight(x)
				}
				x.p.red, x.p.p.red = false, true
				u.rotateLeft(x.p.p)
			}
		}
	}
	u.root.red = false
}

// transplant replaces the subtree rooted at a with the one rooted at b in
// a's parent. b may be nilPtr, in which case nilPtr.p is deliberately set so
// that deleteFixup can walk up from it.
func (u *RBTree[T, S]) transplant(a, b nodePtr[T, S]) {
	if a.p == u.nilPtr {
		u.root = b
	} else if a == a.p.l {
		a.p.l = b
	} else {
		a.p.r = b
	}
	b.p = a.p
}

// Remove [Tree.Remove]. Removes one instance of v, any one in the run of
// equal values. Returns false without modifying the tree if v is absent.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Remove(v T) bool {
	cur := u.root
	for cur != u.nilPtr {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			break
		} else {
			cur = cur.r
		}
	}
	if cur == u.nilPtr {
		return false
	}
	u.delete(cur)
	return true
}

// RemoveAll [Tree.RemoveAll]. Repeats Remove on each given value until no
// instance of it remains.
// Time: O(m*D) for total multiplicity m; Space: O(1)
func (u *RBTree[T, S]) RemoveAll(vs ...T) uint {
	var n uint
	for _, v := range vs {
		for u.Remove(v) {
			n++
		}
	}
	return n
}

// Clear [Tree.Clear]. Drops the whole structure at once.
// Time: O(1); Space: O(1)
func (u *RBTree[T, S]) Clear() {
	u.root = u.nilPtr
}

// delete unlinks cur from the tree. When cur has two children its in-order
// successor takes its place and the physical splice happens at the
// successor. The sz decrement walks the ancestors of the spliced position
// before any relinking, so it uses the original parent chain; the replacing
// node recomputes its own sz from the children it ends up with.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) delete(cur nodePtr[T, S]) {
	y := cur
	yRed := y.red
	var x nodePtr[T, S]
	if cur.l == u.nilPtr {
		x = cur.r
		for a := cur.p; a != u.nilPtr; a = a.p {
			a.sz--
		}
		u.transplant(cur, cur.r)
	} else if cur.r == u.nilPtr {
		x = cur.l
		for a := cur.p; a != u.nilPtr; a = a.p {
			a.sz--
		}
		u.transplant(cur, cur.l)
	} else {
		y = cur.r
		for y.l != u.nilPtr {
			y = y.l
		}
		yRed = y.red
		x = y.r
		for a := y.p; a != u.nilPtr; a = a.p {
			a.sz--
		}
		if y.p == cur {
			x.p = y
		} else {
			u.transplant(y, y.r)
			y.r = cur.r
			y.r.p = y
		}
		u.transplant(cur, y)
		y.l = cur.l
		y.l.p = y
		y.red = cur.red
		y.sz = y.l.sz + y.r.sz + 1
	}
	if !yRed {
		u.deleteFixup(x)
	}
}

// deleteFixup restores the red-black properties after a black node was
// spliced out, with x carrying the extra blackness. Cases on the sibling:
// red sibling rotates into a black-sibling shape; black sibling with two
// black children recolors and moves the problem up; black sibling with a
// red child rotates once or twice and terminates.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) deleteFixup(x nodePtr[T, S]) {
	for x != u.root && !x.red {
		if x == x.p.l {
			w := x.p.r
			if w.red {
				w.red, x.p.red = false, true
				u.rotateLeft(x.p)
				w = x.p.r
			}
			if !w.l.red && !w.r.red {
				w.red = true
				x = x.p
			} else {
				if !w.r.red {
					w.l.red, w.red = false, true
					u.rotateRight(w)
					w = x.p.r
				}
				w.red, x.p.red = x.p.red, false
				w.r.red = false
				u.rotateLeft(x.p)
				x = u.root
			}
		} else {
			w := x.p.l
			if w.red {
				w.red, x.p.red = false, true
				u.rotateRight(x.p)
				w = x.p.l
			}
			if !w.r.red && !w.l.red {
				w.red = true
				x = x.p
			} else {
				if !w.l.red {
					w.r.red, w.red = false, true
					u.rotateLeft(w)
					w = x.p.l
				}
				w.red, x.p.red = x.p.red, false
				w.l.red = false
				u.rotateRight(x.p)
				x = u.root
			}
		}
	}
	x.red = false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Count [Tree.Count]. Computed as the difference of two rank sweeps: the
// number of elements <=v minus the number of elements <v.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Count(v T) uint {
	var lo, hi S
	for cur := u.root; cur != u.nilPtr; {
		if cur.v < v {
			lo += cur.l.sz + 1
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			cur = cur.l
		} else {
			hi += cur.l.sz + 1
			cur = cur.r
		}
	}
	return uint(hi - lo)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Minimum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Maximum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.r != u.nilPtr {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// KSmallest [Tree.KSmallest]
// This function utilizes the subtree sizes maintained on every node to
// descend directly to index k of the in-order traversal.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) KSmallest(k uint) (T, bool) {
	if k >= uint(u.root.sz) {
		return *new(T), false
	}
	cur, t := u.root, S(k)
	for {
		if t < cur.l.sz {
			cur = cur.l
		} else if t == cur.l.sz {
			return cur.v, true
		} else {
			t -= cur.l.sz + 1
			cur = cur.r
		}
	}
}

// RankOf [Tree.RankOf]. Accumulates the sizes of the left subtrees skipped
// on the descent, which yields the number of elements strictly less than v;
// that is the index of the first instance of v when present, and the
// insertion index otherwise.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) RankOf(v T) (uint, bool) {
	var ra S
	found := false
	for cur := u.root; cur != u.nilPtr; {
		if cur.v < v {
			ra += cur.l.sz + 1
			cur = cur.r
		} else {
			if cur.v == v {
				found = true
			}
			cur = cur.l
		}
	}
	return uint(ra), found
}

// InOrder [Tree.InOrder]. The cursor advances through parent links, so the
// tree is never relinked during iteration and any number of iterations may
// run over the same tree at once, as long as none of them overlaps a
// mutation.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *RBTree[T, S]) InOrder() func() (T, bool) {
	cur := u.root
	if cur != u.nilPtr {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
	}
	return func() (r T, has bool) {
		if cur == u.nilPtr {
			return
		}
		r, has = cur.v, true
		if cur.r != u.nilPtr {
			cur = cur.r
			for cur.l != u.nilPtr {
				cur = cur.l
			}
		} else {
			p := cur.p
			for p != u.nilPtr && cur == p.r {
				cur, p = p, p.p
			}
			cur = p
		}
		return
	}
}

// Corrupt [Tree.Corrupt]. Checks, in one recursive pass: in-order keys are
// non-decreasing, no red node has a red child, every root-to-leaf path
// carries the same number of black nodes, the root is black, and
// sz == l.sz + r.sz + 1 on every node.
// Time: O(n); Space: O(D)
func (u *RBTree[T, S]) Corrupt() bool {
	if u.root.red {
		return true
	}
	_, ok := u.check(u.root)
	return !ok
}

// check returns the black height of the subtree rooted at c and whether all
// invariants hold below it. Recursive.
func (u *RBTree[T, S]) check(c nodePtr[T, S]) (uint, bool) {
	if c == u.nilPtr {
		return 0, true
	}
	if c.red && (c.l.red || c.r.red) {
		return 0, false
	}
	if c.sz != c.l.sz+c.r.sz+1 {
		return 0, false
	}
	if (c.l != u.nilPtr && c.v < c.l.v) || (c.r != u.nilPtr && c.r.v < c.v) {
		return 0, false
	}
	lb, lok := u.check(c.l)
	rb, rok := u.check(c.r)
	if !lok || !rok || lb != rb {
		return 0, false
	}
	if c.red {
		return lb, true
	}
	return lb + 1, true
}
