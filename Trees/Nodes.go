package Trees

import "golang.org/x/exp/constraints"

// A node in the RBTree
// The zero value is meaningless.
type node[T any, S constraints.Unsigned] struct {
	v       T
	l, r, p nodePtr[T, S]
	sz      S
	red     bool
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in RBTree. The value of this node has
// node.l, node.r, node.p = itself, sz=0, and red=false. v is the zero
// value of T. p is a back reference only: following p never transfers
// ownership, children are owned through l and r alone.
type nodePtr[T any, S constraints.Unsigned] *node[T, S]

// rotateLeft performs a left rotation around x. The lifted child inherits
// x's subtree size and x recomputes its own from its new children, so the
// size augmentation stays exact through the rotation.
// Time: O(1); Space: O(1)
func (u *RBTree[T, S]) rotateLeft(x nodePtr[T, S]) {
	y := x.r
	x.r = y.l
	if y.l != u.nilPtr {
		y.l.p = x
	}
	y.p = x.p
	if x.p == u.nilPtr {
		u.root = y
	} else if x == x.p.l {
		x.p.l = y
	} else {
		x.p.r = y
	}
	y.l = x
	x.p = y
	y.sz = x.sz
	x.sz = x.l.sz + x.r.sz + 1
}

// rotateRight performs a right rotation around x, the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func (u *RBTree[T, S]) rotateRight(x nodePtr[T, S]) {
	y := x.l
	x.l = y.r
	if y.r != u.nilPtr {
		y.r.p = x
	}
	y.p = x.p
	if x.p == u.nilPtr {
		u.root = y
	} else if x == x.p.r {
		x.p.r = y
	} else {
		x.p.l = y
	}
	y.r = x
	x.p = y
	y.sz = x.sz
	x.sz = x.l.sz + x.r.sz + 1
}
