// SPDX-License-Identifier: MIT
// Package: lvlavl/avl
//
// node.go: node layout, cached metadata, copy-on-write ownership, rotations.
//
// Every function that writes a node field first passes the node through
// Tree.mut, which hands back the node itself when the tree owns it and a
// private copy otherwise. Rotations and rebalance expect an already-mutable
// node and take care of the children they lift.

package avl

// owner tags the nodes a tree may write in place. Only pointer identity matters;
// the field keeps distinct allocations from sharing an address.
type owner struct {
	_ byte
}

// node is one element plus links to its subtrees.
type node[E any] struct {
	elem   E
	left   *node[E]
	right  *node[E]
	height int // 1 for a leaf
	size   int // number of nodes in this subtree
	owner  *owner
}

func height[E any](n *node[E]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func size[E any](n *node[E]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// fix recomputes the cached height and size from the children.
func (n *node[E]) fix() {
	n.height = 1 + max(height(n.left), height(n.right))
	n.size = 1 + size(n.left) + size(n.right)
}

// balance is height(left) - height(right).
func (n *node[E]) balance() int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// first returns the leftmost node of the subtree.
func (n *node[E]) first() *node[E] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// last returns the rightmost node of the subtree.
func (n *node[E]) last() *node[E] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// newNode allocates a leaf owned by t.
func (t *Tree[E, K]) newNode(e E) *node[E] {
	return &node[E]{elem: e, height: 1, size: 1, owner: t.cow}
}

// mut returns a node t may write to: n itself when t owns it, a copy otherwise.
func (t *Tree[E, K]) mut(n *node[E]) *node[E] {
	if n == nil || n.owner == t.cow {
		return n
	}
	c := *n
	c.owner = t.cow
	return &c
}

// rotateLeft lifts n.right above n. n must be mutable.
//
//	  n                r
//	 / \              / \
//	a   r     →      n   c
//	   / \          / \
//	  b   c        a   b
func (t *Tree[E, K]) rotateLeft(n *node[E]) *node[E] {
	r := t.mut(n.right)
	n.right = r.left
	r.left = n
	n.fix()
	r.fix()
	return r
}

// rotateRight lifts n.left above n. n must be mutable.
//
//	    n            l
//	   / \          / \
//	  l   c   →    a   n
//	 / \              / \
//	a   b            b   c
func (t *Tree[E, K]) rotateRight(n *node[E]) *node[E] {
	l := t.mut(n.left)
	n.left = l.right
	l.right = n
	n.fix()
	l.fix()
	return l
}

// rebalance refreshes n's metadata and, when its balance leaves the allowed
// range, performs the single or double rotation picked by the balance of the
// taller child. n must be mutable. Returns the new subtree root.
//
// One call suffices whenever the subtree height changed by at most one since
// n was last balanced, which holds for insert, remove, join and split.
func (t *Tree[E, K]) rebalance(n *node[E]) *node[E] {
	n.fix()
	bf := n.balance()
	switch {
	case bf > t.allowed:
		if n.left.balance() < 0 {
			n.left = t.rotateLeft(t.mut(n.left))
			t.opts.OnRotate(RotateLeftRight)
		} else {
			t.opts.OnRotate(RotateRight)
		}
		return t.rotateRight(n)
	case bf < -t.allowed:
		if n.right.balance() > 0 {
			n.right = t.rotateRight(t.mut(n.right))
			t.opts.OnRotate(RotateRightLeft)
		} else {
			t.opts.OnRotate(RotateLeft)
		}
		return t.rotateLeft(n)
	default:
		return n
	}
}
