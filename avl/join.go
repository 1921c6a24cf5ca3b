// SPDX-License-Identifier: MIT
// Package: lvlavl/avl
//
// join.go: split and join, the two primitives behind every set operation.
//
// All functions work on the receiver's ownership: nodes they write are first
// passed through mut, so subtrees borrowed from other trees are copied along
// the touched paths only. Each subtree handed in is consumed: callers must not
// reuse it afterwards.

package avl

import "github.com/katalvlaran/lvlavl/order"

// join returns a tree holding l, then mid, then r, where every key of l
// orders before mid and every key of r after it. mid must be mutable; its
// children are overwritten.
//
// Complexity: O(|height(l) - height(r)|) rotations.
func (t *Tree[E, K]) join(l, mid, r *node[E]) *node[E] {
	switch hl, hr := height(l), height(r); {
	case hl > hr+t.allowed:
		return t.joinRight(l, mid, r)
	case hr > hl+t.allowed:
		return t.joinLeft(l, mid, r)
	}
	mid.left, mid.right = l, r
	mid.fix()

	return mid
}

// joinRight walks down the right spine of the taller l until the heights are
// close enough to hang mid there, then rebalances on the way back up.
func (t *Tree[E, K]) joinRight(l, mid, r *node[E]) *node[E] {
	if height(l) <= height(r)+t.allowed {
		mid.left, mid.right = l, r
		mid.fix()
		return mid
	}
	l = t.mut(l)
	l.right = t.joinRight(l.right, mid, r)

	return t.rebalance(l)
}

// joinLeft mirrors joinRight for a taller r.
func (t *Tree[E, K]) joinLeft(l, mid, r *node[E]) *node[E] {
	if height(r) <= height(l)+t.allowed {
		mid.left, mid.right = l, r
		mid.fix()
		return mid
	}
	r = t.mut(r)
	r.left = t.joinLeft(l, mid, r.left)

	return t.rebalance(r)
}

// join2 concatenates l and r (every key of l before every key of r) by
// pulling the last node of l out to serve as the joining middle.
func (t *Tree[E, K]) join2(l, r *node[E]) *node[E] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	rest, mid := t.splitLast(l)

	return t.join(rest, mid, r)
}

// splitLast detaches the rightmost node of a non-empty subtree and returns it
// mutable, together with the rebalanced remainder.
func (t *Tree[E, K]) splitLast(n *node[E]) (*node[E], *node[E]) {
	if n.right == nil {
		rest := n.left
		return rest, t.mut(n)
	}
	n = t.mut(n)
	rest, last := t.splitLast(n.right)
	n.right = rest

	return t.rebalance(n), last
}

// split cuts n into the keys before k, the node holding k (nil if absent,
// mutable otherwise) and the keys after k.
//
// Complexity: O(log n); each level does one join whose cost telescopes.
func (t *Tree[E, K]) split(n *node[E], k K) (*node[E], *node[E], *node[E]) {
	if n == nil {
		return nil, nil, nil
	}
	left, right := n.left, n.right
	switch t.ord.CompareKeys(k, t.ord.KeyOf(n.elem)) {
	case order.Less:
		l, found, r := t.split(left, k)
		return l, found, t.join(r, t.mut(n), right)
	case order.Greater:
		l, found, r := t.split(right, k)
		return t.join(left, t.mut(n), l), found, r
	default:
		return left, t.mut(n), right
	}
}
