package avl

import "github.com/katalvlaran/lvlavl/order"

// Remove deletes the element stored under key and returns it.
// ok is false when no element has that key; the tree is then untouched.
//
// With order.Allow and several equal keys, one of them is removed; use
// RemoveFunc to pick a specific one.
//
// Complexity: O(log n).
func (t *Tree[E, K]) Remove(key K) (E, bool) {
	return t.RemoveFunc(key, nil)
}

// RemoveFunc deletes the first element under key for which match returns true
// (a nil match accepts any). Every element with an equal key is a candidate,
// wherever rotations placed it.
//
// Complexity: O(log n + d·log n) where d is the number of equal keys.
func (t *Tree[E, K]) RemoveFunc(key K, match func(E) bool) (E, bool) {
	root, removed, ok := t.remove(t.root, key, match)
	if !ok {
		return removed, false
	}
	t.root = root
	t.mods++

	return removed, true
}

func (t *Tree[E, K]) remove(n *node[E], k K, match func(E) bool) (*node[E], E, bool) {
	var zero E
	if n == nil {
		return nil, zero, false
	}

	switch t.ord.CompareKeys(k, t.ord.KeyOf(n.elem)) {
	case order.Less:
		child, e, ok := t.remove(n.left, k, match)
		if !ok {
			return n, zero, false
		}
		n = t.mut(n)
		n.left = child
		return t.rebalance(n), e, true

	case order.Greater:
		child, e, ok := t.remove(n.right, k, match)
		if !ok {
			return n, zero, false
		}
		n = t.mut(n)
		n.right = child
		return t.rebalance(n), e, true
	}

	if match != nil && !match(n.elem) {
		// equal keys may sit on either side after rotations
		if child, e, ok := t.remove(n.left, k, match); ok {
			n = t.mut(n)
			n.left = child
			return t.rebalance(n), e, true
		}
		if child, e, ok := t.remove(n.right, k, match); ok {
			n = t.mut(n)
			n.right = child
			return t.rebalance(n), e, true
		}
		return n, zero, false
	}

	removed := n.elem
	return t.unlink(n), removed, true
}

// unlink drops n from its subtree. A node with two children takes over the
// element of its in-order successor, which is then removed from the right.
func (t *Tree[E, K]) unlink(n *node[E]) *node[E] {
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}
	right, succ := t.removeMin(n.right)
	n = t.mut(n)
	n.elem = succ
	n.right = right

	return t.rebalance(n)
}

// removeMin detaches the leftmost element of a non-empty subtree.
func (t *Tree[E, K]) removeMin(n *node[E]) (*node[E], E) {
	if n.left == nil {
		return n.right, n.elem
	}
	left, e := t.removeMin(n.left)
	n = t.mut(n)
	n.left = left

	return t.rebalance(n), e
}
