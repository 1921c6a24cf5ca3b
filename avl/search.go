package avl

import "github.com/katalvlaran/lvlavl/order"

// Get returns the element stored under key.
// With order.Allow and several equal keys, any one of them is returned.
//
// Complexity: O(log n).
func (t *Tree[E, K]) Get(key K) (E, bool) {
	n := t.lookup(key)
	if n == nil {
		var zero E
		return zero, false
	}

	return n.elem, true
}

// Contains reports whether an element with key is present.
func (t *Tree[E, K]) Contains(key K) bool {
	return t.lookup(key) != nil
}

func (t *Tree[E, K]) lookup(key K) *node[E] {
	n := t.root
	for n != nil {
		switch t.ord.CompareKeys(key, t.ord.KeyOf(n.elem)) {
		case order.Less:
			n = n.left
		case order.Greater:
			n = n.right
		default:
			return n
		}
	}

	return nil
}

// GetFunc returns the first element under key accepted by match.
func (t *Tree[E, K]) GetFunc(key K, match func(E) bool) (E, bool) {
	if n := t.lookupFunc(t.root, key, match); n != nil {
		return n.elem, true
	}
	var zero E

	return zero, false
}

func (t *Tree[E, K]) lookupFunc(n *node[E], key K, match func(E) bool) *node[E] {
	for n != nil {
		switch t.ord.CompareKeys(key, t.ord.KeyOf(n.elem)) {
		case order.Less:
			n = n.left
		case order.Greater:
			n = n.right
		default:
			if match == nil || match(n.elem) {
				return n
			}
			if found := t.lookupFunc(n.left, key, match); found != nil {
				return found
			}
			n = n.right
		}
	}

	return nil
}

// Search answers a positional query around key; see SearchQuery for the
// meaning of each query. ok is false when no element qualifies.
//
// Complexity: O(log n).
func (t *Tree[E, K]) Search(key K, q SearchQuery) (E, bool) {
	var (
		found *node[E]
		last  *node[E]
	)
	n := t.root
	for n != nil {
		c := t.ord.CompareKeys(t.ord.KeyOf(n.elem), key) // node vs probe
		last = n
		switch q {
		case Equality, Nearest:
			if c == order.Equal {
				return n.elem, true
			}
		case NearestLeft:
			if c != order.Greater {
				found = n
				n = n.right
				continue
			}
			n = n.left
			continue
		case NearestRight:
			if c != order.Less {
				found = n
				n = n.left
				continue
			}
			n = n.right
			continue
		case ToLeft:
			if c == order.Less {
				found = n
				n = n.right
				continue
			}
			n = n.left
			continue
		case ToRight:
			if c == order.Greater {
				found = n
				n = n.left
				continue
			}
			n = n.right
			continue
		}
		if c == order.Greater {
			n = n.left
		} else {
			n = n.right
		}
	}
	if q == Nearest {
		found = last
	}
	if found == nil {
		var zero E
		return zero, false
	}

	return found.elem, true
}

// Min returns the element with the smallest key.
func (t *Tree[E, K]) Min() (E, bool) {
	if n := t.root.first(); n != nil {
		return n.elem, true
	}
	var zero E

	return zero, false
}

// Max returns the element with the largest key.
func (t *Tree[E, K]) Max() (E, bool) {
	if n := t.root.last(); n != nil {
		return n.elem, true
	}
	var zero E

	return zero, false
}

// At returns the element at zero-based position i of the in-order sequence.
//
// Complexity: O(log n) using cached subtree sizes.
func (t *Tree[E, K]) At(i int) (E, bool) {
	var zero E
	if i < 0 || i >= t.Len() {
		return zero, false
	}
	n := t.root
	for n != nil {
		nl := size(n.left)
		switch {
		case i < nl:
			n = n.left
		case i > nl:
			// skip left subtree and this node
			i -= nl + 1
			n = n.right
		default:
			return n.elem, true
		}
	}

	return zero, false
}

// Rank returns the number of elements whose key is strictly less than key,
// i.e. the position key would take in the in-order sequence.
//
// Complexity: O(log n).
func (t *Tree[E, K]) Rank(key K) int {
	r := 0
	n := t.root
	for n != nil {
		if t.ord.CompareKeys(t.ord.KeyOf(n.elem), key) == order.Less {
			r += size(n.left) + 1
			n = n.right
		} else {
			n = n.left
		}
	}

	return r
}

// BalanceFactorOf classifies the node holding key. In a valid tree the result
// is never TooLeftHeavy or TooRightHeavy.
func (t *Tree[E, K]) BalanceFactorOf(key K) (BalanceFactor, bool) {
	n := t.lookup(key)
	if n == nil {
		return Balanced, false
	}

	return classify(n.balance(), t.allowed), true
}
