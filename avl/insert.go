package avl

import "github.com/katalvlaran/lvlavl/order"

// insertOutcome tells the recursion what happened below.
type insertOutcome int

const (
	inserted insertOutcome = iota
	replaced
	rejected
)

// Insert adds e to the tree.
//
// Behaviour on an equal key depends on the ordering's DuplicatePolicy:
//   - order.Replace: e overwrites the stored element, replaced == true.
//   - order.Reject:  the tree is left untouched and err is a *DuplicateKeyError
//     (errors.Is(err, ErrDuplicateKey)).
//   - order.Allow:   e is stored after every element with an equal key.
//
// Complexity: O(log n) comparisons, at most one single or double rotation per
// ancestor.
func (t *Tree[E, K]) Insert(e E) (bool, error) {
	root, outcome, existing := t.insert(t.root, e, t.ord.KeyOf(e))
	if outcome == rejected {
		return false, &DuplicateKeyError[E]{Existing: existing, Incoming: e}
	}
	t.root = root
	t.mods++

	return outcome == replaced, nil
}

// insert places e under n and returns the rebalanced subtree root. On rejection
// nothing is written and the stored element is returned.
func (t *Tree[E, K]) insert(n *node[E], e E, k K) (*node[E], insertOutcome, E) {
	if n == nil {
		var zero E
		return t.newNode(e), inserted, zero
	}

	c := t.ord.CompareKeys(k, t.ord.KeyOf(n.elem))
	if c == order.Equal {
		switch t.ord.Duplicates() {
		case order.Reject:
			return n, rejected, n.elem
		case order.Allow:
			c = order.Greater // equal keys keep insertion order
		default:
			old := n.elem
			n = t.mut(n)
			n.elem = e
			return n, replaced, old
		}
	}

	var (
		child   *node[E]
		outcome insertOutcome
		other   E
	)
	if c == order.Less {
		child, outcome, other = t.insert(n.left, e, k)
	} else {
		child, outcome, other = t.insert(n.right, e, k)
	}
	if outcome == rejected {
		return n, outcome, other
	}

	n = t.mut(n)
	if c == order.Less {
		n.left = child
	} else {
		n.right = child
	}
	if outcome == replaced {
		// shape unchanged
		return n, outcome, other
	}

	return t.rebalance(n), outcome, other
}
