package avl

import (
	"fmt"

	"github.com/katalvlaran/lvlavl/order"
)

// Validate checks every structural invariant of the tree:
//   - in-order keys are strictly ascending (non-descending under order.Allow);
//   - every cached height and size matches the recomputed value;
//   - every node's balance lies within 1 + ImbalanceFactor.
//
// A correctly used tree always validates; a failure means the ordering broke
// its contract (e.g. a comparator whose answers changed over time).
//
// Returns nil or ErrInvariantViolation wrapped with the offending element.
//
// Complexity: O(n).
func (t *Tree[E, K]) Validate() error {
	v := validator[E, K]{t: t}
	_, _, err := v.check(t.root)

	return err
}

type validator[E any, K any] struct {
	t    *Tree[E, K]
	prev *node[E]
}

// check returns the recomputed height and size of n's subtree.
func (v *validator[E, K]) check(n *node[E]) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}
	lh, ls, err := v.check(n.left)
	if err != nil {
		return 0, 0, err
	}

	if v.prev != nil {
		c := v.t.ord.Compare(v.prev.elem, n.elem)
		if c == order.Greater || (c == order.Equal && v.t.ord.Duplicates() != order.Allow) {
			return 0, 0, fmt.Errorf("%w: %v follows %v in order", ErrInvariantViolation, n.elem, v.prev.elem)
		}
	}
	v.prev = n

	rh, rs, err := v.check(n.right)
	if err != nil {
		return 0, 0, err
	}

	h, s := 1+max(lh, rh), 1+ls+rs
	switch {
	case n.height != h:
		return 0, 0, fmt.Errorf("%w: node %v caches height %d, actual %d", ErrInvariantViolation, n.elem, n.height, h)
	case n.size != s:
		return 0, 0, fmt.Errorf("%w: node %v caches size %d, actual %d", ErrInvariantViolation, n.elem, n.size, s)
	case lh-rh > v.t.allowed || rh-lh > v.t.allowed:
		return 0, 0, fmt.Errorf("%w: node %v is %s (%d)", ErrInvariantViolation, n.elem, classify(lh-rh, v.t.allowed), lh-rh)
	}

	return h, s, nil
}
