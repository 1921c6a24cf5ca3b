package avl

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvlavl/order"
)

// FromSorted builds a minimum-height tree from elements already in ascending
// key order. Equal neighbours are accepted only under order.Allow.
//
// This is the import half of the serialization contract: FromSorted(ord,
// t.Export()) reproduces t's in-order sequence exactly.
//
// Returns ErrNilOrdering, ErrOptionViolation, or ErrNotSorted (wrapped with the
// offending index).
//
// Complexity: O(n) time, O(log n) stack.
func FromSorted[E any, K any](ord *order.Ordering[E, K], elems []E, opts ...Option) (*Tree[E, K], error) {
	t, err := New(ord, opts...)
	if err != nil {
		return nil, err
	}
	if err = checkSorted(ord, elems); err != nil {
		return nil, err
	}
	t.root = t.build(elems)

	return t, nil
}

// FromSeq drains seq and bulk-builds it; the sequence must be ascending.
func FromSeq[E any, K any](ord *order.Ordering[E, K], seq iter.Seq[E], opts ...Option) (*Tree[E, K], error) {
	return FromSorted(ord, slices.Collect(seq), opts...)
}

func checkSorted[E any, K any](ord *order.Ordering[E, K], elems []E) error {
	for i := 1; i < len(elems); i++ {
		switch ord.Compare(elems[i-1], elems[i]) {
		case order.Greater:
			return fmt.Errorf("%w: element %d orders before element %d", ErrNotSorted, i, i-1)
		case order.Equal:
			if ord.Duplicates() != order.Allow {
				return fmt.Errorf("%w: elements %d and %d share a key", ErrNotSorted, i-1, i)
			}
		}
	}

	return nil
}

// build turns a sorted slice into a perfectly balanced subtree: the middle
// element becomes the root, halves recurse.
func (t *Tree[E, K]) build(elems []E) *node[E] {
	if len(elems) == 0 {
		return nil
	}
	mid := len(elems) / 2
	n := t.newNode(elems[mid])
	n.left = t.build(elems[:mid])
	n.right = t.build(elems[mid+1:])
	n.fix()

	return n
}

// FromPreOrder rebuilds the exact shape of a tree from its pre-order sequence
// (as produced by PreOrder). Keys must be unique.
//
// Returns ErrNotSorted if elems is not the pre-order of any search tree, and
// ErrInvariantViolation if the shape it describes is not balanced.
//
// Complexity: O(n).
func FromPreOrder[E any, K any](ord *order.Ordering[E, K], elems []E, opts ...Option) (*Tree[E, K], error) {
	t, err := New(ord, opts...)
	if err != nil {
		return nil, err
	}
	i := 0
	t.root = t.buildPreOrder(elems, &i, nil, nil)
	if i != len(elems) {
		return nil, fmt.Errorf("%w: element %d breaks the pre-order layout", ErrNotSorted, i)
	}
	if err = t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// buildPreOrder consumes elements while they fit strictly between lo and hi
// (nil = unbounded).
func (t *Tree[E, K]) buildPreOrder(elems []E, i *int, lo, hi *E) *node[E] {
	if *i >= len(elems) {
		return nil
	}
	e := elems[*i]
	if hi != nil && t.ord.Compare(e, *hi) != order.Less {
		return nil
	}
	if lo != nil && t.ord.Compare(e, *lo) != order.Greater {
		return nil
	}
	*i++
	n := t.newNode(e)
	n.left = t.buildPreOrder(elems, i, lo, &e)
	n.right = t.buildPreOrder(elems, i, &e, hi)
	n.fix()

	return n
}

// Export returns every element in ascending key order. It is the export half
// of the serialization contract with FromSorted.
//
// Complexity: O(n).
func (t *Tree[E, K]) Export() []E {
	out := make([]E, 0, t.Len())
	t.inorder(t.root, func(n *node[E]) { out = append(out, n.elem) })

	return out
}

func (t *Tree[E, K]) inorder(n *node[E], fn func(*node[E])) {
	if n == nil {
		return
	}
	t.inorder(n.left, fn)
	fn(n)
	t.inorder(n.right, fn)
}

// Reorder re-arranges the tree under a new ordering.
//
// Elements are re-sorted (stable with respect to the old order) and bulk
// built. Equal keys under the new ordering follow its policy: Replace keeps
// the element that came last in the old order, Allow keeps all, Reject fails
// with a *DuplicateKeyError and leaves the tree untouched.
//
// Complexity: O(n log n).
func (t *Tree[E, K]) Reorder(ord *order.Ordering[E, K]) error {
	if ord == nil {
		return ErrNilOrdering
	}
	elems := t.Export()
	slices.SortStableFunc(elems, func(a, b E) int { return int(ord.Compare(a, b)) })

	kept := elems[:0]
	for i, e := range elems {
		if i == 0 || ord.Compare(kept[len(kept)-1], e) != order.Equal {
			kept = append(kept, e)
			continue
		}
		switch ord.Duplicates() {
		case order.Reject:
			return &DuplicateKeyError[E]{Existing: kept[len(kept)-1], Incoming: e}
		case order.Allow:
			kept = append(kept, e)
		default:
			kept[len(kept)-1] = e
		}
	}

	t.ord = ord
	t.cow = new(owner)
	t.root = t.build(kept)
	t.mods++

	return nil
}
