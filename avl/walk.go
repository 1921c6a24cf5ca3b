package avl

import (
	"errors"
	"fmt"
)

// walker encapsulates the state of one Walk.
type walker[E any, K any] struct {
	t     *Tree[E, K]
	order TraversalOrder
	visit func(NodeInfo[E]) error
	mods  uint64
}

// Walk runs visit once per node in the requested order, handing it the
// element together with depth, height, size and balance metadata.
//
// Returning ErrStopWalk from visit ends the walk and Walk returns nil. Any
// other error aborts the walk and is returned wrapped. The visitor must not
// mutate the tree; if it does, Walk stops with ErrMutatedDuringTraversal.
//
// Complexity: O(n) time, O(log n) stack.
func (t *Tree[E, K]) Walk(order TraversalOrder, visit func(NodeInfo[E]) error) error {
	if visit == nil {
		return fmt.Errorf("%w: nil visitor", ErrOptionViolation)
	}
	switch order {
	case PreOrder, InOrder, PostOrder, ReverseInOrder:
	default:
		return fmt.Errorf("%w: unknown traversal order %d", ErrOptionViolation, int(order))
	}

	w := &walker[E, K]{t: t, order: order, visit: visit, mods: t.mods}
	err := w.walk(t.root, 0)
	if errors.Is(err, ErrStopWalk) {
		return nil
	}

	return err
}

func (w *walker[E, K]) walk(n *node[E], depth int) error {
	if n == nil {
		return nil
	}
	first, second := n.left, n.right
	if w.order == ReverseInOrder {
		first, second = n.right, n.left
	}

	if w.order == PreOrder {
		if err := w.emit(n, depth); err != nil {
			return err
		}
	}
	if err := w.walk(first, depth+1); err != nil {
		return err
	}
	if w.order == InOrder || w.order == ReverseInOrder {
		if err := w.emit(n, depth); err != nil {
			return err
		}
	}
	if err := w.walk(second, depth+1); err != nil {
		return err
	}
	if w.order == PostOrder {
		return w.emit(n, depth)
	}

	return nil
}

// emit calls the visitor and checks that it left the tree alone.
func (w *walker[E, K]) emit(n *node[E], depth int) error {
	bal := n.balance()
	err := w.visit(NodeInfo[E]{
		Element: n.elem,
		Depth:   depth,
		Height:  n.height,
		Size:    n.size,
		Balance: bal,
		Factor:  classify(bal, w.t.allowed),
	})
	if w.t.mods != w.mods {
		return ErrMutatedDuringTraversal
	}
	if err != nil && !errors.Is(err, ErrStopWalk) {
		return fmt.Errorf("avl: walk aborted at depth %d: %w", depth, err)
	}

	return err
}
