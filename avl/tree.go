// SPDX-License-Identifier: MIT
// Package: lvlavl/avl
//
// tree.go: the Tree type, constructors and read-only getters.
// No algorithms here; see insert.go, remove.go, search.go, setops.go.

package avl

import (
	"github.com/katalvlaran/lvlavl/order"
)

// Tree is an AVL tree of elements E ordered by keys K.
//
// The zero value is not usable; build trees with New, FromSorted, FromSeq or
// FromPreOrder.
type Tree[E any, K any] struct {
	ord     *order.Ordering[E, K]
	root    *node[E]
	cow     *owner // nodes tagged with cow may be written in place
	opts    Options
	allowed int    // 1 + opts.ImbalanceFactor
	mods    uint64 // bumped on every mutation; cursors compare against it
}

// New creates an empty tree arranged by ord.
//
// Returns ErrNilOrdering if ord is nil, or ErrOptionViolation for bad options.
//
// Complexity: O(len(opts)).
func New[E any, K any](ord *order.Ordering[E, K], opts ...Option) (*Tree[E, K], error) {
	if ord == nil {
		return nil, ErrNilOrdering
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return newTree(ord, o), nil
}

func newTree[E any, K any](ord *order.Ordering[E, K], o Options) *Tree[E, K] {
	return &Tree[E, K]{
		ord:     ord,
		cow:     new(owner),
		opts:    o,
		allowed: 1 + o.ImbalanceFactor,
	}
}

// sibling returns an empty tree with t's ordering and options and a fresh owner.
func (t *Tree[E, K]) sibling() *Tree[E, K] {
	return newTree(t.ord, t.opts)
}

// Ordering returns the ordering the tree was built with.
func (t *Tree[E, K]) Ordering() *order.Ordering[E, K] {
	return t.ord
}

// ImbalanceFactor returns the extra balance slack configured for the tree.
func (t *Tree[E, K]) ImbalanceFactor() int {
	return t.opts.ImbalanceFactor
}

// Len returns the number of stored elements. O(1).
func (t *Tree[E, K]) Len() int {
	return size(t.root)
}

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[E, K]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the root (0 for an empty tree). O(1).
func (t *Tree[E, K]) Height() int {
	return height(t.root)
}

// Clone returns an independent copy of t in O(1).
//
// Both trees keep pointing at the same nodes; neither owns them any more, so
// the first write on either side copies the path it touches.
func (t *Tree[E, K]) Clone() *Tree[E, K] {
	c := t.sibling()
	c.root = t.root
	t.detach()
	return c
}

// detach gives t a fresh owner so that nodes now shared with another tree are
// copied before t writes to them.
func (t *Tree[E, K]) detach() {
	t.cow = new(owner)
}

// Clear removes every element, keeping ordering and options.
func (t *Tree[E, K]) Clear() {
	t.root = nil
	t.cow = new(owner)
	t.mods++
}
