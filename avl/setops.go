package avl

import (
	"fmt"

	"github.com/katalvlaran/lvlavl/order"
)

// The set operations below are non-destructive: inputs keep their contents and
// the result is an independent tree. Untouched subtrees are shared with the
// inputs under copy-on-write, so both inputs lose ownership of their nodes and
// copy a path on their next write.
//
// Every operation pivots on the root of the shorter tree, splits the taller one
// at that key, recurses on the halves and joins the results, for
// O(m log(n/m + 1)) work on inputs of sizes m <= n.

// Union returns the elements present in a or b. On equal keys the element of a
// is kept.
func Union[E any, K any](a, b *Tree[E, K]) (*Tree[E, K], error) {
	return a.combine(b, (*Tree[E, K]).union)
}

// Intersection returns the elements of a whose key is also present in b.
func Intersection[E any, K any](a, b *Tree[E, K]) (*Tree[E, K], error) {
	return a.combine(b, (*Tree[E, K]).intersect)
}

// Difference returns the elements of a whose key is absent from b.
func Difference[E any, K any](a, b *Tree[E, K]) (*Tree[E, K], error) {
	return a.combine(b, (*Tree[E, K]).difference)
}

// SymmetricDifference returns the elements whose key is present in exactly
// one of a and b, each coming from the tree that holds it.
func SymmetricDifference[E any, K any](a, b *Tree[E, K]) (*Tree[E, K], error) {
	return a.combine(b, (*Tree[E, K]).symmetric)
}

// Union is the method form of the package function; t plays the role of a.
func (t *Tree[E, K]) Union(other *Tree[E, K]) (*Tree[E, K], error) {
	return Union(t, other)
}

// Intersection is the method form of the package function; t plays the role of a.
func (t *Tree[E, K]) Intersection(other *Tree[E, K]) (*Tree[E, K], error) {
	return Intersection(t, other)
}

// Difference is the method form of the package function; t plays the role of a.
func (t *Tree[E, K]) Difference(other *Tree[E, K]) (*Tree[E, K], error) {
	return Difference(t, other)
}

// SymmetricDifference is the method form of the package function.
func (t *Tree[E, K]) SymmetricDifference(other *Tree[E, K]) (*Tree[E, K], error) {
	return SymmetricDifference(t, other)
}

// MergeFrom moves every element of other into t (a destructive union).
// On equal keys t's element is kept. other is left empty.
//
// Complexity: O(m log(n/m + 1)).
func (t *Tree[E, K]) MergeFrom(other *Tree[E, K]) error {
	if err := t.compatible(other); err != nil {
		return err
	}
	if other == t || other.root == nil {
		return nil
	}
	t.root = t.union(t.root, other.root)
	t.mods++
	other.Clear()

	return nil
}

// Split returns the elements before key, the element with key (if found) and
// the elements after key as two new trees. t is left unchanged.
//
// Complexity: O(log n).
func (t *Tree[E, K]) Split(key K) (*Tree[E, K], E, bool, *Tree[E, K]) {
	less, greater := t.sibling(), t.sibling()
	// both halves are built under one owner; they never share a node
	greater.cow = less.cow
	t.detach()

	l, found, r := less.split(t.root, key)
	less.root, greater.root = l, r
	if found == nil {
		var zero E
		return less, zero, false, greater
	}

	return less, found.elem, true, greater
}

// Equal reports whether t and other hold the same keys in the same order.
// Elements themselves are not compared.
//
// Complexity: O(n).
func (t *Tree[E, K]) Equal(other *Tree[E, K]) bool {
	if t.Len() != other.Len() {
		return false
	}
	a, b := t.Cursor(), other.Cursor()
	for okA, okB := a.First(), b.First(); okA || okB; okA, okB = a.Next(), b.Next() {
		if okA != okB {
			return false
		}
		if t.ord.CompareKeys(a.Key(), other.ord.KeyOf(b.Element())) != order.Equal {
			return false
		}
	}

	return true
}

// compatible checks the preconditions shared by all set operations.
func (t *Tree[E, K]) compatible(other *Tree[E, K]) error {
	if t == nil || other == nil {
		return fmt.Errorf("%w: nil tree", ErrNilOrdering)
	}
	if t.ord != other.ord {
		return ErrOrderingMismatch
	}
	if t.allowed != other.allowed {
		return fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, t.opts.ImbalanceFactor, other.opts.ImbalanceFactor)
	}
	if t.ord.Duplicates() == order.Allow {
		return ErrDuplicatesUnsupported
	}

	return nil
}

// combine runs op on fresh ownership and detaches both inputs from the
// nodes the result now shares with them.
func (t *Tree[E, K]) combine(other *Tree[E, K], op func(res *Tree[E, K], a, b *node[E]) *node[E]) (*Tree[E, K], error) {
	if err := t.compatible(other); err != nil {
		return nil, err
	}
	res := t.sibling()
	res.root = op(res, t.root, other.root)
	t.detach()
	other.detach()

	return res, nil
}

func (t *Tree[E, K]) keyOf(n *node[E]) K {
	return t.ord.KeyOf(n.elem)
}

// union keeps a's element on equal keys.
func (t *Tree[E, K]) union(a, b *node[E]) *node[E] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if height(a) >= height(b) {
		bl, br := b.left, b.right
		l, found, r := t.split(a, t.keyOf(b))
		mid := found
		if mid == nil {
			mid = t.mut(b)
		}
		left := t.union(l, bl)
		right := t.union(r, br)
		return t.join(left, mid, right)
	}

	al, ar := a.left, a.right
	l, _, r := t.split(b, t.keyOf(a))
	mid := t.mut(a)
	left := t.union(al, l)
	right := t.union(ar, r)

	return t.join(left, mid, right)
}

// intersect keeps a's element for every key present in both.
func (t *Tree[E, K]) intersect(a, b *node[E]) *node[E] {
	if a == nil || b == nil {
		return nil
	}
	if height(a) >= height(b) {
		bl, br := b.left, b.right
		l, found, r := t.split(a, t.keyOf(b))
		left := t.intersect(l, bl)
		right := t.intersect(r, br)
		if found != nil {
			return t.join(left, found, right)
		}
		return t.join2(left, right)
	}

	al, ar := a.left, a.right
	l, found, r := t.split(b, t.keyOf(a))
	left := t.intersect(al, l)
	right := t.intersect(ar, r)
	if found != nil {
		return t.join(left, t.mut(a), right)
	}

	return t.join2(left, right)
}

// difference keeps the elements of a whose key b lacks.
func (t *Tree[E, K]) difference(a, b *node[E]) *node[E] {
	if a == nil {
		return nil
	}
	if b == nil {
		return a
	}
	if height(a) >= height(b) {
		bl, br := b.left, b.right
		l, _, r := t.split(a, t.keyOf(b))
		return t.join2(t.difference(l, bl), t.difference(r, br))
	}

	al, ar := a.left, a.right
	l, found, r := t.split(b, t.keyOf(a))
	left := t.difference(al, l)
	right := t.difference(ar, r)
	if found != nil {
		return t.join2(left, right)
	}

	return t.join(left, t.mut(a), right)
}

// symmetric keeps the keys present on one side only.
func (t *Tree[E, K]) symmetric(a, b *node[E]) *node[E] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if height(a) >= height(b) {
		bl, br := b.left, b.right
		l, found, r := t.split(a, t.keyOf(b))
		left := t.symmetric(l, bl)
		right := t.symmetric(r, br)
		if found != nil {
			return t.join2(left, right)
		}
		return t.join(left, t.mut(b), right)
	}

	al, ar := a.left, a.right
	l, found, r := t.split(b, t.keyOf(a))
	left := t.symmetric(al, l)
	right := t.symmetric(ar, r)
	if found != nil {
		return t.join2(left, right)
	}

	return t.join(left, t.mut(a), right)
}
