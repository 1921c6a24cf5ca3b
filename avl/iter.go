package avl

import (
	"iter"

	"github.com/katalvlaran/lvlavl/order"
)

// The sequences below are lazy and restartable: nothing is materialised, and
// every range over them starts again from the current tree contents.
// Mutating the tree from inside the loop body and then continuing panics with
// ErrMutatedDuringTraversal; breaking out right after a mutation is fine.

// All yields every element in ascending key order.
func (t *Tree[E, K]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		c := t.Cursor()
		for ok := c.First(); ok; ok = c.Next() {
			if !yield(c.Element()) {
				return
			}
		}
		mustNotMutate(c.Err())
	}
}

// Backward yields every element in descending key order.
func (t *Tree[E, K]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		c := t.Cursor()
		for ok := c.Last(); ok; ok = c.Prev() {
			if !yield(c.Element()) {
				return
			}
		}
		mustNotMutate(c.Err())
	}
}

// Range yields, in ascending order, the elements whose keys lie in the closed
// interval [low, high]. It descends to low once and then steps the cursor, so
// the cost is O(log n + k) for k yielded elements. An inverted interval is empty.
func (t *Tree[E, K]) Range(low, high K) iter.Seq[E] {
	return func(yield func(E) bool) {
		if t.ord.CompareKeys(low, high) == order.Greater {
			return
		}
		c := t.Cursor()
		for ok := c.Seek(low); ok; ok = c.Next() {
			e := c.Element()
			if t.ord.CompareTo(e, high) == order.Greater || !yield(e) {
				return
			}
		}
		mustNotMutate(c.Err())
	}
}

// RangeBackward yields the elements of [low, high] in descending order.
func (t *Tree[E, K]) RangeBackward(low, high K) iter.Seq[E] {
	return func(yield func(E) bool) {
		if t.ord.CompareKeys(low, high) == order.Greater {
			return
		}
		c := t.Cursor()
		for ok := c.SeekFloor(high); ok; ok = c.Prev() {
			e := c.Element()
			if t.ord.CompareTo(e, low) == order.Less || !yield(e) {
				return
			}
		}
		mustNotMutate(c.Err())
	}
}

// PreOrder yields each node before its subtrees. Feeding the result to
// FromPreOrder reproduces the exact shape.
func (t *Tree[E, K]) PreOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		mods := t.mods
		stack := make([]*node[E], 0, t.Height())
		if t.root != nil {
			stack = append(stack, t.root)
		}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.elem) {
				return
			}
			t.checkMods(mods)
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// PostOrder yields each node after both of its subtrees.
func (t *Tree[E, K]) PostOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		mods := t.mods
		stack := make([]*node[E], 0, t.Height())
		var prev *node[E]
		n := t.root
		for n != nil || len(stack) > 0 {
			for ; n != nil; n = n.left {
				stack = append(stack, n)
			}
			top := stack[len(stack)-1]
			if top.right != nil && top.right != prev {
				n = top.right
				continue
			}
			stack = stack[:len(stack)-1]
			if !yield(top.elem) {
				return
			}
			t.checkMods(mods)
			prev = top
		}
	}
}

// LevelOrder yields nodes breadth-first, root first, left to right.
func (t *Tree[E, K]) LevelOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		if t.root == nil {
			return
		}
		mods := t.mods
		queue := []*node[E]{t.root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n.elem) {
				return
			}
			t.checkMods(mods)
			if n.left != nil {
				queue = append(queue, n.left)
			}
			if n.right != nil {
				queue = append(queue, n.right)
			}
		}
	}
}

func (t *Tree[E, K]) checkMods(mods uint64) {
	if t.mods != mods {
		panic(ErrMutatedDuringTraversal)
	}
}

func mustNotMutate(err error) {
	if err != nil {
		panic(err)
	}
}
