package avl

import "github.com/katalvlaran/lvlavl/order"

// Cursor walks a tree in key order in both directions.
//
// Instead of parent pointers the cursor keeps the path from the root to the
// current node on a stack, so Next and Prev are O(1) amortised and O(log n)
// in the worst case.
//
// A cursor borrows its tree: if the tree is mutated, the next step fails,
// Valid turns false and Err returns ErrMutatedDuringTraversal. Re-positioning
// with First, Last or one of the Seek methods resumes on the new contents.
type Cursor[E any, K any] struct {
	t     *Tree[E, K]
	stack []*node[E] // root … current
	mods  uint64
	err   error
}

// Cursor returns an unpositioned cursor over t.
func (t *Tree[E, K]) Cursor() *Cursor[E, K] {
	return &Cursor[E, K]{
		t:     t,
		stack: make([]*node[E], 0, t.Height()),
		mods:  t.mods,
	}
}

// reset starts a fresh positioning on the current tree contents.
func (c *Cursor[E, K]) reset() {
	c.stack = c.stack[:0]
	c.mods = c.t.mods
	c.err = nil
}

// live reports whether the cursor may keep stepping.
func (c *Cursor[E, K]) live() bool {
	if c.err != nil {
		return false
	}
	if c.mods != c.t.mods {
		c.err = ErrMutatedDuringTraversal
		c.stack = c.stack[:0]
		return false
	}

	return len(c.stack) > 0
}

// First moves to the smallest element. Returns false on an empty tree.
func (c *Cursor[E, K]) First() bool {
	c.reset()
	c.pushLeft(c.t.root)

	return len(c.stack) > 0
}

// Last moves to the largest element. Returns false on an empty tree.
func (c *Cursor[E, K]) Last() bool {
	c.reset()
	c.pushRight(c.t.root)

	return len(c.stack) > 0
}

// Seek moves to the first element whose key is >= key.
func (c *Cursor[E, K]) Seek(key K) bool {
	return c.seek(key, func(r order.Result) bool { return r != order.Less }, true)
}

// SeekAfter moves to the first element whose key is > key.
func (c *Cursor[E, K]) SeekAfter(key K) bool {
	return c.seek(key, func(r order.Result) bool { return r == order.Greater }, true)
}

// SeekFloor moves to the last element whose key is <= key.
func (c *Cursor[E, K]) SeekFloor(key K) bool {
	return c.seek(key, func(r order.Result) bool { return r != order.Greater }, false)
}

// SeekBefore moves to the last element whose key is < key.
func (c *Cursor[E, K]) SeekBefore(key K) bool {
	return c.seek(key, func(r order.Result) bool { return r == order.Less }, false)
}

// seek descends from the root recording the path. accept tells whether a node
// (compared against key) qualifies; lower selects the smallest qualifying node
// (true) or the largest (false). The stack is cut back to the best candidate.
func (c *Cursor[E, K]) seek(key K, accept func(order.Result) bool, lower bool) bool {
	c.reset()
	best := -1
	n := c.t.root
	for n != nil {
		c.stack = append(c.stack, n)
		ok := accept(c.t.ord.CompareKeys(c.t.ord.KeyOf(n.elem), key))
		if ok {
			best = len(c.stack) - 1
		}
		if ok == lower {
			n = n.left
		} else {
			n = n.right
		}
	}
	c.stack = c.stack[:best+1]

	return best >= 0
}

// Next advances to the following element. Returns false past the end.
func (c *Cursor[E, K]) Next() bool {
	if !c.live() {
		return false
	}
	cur := c.stack[len(c.stack)-1]
	if cur.right != nil {
		c.pushLeft(cur.right)
		return true
	}
	// climb until we leave a left subtree
	for {
		child := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		if len(c.stack) == 0 {
			return false
		}
		if c.stack[len(c.stack)-1].left == child {
			return true
		}
	}
}

// Prev steps back to the preceding element. Returns false before the start.
func (c *Cursor[E, K]) Prev() bool {
	if !c.live() {
		return false
	}
	cur := c.stack[len(c.stack)-1]
	if cur.left != nil {
		c.pushRight(cur.left)
		return true
	}
	for {
		child := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		if len(c.stack) == 0 {
			return false
		}
		if c.stack[len(c.stack)-1].right == child {
			return true
		}
	}
}

func (c *Cursor[E, K]) pushLeft(n *node[E]) {
	for ; n != nil; n = n.left {
		c.stack = append(c.stack, n)
	}
}

func (c *Cursor[E, K]) pushRight(n *node[E]) {
	for ; n != nil; n = n.right {
		c.stack = append(c.stack, n)
	}
}

// Valid reports whether the cursor points at an element.
func (c *Cursor[E, K]) Valid() bool {
	return c.err == nil && c.mods == c.t.mods && len(c.stack) > 0
}

// Element returns the current element, or the zero value when !Valid().
func (c *Cursor[E, K]) Element() E {
	if !c.Valid() {
		var zero E
		return zero
	}

	return c.stack[len(c.stack)-1].elem
}

// Key returns the key of the current element, or the zero value when !Valid().
func (c *Cursor[E, K]) Key() K {
	if !c.Valid() {
		var zero K
		return zero
	}

	return c.t.ord.KeyOf(c.stack[len(c.stack)-1].elem)
}

// Err returns ErrMutatedDuringTraversal once the cursor noticed a mutation.
func (c *Cursor[E, K]) Err() error {
	if c.err == nil && c.mods != c.t.mods && len(c.stack) > 0 {
		return ErrMutatedDuringTraversal
	}

	return c.err
}
