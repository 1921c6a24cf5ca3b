// Package avl provides a generic, self-balancing AVL search tree with a
// pluggable ordering, lazy traversal and merge-based set algebra.
//
// What
//
//   - Tree[E, K] stores elements of type E arranged by an *order.Ordering[E, K]
//     (key accessor + comparator + duplicate policy).
//   - Insert, Remove, Get, Contains and Search run in O(log n); every structural
//     change rebalances the ancestors on the way back with single (LL/RR) or
//     double (LR/RL) rotations.
//   - Nodes cache their height and subtree size, so order statistics (At, Rank)
//     are O(log n) as well.
//   - FromSorted builds a minimum-height tree from sorted input in O(n); with
//     Export it forms the serialization contract used by package codec.
//   - Cursor, All, Backward, Range, PreOrder, PostOrder and LevelOrder give lazy,
//     restartable traversals; Walk runs a visitor with node metadata.
//   - Union, Intersection, Difference and SymmetricDifference split and join
//     balanced trees instead of re-inserting, for O(m log(n/m + 1)) work.
//
// Design notes
//
//	There are no parent pointers. Cursors carry the path from the root to the
//	current node on a stack, which makes Next/Prev O(1) amortised.
//
//	Nodes carry a copy-on-write owner tag. Clone is O(1), and the results of set
//	operations share untouched subtrees with their inputs; whichever tree writes
//	to a shared node first copies it. Callers never observe the sharing.
//
//	WithImbalanceFactor(k) relaxes the balance condition to
//	|height(left) - height(right)| <= 1 + k, trading lookup depth for fewer
//	rotations on write-heavy workloads. k is capped at MaxImbalanceFactor.
//
// Concurrency
//
//	A Tree is not safe for concurrent use and carries no locks: guard it with
//	a sync.RWMutex if several goroutines need it. A traversal must not overlap a
//	mutation of the same tree; cursors report ErrMutatedDuringTraversal and
//	sequences panic with it.
//
// Complexity (n = Len())
//
//   - Insert / Remove / Get / Search / At / Rank: O(log n)
//   - Cursor step: O(1) amortised, O(log n) worst case
//   - FromSorted / Export / Validate: O(n)
//   - Set operations on sizes m <= n: O(m log(n/m + 1))
//
// Usage
//
//	t, err := avl.New(order.Natural[int]())
//	if err != nil {
//	    // ErrNilOrdering or ErrOptionViolation
//	}
//	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
//	    _, _ = t.Insert(k)
//	}
//	t.Remove(3)
//	for v := range t.Range(4, 8) {
//	    fmt.Println(v) // 4 5 7 8
//	}
//
// Errors
//
//   - ErrNilOrdering            if a constructor receives a nil ordering.
//   - ErrOptionViolation        if an Option carries an invalid value.
//   - ErrDuplicateKey           on Insert under order.Reject (as *DuplicateKeyError).
//   - ErrNotSorted              if bulk input is not ascending.
//   - ErrInvariantViolation     from Validate on a corrupted tree.
//   - ErrMutatedDuringTraversal if a traversal overlaps a mutation.
//   - ErrOrderingMismatch, ErrShapeMismatch, ErrDuplicatesUnsupported from set operations.
package avl
