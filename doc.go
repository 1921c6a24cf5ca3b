// Package lvlavl is a generic AVL tree toolkit: ordered collections with a
// pluggable ordering, lazy traversal, sub-linear set algebra and several
// synchronized orderings over one element set.
//
// What is inside?
//
//	order/     Ordering[E, K]: key accessor, comparator, duplicate policy
//	           (Replace, Reject, Allow), Reverse, Natural, By
//	avl/       Tree[E, K]: insert, remove, search queries, order statistics,
//	           cursors, iter.Seq traversals, Walk, Union / Intersection /
//	           Difference / SymmetricDifference, Split, bulk build, Print
//	multidim/  Tree[E, ID]: one member set indexed by several Orderings,
//	           atomic two-phase inserts and removals
//	codec/     JSON / YAML envelopes for saving and restoring trees
//	examples/  runnable scenarios (leaderboard, calendar merge, inventory,
//	           snapshot)
//
// Why lvlavl?
//
//   - One generic tree for any element type: key extraction is a function,
//     not an interface the element must implement.
//   - Predictable O(log n) everywhere, including At and Rank.
//   - Set operations split and join balanced trees, costing
//     O(m log(n/m + 1)) rather than re-inserting every element.
//   - Copy-on-write nodes make Clone O(1) and keep results independent.
//   - Pure Go with no cgo.
//
// Quick example:
//
//	t, _ := avl.New(order.Natural[int]())
//	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
//		t.Insert(k)
//	}
//	t.Remove(3)
//	fmt.Println(slices.Collect(t.All())) // [1 4 5 7 8 9]
//
//	    5
//	  4   8
//	 1   7 9
//
//	go get github.com/katalvlaran/lvlavl
package lvlavl
