// Package multidim keeps one logical element set ordered several ways at once.
//
// What:
//
//   - A Tree[E, ID] owns K dimensions. Each dimension is an avl.Tree keyed by
//     its own *order.Ordering, declared with Dim(name, ordering).
//   - Elements are tracked by identity (ID), not by any one dimension's key, so
//     every dimension always holds exactly the same members.
//   - Queries (Get, Range, Search, Min, Max, ordered iteration) are issued
//     against a chosen dimension and come back in that dimension's order.
//
// Why:
//   - Secondary indexes: look records up by id, scan them by age, page them by
//     name, all without keeping separate collections in sync by hand.
//
// Atomicity:
//
//	Insert and Remove are two-phase. The first phase asks every dimension
//	whether the change is acceptable: a dimension whose ordering uses
//	order.Reject refuses an element whose key is already held by another
//	identity, and a dimension using order.Replace names the member that would
//	be displaced. Only when every dimension agrees does the second phase
//	write, each dimension on a copy-on-write clone of its tree; the clones
//	replace the live trees together once all of them succeeded. A failure at
//	any point leaves every dimension exactly as it was.
//
//	A member displaced by a Replace dimension is removed from every dimension,
//	so membership never diverges.
//
//	Sequences obtained from an Index read the dimension as it is when a range
//	starts. A range in progress keeps that tree even if the loop body inserts
//	or removes members.
//
//	Index.Reorder swaps one dimension's ordering. It never drops a member: if
//	the new ordering would fold two members into one key, it fails and the
//	dimension is unchanged.
//
// Complexity (K dimensions, n members):
//
//   - Insert, Remove:      O(K log n)
//   - Get, Contains by ID: O(1)
//   - Index queries:       as on avl.Tree
//   - Index.Reorder:       O(n log n)
//   - Validate:            O(K n log n)
//
// Errors:
//
//   - ErrNoDimensions        New called without dimensions
//   - ErrNilIdentity         identity function is nil
//   - ErrNilDimension        a nil *Index was passed
//   - ErrUnnamedDimension    a dimension has an empty name
//   - ErrDuplicateDimension  two dimensions share a name
//   - ErrDimensionBound      the Index already belongs to another Tree
//   - ErrDimensionIndex      Scan or Query got an index out of range
//   - ErrDimensionKeyType    Query asked for the wrong key type
//   - ErrDuplicateKey        a Reject dimension refused the element (inside a *DimensionError)
//   - ErrOutOfSync           a dimension disagreed about membership during commit
//
// Usage:
//
//	byAge := multidim.Dim("age", order.By(func(p Person) int { return p.Age }))
//	byName := multidim.Dim("name", order.By(func(p Person) string { return p.Name }))
//	people, err := multidim.New(func(p Person) int { return p.ID }, byAge, byName)
//	...
//	_, err = people.Insert(Person{ID: 1, Name: "bob", Age: 30})
//	for p := range byName.All() { ... }
//	adults, err := multidim.Query[Person, int, int](people, 0, 18, 200)
package multidim
