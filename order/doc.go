// Package order provides the ordering abstraction shared by every tree in lvlavl.
//
// What
//
//   - An Ordering pairs a key accessor (element → key) with a total-order
//     comparator over keys, plus a DuplicatePolicy that tells a tree what to do
//     when two elements compare Equal.
//   - Trees never compare elements directly; they always go through KeyOf and
//     CompareKeys, so the same element type can be arranged by any of its fields.
//   - Orderings are immutable after construction. Reverse and WithPolicy return
//     new twins rather than mutating the receiver.
//
// Why
//
//   - Relying on a single "natural" order of the element type is too rigid:
//     records are usually looked up by one field and listed by another.
//   - multidim keeps one tree per Ordering over the same element set.
//
// Contract
//
//	The comparator must be pure, total and consistent for the lifetime of every
//	tree that uses it. A comparator that changes its answer for the same pair of
//	keys silently breaks the search-tree invariant; trees do not re-check it on
//	every operation (that would cost O(n)). avl.Tree.Validate detects the damage
//	after the fact.
//
// Duplicate policies
//
//   - Replace (default): an equal-key insert replaces the stored element.
//   - Reject:            an equal-key insert fails and reports the existing element.
//   - Allow:             equal keys are kept side by side, in insertion order.
//
// Usage
//
//	byAge := order.By(func(p Person) int { return p.Age }, order.WithName("age"))
//	byName, err := order.New(
//	    func(p Person) string { return p.Name },
//	    strings.Compare,
//	    order.WithDuplicates(order.Reject),
//	)
//
// Errors
//
//   - ErrNilKeyFunc       if the key accessor is nil.
//   - ErrNilCompare       if the comparator is nil.
//   - ErrOptionViolation  if an Option carries an invalid value.
package order
