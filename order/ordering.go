package order

import (
	"cmp"
	"fmt"
)

// Ordering arranges elements of type E by a key of type K.
//
// An Ordering is immutable and safe to share between trees and goroutines.
// Trees compare Orderings by pointer: two trees "share an ordering" only when
// they were built from the same *Ordering.
type Ordering[E any, K any] struct {
	key  func(E) K
	cmp  func(a, b K) int
	dup  DuplicatePolicy
	name string
}

// New builds an Ordering from a key accessor and a three-way comparator
// (negative, zero, positive as in cmp.Compare).
//
// Returns ErrNilKeyFunc, ErrNilCompare, or ErrOptionViolation.
//
// Complexity: O(len(opts)).
func New[E any, K any](key func(E) K, compare func(a, b K) int, opts ...Option) (*Ordering[E, K], error) {
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	if compare == nil {
		return nil, ErrNilCompare
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Ordering[E, K]{key: key, cmp: compare, dup: o.Duplicates, name: o.Name}, nil
}

// By orders elements by a cmp.Ordered key using cmp.Compare.
// It panics if an option is invalid; with the exported policy constants
// that cannot happen.
func By[E any, K cmp.Ordered](key func(E) K, opts ...Option) *Ordering[E, K] {
	o, err := New(key, cmp.Compare[K], opts...)
	if err != nil {
		panic(err)
	}

	return o
}

// Natural orders cmp.Ordered values by themselves.
func Natural[K cmp.Ordered](opts ...Option) *Ordering[K, K] {
	return By(func(k K) K { return k }, opts...)
}

// KeyOf extracts the comparison key of e.
func (o *Ordering[E, K]) KeyOf(e E) K {
	return o.key(e)
}

// CompareKeys compares two keys.
func (o *Ordering[E, K]) CompareKeys(a, b K) Result {
	return FromInt(o.cmp(a, b))
}

// Compare compares two elements by their keys.
func (o *Ordering[E, K]) Compare(a, b E) Result {
	return FromInt(o.cmp(o.key(a), o.key(b)))
}

// CompareTo compares the key of e against k.
func (o *Ordering[E, K]) CompareTo(e E, k K) Result {
	return FromInt(o.cmp(o.key(e), k))
}

// Duplicates reports the equal-key policy.
func (o *Ordering[E, K]) Duplicates() DuplicatePolicy {
	return o.dup
}

// Name reports the label given by WithName, or "".
func (o *Ordering[E, K]) Name() string {
	return o.name
}

// Reverse returns a new Ordering with the comparator flipped.
// The twin keeps the key accessor, policy and name.
func (o *Ordering[E, K]) Reverse() *Ordering[E, K] {
	inner := o.cmp
	return &Ordering[E, K]{
		key:  o.key,
		cmp:  func(a, b K) int { return inner(b, a) },
		dup:  o.dup,
		name: o.name,
	}
}

// WithPolicy returns a new Ordering identical to o except for its duplicate
// policy. An invalid policy yields ErrOptionViolation.
func (o *Ordering[E, K]) WithPolicy(p DuplicatePolicy) (*Ordering[E, K], error) {
	if !p.valid() {
		return nil, fmt.Errorf("%w: unknown duplicate policy %d", ErrOptionViolation, int(p))
	}

	return &Ordering[E, K]{key: o.key, cmp: o.cmp, dup: p, name: o.name}, nil
}

// String implements fmt.Stringer.
func (o *Ordering[E, K]) String() string {
	if o.name == "" {
		return fmt.Sprintf("Ordering(%s)", o.dup)
	}

	return fmt.Sprintf("Ordering(%s, %s)", o.name, o.dup)
}
