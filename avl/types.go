// SPDX-License-Identifier: MIT
// Package: lvlavl/avl
//
// types.go: sentinel errors, options, and the small enums shared by the
// balancing core, the traversal engine and the set-operations engine.
//
// Error policy:
//   • Sentinels are package-level and compared with errors.Is.
//   • Context is attached with %w at the call site, never baked into the sentinel.
//   • "Not found" is not an error: lookups return (E, bool).

package avl

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree construction and operations.
var (
	// ErrNilOrdering is returned when a tree is built without an ordering.
	ErrNilOrdering = errors.New("avl: ordering is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("avl: invalid option supplied")

	// ErrDuplicateKey is returned by Insert under order.Reject when the key is
	// already present. The concrete error is a *DuplicateKeyError.
	ErrDuplicateKey = errors.New("avl: duplicate key")

	// ErrNotSorted is returned by the bulk constructors when the input is not
	// in ascending order (or repeats a key the policy does not allow).
	ErrNotSorted = errors.New("avl: input is not sorted")

	// ErrInvariantViolation is returned by Validate when the tree is corrupt,
	// which only an inconsistent comparator can cause.
	ErrInvariantViolation = errors.New("avl: invariant violation")

	// ErrMutatedDuringTraversal is reported by cursors (and raised by sequences)
	// when the tree changes while a traversal is in flight.
	ErrMutatedDuringTraversal = errors.New("avl: tree mutated during traversal")

	// ErrStopWalk may be returned by a Walk visitor to end the walk early
	// without reporting an error.
	ErrStopWalk = errors.New("avl: stop walk")

	// ErrOrderingMismatch is returned by set operations on trees that do not
	// share the same *order.Ordering.
	ErrOrderingMismatch = errors.New("avl: trees use different orderings")

	// ErrShapeMismatch is returned by set operations on trees that use
	// different imbalance factors.
	ErrShapeMismatch = errors.New("avl: trees use different imbalance factors")

	// ErrDuplicatesUnsupported is returned by set operations on trees whose
	// ordering allows equal keys.
	ErrDuplicatesUnsupported = errors.New("avl: set operations need unique keys")
)

// DuplicateKeyError reports a rejected insert together with the element that
// already holds the key.
type DuplicateKeyError[E any] struct {
	Existing E
	Incoming E
}

// Error implements error.
func (e *DuplicateKeyError[E]) Error() string {
	return fmt.Sprintf("%s: %v already present", ErrDuplicateKey.Error(), e.Existing)
}

// Unwrap lets errors.Is(err, ErrDuplicateKey) match.
func (e *DuplicateKeyError[E]) Unwrap() error {
	return ErrDuplicateKey
}

// Rotation names the restructuring performed while rebalancing a node.
type Rotation int

const (
	// RotateLeft slides nodes to the left (right-right case).
	RotateLeft Rotation = iota
	// RotateRight slides nodes to the right (left-left case).
	RotateRight
	// RotateLeftRight lifts the right grandchild of the left child (left-right case).
	RotateLeftRight
	// RotateRightLeft lifts the left grandchild of the right child (right-left case).
	RotateRightLeft
)

// String implements fmt.Stringer.
func (r Rotation) String() string {
	switch r {
	case RotateLeft:
		return "Left"
	case RotateRight:
		return "Right"
	case RotateLeftRight:
		return "LeftRight"
	case RotateRightLeft:
		return "RightLeft"
	default:
		return fmt.Sprintf("Rotation(%d)", int(r))
	}
}

// BalanceFactor classifies a node by the height difference of its children,
// relative to the tree's allowed imbalance.
type BalanceFactor int

const (
	// Balanced: both children have the same height.
	Balanced BalanceFactor = iota
	// LeftHeavy: left is taller, within the allowed imbalance.
	LeftHeavy
	// RightHeavy: right is taller, within the allowed imbalance.
	RightHeavy
	// TooLeftHeavy: left is taller beyond the allowed imbalance.
	TooLeftHeavy
	// TooRightHeavy: right is taller beyond the allowed imbalance.
	TooRightHeavy
)

// String implements fmt.Stringer.
func (b BalanceFactor) String() string {
	switch b {
	case Balanced:
		return "Balanced"
	case LeftHeavy:
		return "LeftHeavy"
	case RightHeavy:
		return "RightHeavy"
	case TooLeftHeavy:
		return "TooLeftHeavy"
	case TooRightHeavy:
		return "TooRightHeavy"
	default:
		return fmt.Sprintf("BalanceFactor(%d)", int(b))
	}
}

// classify maps a raw left-minus-right height difference to a BalanceFactor.
func classify(diff, allowed int) BalanceFactor {
	switch {
	case diff > allowed:
		return TooLeftHeavy
	case diff < -allowed:
		return TooRightHeavy
	case diff > 0:
		return LeftHeavy
	case diff < 0:
		return RightHeavy
	default:
		return Balanced
	}
}

// SearchQuery selects which element Search returns relative to a probe key.
type SearchQuery int

const (
	// Equality returns the element whose key equals the probe.
	Equality SearchQuery = iota
	// Nearest returns the exact match, otherwise the last element met on the
	// descent path (always the floor or the ceiling of the probe).
	Nearest
	// NearestLeft returns the greatest element whose key is <= the probe (floor).
	NearestLeft
	// NearestRight returns the least element whose key is >= the probe (ceiling).
	NearestRight
	// ToLeft returns the greatest element whose key is < the probe.
	ToLeft
	// ToRight returns the least element whose key is > the probe.
	ToRight
)

// String implements fmt.Stringer.
func (q SearchQuery) String() string {
	switch q {
	case Equality:
		return "Equality"
	case Nearest:
		return "Nearest"
	case NearestLeft:
		return "NearestLeft"
	case NearestRight:
		return "NearestRight"
	case ToLeft:
		return "ToLeft"
	case ToRight:
		return "ToRight"
	default:
		return fmt.Sprintf("SearchQuery(%d)", int(q))
	}
}

// TraversalOrder selects the visit order of Walk.
type TraversalOrder int

const (
	// PreOrder visits a node before its subtrees (left, then right).
	PreOrder TraversalOrder = iota
	// InOrder visits left subtree, node, right subtree: ascending key order.
	InOrder
	// PostOrder visits both subtrees before the node.
	PostOrder
	// ReverseInOrder visits right subtree, node, left subtree: descending order.
	ReverseInOrder
)

// NodeInfo is the read-only view of a node handed to Walk visitors.
type NodeInfo[E any] struct {
	// Element stored in the node.
	Element E
	// Depth is the distance from the root (root = 0).
	Depth int
	// Height of the subtree rooted here (leaf = 1).
	Height int
	// Size is the number of elements in the subtree rooted here.
	Size int
	// Balance is height(left) - height(right).
	Balance int
	// Factor classifies Balance against the tree's allowed imbalance.
	Factor BalanceFactor
}

// Option configures a Tree via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation at construction.
type Option func(*Options)

// Options holds the tunables of a Tree.
type Options struct {
	// ImbalanceFactor widens the allowed balance range: a node may have
	// |height(left) - height(right)| <= 1 + ImbalanceFactor before rotating.
	// Zero (default) is a strict AVL tree.
	ImbalanceFactor int

	// OnRotate is called once per single or double rotation.
	OnRotate func(r Rotation)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns strict AVL balancing and a no-op rotation hook.
func DefaultOptions() Options {
	return Options{
		ImbalanceFactor: 0,
		OnRotate:        func(Rotation) {},
		err:             nil,
	}
}

// MaxImbalanceFactor is the largest slack WithImbalanceFactor accepts. A tree
// that loose is already little better than a list on sorted input.
const MaxImbalanceFactor = 64

// WithImbalanceFactor relaxes the balance condition.
//
//	k == 0: strict AVL (default)
//	0 < k <= MaxImbalanceFactor: allow |balance| up to 1+k, trading lookup
//	        depth for fewer rotations
//	otherwise: invalid option → ErrOptionViolation
func WithImbalanceFactor(k int) Option {
	return func(o *Options) {
		switch {
		case k < 0:
			o.err = fmt.Errorf("%w: imbalance factor cannot be negative (%d)", ErrOptionViolation, k)
			return
		case k > MaxImbalanceFactor:
			o.err = fmt.Errorf("%w: imbalance factor %d exceeds %d", ErrOptionViolation, k, MaxImbalanceFactor)
			return
		}
		o.ImbalanceFactor = k
	}
}

// WithOnRotate registers a callback fired on every rotation.
func WithOnRotate(fn func(r Rotation)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRotate = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
