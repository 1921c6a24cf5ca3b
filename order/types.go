// Package order provides option and error definitions for orderings.
package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for ordering construction.
var (
	// ErrNilKeyFunc is returned when New is called without a key accessor.
	ErrNilKeyFunc = errors.New("order: key function is nil")

	// ErrNilCompare is returned when New is called without a comparator.
	ErrNilCompare = errors.New("order: compare function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("order: invalid option supplied")
)

// Result is the outcome of comparing two keys.
type Result int

const (
	// Less means the left operand orders before the right one.
	Less Result = -1
	// Equal means both operands occupy the same position.
	Equal Result = 0
	// Greater means the left operand orders after the right one.
	Greater Result = 1
)

// FromInt folds any comparator-style integer into a Result.
func FromInt(c int) Result {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// DuplicatePolicy tells a tree what to do with an element whose key compares
// Equal to a key already stored.
type DuplicatePolicy int

const (
	// Replace overwrites the stored element (map semantics).
	Replace DuplicatePolicy = iota

	// Reject refuses the insert and reports the stored element.
	Reject

	// Allow keeps both elements; newer equal keys follow older ones.
	Allow
)

// String implements fmt.Stringer.
func (p DuplicatePolicy) String() string {
	switch p {
	case Replace:
		return "Replace"
	case Reject:
		return "Reject"
	case Allow:
		return "Allow"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

func (p DuplicatePolicy) valid() bool {
	return p >= Replace && p <= Allow
}

// Option configures an Ordering via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunables of an Ordering.
type Options struct {
	// Duplicates is the equal-key policy. Default Replace.
	Duplicates DuplicatePolicy

	// Name labels the ordering in errors and dumps (e.g. a multidim dimension).
	Name string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Replace semantics and no name.
func DefaultOptions() Options {
	return Options{
		Duplicates: Replace,
		Name:       "",
		err:        nil,
	}
}

// WithDuplicates sets the equal-key policy.
func WithDuplicates(p DuplicatePolicy) Option {
	return func(o *Options) {
		if !p.valid() {
			o.err = fmt.Errorf("%w: unknown duplicate policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Duplicates = p
	}
}

// WithName attaches a human-readable label.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}
