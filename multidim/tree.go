package multidim

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvlavl/avl"
	"github.com/katalvlaran/lvlavl/order"
)

// Tree is one element set indexed by several dimensions. Members are told
// apart by their identity; see the package documentation for the atomicity
// guarantees of Insert and Remove.
//
// A Tree is not safe for concurrent use.
type Tree[E any, ID comparable] struct {
	identity func(E) ID
	dims     []Dimension[E]
	members  map[ID]E
}

// New builds a Tree over dims, telling elements apart by identity.
// Every dimension must have a unique, non-empty name and must not belong to
// another Tree.
//
// Returns ErrNilIdentity, ErrNoDimensions, ErrNilDimension,
// ErrUnnamedDimension, ErrDuplicateDimension or ErrDimensionBound.
func New[E any, ID comparable](identity func(E) ID, dims ...Dimension[E]) (*Tree[E, ID], error) {
	if identity == nil {
		return nil, ErrNilIdentity
	}
	if len(dims) == 0 {
		return nil, ErrNoDimensions
	}

	seen := make(map[string]struct{}, len(dims))
	for _, d := range dims {
		if d == nil {
			return nil, ErrNilDimension
		}
		if err := d.check(); err != nil {
			return nil, err
		}
		if _, dup := seen[d.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDimension, d.Name())
		}
		seen[d.Name()] = struct{}{}
	}

	m := &Tree[E, ID]{
		identity: identity,
		dims:     append([]Dimension[E](nil), dims...),
		members:  make(map[ID]E),
	}
	for _, d := range m.dims {
		d.bind(m)
	}

	return m, nil
}

// NewComparable builds a Tree whose elements are their own identity.
func NewComparable[E comparable](dims ...Dimension[E]) (*Tree[E, E], error) {
	return New(func(e E) E { return e }, dims...)
}

// Len returns the number of members.
func (m *Tree[E, ID]) Len() int { return len(m.members) }

// Dimensions returns the dimension names in declaration order.
func (m *Tree[E, ID]) Dimensions() []string {
	out := make([]string, len(m.dims))
	for i, d := range m.dims {
		out[i] = d.Name()
	}

	return out
}

// Dimension returns the dimension named name.
func (m *Tree[E, ID]) Dimension(name string) (Dimension[E], bool) {
	for _, d := range m.dims {
		if d.Name() == name {
			return d, true
		}
	}

	return nil, false
}

// Get returns the member with identity id.
func (m *Tree[E, ID]) Get(id ID) (E, bool) {
	e, ok := m.members[id]
	return e, ok
}

// Contains reports whether a member has identity id.
func (m *Tree[E, ID]) Contains(id ID) bool {
	_, ok := m.members[id]
	return ok
}

// Insert adds e to every dimension, replacing the member with the same
// identity if there is one (replaced reports that case).
//
// A dimension whose ordering rejects duplicates refuses e when another member
// already holds its key; Insert then returns a *DimensionError wrapping
// ErrDuplicateKey (as *avl.DuplicateKeyError) and nothing changes. A dimension
// whose ordering replaces duplicates displaces the member holding e's key,
// which leaves every dimension.
//
// Complexity: O(K log n).
func (m *Tree[E, ID]) Insert(e E) (replaced bool, err error) {
	id := m.identity(e)
	old, replaced := m.members[id]

	// phase 1: every dimension agrees before anything is written
	evict := make(map[ID]E)
	for _, d := range m.dims {
		if d.Policy() != order.Replace {
			continue
		}
		if x, ok := d.clash(e); ok {
			if xid := m.identity(x); xid != id {
				evict[xid] = x
			}
		}
	}
	for _, d := range m.dims {
		if d.Policy() != order.Reject {
			continue
		}
		x, ok := d.clash(e)
		if !ok {
			continue
		}
		xid := m.identity(x)
		if _, leaving := evict[xid]; xid != id && !leaving {
			return false, &DimensionError{
				Dimension: d.Name(),
				Err:       &avl.DuplicateKeyError[E]{Existing: x, Incoming: e},
			}
		}
	}

	// phase 2
	err = m.commit(func(s stage[E]) error {
		if replaced && !s.remove(old, m.same(id)) {
			return ErrOutOfSync
		}
		for xid, x := range evict {
			if !s.remove(x, m.same(xid)) {
				return ErrOutOfSync
			}
		}
		return s.insert(e)
	})
	if err != nil {
		return false, err
	}

	for xid := range evict {
		delete(m.members, xid)
	}
	m.members[id] = e

	return replaced, nil
}

// Remove deletes the member with identity id from every dimension and
// returns it.
//
// Complexity: O(K log n).
func (m *Tree[E, ID]) Remove(id ID) (E, bool) {
	e, ok := m.members[id]
	if !ok {
		return e, false
	}
	err := m.commit(func(s stage[E]) error {
		if !s.remove(e, m.same(id)) {
			return ErrOutOfSync
		}
		return nil
	})
	if err != nil {
		var zero E
		return zero, false
	}
	delete(m.members, id)

	return e, true
}

// commit applies write to a staged clone of every dimension and publishes
// the clones only when all of them succeeded.
func (m *Tree[E, ID]) commit(write func(stage[E]) error) error {
	stages := make([]stage[E], len(m.dims))
	for i, d := range m.dims {
		stages[i] = d.begin()
		if err := write(stages[i]); err != nil {
			return &DimensionError{Dimension: d.Name(), Err: err}
		}
	}
	for _, s := range stages {
		s.commit()
	}

	return nil
}

func (m *Tree[E, ID]) same(id ID) func(E) bool {
	return func(x E) bool { return m.identity(x) == id }
}

// Clear removes every member from every dimension.
func (m *Tree[E, ID]) Clear() {
	for _, d := range m.dims {
		d.reset()
	}
	clear(m.members)
}

// All yields every member in the order of the first dimension.
func (m *Tree[E, ID]) All() iter.Seq[E] {
	return m.dims[0].All()
}

// Scan yields every member in the order of dimension i.
//
// Returns ErrDimensionIndex if i is out of range.
func (m *Tree[E, ID]) Scan(i int) (iter.Seq[E], error) {
	if i < 0 || i >= len(m.dims) {
		return nil, fmt.Errorf("%w: %d of %d", ErrDimensionIndex, i, len(m.dims))
	}

	return m.dims[i].All(), nil
}

// Query yields, in the order of dimension i, the members whose key in that
// dimension lies in [low, high].
//
// Returns ErrDimensionIndex if i is out of range and ErrDimensionKeyType if
// dimension i is not keyed by K.
func Query[E any, ID comparable, K any](m *Tree[E, ID], i int, low, high K) (iter.Seq[E], error) {
	if i < 0 || i >= len(m.dims) {
		return nil, fmt.Errorf("%w: %d of %d", ErrDimensionIndex, i, len(m.dims))
	}
	x, ok := m.dims[i].(*Index[E, K])
	if !ok {
		return nil, &DimensionError{Dimension: m.dims[i].Name(), Err: ErrDimensionKeyType}
	}

	return x.Range(low, high), nil
}

// Validate checks every dimension's invariants and that all dimensions hold
// exactly the tracked members.
//
// Complexity: O(K n log n).
func (m *Tree[E, ID]) Validate() error {
	var errs []error
	for _, d := range m.dims {
		if err := d.Validate(); err != nil {
			errs = append(errs, &DimensionError{Dimension: d.Name(), Err: err})
			continue
		}
		if d.Len() != len(m.members) {
			errs = append(errs, &DimensionError{
				Dimension: d.Name(),
				Err:       fmt.Errorf("%w: %d elements, %d members", ErrOutOfSync, d.Len(), len(m.members)),
			})
			continue
		}
		for id, e := range m.members {
			if !d.holds(e, m.same(id)) {
				errs = append(errs, &DimensionError{
					Dimension: d.Name(),
					Err:       fmt.Errorf("%w: member %v missing", ErrOutOfSync, id),
				})
				break
			}
		}
	}

	return errors.Join(errs...)
}

// String draws every dimension's tree under its name.
func (m *Tree[E, ID]) String() string {
	var sb strings.Builder
	for _, d := range m.dims {
		fmt.Fprintf(&sb, "%s:\n%s", d.Name(), d.String())
	}

	return sb.String()
}
