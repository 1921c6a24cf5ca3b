package multidim

import (
	"io"
	"iter"
	"slices"

	"github.com/katalvlaran/lvlavl/avl"
	"github.com/katalvlaran/lvlavl/order"
)

// Dimension is the key-type-erased view of an Index that a Tree stores.
// Only *Index implements it.
type Dimension[E any] interface {
	// Name returns the name given to Dim.
	Name() string
	// Policy returns the duplicate policy of the dimension's ordering.
	Policy() order.DuplicatePolicy
	// Len returns the number of elements in the dimension.
	Len() int
	// All yields the elements in the dimension's ascending order.
	All() iter.Seq[E]
	// Backward yields the elements in descending order.
	Backward() iter.Seq[E]
	// Validate checks the dimension's tree invariants.
	Validate() error
	// String draws the dimension's tree.
	String() string

	check() error
	bind(owner any)
	clash(e E) (E, bool)
	holds(e E, same func(E) bool) bool
	begin() stage[E]
	reset()
}

// stage is a pending write to one dimension, applied to a copy-on-write clone
// of its tree and published by commit.
type stage[E any] interface {
	insert(e E) error
	remove(e E, same func(E) bool) bool
	commit()
}

// Index is one dimension of a Tree: an avl.Tree keyed by K. Keep the *Index
// returned by Dim to run typed queries against that dimension.
type Index[E any, K any] struct {
	name  string
	ord   *order.Ordering[E, K]
	tree  *avl.Tree[E, K]
	owner any
	err   error
}

// Dim declares a dimension named name, ordered by ord. Tree options (such as
// avl.WithImbalanceFactor) apply to this dimension's tree only.
// Construction errors surface from New.
func Dim[E any, K any](name string, ord *order.Ordering[E, K], opts ...avl.Option) *Index[E, K] {
	x := &Index[E, K]{name: name, ord: ord}
	x.tree, x.err = avl.New(ord, opts...)

	return x
}

// Name returns the dimension's name.
func (x *Index[E, K]) Name() string { return x.name }

// Ordering returns the dimension's ordering.
func (x *Index[E, K]) Ordering() *order.Ordering[E, K] { return x.ord }

// Policy returns the duplicate policy of the dimension's ordering.
func (x *Index[E, K]) Policy() order.DuplicatePolicy { return x.ord.Duplicates() }

// Len returns the number of elements in the dimension.
func (x *Index[E, K]) Len() int { return x.tree.Len() }

// Height returns the height of the dimension's tree.
func (x *Index[E, K]) Height() int { return x.tree.Height() }

// Get returns the element with key (any one of them under order.Allow).
func (x *Index[E, K]) Get(key K) (E, bool) { return x.tree.Get(key) }

// Contains reports whether some element has key.
func (x *Index[E, K]) Contains(key K) bool { return x.tree.Contains(key) }

// Search runs q against the dimension; see avl.SearchQuery.
func (x *Index[E, K]) Search(key K, q avl.SearchQuery) (E, bool) { return x.tree.Search(key, q) }

// Min returns the element with the smallest key.
func (x *Index[E, K]) Min() (E, bool) { return x.tree.Min() }

// Max returns the element with the largest key.
func (x *Index[E, K]) Max() (E, bool) { return x.tree.Max() }

// At returns the i-th element in the dimension's order.
func (x *Index[E, K]) At(i int) (E, bool) { return x.tree.At(i) }

// Rank returns the number of elements whose key orders before key.
func (x *Index[E, K]) Rank(key K) int { return x.tree.Rank(key) }

// All yields every element in ascending order of this dimension.
//
// Each range starts from the dimension's contents at that moment; a range
// already in progress keeps the tree it started on, so Tree mutations from
// the loop body are safe and not observed.
func (x *Index[E, K]) All() iter.Seq[E] {
	return func(yield func(E) bool) { x.tree.All()(yield) }
}

// Backward yields every element in descending order of this dimension.
func (x *Index[E, K]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) { x.tree.Backward()(yield) }
}

// Range yields the elements whose key lies in [low, high], ascending.
func (x *Index[E, K]) Range(low, high K) iter.Seq[E] {
	return func(yield func(E) bool) { x.tree.Range(low, high)(yield) }
}

// RangeBackward yields the elements whose key lies in [low, high], descending.
func (x *Index[E, K]) RangeBackward(low, high K) iter.Seq[E] {
	return func(yield func(E) bool) { x.tree.RangeBackward(low, high)(yield) }
}

// Export returns a snapshot of the elements in this dimension's order.
func (x *Index[E, K]) Export() []E { return x.tree.Export() }

// Validate checks the dimension's tree invariants.
func (x *Index[E, K]) Validate() error { return x.tree.Validate() }

// Print draws the dimension's tree; see avl.Tree.Print.
func (x *Index[E, K]) Print(w io.Writer) error { return x.tree.Print(w) }

// String renders the same drawing as Print.
func (x *Index[E, K]) String() string { return x.tree.String() }

// Reorder re-arranges the dimension under ord, which must use the same key
// type. Every member stays in the dimension: when two members share a key
// under ord and ord does not allow duplicates, Reorder returns a
// *DimensionError wrapping ErrDuplicateKey and the dimension is unchanged.
// Other dimensions are never touched.
//
// Complexity: O(n log n).
func (x *Index[E, K]) Reorder(ord *order.Ordering[E, K]) error {
	if x.err != nil {
		return &DimensionError{Dimension: x.name, Err: x.err}
	}
	if ord == nil {
		return &DimensionError{Dimension: x.name, Err: avl.ErrNilOrdering}
	}
	if ord.Duplicates() == order.Replace {
		// avl.Tree.Reorder would silently drop the losers
		elems := x.tree.Export()
		slices.SortStableFunc(elems, func(a, b E) int { return int(ord.Compare(a, b)) })
		for i := 1; i < len(elems); i++ {
			if ord.Compare(elems[i-1], elems[i]) == order.Equal {
				return &DimensionError{
					Dimension: x.name,
					Err:       &avl.DuplicateKeyError[E]{Existing: elems[i-1], Incoming: elems[i]},
				}
			}
		}
	}

	next := x.tree.Clone()
	if err := next.Reorder(ord); err != nil {
		return &DimensionError{Dimension: x.name, Err: err}
	}
	x.ord, x.tree = ord, next

	return nil
}

// check reports why the Index cannot join a Tree.
func (x *Index[E, K]) check() error {
	switch {
	case x == nil:
		return ErrNilDimension
	case x.err != nil:
		return &DimensionError{Dimension: x.name, Err: x.err}
	case x.name == "":
		return ErrUnnamedDimension
	case x.owner != nil:
		return &DimensionError{Dimension: x.name, Err: ErrDimensionBound}
	}

	return nil
}

func (x *Index[E, K]) bind(owner any) { x.owner = owner }

// clash returns the element already holding e's key. Dimensions allowing
// duplicates never clash.
func (x *Index[E, K]) clash(e E) (E, bool) {
	if x.ord.Duplicates() == order.Allow {
		var zero E
		return zero, false
	}

	return x.tree.Get(x.ord.KeyOf(e))
}

func (x *Index[E, K]) holds(e E, same func(E) bool) bool {
	_, ok := x.tree.GetFunc(x.ord.KeyOf(e), same)
	return ok
}

func (x *Index[E, K]) begin() stage[E] {
	return &indexStage[E, K]{x: x, tree: x.tree.Clone()}
}

func (x *Index[E, K]) reset() {
	empty := x.tree.Clone()
	empty.Clear()
	x.tree = empty
}

type indexStage[E any, K any] struct {
	x    *Index[E, K]
	tree *avl.Tree[E, K]
}

func (s *indexStage[E, K]) insert(e E) error {
	_, err := s.tree.Insert(e)
	return err
}

func (s *indexStage[E, K]) remove(e E, same func(E) bool) bool {
	_, ok := s.tree.RemoveFunc(s.x.ord.KeyOf(e), same)
	return ok
}

func (s *indexStage[E, K]) commit() { s.x.tree = s.tree }
