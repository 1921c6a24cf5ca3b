package avl_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlavl/avl"
	"github.com/katalvlaran/lvlavl/order"
)

func TestFromSorted_RoundTrip(t *testing.T) {
	src := buildInts(t, randomKeys(5, 500, 10_000)...)

	dst, err := avl.FromSorted(ints, src.Export())
	require.NoError(t, err)
	require.NoError(t, dst.Validate())

	assert.Equal(t, src.Export(), dst.Export())
	assert.True(t, src.Equal(dst))
	// 500 elements fit in a perfect tree of height 9
	assert.Equal(t, 9, dst.Height())
}

func TestFromSorted_Errors(t *testing.T) {
	_, err := avl.FromSorted(ints, []int{1, 3, 2})
	assert.ErrorIs(t, err, avl.ErrNotSorted)

	_, err = avl.FromSorted(ints, []int{1, 2, 2, 3})
	assert.ErrorIs(t, err, avl.ErrNotSorted)

	_, err = avl.FromSorted[int, int](nil, []int{1})
	assert.ErrorIs(t, err, avl.ErrNilOrdering)

	multi, err := ints.WithPolicy(order.Allow)
	require.NoError(t, err)
	tr, err := avl.FromSorted(multi, []int{1, 2, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 4, tr.Len())
	require.NoError(t, tr.Validate())
}

func TestFromSeq(t *testing.T) {
	tr, err := avl.FromSeq(ints, slices.Values([]int{2, 4, 6, 8}))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6, 8}, slices.Collect(tr.All()))

	empty, err := avl.FromSeq(ints, slices.Values([]int(nil)))
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestFromPreOrder_ReproducesShape(t *testing.T) {
	src := buildInts(t, randomKeys(9, 300, 5000)...)
	pre := slices.Collect(src.PreOrder())

	dst, err := avl.FromPreOrder(ints, pre)
	require.NoError(t, err)
	assert.Equal(t, src.String(), dst.String())
	assert.Equal(t, pre, slices.Collect(dst.PreOrder()))
}

func TestFromPreOrder_Errors(t *testing.T) {
	// 1 cannot follow 3 in the right subtree of 2
	_, err := avl.FromPreOrder(ints, []int{2, 3, 1})
	assert.ErrorIs(t, err, avl.ErrNotSorted)

	// a valid search tree that is a chain
	_, err = avl.FromPreOrder(ints, []int{1, 2, 3})
	assert.ErrorIs(t, err, avl.ErrInvariantViolation)

	tr, err := avl.FromPreOrder(ints, nil)
	require.NoError(t, err)
	assert.True(t, tr.IsEmpty())
}

func TestReorder(t *testing.T) {
	byName := order.By(func(p person) string { return p.Name })
	tr, err := avl.New(byName)
	require.NoError(t, err)
	for _, p := range []person{{"ann", 31}, {"bob", 25}, {"cid", 40}, {"dan", 25}} {
		_, err = tr.Insert(p)
		require.NoError(t, err)
	}

	// Reject: bob and dan share an age; nothing changes
	byAgeStrict := order.By(ageKey, order.WithDuplicates(order.Reject))
	err = tr.Reorder(byAgeStrict)
	require.ErrorIs(t, err, avl.ErrDuplicateKey)
	var dup *avl.DuplicateKeyError[person]
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "bob", dup.Existing.Name)
	assert.Equal(t, "dan", dup.Incoming.Name)
	assert.Same(t, byName, tr.Ordering())
	assert.Equal(t, 4, tr.Len())

	// Allow: everyone stays, equal ages in former name order
	byAgeMulti := order.By(ageKey, order.WithDuplicates(order.Allow))
	clone := tr.Clone()
	require.NoError(t, clone.Reorder(byAgeMulti))
	assert.Equal(t, []string{"bob", "dan", "ann", "cid"}, names(clone.Export()))
	require.NoError(t, clone.Validate())

	// Replace: the later of the equal elements wins
	byAge := order.By(ageKey)
	require.NoError(t, tr.Reorder(byAge))
	assert.Equal(t, []string{"dan", "ann", "cid"}, names(tr.Export()))
	got, ok := tr.Get("040")
	require.True(t, ok)
	assert.Equal(t, "cid", got.Name)
	require.NoError(t, tr.Validate())

	assert.ErrorIs(t, tr.Reorder(nil), avl.ErrNilOrdering)
}

func names(ps []person) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}

	return out
}

// ageKey keeps the key type of byName so a tree can switch between them.
func ageKey(p person) string { return fmt.Sprintf("%03d", p.Age) }
