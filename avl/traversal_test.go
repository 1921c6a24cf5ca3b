package avl_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlavl/avl"
)

// perfect7 is the tree
//
//	    4
//	  2   6
//	 1 3 5 7
func perfect7(t *testing.T) *avl.Tree[int, int] {
	t.Helper()
	tr, err := avl.FromSorted(ints, []int{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)

	return tr
}

func TestCursor_ForwardBackward(t *testing.T) {
	tr := buildInts(t, randomKeys(21, 150, 1000)...)
	want := tr.Export()

	var fwd []int
	c := tr.Cursor()
	for ok := c.First(); ok; ok = c.Next() {
		fwd = append(fwd, c.Element())
		require.Equal(t, c.Element(), c.Key())
	}
	assert.Equal(t, want, fwd)
	assert.False(t, c.Valid())
	assert.NoError(t, c.Err())

	var bwd []int
	for ok := c.Last(); ok; ok = c.Prev() {
		bwd = append(bwd, c.Element())
	}
	assert.Equal(t, reversed(want), bwd)

	empty := buildInts(t)
	ec := empty.Cursor()
	assert.False(t, ec.First())
	assert.False(t, ec.Last())
	assert.Equal(t, 0, ec.Element())
}

func TestCursor_Seek(t *testing.T) {
	tr := buildInts(t, 10, 20, 30, 40, 50)
	c := tr.Cursor()

	require.True(t, c.Seek(30))
	assert.Equal(t, 30, c.Element())
	require.True(t, c.Seek(31))
	assert.Equal(t, 40, c.Element())
	require.True(t, c.Next())
	assert.Equal(t, 50, c.Element())
	assert.False(t, c.Seek(51))

	require.True(t, c.SeekAfter(30))
	assert.Equal(t, 40, c.Element())
	require.True(t, c.SeekFloor(29))
	assert.Equal(t, 20, c.Element())
	require.True(t, c.Prev())
	assert.Equal(t, 10, c.Element())
	assert.False(t, c.Prev())

	require.True(t, c.SeekBefore(30))
	assert.Equal(t, 20, c.Element())
	assert.False(t, c.SeekBefore(10))
	assert.False(t, c.SeekFloor(9))
}

func TestCursor_DetectsMutation(t *testing.T) {
	tr := buildInts(t, 1, 2, 3)
	c := tr.Cursor()
	require.True(t, c.First())

	_, err := tr.Insert(4)
	require.NoError(t, err)

	assert.False(t, c.Next())
	assert.ErrorIs(t, c.Err(), avl.ErrMutatedDuringTraversal)

	// repositioning starts over against the new state
	require.True(t, c.Last())
	assert.Equal(t, 4, c.Element())
	assert.NoError(t, c.Err())
}

func TestIter_AllBackwardBreak(t *testing.T) {
	tr := perfect7(t)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, slices.Collect(tr.All()))
	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, slices.Collect(tr.Backward()))

	var firstThree []int
	for v := range tr.All() {
		if len(firstThree) == 3 {
			break
		}
		firstThree = append(firstThree, v)
	}
	assert.Equal(t, []int{1, 2, 3}, firstThree)

	// sequences restart on every range
	seq := tr.All()
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
}

func TestIter_Range(t *testing.T) {
	tr := buildInts(t, 1, 3, 5, 7, 9, 11)

	assert.Equal(t, []int{3, 5, 7}, slices.Collect(tr.Range(2, 7)))
	assert.Equal(t, []int{7, 5, 3}, slices.Collect(tr.RangeBackward(2, 7)))
	assert.Equal(t, []int{1, 3, 5, 7, 9, 11}, slices.Collect(tr.Range(-10, 100)))
	assert.Empty(t, slices.Collect(tr.Range(7, 2)))
	assert.Empty(t, slices.Collect(tr.RangeBackward(7, 2)))
	assert.Empty(t, slices.Collect(tr.Range(12, 20)))
	assert.Equal(t, []int{5}, slices.Collect(tr.Range(5, 5)))
}

func TestIter_StructuralOrders(t *testing.T) {
	tr := perfect7(t)

	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, slices.Collect(tr.PreOrder()))
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, slices.Collect(tr.PostOrder()))
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, slices.Collect(tr.LevelOrder()))

	var two []int
	for v := range tr.LevelOrder() {
		two = append(two, v)
		if len(two) == 2 {
			break
		}
	}
	assert.Equal(t, []int{4, 2}, two)
}

func TestIter_PanicsOnMutation(t *testing.T) {
	tr := perfect7(t)
	assert.PanicsWithValue(t, avl.ErrMutatedDuringTraversal, func() {
		for v := range tr.All() {
			_, _ = tr.Insert(v + 100)
		}
	})

	tr = perfect7(t)
	assert.PanicsWithValue(t, avl.ErrMutatedDuringTraversal, func() {
		for v := range tr.PreOrder() {
			tr.Remove(v)
		}
	})

	// breaking right after the mutation is allowed
	tr = perfect7(t)
	assert.NotPanics(t, func() {
		for v := range tr.All() {
			tr.Remove(v)
			break
		}
	})
	assert.Equal(t, 6, tr.Len())
}

func TestWalk_Metadata(t *testing.T) {
	tr := perfect7(t)

	var (
		order  []int
		depths []int
	)
	err := tr.Walk(avl.InOrder, func(n avl.NodeInfo[int]) error {
		order = append(order, n.Element)
		depths = append(depths, n.Depth)
		assert.Equal(t, avl.Balanced, n.Factor)
		assert.Equal(t, 0, n.Balance)
		if n.Element == 4 {
			assert.Equal(t, 3, n.Height)
			assert.Equal(t, 7, n.Size)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, order)
	assert.Equal(t, []int{2, 1, 2, 0, 2, 1, 2}, depths)

	var rev []int
	require.NoError(t, tr.Walk(avl.ReverseInOrder, func(n avl.NodeInfo[int]) error {
		rev = append(rev, n.Element)
		return nil
	}))
	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, rev)

	var post []int
	require.NoError(t, tr.Walk(avl.PostOrder, func(n avl.NodeInfo[int]) error {
		post = append(post, n.Element)
		return nil
	}))
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, post)
}

func TestWalk_StopAndErrors(t *testing.T) {
	tr := perfect7(t)

	seen := 0
	err := tr.Walk(avl.PreOrder, func(avl.NodeInfo[int]) error {
		seen++
		if seen == 3 {
			return avl.ErrStopWalk
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, seen)

	boom := errors.New("boom")
	err = tr.Walk(avl.InOrder, func(n avl.NodeInfo[int]) error {
		if n.Element == 5 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, tr.Walk(avl.InOrder, nil), avl.ErrOptionViolation)
	assert.ErrorIs(t, tr.Walk(avl.TraversalOrder(99), func(avl.NodeInfo[int]) error { return nil }), avl.ErrOptionViolation)

	err = tr.Walk(avl.InOrder, func(n avl.NodeInfo[int]) error {
		_, _ = tr.Insert(n.Element + 100)
		return nil
	})
	assert.ErrorIs(t, err, avl.ErrMutatedDuringTraversal)
}
