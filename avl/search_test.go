package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlavl/avl"
	"github.com/katalvlaran/lvlavl/order"
)

func TestSearch_Queries(t *testing.T) {
	tr := buildInts(t, 10, 20, 30, 40)

	type want struct {
		v  int
		ok bool
	}
	cases := []struct {
		probe int
		q     avl.SearchQuery
		want  want
	}{
		{20, avl.Equality, want{20, true}},
		{25, avl.Equality, want{0, false}},
		{20, avl.NearestLeft, want{20, true}},
		{25, avl.NearestLeft, want{20, true}},
		{5, avl.NearestLeft, want{0, false}},
		{45, avl.NearestLeft, want{40, true}},
		{20, avl.NearestRight, want{20, true}},
		{25, avl.NearestRight, want{30, true}},
		{45, avl.NearestRight, want{0, false}},
		{5, avl.NearestRight, want{10, true}},
		{20, avl.ToLeft, want{10, true}},
		{25, avl.ToLeft, want{20, true}},
		{10, avl.ToLeft, want{0, false}},
		{20, avl.ToRight, want{30, true}},
		{25, avl.ToRight, want{30, true}},
		{40, avl.ToRight, want{0, false}},
		{30, avl.Nearest, want{30, true}},
	}
	for _, c := range cases {
		got, ok := tr.Search(c.probe, c.q)
		assert.Equal(t, c.want.ok, ok, "%s(%d)", c.q, c.probe)
		assert.Equal(t, c.want.v, got, "%s(%d)", c.q, c.probe)
	}

	// without an exact match Nearest lands on a neighbour of the probe
	got, ok := tr.Search(25, avl.Nearest)
	require.True(t, ok)
	assert.Contains(t, []int{20, 30}, got)
	got, ok = tr.Search(-100, avl.Nearest)
	require.True(t, ok)
	assert.Equal(t, 10, got)

	empty := buildInts(t)
	_, ok = empty.Search(1, avl.Nearest)
	assert.False(t, ok)
}

func TestSearch_AgainstLinearScan(t *testing.T) {
	keys := randomKeys(11, 300, 2000)
	tr := buildInts(t, keys...)
	sorted := tr.Export()

	for probe := -5; probe < 2010; probe += 7 {
		floor, hasFloor := 0, false
		ceil, hasCeil := 0, false
		for _, k := range sorted {
			if k <= probe {
				floor, hasFloor = k, true
			}
			if k >= probe && !hasCeil {
				ceil, hasCeil = k, true
			}
		}
		got, ok := tr.Search(probe, avl.NearestLeft)
		require.Equal(t, hasFloor, ok, "floor %d", probe)
		require.Equal(t, floor, got, "floor %d", probe)
		got, ok = tr.Search(probe, avl.NearestRight)
		require.Equal(t, hasCeil, ok, "ceil %d", probe)
		require.Equal(t, ceil, got, "ceil %d", probe)
	}
}

func TestMinMaxAtRank(t *testing.T) {
	tr := buildInts(t, randomKeys(3, 100, 1000)...)
	sorted := tr.Export()

	lo, ok := tr.Min()
	require.True(t, ok)
	hi, ok := tr.Max()
	require.True(t, ok)
	assert.Equal(t, sorted[0], lo)
	assert.Equal(t, sorted[len(sorted)-1], hi)

	for i, k := range sorted {
		got, ok := tr.At(i)
		require.True(t, ok)
		require.Equal(t, k, got)
		require.Equal(t, i, tr.Rank(k))
	}
	_, ok = tr.At(-1)
	assert.False(t, ok)
	_, ok = tr.At(len(sorted))
	assert.False(t, ok)
	assert.Equal(t, 0, tr.Rank(-1))
	assert.Equal(t, len(sorted), tr.Rank(1_000_000))
}

func TestGetContains(t *testing.T) {
	people, err := avl.New(order.By(func(p person) string { return p.Name }))
	require.NoError(t, err)
	for _, p := range []person{{"ann", 31}, {"bob", 25}, {"cid", 40}} {
		_, err = people.Insert(p)
		require.NoError(t, err)
	}

	got, ok := people.Get("bob")
	require.True(t, ok)
	assert.Equal(t, 25, got.Age)
	assert.True(t, people.Contains("cid"))
	assert.False(t, people.Contains("dan"))
	_, ok = people.Get("dan")
	assert.False(t, ok)
}

func TestBalanceFactorOf(t *testing.T) {
	tr := buildInts(t, 1, 2)

	bf, ok := tr.BalanceFactorOf(1)
	require.True(t, ok)
	assert.Equal(t, avl.RightHeavy, bf)
	bf, ok = tr.BalanceFactorOf(2)
	require.True(t, ok)
	assert.Equal(t, avl.Balanced, bf)
	_, ok = tr.BalanceFactorOf(3)
	assert.False(t, ok)
}

type person struct {
	Name string
	Age  int
}
