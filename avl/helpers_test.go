package avl_test

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlavl/avl"
	"github.com/katalvlaran/lvlavl/order"
)

// ints is shared by every integer tree so that set operations accept them.
var ints = order.Natural[int]()

// item carries a payload next to its key to observe which element a tree keeps.
type item struct {
	Key int
	Tag string
}

var byKey = order.By(func(it item) int { return it.Key })

// buildInts inserts keys one by one into a fresh tree and checks every step.
func buildInts(tb testing.TB, keys ...int) *avl.Tree[int, int] {
	tb.Helper()
	tr, err := avl.New(ints)
	require.NoError(tb, err)
	for _, k := range keys {
		_, err = tr.Insert(k)
		require.NoError(tb, err)
	}
	require.NoError(tb, tr.Validate())

	return tr
}

// randomKeys returns n distinct keys drawn from [0, limit) with a fixed seed.
func randomKeys(seed int64, n, limit int) []int {
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[int]struct{}, n)
	out := make([]int, 0, n)
	for len(out) < n {
		k := rng.Intn(limit)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}

	return out
}

// sortedKeys returns the keys of a set model in ascending order.
func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

func toSet(keys []int) map[int]struct{} {
	m := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}

	return m
}

func reversed[E any](in []E) []E {
	out := slices.Clone(in)
	slices.Reverse(out)

	return out
}
