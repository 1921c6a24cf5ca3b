package order_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlavl/order"
)

type person struct {
	Age  int
	Name string
}

func TestNew_Errors(t *testing.T) {
	_, err := order.New[person, int](nil, func(a, b int) int { return a - b })
	assert.ErrorIs(t, err, order.ErrNilKeyFunc)

	_, err = order.New[person, int](func(p person) int { return p.Age }, nil)
	assert.ErrorIs(t, err, order.ErrNilCompare)

	_, err = order.New(
		func(p person) int { return p.Age },
		func(a, b int) int { return a - b },
		order.WithDuplicates(order.DuplicatePolicy(42)),
	)
	assert.ErrorIs(t, err, order.ErrOptionViolation)
}

func TestOrdering_CompareByKey(t *testing.T) {
	byName, err := order.New(func(p person) string { return p.Name }, strings.Compare, order.WithName("name"))
	require.NoError(t, err)

	bob := person{Age: 30, Name: "bob"}
	amy := person{Age: 25, Name: "amy"}

	assert.Equal(t, order.Greater, byName.Compare(bob, amy))
	assert.Equal(t, order.Less, byName.Compare(amy, bob))
	assert.Equal(t, order.Equal, byName.Compare(bob, bob))
	assert.Equal(t, order.Less, byName.CompareTo(amy, "bob"))
	assert.Equal(t, "bob", byName.KeyOf(bob))
	assert.Equal(t, "name", byName.Name())
	assert.Equal(t, order.Replace, byName.Duplicates())
}

func TestOrdering_NaturalAndBy(t *testing.T) {
	n := order.Natural[int]()
	assert.Equal(t, order.Less, n.CompareKeys(1, 2))
	assert.Equal(t, order.Equal, n.CompareKeys(7, 7))

	byAge := order.By(func(p person) int { return p.Age }, order.WithDuplicates(order.Allow))
	assert.Equal(t, order.Allow, byAge.Duplicates())
	assert.Equal(t, order.Greater, byAge.Compare(person{Age: 40}, person{Age: 3}))
}

func TestOrdering_ReverseKeepsPolicy(t *testing.T) {
	n := order.Natural[int](order.WithDuplicates(order.Reject), order.WithName("n"))
	r := n.Reverse()

	assert.NotSame(t, n, r)
	assert.Equal(t, order.Greater, r.CompareKeys(1, 2))
	assert.Equal(t, order.Reject, r.Duplicates())
	assert.Equal(t, "n", r.Name())
	// the receiver is untouched
	assert.Equal(t, order.Less, n.CompareKeys(1, 2))
}

func TestOrdering_WithPolicy(t *testing.T) {
	n := order.Natural[string]()
	a, err := n.WithPolicy(order.Allow)
	require.NoError(t, err)
	assert.Equal(t, order.Allow, a.Duplicates())
	assert.Equal(t, order.Replace, n.Duplicates())

	_, err = n.WithPolicy(order.DuplicatePolicy(-1))
	assert.ErrorIs(t, err, order.ErrOptionViolation)
}

func TestResult_FromIntAndString(t *testing.T) {
	cases := []struct {
		in   int
		want order.Result
		str  string
	}{
		{-17, order.Less, "Less"},
		{0, order.Equal, "Equal"},
		{3, order.Greater, "Greater"},
	}
	for _, c := range cases {
		got := order.FromInt(c.in)
		assert.Equal(t, c.want, got)
		assert.Equal(t, c.str, got.String())
	}
	assert.Equal(t, "Result(9)", order.Result(9).String())
	assert.Equal(t, "Allow", order.Allow.String())
	assert.Equal(t, "DuplicatePolicy(7)", order.DuplicatePolicy(7).String())
}

func TestOrdering_String(t *testing.T) {
	assert.Equal(t, "Ordering(Replace)", order.Natural[int]().String())
	assert.Equal(t, "Ordering(age, Reject)",
		order.Natural[int](order.WithName("age"), order.WithDuplicates(order.Reject)).String())
}
