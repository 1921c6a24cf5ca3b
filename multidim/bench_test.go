package multidim_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlavl/multidim"
	"github.com/katalvlaran/lvlavl/order"
)

func benchTree(b *testing.B) *multidim.Tree[person, int] {
	b.Helper()
	m, err := multidim.New[person, int](personID,
		multidim.Dim("age", order.By(func(p person) int { return p.Age }, order.WithDuplicates(order.Allow))),
		multidim.Dim("name", order.By(func(p person) string { return p.Name })),
	)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// BenchmarkInsert measures a two-dimension insert of fresh identities.
func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	m := benchTree(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m.Len() == 1<<14 {
			m.Clear()
		}
		_, _ = m.Insert(person{ID: i, Name: fmt.Sprintf("p%08d", i), Age: rng.Intn(100)})
	}
}

// BenchmarkQuery scans a ten-year age band out of 16k members.
func BenchmarkQuery(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	m := benchTree(b)
	for i := 0; i < 1<<14; i++ {
		_, _ = m.Insert(person{ID: i, Name: fmt.Sprintf("p%08d", i), Age: rng.Intn(100)})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, err := multidim.Query(m, 0, 40, 49)
		if err != nil {
			b.Fatal(err)
		}
		for range seq {
		}
	}
}
