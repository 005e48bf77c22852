package iterators_test

import (
	"testing"

	"lazyseq/identity"
	"lazyseq/iterators"
)

// BenchmarkSort compares the two sort modes for full drains and for taking a short prefix.
func BenchmarkSort(b *testing.B) {
	less := func(a, b int) bool { return a < b }

	for _, size := range []struct {
		name string
		n    int
	}{
		{"Small", 64},
		{"Large", 4096},
	} {
		input := randomInts(size.n, size.n)
		b.Run(size.name, func(b *testing.B) {
			for mode, opts := range sortModes {
				b.Run(mode+"_Drain", func(b *testing.B) {
					for b.Loop() {
						_ = iterators.Collect(iterators.Sort(iterators.FromSlice(input), less, opts...))
					}
				})

				b.Run(mode+"_Top10", func(b *testing.B) {
					for b.Loop() {
						_ = iterators.Collect(iterators.Cap(iterators.Sort(iterators.FromSlice(input), less, opts...), 10))
					}
				})
			}
		})
	}
}

// BenchmarkSubtract compares the identity strategies on the same workload.
func BenchmarkSubtract(b *testing.B) {
	a := randomInts(2048, 4096)
	other := randomInts(512, 4096)

	for name, strategy := range intStrategies() {
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				for range iterators.Seq(iterators.Subtract(iterators.FromSlice(a), iterators.FromSlice(other), strategy)) {
				}
			}
		})
	}

	b.Run("Digest", func(b *testing.B) {
		strategy := identity.Digest(func(v int) []byte {
			return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
		})
		for b.Loop() {
			for range iterators.Seq(iterators.Subtract(iterators.FromSlice(a), iterators.FromSlice(other), strategy)) {
			}
		}
	})
}
