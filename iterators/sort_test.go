package iterators_test

import (
	"cmp"
	"slices"
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"lazyseq/iterators"
)

type record struct {
	Key   int
	Order int
}

func byKey(a, b record) bool {
	return a.Key < b.Key
}

var sortModes = map[string][]iterators.SortOption{
	"LinkedList": nil,
	"Heap":       {iterators.WithHeap(), iterators.WithSortCapacity(16)},
}

func TestSort(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"Empty", nil, nil},
		{"Single", []int{7}, []int{7}},
		{"Unsorted", []int{5, 2, 9, 1, 5, 6}, []int{1, 2, 5, 5, 6, 9}},
		{"Reversed", []int{4, 3, 2, 1}, []int{1, 2, 3, 4}},
		{"MinimumLast", []int{2, 3, 1}, []int{1, 2, 3}},
	}
	less := func(a, b int) bool { return a < b }
	for mode, opts := range sortModes {
		for _, tt := range tests {
			t.Run(mode+"/"+tt.name, func(t *testing.T) {
				got := iterators.Collect(iterators.Sort(iterators.FromSlice(tt.input), less, opts...))
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestSort_Stable(t *testing.T) {
	// a displaced minimum candidate must not overtake an equal element found after it
	input := []record{{2, 0}, {2, 1}, {1, 2}, {3, 3}, {1, 4}, {2, 5}}
	want := []record{{1, 2}, {1, 4}, {2, 0}, {2, 1}, {2, 5}, {3, 3}}

	for mode, opts := range sortModes {
		t.Run(mode, func(t *testing.T) {
			got := iterators.Collect(iterators.Sort(iterators.FromSlice(input), byKey, opts...))
			assert.Equal(t, want, got)
		})
	}
}

func TestSort_RandomPermutation(t *testing.T) {
	input := make([]record, randomdata.Number(0, 300))
	for i := range input {
		input[i] = record{Key: randomdata.Number(0, 20), Order: i}
	}
	want := slices.Clone(input)
	slices.SortStableFunc(want, func(a, b record) int { return cmp.Compare(a.Key, b.Key) })

	for mode, opts := range sortModes {
		t.Run(mode, func(t *testing.T) {
			got := iterators.Collect(iterators.Sort(iterators.FromSlice(input), byKey, opts...))
			assert.Equal(t, len(input), len(got))
			for i := 1; i < len(got); i++ {
				assert.False(t, byKey(got[i], got[i-1]), "out of order at %d", i)
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestSortFunc(t *testing.T) {
	got := iterators.Collect(iterators.SortFunc(iterators.FromSlice([]string{"pear", "apple", "fig"}), cmp.Compare[string]))
	assert.Equal(t, []string{"apple", "fig", "pear"}, got)
}

func TestSort_IsLazy(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockIntIterator(ctrl)

	// building the adapter pulls nothing
	it := iterators.Sort[int](src, func(a, b int) bool { return a < b })

	gomock.InOrder(
		src.EXPECT().Next().Return(3, true),
		src.EXPECT().Next().Return(1, true),
		src.EXPECT().Next().Return(2, true),
		src.EXPECT().Next().Return(0, false),
	)
	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	// the rest comes from the pending list; upstream is not touched again
	v, _ = it.Next()
	assert.Equal(t, 2, v)
	v, _ = it.Next()
	assert.Equal(t, 3, v)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestSort_NilLessPanics(t *testing.T) {
	assert.Panics(t, func() {
		iterators.Sort[int](iterators.Empty[int](), nil)
	})
}
