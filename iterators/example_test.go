package iterators_test

import (
	"fmt"
	"strconv"

	"lazyseq/identity"
	"lazyseq/iterators"
)

func ExampleSort() {
	src := iterators.FromSlice([]int{5, 1, 4, 1, 3})
	it := iterators.Sort(
		iterators.Unique(src, identity.Hashed[int]()),
		func(a, b int) bool { return a < b },
	)
	fmt.Println(iterators.Collect(it))

	// Output:
	// [1 3 4 5]
}

func ExampleTryMap() {
	words := iterators.FromSlice([]string{"1", "two", "3"})
	// "two" fails to parse and is skipped
	fmt.Println(iterators.Collect(iterators.TryMap(words, strconv.Atoi)))

	// Output:
	// [1 3]
}

func ExampleInterpose() {
	it, err := iterators.Interpose(iterators.FromSlice([]int{1, 2, 3, 4}), 2, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(iterators.Collect(it))

	_, err = iterators.Interpose(iterators.FromSlice([]int{1}), 0, 0)
	fmt.Println(err)

	// Output:
	// [1 2 0 3 4 0]
	// interpose every 0 elements: invalid interval
}
