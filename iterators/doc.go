/*
Package iterators implements lazy, pull-based sequence adapters.

An [Iterator] produces one element per Next call and reports exhaustion with
ok == false. Adapters wrap one or two upstream iterators and do their work only
when pulled, so a chain of them costs about the same as a single hand-written
loop:

	src := iterators.FromSlice([]int{5, 1, 4, 1, 3})
	it := iterators.Sort(
		iterators.Unique(src, identity.Hashed[int]()),
		func(a, b int) bool { return a < b },
	)
	defer iterators.Stop(it)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fmt.Println(v) // 1 3 4 5
	}

Iterators are single pass. To traverse a pipeline more than once, keep a
factory around instead (see [Iterable] and the seqs package).

# Buffering

Only three adapter kinds keep state beyond their upstream references:
the set relationships ([Unique], [Subtract], [Intersect],
[SymmetricDifference]) grow a membership set as they pull, and [Sort] holds
the remaining elements in a linked list or heap.

# Errors

Malformed parameters are reported when the adapter is constructed
([ErrInvalidInterval]). Per-element failures inside [TryMap] and [CompactMap]
drop the element and never reach the consumer: a TryMap whose transform fails
for every element yields an empty sequence.

# Resources

Iterators built from an iter.Seq with [FromSeq] hold a coroutine until they
are exhausted or stopped. Every adapter forwards [Stop] to its upstream
iterators, so stopping the outermost adapter releases the whole chain.
*/
package iterators
