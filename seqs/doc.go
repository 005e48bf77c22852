/*
Package seqs provides Sequence, a restartable handle over a lazy pipeline.

A Sequence holds a factory rather than a live iterator. Each traversal calls
the factory and gets an independent chain of adapters with its own state, so
the same composed pipeline can be walked any number of times:

	evens := seqs.Range(0, 10, 1).Filter(func(v int) bool { return v%2 == 0 })
	fmt.Println(evens.Collect()) // [0 2 4 6 8]
	fmt.Println(evens.Count())   // 5

Chaining methods cover the operations that keep the element type; functions
such as [Map] and [TryMap] change it. Nothing runs until a terminal operation
([Sequence.Collect], [Sequence.All], [First], [Reduce], ...) pulls elements.

# Sources

A Sequence is only as restartable as its source. [FromSlice] and [Range] are
always restartable; [From] restarts by ranging over the iter.Seq again,
which is fine for most sequences but not for ones that read a stream.

# Errors

Malformed parameters fail when the stage is added, for example
[Sequence.Interpose] with a non-positive interval. [TryMap] and [CompactMap]
drop failing elements instead of reporting them.
*/
package seqs
