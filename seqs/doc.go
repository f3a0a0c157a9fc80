/*
Package seqs provides lazy, iterator-based splitting of slices around
predicate matches, built on Go 1.23+ iterators (iter.Seq).

Two policies are offered:

  - [SplitBefore]: each match begins a new window.
  - [SplitAfter]: each match ends the window it belongs to.

Both yield contiguous, capacity-clipped subslices of the input in order.
Concatenating the yielded windows reconstructs the input exactly; no window
is ever empty, and the input is never mutated.

# Laziness

Windows are produced on demand: the predicate runs during iteration, one
element at a time, and stopping early (breaking out of the range loop)
leaves the rest of the input unexamined. Ranging over the same sequence
again restarts from the beginning.

	for w := range seqs.SplitAfter(lines, isBlank) {
		process(w) // w aliases lines, no copying
	}

For a fully materialized [][]T result, use the sliceutil package instead.

# Predicates

The predicate is assumed to be pure. Predicates that mutate external state
or answer differently for the same element leave the resulting windows
unspecified. A panicking predicate propagates to the caller unmodified.
*/
package seqs
