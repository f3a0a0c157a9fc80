package seqs

import "iter"

// SplitBefore returns a lazy sequence of contiguous windows of s, started
// anew at every element satisfying predicate. A match at index 0 starts the
// first window rather than producing a leading empty one.
//
// Windows are capacity-clipped subslices of s, yielded in order; each
// element of s appears in exactly one window and no window is empty. The
// predicate is evaluated during iteration, once per element scanned, so
// stopping early leaves the tail of s unexamined.
func SplitBefore[Slice ~[]E, E any](s Slice, predicate func(E) bool) iter.Seq[Slice] {
	return func(yield func(Slice) bool) {
		if len(s) == 0 {
			return
		}
		start := 0
		for i, v := range s {
			if predicate(v) && i > start {
				if !yield(s[start:i:i]) {
					return
				}
				start = i
			}
		}
		yield(s[start:len(s):len(s)])
	}
}

// SplitAfter returns a lazy sequence of contiguous windows of s, each
// closed by an element satisfying predicate; the next window starts at the
// following index. A match at the last index closes the final window with
// no trailing empty one.
//
// Aliasing, ordering, and early-stop behavior are as in [SplitBefore].
func SplitAfter[Slice ~[]E, E any](s Slice, predicate func(E) bool) iter.Seq[Slice] {
	return func(yield func(Slice) bool) {
		start := 0
		for i, v := range s {
			if predicate(v) {
				if !yield(s[start : i+1 : i+1]) {
					return
				}
				start = i + 1
			}
		}
		if start < len(s) {
			yield(s[start:len(s):len(s)])
		}
	}
}
