package sliceutil

// ==========================================
//  Pure Functions (Happy Path)
// ==========================================

// SplitBefore partitions s into contiguous windows so that every element
// satisfying predicate begins a new window. A match at index 0 starts the
// first window rather than producing a leading empty one.
//
// The windows are subslices of s, not copies: they share its backing array.
// Their capacity is clipped, so appending through a window never overwrites
// elements of s. Concatenating the windows in order reproduces s exactly,
// and no window is empty.
//
// The predicate is called exactly once per element. Predicates that mutate
// external state or return different answers for the same element leave the
// result unspecified.
func SplitBefore[Slice ~[]E, E any](s Slice, predicate func(E) bool) []Slice {
	if len(s) == 0 {
		return []Slice{}
	}
	// BCE hint: avoid bounds check in loop
	_ = s[len(s)-1]

	// Heuristic pre-allocation of capacity
	res := make([]Slice, 0, 4)
	start := 0
	for i, v := range s {
		if predicate(v) && i > start {
			res = append(res, s[start:i:i])
			start = i
		}
	}
	return append(res, s[start:len(s):len(s)])
}

// SplitAfter partitions s into contiguous windows so that every element
// satisfying predicate ends the window it belongs to; the next window
// starts at the following index. A match at the last index closes the final
// window cleanly, with no trailing empty one.
//
// The windows are capacity-clipped subslices of s, as in [SplitBefore], and
// the same round-trip and no-empty-window guarantees hold.
func SplitAfter[Slice ~[]E, E any](s Slice, predicate func(E) bool) []Slice {
	if len(s) == 0 {
		return []Slice{}
	}
	// BCE hint: avoid bounds check in loop
	_ = s[len(s)-1]

	// Heuristic pre-allocation of capacity
	res := make([]Slice, 0, 4)
	start := 0
	for i, v := range s {
		if predicate(v) {
			res = append(res, s[start:i+1:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		res = append(res, s[start:len(s):len(s)])
	}
	return res
}
