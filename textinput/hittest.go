package textinput

// FindCursorPosition returns the index in [0, length] whose caret lies
// nearest to target, where prefixWidth(n) is the pixel width of the first n
// runes. prefixWidth must be non-decreasing in n.
//
// The search probes O(log n) prefixes. target is in text coordinates, so the
// caller adds the scroll offset to the on-screen distance from the text
// origin before calling.
func FindCursorPosition(prefixWidth func(n int) float32, target float32, length int) int {
	if length < 0 {
		length = 0
	}

	start, end := 0, length
	for start < end {
		index := (end - start) / 2
		if prefixWidth(start+index) > target {
			end = start + index
		} else {
			start = start + index + 1
		}
	}

	if start == 0 {
		return 0
	}

	prev := prefixWidth(start - 1)
	next := prefixWidth(start)
	if next-target > target-prev {
		return start - 1
	}
	return start
}
