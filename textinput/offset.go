package textinput

// ScrollMargin keeps the caret off the clipping edge when text overflows.
const ScrollMargin float32 = 5.0

// Offset returns the horizontal scroll that keeps the focus position visible.
// It is zero when the control is unfocused.
func Offset(prefixWidth func(n int) float32, focused bool, cursor Cursor, value Value, visibleWidth float32) float32 {
	if !focused {
		return 0
	}
	_, offset := CaretAndOffset(prefixWidth, cursor.End(value), visibleWidth)
	return offset
}

// CaretAndOffset returns the pixel position of the caret at index and the
// scroll offset needed to keep it visible.
func CaretAndOffset(prefixWidth func(n int) float32, index int, visibleWidth float32) (caret, offset float32) {
	caret = prefixWidth(index)
	offset = caret + ScrollMargin - visibleWidth
	if offset < 0 {
		offset = 0
	}
	return caret, offset
}
