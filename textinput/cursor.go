package textinput

import "math"

// End is the sentinel position meaning "the end of the value". Every cursor
// operation clamps it to the value's length.
const End = math.MaxInt

// Cursor is the caret or selection over a Value.
//
// The selection anchor is start and the moving end is end; they may be in
// either order. When start == end the cursor is a plain caret (Index).
// Positions are stored unclamped and clamped on every read, so a cursor
// stays valid while the value it indexes shrinks.
type Cursor struct {
	start int
	end   int
}

// CursorState is a cursor clamped to a specific Value.
type CursorState struct {
	Start int // Anchor
	End   int // Moving end, the focus position
}

// IsSelection returns true if the state spans at least one rune.
func (s CursorState) IsSelection() bool {
	return s.Start != s.End
}

// Index returns the caret position. For a selection it is the moving end.
func (s CursorState) Index() int {
	return s.End
}

// State returns the cursor clamped to value.
func (c Cursor) State(value Value) CursorState {
	return CursorState{
		Start: value.clamp(c.start),
		End:   value.clamp(c.end),
	}
}

// Selection returns the normalized selection range. ok is false for a caret
// or an empty selection.
func (c Cursor) Selection(value Value) (start, end int, ok bool) {
	s := c.State(value)
	if !s.IsSelection() {
		return 0, 0, false
	}
	return min(s.Start, s.End), max(s.Start, s.End), true
}

// Start returns the selection anchor (or the caret).
func (c Cursor) Start(value Value) int {
	return value.clamp(c.start)
}

// End returns the moving end of the selection (or the caret).
func (c Cursor) End(value Value) int {
	return value.clamp(c.end)
}

// Left returns the leftmost position of the cursor.
func (c Cursor) Left(value Value) int {
	s := c.State(value)
	return min(s.Start, s.End)
}

// Right returns the rightmost position of the cursor.
func (c Cursor) Right(value Value) int {
	s := c.State(value)
	return max(s.Start, s.End)
}

// MoveTo places the caret at position, clearing any selection.
func (c *Cursor) MoveTo(position int) {
	if position < 0 {
		position = 0
	}
	c.start = position
	c.end = position
}

// MoveLeft moves the caret one rune left, or collapses a selection to its
// left edge.
func (c *Cursor) MoveLeft(value Value) {
	s := c.State(value)
	switch {
	case s.IsSelection():
		c.MoveTo(min(s.Start, s.End))
	case s.End > 0:
		c.MoveTo(s.End - 1)
	default:
		c.MoveTo(0)
	}
}

// MoveRight moves the caret one rune right, or collapses a selection to its
// right edge.
func (c *Cursor) MoveRight(value Value) {
	c.MoveRightByAmount(value, 1)
}

// MoveRightByAmount moves the caret amount runes right, or collapses a
// selection to its right edge.
func (c *Cursor) MoveRightByAmount(value Value, amount int) {
	s := c.State(value)
	if s.IsSelection() {
		c.MoveTo(max(s.Start, s.End))
		return
	}
	c.MoveTo(value.clamp(s.End + amount))
}

// MoveLeftByWords moves the caret to the start of the previous word.
func (c *Cursor) MoveLeftByWords(value Value) {
	c.MoveTo(value.PreviousStartOfWord(c.Left(value)))
}

// MoveRightByWords moves the caret to the end of the next word.
func (c *Cursor) MoveRightByWords(value Value) {
	c.MoveTo(value.NextEndOfWord(c.Right(value)))
}

// SelectRange selects from anchor to moving. Equal positions give a caret.
func (c *Cursor) SelectRange(anchor, moving int) {
	if anchor < 0 {
		anchor = 0
	}
	if moving < 0 {
		moving = 0
	}
	c.start = anchor
	c.end = moving
}

// SelectLeft extends the moving end one rune left.
func (c *Cursor) SelectLeft(value Value) {
	s := c.State(value)
	if s.End > 0 {
		c.SelectRange(s.Start, s.End-1)
	}
}

// SelectRight extends the moving end one rune right.
func (c *Cursor) SelectRight(value Value) {
	s := c.State(value)
	if s.End < value.Len() {
		c.SelectRange(s.Start, s.End+1)
	}
}

// SelectLeftByWords extends the moving end to the start of the previous word.
func (c *Cursor) SelectLeftByWords(value Value) {
	s := c.State(value)
	c.SelectRange(s.Start, value.PreviousStartOfWord(s.End))
}

// SelectRightByWords extends the moving end to the end of the next word.
func (c *Cursor) SelectRightByWords(value Value) {
	s := c.State(value)
	c.SelectRange(s.Start, value.NextEndOfWord(s.End))
}

// SelectAll selects the whole value.
func (c *Cursor) SelectAll(value Value) {
	c.SelectRange(0, value.Len())
}
