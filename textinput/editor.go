package textinput

// Editor applies one edit to a Value and its Cursor. It is created for a
// single operation and discarded afterwards.
type Editor struct {
	value  *Value
	cursor *Cursor
}

// NewEditor wraps value and cursor for editing.
func NewEditor(value *Value, cursor *Cursor) *Editor {
	return &Editor{value: value, cursor: cursor}
}

// Contents returns the full text after the edit.
func (e *Editor) Contents() string {
	return e.value.String()
}

// Insert replaces the selection (if any) with r and moves the caret past it.
func (e *Editor) Insert(r rune) {
	e.deleteSelection()
	e.value.Insert(e.cursor.End(*e.value), r)
	e.cursor.MoveRight(*e.value)
}

// Paste replaces the selection (if any) with content and moves the caret to
// the end of the inserted text.
func (e *Editor) Paste(content Value) {
	e.deleteSelection()
	e.value.InsertMany(e.cursor.End(*e.value), content)
	e.cursor.MoveRightByAmount(*e.value, content.Len())
}

// Backspace deletes the selection, or the rune left of the caret.
func (e *Editor) Backspace() {
	if e.deleteSelection() {
		return
	}
	start := e.cursor.Start(*e.value)
	if start > 0 {
		e.cursor.MoveLeft(*e.value)
		e.value.Remove(start - 1)
	}
}

// Delete deletes the selection, or the rune right of the caret.
func (e *Editor) Delete() {
	if e.deleteSelection() {
		return
	}
	end := e.cursor.End(*e.value)
	if end < e.value.Len() {
		e.value.Remove(end)
	}
}

// deleteSelection removes the selected runes and leaves the caret at the
// selection start. It reports whether there was a selection.
func (e *Editor) deleteSelection() bool {
	left, right, ok := e.cursor.Selection(*e.value)
	if !ok {
		return false
	}
	e.cursor.MoveLeft(*e.value)
	e.value.RemoveMany(left, right)
	return true
}
