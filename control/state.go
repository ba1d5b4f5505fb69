package control

import (
	"github.com/agiangrant/picklist/event"
	"github.com/agiangrant/picklist/textinput"
)

// State is the per-instance state of a pick list control. It lives as long
// as the widget instance and is mutated only by PickList.Update and the
// helpers below.
//
// A State is not safe for concurrent use; hosts dispatch one event at a time.
type State[T comparable] struct {
	value  textinput.Value
	cursor textinput.Cursor
	menu   Menu[T]

	focused  bool
	dragging bool

	// Content cached while the paste shortcut repeats, so the clipboard is
	// read once per key press.
	pasting *textinput.Value

	lastClick  *event.Click
	modifiers  event.Modifiers
	firstClick bool
}

// NewState creates an unfocused State holding text.
func NewState[T comparable](text string) *State[T] {
	return &State[T]{value: textinput.NewValue(text)}
}

// NewFocusedState creates a focused State holding text.
func NewFocusedState[T comparable](text string) *State[T] {
	s := NewState[T](text)
	s.focused = true
	return s
}

// Text returns the current text.
func (s *State[T]) Text() string {
	return s.value.String()
}

// Value returns the current text as a Value.
func (s *State[T]) Value() textinput.Value {
	return s.value
}

// SetText replaces the text. The cursor is clamped to the new length on its
// next use.
func (s *State[T]) SetText(text string) {
	s.value = textinput.NewValue(text)
}

// Cursor returns the cursor.
func (s *State[T]) Cursor() textinput.Cursor {
	return s.cursor
}

// Menu returns the dropdown state shared with the overlay.
func (s *State[T]) Menu() *Menu[T] {
	return &s.menu
}

// IsOpen returns true while the dropdown is shown.
func (s *State[T]) IsOpen() bool {
	return s.menu.IsOpen()
}

// IsFocused returns whether the control has keyboard focus.
func (s *State[T]) IsFocused() bool {
	return s.focused
}

// IsDragging returns whether a drag selection is in progress.
func (s *State[T]) IsDragging() bool {
	return s.dragging
}

// IsPasting returns whether the paste shortcut is held.
func (s *State[T]) IsPasting() bool {
	return s.pasting != nil
}

// Modifiers returns the tracked modifier keys.
func (s *State[T]) Modifiers() event.Modifiers {
	return s.modifiers
}

// Focus gives the control keyboard focus.
func (s *State[T]) Focus() {
	s.focused = true
}

// Unfocus removes keyboard focus.
func (s *State[T]) Unfocus() {
	s.focused = false
}

// MoveCursorToFront moves the caret to the start of the text.
func (s *State[T]) MoveCursorToFront() {
	s.cursor.MoveTo(0)
}

// MoveCursorToEnd moves the caret to the end of the text.
func (s *State[T]) MoveCursorToEnd() {
	s.cursor.MoveTo(textinput.End)
}

// MoveCursorTo moves the caret to position.
func (s *State[T]) MoveCursorTo(position int) {
	s.cursor.MoveTo(position)
}

// SelectAll selects the whole text.
func (s *State[T]) SelectAll() {
	s.cursor.SelectRange(0, textinput.End)
}

// SelectedText returns the selected text, or "" without a selection.
func (s *State[T]) SelectedText() string {
	start, end, ok := s.cursor.Selection(s.value)
	if !ok {
		return ""
	}
	return s.value.Select(start, end).String()
}

// editor returns an Editor over the state's value and cursor.
func (s *State[T]) editor() *textinput.Editor {
	return textinput.NewEditor(&s.value, &s.cursor)
}
