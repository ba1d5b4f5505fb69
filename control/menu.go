package control

// Menu is the state shared between a control and its dropdown overlay.
//
// The control opens the menu and seeds the hovered option; the overlay moves
// the hover and commits an option when the user picks one. The committed
// option is a one-shot slot the control drains on every press it handles.
type Menu[T comparable] struct {
	open      bool
	hovered   int
	hovering  bool
	committed *T
}

// IsOpen returns true while the dropdown is shown.
func (m *Menu[T]) IsOpen() bool {
	return m.open
}

// Open shows the dropdown with no hovered option.
func (m *Menu[T]) Open() {
	m.open = true
	m.hovering = false
}

// Close hides the dropdown.
func (m *Menu[T]) Close() {
	m.open = false
}

// Hovered returns the hovered option index.
func (m *Menu[T]) Hovered() (int, bool) {
	return m.hovered, m.hovering
}

// Hover marks the option at index as hovered. Negative indices clear it.
func (m *Menu[T]) Hover(index int) {
	if index < 0 {
		m.ClearHover()
		return
	}
	m.hovered = index
	m.hovering = true
}

// ClearHover clears the hovered option.
func (m *Menu[T]) ClearHover() {
	m.hovered = 0
	m.hovering = false
}

// Commit records option as picked by the user. It replaces any option not
// yet taken.
func (m *Menu[T]) Commit(option T) {
	m.committed = &option
}

// Take drains the committed option.
func (m *Menu[T]) Take() (T, bool) {
	if m.committed == nil {
		var zero T
		return zero, false
	}
	option := *m.committed
	m.committed = nil
	return option, true
}
