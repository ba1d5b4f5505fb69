package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/picklist/event"
)

func TestMenuSlot(t *testing.T) {
	var m Menu[int]
	assert.False(t, m.IsOpen())

	m.Hover(2)
	m.Open()
	_, ok := m.Hovered()
	assert.False(t, ok, "open clears hover")

	m.Hover(3)
	i, ok := m.Hovered()
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	m.Hover(-1)
	_, ok = m.Hovered()
	assert.False(t, ok)

	m.Commit(7)
	m.Commit(9)
	v, ok := m.Take()
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	_, ok = m.Take()
	assert.False(t, ok)
}

func TestOverlayRows(t *testing.T) {
	p := newTestPickList("apple", "banana", "cherry")
	o := NewOverlay(p)
	s := openState("")
	s.Menu().Hover(1)

	rows := o.Rows(s.Menu(), testBounds)
	require.Len(t, rows, 3)
	assert.Equal(t, "banana", rows[1].Label)
	assert.True(t, rows[1].Hovered)
	assert.False(t, rows[0].Hovered)
	assert.Equal(t, event.Bounds{X: 0, Y: 54, Width: 200, Height: 24}, rows[1].Bounds)
	assert.Equal(t, event.Bounds{X: 0, Y: 30, Width: 200, Height: 72}, o.Bounds(testBounds))
}

func TestOverlayEmptyMessage(t *testing.T) {
	p := newTestPickList()
	p.OptionsEmptyMessage = "No matches"
	o := NewOverlay(p)
	s := openState("")

	rows := o.Rows(s.Menu(), testBounds)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Placeholder)
	assert.Equal(t, "No matches", rows[0].Label)

	status := o.Update(s.Menu(), pressAt(10, epoch), event.Bounds{X: 0, Y: -20, Width: 200, Height: 30})
	assert.Equal(t, event.Ignored, status)
	_, ok := s.Menu().Take()
	assert.False(t, ok)
}

func TestOverlayHoverAndCommit(t *testing.T) {
	p := newTestPickList("apple", "banana", "cherry")
	o := NewOverlay(p)
	env, _ := newTestEnv()
	s := openState("")

	status := o.Update(s.Menu(), event.PointerMoved{Position: event.Point{X: 10, Y: 85}}, testBounds)
	assert.Equal(t, event.Captured, status)
	hovered, _ := s.Menu().Hovered()
	assert.Equal(t, 2, hovered)

	// Hosts dispatch to the overlay first, then to the control.
	press := event.PointerPressed{Button: event.MouseButtonLeft, Position: event.Point{X: 10, Y: 60}, At: epoch}
	assert.Equal(t, event.Captured, o.Update(s.Menu(), press, testBounds))

	status, msgs := p.Update(s, press, testBounds, env)
	assert.Equal(t, event.Captured, status)
	assert.Equal(t, []Message[string]{Selected("banana")}, msgs)
	assert.False(t, s.IsOpen())
	assert.False(t, s.IsFocused())

	// Closed menus ignore input.
	assert.Equal(t, event.Ignored, o.Update(s.Menu(), press, testBounds))
}

func TestOverlayIgnoresOutsidePress(t *testing.T) {
	o := NewOverlay(newTestPickList("apple"))
	s := openState("")

	status := o.Update(s.Menu(), pressAt(10, epoch), testBounds)
	assert.Equal(t, event.Ignored, status)

	status = o.Update(s.Menu(), event.PointerPressed{
		Button:   event.MouseButtonRight,
		Position: event.Point{X: 10, Y: 40},
	}, testBounds)
	assert.Equal(t, event.Ignored, status)

	_, ok := s.Menu().Take()
	assert.False(t, ok)
}
