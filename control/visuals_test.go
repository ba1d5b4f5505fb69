package control

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/picklist/event"
)

func TestVisualsClosedSearchable(t *testing.T) {
	p := newTestPickList("apple", "banana")
	env, _ := newTestEnv()
	s := NewState[string]("ban")
	mouse := event.Point{X: 50, Y: 15}

	v := p.Visuals(s, testBounds, mouse, env)
	assert.Equal(t, "Pick one", v.Text)
	assert.True(t, v.Placeholder)
	assert.Equal(t, InteractionPointer, v.Interaction)

	p.Selected = ptr("banana")
	v = p.Visuals(s, testBounds, mouse, env)
	assert.Equal(t, "banana", v.Text)
	assert.False(t, v.Placeholder)
}

func TestVisualsOpen(t *testing.T) {
	p := newTestPickList("apple")
	env, _ := newTestEnv()
	s := openState("abcdefghijklmnopqrst")
	s.MoveCursorToEnd()

	v := p.Visuals(s, testBounds, event.Point{X: 50, Y: 15}, env)
	assert.Equal(t, "abcdefghijklmnopqrst", v.Text)
	assert.True(t, v.Open)
	assert.Equal(t, float32(200), v.Caret)
	assert.Equal(t, float32(45), v.Offset)
	assert.True(t, v.Clip)
	assert.False(t, v.Selection)
	assert.Equal(t, InteractionText, v.Interaction)

	s.cursor.SelectRange(2, 4)
	v = p.Visuals(s, testBounds, event.Point{X: 170, Y: 15}, env)
	assert.True(t, v.Selection)
	assert.Equal(t, float32(20), v.SelectionStart)
	assert.Equal(t, float32(40), v.SelectionEnd)
	assert.Zero(t, v.Offset)
	assert.Equal(t, InteractionPointer, v.Interaction)
}

func TestVisualsEmptyShowsPlaceholder(t *testing.T) {
	p := newTestPickList()
	p.Variant = VariantTextInput
	env, _ := newTestEnv()
	s := NewState[string]("")

	v := p.Visuals(s, testBounds, event.Point{X: 500, Y: 15}, env)
	assert.Equal(t, "Pick one", v.Text)
	assert.True(t, v.Placeholder)
	assert.False(t, v.Clip)
	assert.Equal(t, InteractionIdle, v.Interaction)
}
