package control

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/picklist/event"
	"github.com/agiangrant/picklist/textinput"
)

// monospace measures every rune as 10px wide.
var monospace = textinput.MeasureFunc(func(text string, size float32, font string) float32 {
	return float32(len([]rune(text))) * 10
})

// Control at (0,0) 200x30 with 5px padding: text starts at x=5, the
// disclosure zone starts at x=160 and 160px of text are visible.
var testBounds = event.Bounds{X: 0, Y: 0, Width: 200, Height: 30}

var testPadding = event.Padding{Top: 5, Right: 5, Bottom: 5, Left: 5}

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestPickList(options ...string) *PickList[string] {
	return &PickList[string]{
		Options:     options,
		Placeholder: "Pick one",
		Padding:     testPadding,
	}
}

func newTestEnv() (Env, *MemoryClipboard) {
	clip := &MemoryClipboard{}
	return Env{
		Measurer:  monospace,
		Clipboard: clip,
		Platform:  event.DefaultPlatform,
	}, clip
}

// textX returns the screen x of the caret before rune i.
func textX(i int) float32 {
	return testPadding.Left + float32(i)*10
}

func pressAt(x float32, at time.Time) event.PointerPressed {
	return event.PointerPressed{
		Button:   event.MouseButtonLeft,
		Position: event.Point{X: x, Y: 15},
		At:       at,
	}
}

// openState returns a focused state with the menu open, as after the first
// press on a closed searchable control.
func openState(text string) *State[string] {
	s := NewFocusedState[string](text)
	s.Menu().Open()
	return s
}

func TestPressClosedOpensMenu(t *testing.T) {
	tests := []struct {
		name        string
		selected    *string
		wantHovered int
		wantHover   bool
	}{
		{name: "with selection", selected: ptr("banana"), wantHovered: 1, wantHover: true},
		{name: "without selection", selected: nil, wantHover: false},
		{name: "selection not in options", selected: ptr("durian"), wantHover: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPickList("apple", "banana", "cherry")
			p.Selected = tt.selected
			env, _ := newTestEnv()
			s := NewState[string]("")

			status, msgs := p.Update(s, pressAt(50, epoch), testBounds, env)

			assert.Equal(t, event.Captured, status)
			assert.Empty(t, msgs)
			assert.True(t, s.IsOpen())
			assert.True(t, s.IsFocused())
			hovered, ok := s.Menu().Hovered()
			assert.Equal(t, tt.wantHover, ok)
			if tt.wantHover {
				assert.Equal(t, tt.wantHovered, hovered)
			}
		})
	}
}

func TestPressOutsideClosesAndUnfocuses(t *testing.T) {
	p := newTestPickList("apple")
	env, _ := newTestEnv()
	s := openState("app")

	status, msgs := p.Update(s, pressAt(250, epoch), testBounds, env)

	assert.Equal(t, event.Ignored, status)
	assert.Empty(t, msgs)
	assert.False(t, s.IsOpen())
	assert.False(t, s.IsFocused())
}

func TestPressDisclosureClosesOpenMenu(t *testing.T) {
	p := newTestPickList("apple")
	env, _ := newTestEnv()
	s := openState("app")

	status, _ := p.Update(s, pressAt(170, epoch), testBounds, env)

	assert.Equal(t, event.Captured, status)
	assert.False(t, s.IsOpen())
	assert.False(t, s.IsFocused())
}

func TestCommittedOptionOverridesPress(t *testing.T) {
	tests := []struct {
		name string
		x    float32
	}{
		{name: "inside text", x: textX(2)},
		{name: "disclosure", x: 170},
		{name: "outside", x: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPickList("apple", "banana")
			env, _ := newTestEnv()
			s := openState("ban")
			s.Menu().Commit("banana")

			status, msgs := p.Update(s, pressAt(tt.x, epoch), testBounds, env)

			assert.Equal(t, event.Captured, status)
			require.Len(t, msgs, 1)
			assert.Equal(t, Selected("banana"), msgs[0])
			assert.False(t, s.IsOpen())
			assert.False(t, s.IsFocused())

			_, pending := s.Menu().Take()
			assert.False(t, pending)
		})
	}
}

func TestNonPrimaryPressIgnored(t *testing.T) {
	p := newTestPickList("apple")
	env, _ := newTestEnv()
	s := NewState[string]("")
	s.Menu().Commit("apple")

	status, msgs := p.Update(s, event.PointerPressed{
		Button:   event.MouseButtonRight,
		Position: event.Point{X: 50, Y: 15},
	}, testBounds, env)

	assert.Equal(t, event.Ignored, status)
	assert.Empty(t, msgs)
	assert.False(t, s.IsOpen())
}

func TestSingleClickPlacesCaret(t *testing.T) {
	p := newTestPickList()
	env, _ := newTestEnv()
	s := openState("hello")

	status, _ := p.Update(s, pressAt(textX(2)+3, epoch), testBounds, env)

	assert.Equal(t, event.Captured, status)
	assert.Equal(t, textinput.CursorState{Start: 2, End: 2}, s.Cursor().State(s.Value()))
	assert.True(t, s.IsDragging())
}

func TestPressLeftOfTextMovesToFront(t *testing.T) {
	p := newTestPickList()
	env, _ := newTestEnv()
	s := openState("hello")
	s.MoveCursorToEnd()

	p.Update(s, pressAt(2, epoch), testBounds, env)

	assert.Equal(t, 0, s.Cursor().State(s.Value()).Index())
	assert.True(t, s.IsDragging())
}

func TestDoubleClickSelectsWord(t *testing.T) {
	p := newTestPickList()
	env, _ := newTestEnv()
	s := openState("foo bar")

	x := textX(5) + 2
	p.Update(s, pressAt(x, epoch), testBounds, env)
	p.Update(s, event.PointerReleased{Button: event.MouseButtonLeft}, testBounds, env)
	p.Update(s, pressAt(x, epoch.Add(100*time.Millisecond)), testBounds, env)

	start, end, ok := s.Cursor().Selection(s.Value())
	require.True(t, ok)
	assert.Equal(t, 4, start)
	assert.Equal(t, 7, end)
	assert.Equal(t, "bar", s.SelectedText())
	assert.False(t, s.IsDragging())
}

func TestTripleClickSelectsAll(t *testing.T) {
	p := newTestPickList()
	env, _ := newTestEnv()
	s := openState("foo bar")

	x := textX(1)
	for i := 0; i < 3; i++ {
		p.Update(s, pressAt(x, epoch.Add(time.Duration(i)*100*time.Millisecond)), testBounds, env)
	}

	assert.Equal(t, "foo bar", s.SelectedText())
}

func TestSlowClicksStaySingle(t *testing.T) {
	p := newTestPickList()
	env, _ := newTestEnv()
	s := openState("foo bar")

	x := textX(5)
	p.Update(s, pressAt(x, epoch), testBounds, env)
	p.Update(s, pressAt(x, epoch.Add(time.Second)), testBounds, env)

	assert.Empty(t, s.SelectedText())
	assert.Equal(t, 5, s.Cursor().State(s.Value()).Index())
}

func TestDragExtendsSelection(t *testing.T) {
	p := newTestPickList()
	env, _ := newTestEnv()
	s := openState("hello world")

	p.Update(s, pressAt(textX(1), epoch), testBounds, env)
	status, _ := p.Update(s, event.PointerMoved{Position: event.Point{X: textX(5), Y: 15}}, testBounds, env)
	assert.Equal(t, event.Captured, status)
	assert.Equal(t, "ello", s.SelectedText())

	// Moves left of the text origin keep the selection.
	p.Update(s, event.PointerMoved{Position: event.Point{X: 0, Y: 15}}, testBounds, env)
	assert.Equal(t, "ello", s.SelectedText())

	p.Update(s, event.PointerReleased{Button: event.MouseButtonLeft}, testBounds, env)
	assert.False(t, s.IsDragging())

	status, _ = p.Update(s, event.PointerMoved{Position: event.Point{X: textX(8), Y: 15}}, testBounds, env)
	assert.Equal(t, event.Ignored, status)
	assert.Equal(t, "ello", s.SelectedText())
}

func TestTouchDrivesPress(t *testing.T) {
	p := newTestPickList()
	env, _ := newTestEnv()
	env.Now = func() time.Time { return epoch }
	s := openState("hello")

	status, _ := p.Update(s, event.TouchPressed{Position: event.Point{X: textX(3), Y: 15}}, testBounds, env)
	assert.Equal(t, event.Captured, status)
	assert.Equal(t, 3, s.Cursor().State(s.Value()).Index())

	p.Update(s, event.TouchMoved{Position: event.Point{X: textX(5), Y: 15}}, testBounds, env)
	assert.Equal(t, "lo", s.SelectedText())

	p.Update(s, event.TouchLost{}, testBounds, env)
	assert.False(t, s.IsDragging())
}

func TestSelectAllFirstClick(t *testing.T) {
	p := newTestPickList()
	p.SelectAllFirstClick = true
	env, _ := newTestEnv()
	s := NewState[string]("hello")

	// Opening press focuses and arms the mode.
	p.Update(s, pressAt(textX(1), epoch), testBounds, env)
	require.True(t, s.IsFocused())

	p.Update(s, pressAt(textX(2), epoch.Add(time.Second)), testBounds, env)
	assert.Equal(t, "hello", s.SelectedText())
	assert.False(t, s.IsDragging())

	// Disarmed for the rest of the focus session.
	p.Update(s, pressAt(textX(2), epoch.Add(2*time.Second)), testBounds, env)
	assert.Empty(t, s.SelectedText())
	assert.Equal(t, 2, s.Cursor().State(s.Value()).Index())
}

func TestTextInputVariant(t *testing.T) {
	p := newTestPickList("apple", "banana")
	p.Variant = VariantTextInput
	p.Selected = ptr("apple")
	env, _ := newTestEnv()
	s := NewState[string]("hello")

	// Text presses edit without opening the menu.
	p.Update(s, pressAt(textX(2), epoch), testBounds, env)
	assert.False(t, s.IsOpen())
	assert.True(t, s.IsFocused())
	assert.Equal(t, 2, s.Cursor().State(s.Value()).Index())

	// The disclosure zone toggles the menu.
	p.Update(s, pressAt(170, epoch.Add(time.Second)), testBounds, env)
	assert.True(t, s.IsOpen())
	hovered, ok := s.Menu().Hovered()
	assert.True(t, ok)
	assert.Equal(t, 0, hovered)

	p.Update(s, pressAt(textX(4), epoch.Add(2*time.Second)), testBounds, env)
	assert.True(t, s.IsOpen())
	assert.Equal(t, 4, s.Cursor().State(s.Value()).Index())

	p.Update(s, pressAt(170, epoch.Add(3*time.Second)), testBounds, env)
	assert.False(t, s.IsOpen())
	assert.False(t, s.IsFocused())
}

func TestScrollOffset(t *testing.T) {
	p := newTestPickList()
	env, _ := newTestEnv()

	// 20 runes, 200px of text in a 160px window.
	s := NewState[string]("abcdefghijklmnopqrst")
	s.MoveCursorToEnd()
	assert.Zero(t, p.ScrollOffset(s, testBounds, env))

	s.Focus()
	assert.Equal(t, float32(45), p.ScrollOffset(s, testBounds, env))

	s.MoveCursorToFront()
	assert.Zero(t, p.ScrollOffset(s, testBounds, env))
}

func TestHitTestAccountsForScroll(t *testing.T) {
	p := newTestPickList()
	env, _ := newTestEnv()
	s := openState("abcdefghijklmnopqrst")
	s.MoveCursorToEnd()

	// Offset 45: screen x 5 shows text x 45.
	p.Update(s, pressAt(textX(0)+1, epoch), testBounds, env)
	assert.Equal(t, 5, s.Cursor().State(s.Value()).Index())
}

func TestStateHelpers(t *testing.T) {
	s := NewState[string]("hello")
	assert.False(t, s.IsFocused())
	assert.Equal(t, "hello", s.Text())

	s.SelectAll()
	assert.Equal(t, "hello", s.SelectedText())

	s.MoveCursorTo(3)
	assert.Empty(t, s.SelectedText())

	s.SetText("hi")
	assert.Equal(t, 2, s.Cursor().State(s.Value()).Index())

	assert.True(t, NewFocusedState[int]("").IsFocused())
}

func TestStateValueSurvivesEdits(t *testing.T) {
	p := newTestPickList()
	env, _ := newTestEnv()
	s := NewFocusedState[string]("hello")
	s.MoveCursorTo(1)

	before := s.Value()
	p.Update(s, key(event.KeyBackspace), testBounds, env)

	assert.Equal(t, "hello", before.String())
	assert.Equal(t, "ello", s.Text())
}

func ptr[T any](v T) *T {
	return &v
}
