// Package control implements the searchable pick list: a text field and a
// closed-set option selector sharing one focus and cursor model.
//
// A PickList describes the control for one frame; its State persists across
// frames. Hosts feed every input event to Update, which mutates the State
// and returns the messages the event produced. The dropdown itself is drawn
// and hit-tested by an overlay (see Overlay) that talks to the control
// through the State's Menu.
package control

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/agiangrant/picklist/event"
	"github.com/agiangrant/picklist/textinput"
)

// Variant selects how the control behaves while its dropdown is closed.
type Variant uint8

const (
	// VariantSearchable shows the selected option like a pick list until
	// pressed, then becomes a focused text field with the dropdown open.
	VariantSearchable Variant = iota

	// VariantTextInput is always a text field. The disclosure zone toggles
	// the dropdown.
	VariantTextInput
)

func (v Variant) String() string {
	if v == VariantTextInput {
		return "text_input"
	}
	return "searchable"
}

const (
	// DefaultDisclosureWidth is the width of the trailing zone reserved for
	// the dropdown arrow.
	DefaultDisclosureWidth float32 = 30.0

	// DefaultTextSize is used when PickList.TextSize is zero.
	DefaultTextSize float32 = 14.0
)

// PickList describes a pick list control.
type PickList[T comparable] struct {
	Options  []T
	Selected *T

	// Label renders an option. Defaults to fmt.Sprint.
	Label func(T) string

	Placeholder         string
	OptionsEmptyMessage string

	Variant         Variant
	Padding         event.Padding
	TextSize        float32
	Font            string
	DisclosureWidth float32

	// SelectAllFirstClick makes the first press in the text region after
	// the control gains focus select the whole text.
	SelectAllFirstClick bool

	// Submit enables MessageSubmit on Enter.
	Submit bool
}

// Env carries the host collaborators Update needs.
type Env struct {
	Measurer  textinput.Measurer
	Clipboard Clipboard
	Platform  event.Platform
	Clicks    event.ClickPolicy

	// Now stamps presses that carry no time. Defaults to time.Now.
	Now func() time.Time

	Logger *zerolog.Logger
}

var nopLogger = zerolog.Nop()

var zeroWidth = textinput.MeasureFunc(func(string, float32, string) float32 { return 0 })

func (e Env) logger() *zerolog.Logger {
	if e.Logger == nil {
		return &nopLogger
	}
	return e.Logger
}

func (e Env) measurer() textinput.Measurer {
	if e.Measurer == nil {
		return zeroWidth
	}
	return e.Measurer
}

func (e Env) platform() event.Platform {
	if e.Platform == (event.Platform{}) {
		return event.DefaultPlatform
	}
	return e.Platform
}

func (e Env) clicks() event.ClickPolicy {
	if e.Clicks.Interval == 0 {
		return event.DefaultClickPolicy()
	}
	return e.Clicks
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// OptionLabel returns the display label of option.
func (p *PickList[T]) OptionLabel(option T) string {
	if p.Label != nil {
		return p.Label(option)
	}
	return fmt.Sprint(option)
}

// SelectedIndex returns the index of the selected option in Options.
func (p *PickList[T]) SelectedIndex() (int, bool) {
	if p.Selected == nil {
		return 0, false
	}
	for i, option := range p.Options {
		if option == *p.Selected {
			return i, true
		}
	}
	return 0, false
}

func (p *PickList[T]) textSize() float32 {
	if p.TextSize <= 0 {
		return DefaultTextSize
	}
	return p.TextSize
}

func (p *PickList[T]) disclosureWidth() float32 {
	if p.DisclosureWidth <= 0 {
		return DefaultDisclosureWidth
	}
	return p.DisclosureWidth
}

// TextBounds returns the region the text is drawn in.
func (p *PickList[T]) TextBounds(bounds event.Bounds) event.Bounds {
	return bounds.Shrink(p.Padding)
}

// DisclosureBounds returns the trailing zone that closes the dropdown.
func (p *PickList[T]) DisclosureBounds(bounds event.Bounds) event.Bounds {
	x := bounds.X + bounds.Width - p.Padding.Horizontal() - p.disclosureWidth()
	if x < bounds.X {
		x = bounds.X
	}
	return event.Bounds{X: x, Y: bounds.Y, Width: bounds.X + bounds.Width - x, Height: bounds.Height}
}

// visibleWidth is the width available to text once the disclosure zone is
// reserved.
func (p *PickList[T]) visibleWidth(bounds event.Bounds) float32 {
	w := p.TextBounds(bounds).Width - p.disclosureWidth()
	if w < 0 {
		return 0
	}
	return w
}

func (p *PickList[T]) prefixWidth(s *State[T], env Env) func(int) float32 {
	return textinput.PrefixWidth(env.measurer(), s.value, p.textSize(), p.Font)
}

// findCursorPosition maps target, a distance from the text origin in screen
// space, to a text index.
func (p *PickList[T]) findCursorPosition(s *State[T], target float32, bounds event.Bounds, env Env) int {
	width := p.prefixWidth(s, env)
	offset := textinput.Offset(width, s.focused, s.cursor, s.value, p.visibleWidth(bounds))
	return textinput.FindCursorPosition(textinput.Rounded(width), target+offset, s.value.Len())
}

// ScrollOffset returns the current horizontal scroll of the text.
func (p *PickList[T]) ScrollOffset(s *State[T], bounds event.Bounds, env Env) float32 {
	return textinput.Offset(p.prefixWidth(s, env), s.focused, s.cursor, s.value, p.visibleWidth(bounds))
}

// ============================================================================
// Event Dispatch
// ============================================================================

// Update handles one input event against the control laid out at bounds.
// It returns whether the event was consumed and the messages it produced.
func (p *PickList[T]) Update(s *State[T], ev event.Event, bounds event.Bounds, env Env) (event.Status, []Message[T]) {
	var msgs []Message[T]

	switch e := ev.(type) {
	case event.PointerPressed:
		if e.Button != event.MouseButtonLeft {
			return event.Ignored, nil
		}
		return p.press(s, e.Position, e.At, bounds, env, &msgs), msgs

	case event.TouchPressed:
		return p.press(s, e.Position, e.At, bounds, env, &msgs), msgs

	case event.PointerReleased, event.TouchLifted, event.TouchLost:
		s.dragging = false
		return event.Ignored, nil

	case event.PointerMoved:
		return p.drag(s, e.Position, bounds, env), nil

	case event.TouchMoved:
		return p.drag(s, e.Position, bounds, env), nil

	case event.CharacterTyped:
		return p.typeRune(s, e.Rune, env, &msgs), msgs

	case event.KeyPressed:
		if !s.focused {
			return event.Ignored, nil
		}
		p.keyPressed(s, e.Code, env, &msgs)
		return event.Captured, msgs

	case event.KeyReleased:
		if !s.focused {
			return event.Ignored, nil
		}
		if e.Code == event.KeyV {
			s.pasting = nil
		}
		return event.Captured, nil

	case event.ModifiersChanged:
		if s.focused {
			s.modifiers = e.Modifiers
			s.pasting = nil
		}
		return event.Ignored, nil
	}

	return event.Ignored, nil
}

// press handles a primary press, then lets a committed dropdown option
// override whatever the press did.
func (p *PickList[T]) press(s *State[T], pos event.Point, at time.Time, bounds event.Bounds, env Env, msgs *[]Message[T]) event.Status {
	if at.IsZero() {
		at = env.now()
	}

	status := p.handlePress(s, pos, at, bounds, env)

	if option, ok := s.menu.Take(); ok {
		*msgs = append(*msgs, Selected(option))
		s.menu.Close()
		s.focused = false
		env.logger().Debug().
			Str("option", p.OptionLabel(option)).
			Msg("pick list option committed")
		return event.Captured
	}
	return status
}

func (p *PickList[T]) handlePress(s *State[T], pos event.Point, at time.Time, bounds event.Bounds, env Env) event.Status {
	if !bounds.Contains(pos) {
		if s.menu.IsOpen() {
			env.logger().Debug().Msg("pick list closed by outside press")
		}
		s.menu.Close()
		s.focused = false
		return event.Ignored
	}

	inDisclosure := p.DisclosureBounds(bounds).Contains(pos)

	switch p.Variant {
	case VariantTextInput:
		if inDisclosure {
			if s.menu.IsOpen() {
				p.close(s, env)
			} else {
				p.open(s, env)
			}
			return event.Captured
		}
	default:
		if !s.menu.IsOpen() {
			p.open(s, env)
			return event.Captured
		}
		if inDisclosure {
			p.close(s, env)
			return event.Captured
		}
	}

	p.textPress(s, pos, at, bounds, env)
	return event.Captured
}

// open shows the dropdown with the selected option hovered and focuses the
// control.
func (p *PickList[T]) open(s *State[T], env Env) {
	s.menu.Open()
	if i, ok := p.SelectedIndex(); ok {
		s.menu.Hover(i)
	}
	p.gainFocus(s)
	env.logger().Debug().
		Int("options", len(p.Options)).
		Msg("pick list opened")
}

func (p *PickList[T]) close(s *State[T], env Env) {
	s.menu.Close()
	s.focused = false
	env.logger().Debug().Msg("pick list closed")
}

// gainFocus focuses the control and arms select-all-on-first-click for the
// new focus session.
func (p *PickList[T]) gainFocus(s *State[T]) {
	if !s.focused && p.SelectAllFirstClick {
		s.firstClick = true
	}
	s.focused = true
}

// textPress places the caret or selects text for a press in the text region.
func (p *PickList[T]) textPress(s *State[T], pos event.Point, at time.Time, bounds event.Bounds, env Env) {
	p.gainFocus(s)

	target := pos.X - p.TextBounds(bounds).X
	click := event.NewClick(pos, at, s.lastClick, env.clicks())

	switch click.Kind {
	case event.ClickSingle:
		switch {
		case target <= 0:
			s.cursor.MoveTo(0)
			s.dragging = true
		case p.SelectAllFirstClick && s.firstClick:
			s.cursor.SelectAll(s.value)
			s.firstClick = false
		default:
			s.cursor.MoveTo(p.findCursorPosition(s, target, bounds, env))
			s.dragging = true
		}

	case event.ClickDouble:
		position := p.findCursorPosition(s, target, bounds, env)
		s.cursor.SelectRange(
			s.value.PreviousStartOfWord(position),
			s.value.NextEndOfWord(position),
		)
		s.dragging = false

	case event.ClickTriple:
		s.cursor.SelectAll(s.value)
		s.dragging = false
	}

	s.lastClick = &click
}

// drag extends the selection from its anchor while a drag is in progress.
func (p *PickList[T]) drag(s *State[T], pos event.Point, bounds event.Bounds, env Env) event.Status {
	if !s.dragging {
		return event.Ignored
	}

	target := pos.X - p.TextBounds(bounds).X
	if target > 0 {
		position := p.findCursorPosition(s, target, bounds, env)
		s.cursor.SelectRange(s.cursor.Start(s.value), position)
	}
	return event.Captured
}
