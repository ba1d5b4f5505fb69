package control

import (
	"github.com/agiangrant/picklist/event"
	"github.com/agiangrant/picklist/textinput"
)

// Interaction is the mouse cursor a host should show over the control.
type Interaction uint8

const (
	InteractionIdle Interaction = iota
	InteractionText
	InteractionPointer
)

func (i Interaction) String() string {
	switch i {
	case InteractionText:
		return "text"
	case InteractionPointer:
		return "pointer"
	default:
		return "idle"
	}
}

// Visuals is everything a renderer needs to draw the control for one frame.
// X coordinates of the caret and selection are relative to the text origin
// before the scroll offset is applied.
type Visuals struct {
	Text        string
	Placeholder bool

	// Caret is drawn when Focused and Selection is false.
	Focused        bool
	Caret          float32
	Selection      bool
	SelectionStart float32
	SelectionEnd   float32

	Offset float32
	Clip   bool

	TextBounds       event.Bounds
	DisclosureBounds event.Bounds
	Open             bool
	Interaction      Interaction
}

// Visuals computes the frame visuals for the control at bounds with the
// mouse at cursor.
func (p *PickList[T]) Visuals(s *State[T], bounds event.Bounds, cursor event.Point, env Env) Visuals {
	v := Visuals{
		TextBounds:       p.TextBounds(bounds),
		DisclosureBounds: p.DisclosureBounds(bounds),
		Open:             s.menu.IsOpen(),
		Focused:          s.focused,
		Interaction:      p.interaction(s, bounds, cursor),
	}

	if p.Variant == VariantSearchable && !s.menu.IsOpen() {
		if p.Selected != nil {
			v.Text = p.OptionLabel(*p.Selected)
		} else {
			v.Text = p.Placeholder
			v.Placeholder = true
		}
		return v
	}

	v.Text = s.value.String()
	if s.value.IsEmpty() {
		v.Text = p.Placeholder
		v.Placeholder = true
	}

	width := p.prefixWidth(s, env)
	visible := p.visibleWidth(bounds)

	if start, end, ok := s.cursor.Selection(s.value); ok && s.focused {
		v.Selection = true
		v.SelectionStart = width(start)
		v.SelectionEnd = width(end)
		v.Offset = textinput.Offset(width, s.focused, s.cursor, s.value, visible)
	} else if s.focused {
		v.Caret, v.Offset = textinput.CaretAndOffset(width, s.cursor.End(s.value), visible)
	}

	v.Clip = width(s.value.Len()) > visible
	return v
}

func (p *PickList[T]) interaction(s *State[T], bounds event.Bounds, cursor event.Point) Interaction {
	switch {
	case !bounds.Contains(cursor):
		return InteractionIdle
	case p.DisclosureBounds(bounds).Contains(cursor):
		return InteractionPointer
	case p.Variant == VariantSearchable && !s.menu.IsOpen():
		return InteractionPointer
	default:
		return InteractionText
	}
}
