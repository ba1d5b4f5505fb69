package control

import (
	"github.com/agiangrant/picklist/event"
)

// DefaultRowHeight is the height of one overlay row when Overlay.RowHeight
// is zero.
const DefaultRowHeight float32 = 24.0

// Overlay is a minimal dropdown list that drives a Menu. Rows are stacked
// below the control, one per option.
type Overlay[T comparable] struct {
	Options      []T
	Label        func(T) string
	EmptyMessage string
	RowHeight    float32
}

// Row is one laid out overlay row.
type Row[T comparable] struct {
	Option  T
	Label   string
	Bounds  event.Bounds
	Hovered bool

	// Placeholder rows carry the empty message and cannot be picked.
	Placeholder bool
}

// NewOverlay builds the overlay for a pick list.
func NewOverlay[T comparable](p *PickList[T]) *Overlay[T] {
	return &Overlay[T]{
		Options:      p.Options,
		Label:        p.OptionLabel,
		EmptyMessage: p.OptionsEmptyMessage,
	}
}

func (o *Overlay[T]) rowHeight() float32 {
	if o.RowHeight <= 0 {
		return DefaultRowHeight
	}
	return o.RowHeight
}

func (o *Overlay[T]) rowCount() int {
	if len(o.Options) == 0 {
		return 1
	}
	return len(o.Options)
}

// Bounds returns the area covered by the overlay for a control laid out at
// control.
func (o *Overlay[T]) Bounds(control event.Bounds) event.Bounds {
	return event.Bounds{
		X:      control.X,
		Y:      control.Y + control.Height,
		Width:  control.Width,
		Height: float32(o.rowCount()) * o.rowHeight(),
	}
}

// Rows lays out the rows to draw.
func (o *Overlay[T]) Rows(menu *Menu[T], control event.Bounds) []Row[T] {
	area := o.Bounds(control)
	h := o.rowHeight()

	if len(o.Options) == 0 {
		return []Row[T]{{
			Label:       o.EmptyMessage,
			Bounds:      event.Bounds{X: area.X, Y: area.Y, Width: area.Width, Height: h},
			Placeholder: true,
		}}
	}

	hovered, hovering := menu.Hovered()
	rows := make([]Row[T], len(o.Options))
	for i, option := range o.Options {
		rows[i] = Row[T]{
			Option:  option,
			Label:   o.label(option),
			Bounds:  event.Bounds{X: area.X, Y: area.Y + float32(i)*h, Width: area.Width, Height: h},
			Hovered: hovering && hovered == i,
		}
	}
	return rows
}

func (o *Overlay[T]) label(option T) string {
	if o.Label == nil {
		return (&PickList[T]{}).OptionLabel(option)
	}
	return o.Label(option)
}

// rowAt returns the option row under pos.
func (o *Overlay[T]) rowAt(pos event.Point, control event.Bounds) (int, bool) {
	if len(o.Options) == 0 {
		return 0, false
	}
	area := o.Bounds(control)
	if !area.Contains(pos) {
		return 0, false
	}
	i := int((pos.Y - area.Y) / o.rowHeight())
	if i < 0 || i >= len(o.Options) {
		return 0, false
	}
	return i, true
}

// Update handles an event over an open menu. Moves update the hovered row;
// a primary press on a row commits its option.
func (o *Overlay[T]) Update(menu *Menu[T], ev event.Event, control event.Bounds) event.Status {
	if !menu.IsOpen() {
		return event.Ignored
	}

	switch e := ev.(type) {
	case event.PointerMoved:
		if i, ok := o.rowAt(e.Position, control); ok {
			menu.Hover(i)
			return event.Captured
		}

	case event.TouchMoved:
		if i, ok := o.rowAt(e.Position, control); ok {
			menu.Hover(i)
			return event.Captured
		}

	case event.PointerPressed:
		if e.Button != event.MouseButtonLeft {
			return event.Ignored
		}
		return o.pick(menu, e.Position, control)

	case event.TouchPressed:
		return o.pick(menu, e.Position, control)
	}

	return event.Ignored
}

func (o *Overlay[T]) pick(menu *Menu[T], pos event.Point, control event.Bounds) event.Status {
	i, ok := o.rowAt(pos, control)
	if !ok {
		return event.Ignored
	}
	menu.Hover(i)
	menu.Commit(o.Options[i])
	return event.Captured
}
