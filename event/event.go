// Package event defines the input taxonomy consumed by the pick list
// controls: pointer, touch and keyboard events, modifier sets, key codes and
// the geometry helpers used for hit testing.
package event

import "time"

// ============================================================================
// Geometry
// ============================================================================

// Point is a position in window coordinates.
type Point struct {
	X, Y float32
}

// Bounds represents the screen-space bounding box of a control.
type Bounds struct {
	X, Y          float32 // Top-left corner in screen coordinates
	Width, Height float32
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.X+b.Width &&
		p.Y >= b.Y && p.Y < b.Y+b.Height
}

// LocalPoint converts screen coordinates to local coordinates relative to bounds.
func (b Bounds) LocalPoint(p Point) Point {
	return Point{X: p.X - b.X, Y: p.Y - b.Y}
}

// Padding is the space between the bounds of a control and its text.
type Padding struct {
	Top, Right, Bottom, Left float32
}

// Horizontal returns the sum of the left and right padding.
func (p Padding) Horizontal() float32 { return p.Left + p.Right }

// Vertical returns the sum of the top and bottom padding.
func (p Padding) Vertical() float32 { return p.Top + p.Bottom }

// Shrink returns b inset by the padding.
func (b Bounds) Shrink(p Padding) Bounds {
	w := b.Width - p.Horizontal()
	if w < 0 {
		w = 0
	}
	h := b.Height - p.Vertical()
	if h < 0 {
		h = 0
	}
	return Bounds{X: b.X + p.Left, Y: b.Y + p.Top, Width: w, Height: h}
}

// ============================================================================
// Buttons and Modifiers
// ============================================================================

// MouseButton identifies which mouse button was pressed.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Modifiers is the set of modifier keys held.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win on Windows
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Has reports whether every modifier in other is held.
func (m Modifiers) Has(other Modifiers) bool {
	return other != 0 && m&other == other
}

// ============================================================================
// Events
// ============================================================================

// Event is one input event delivered to a control. The concrete types below
// are the only implementations.
type Event interface {
	isEvent()
}

// PointerPressed is a mouse button press. At is the time of the press; a zero
// value lets the control stamp it with its own clock.
type PointerPressed struct {
	Button   MouseButton
	Position Point
	At       time.Time
}

// PointerReleased is a mouse button release.
type PointerReleased struct {
	Button MouseButton
}

// PointerMoved is a cursor move.
type PointerMoved struct {
	Position Point
}

// TouchPressed is a finger touching down. It is handled as a primary press.
type TouchPressed struct {
	Position Point
	At       time.Time
}

// TouchMoved is a finger moving while down.
type TouchMoved struct {
	Position Point
}

// TouchLifted is a finger leaving the surface.
type TouchLifted struct {
	Position Point
}

// TouchLost is a touch cancelled by the platform.
type TouchLost struct {
	Position Point
}

// CharacterTyped carries one typed Unicode scalar.
type CharacterTyped struct {
	Rune rune
}

// KeyPressed is a key going down (or repeating).
type KeyPressed struct {
	Code      Key
	Modifiers Modifiers
}

// KeyReleased is a key going up.
type KeyReleased struct {
	Code Key
}

// ModifiersChanged reports the new set of held modifiers.
type ModifiersChanged struct {
	Modifiers Modifiers
}

func (PointerPressed) isEvent()   {}
func (PointerReleased) isEvent()  {}
func (PointerMoved) isEvent()     {}
func (TouchPressed) isEvent()     {}
func (TouchMoved) isEvent()       {}
func (TouchLifted) isEvent()      {}
func (TouchLost) isEvent()        {}
func (CharacterTyped) isEvent()   {}
func (KeyPressed) isEvent()       {}
func (KeyReleased) isEvent()      {}
func (ModifiersChanged) isEvent() {}

// Status reports whether a control consumed an event.
type Status uint8

const (
	// Ignored means the event should keep propagating.
	Ignored Status = iota
	// Captured means the control consumed the event.
	Captured
)

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}

// Merge returns Captured if either status is Captured.
func (s Status) Merge(other Status) Status {
	if s == Captured || other == Captured {
		return Captured
	}
	return Ignored
}
