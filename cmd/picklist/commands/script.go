package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/picklist/event"
)

// Script is a replay script:
//
//	text = "hello"
//	options = ["apple", "banana"]
//	selected = "banana"
//	bounds = [0.0, 0.0, 200.0, 30.0]
//
//	[[event]]
//	type = "press"
//	x = 40.0
//	at_ms = 0
//
//	[[event]]
//	type = "key"
//	key = "backspace"
//	modifiers = "ctrl"
type Script struct {
	Text     string        `toml:"text"`
	Focused  bool          `toml:"focused"`
	Options  []string      `toml:"options"`
	Selected string        `toml:"selected"`
	Bounds   [4]float32    `toml:"bounds"` // x, y, width, height
	Events   []ScriptEvent `toml:"event"`
}

// ScriptEvent is one scripted input. Which fields apply depends on Type.
type ScriptEvent struct {
	// press, release, move, touch_press, touch_move, touch_lift, touch_lost,
	// type, key, key_release or modifiers
	Type string `toml:"type"`

	X float32 `toml:"x"`
	Y float32 `toml:"y"`

	// Milliseconds since the start of the script. Presses use it to tell
	// double clicks from slow ones.
	AtMS int64 `toml:"at_ms"`

	// left (default), right or middle
	Button string `toml:"button"`

	// Characters typed by a "type" event, one CharacterTyped each.
	Text string `toml:"text"`

	Key       string `toml:"key"`
	Modifiers string `toml:"modifiers"`
}

var defaultBounds = [4]float32{0, 0, 240, 32}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return script, nil
}

// ParseScript parses a TOML script.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := toml.Unmarshal(data, &script); err != nil {
		return nil, err
	}
	if script.Bounds == [4]float32{} {
		script.Bounds = defaultBounds
	}
	return &script, nil
}

// ControlBounds returns the control's layout bounds.
func (s *Script) ControlBounds() event.Bounds {
	return event.Bounds{X: s.Bounds[0], Y: s.Bounds[1], Width: s.Bounds[2], Height: s.Bounds[3]}
}

// InputEvents converts the scripted events. Press times are relative to
// start.
func (s *Script) InputEvents(start time.Time) ([]event.Event, error) {
	var (
		events []event.Event
		held   event.Modifiers
	)
	for i, e := range s.Events {
		converted, err := e.convert(start, &held)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		events = append(events, converted...)
	}
	return events, nil
}

// convert maps e to input events. held tracks the modifiers last reported
// to the control.
func (e ScriptEvent) convert(start time.Time, held *event.Modifiers) ([]event.Event, error) {
	pos := event.Point{X: e.X, Y: e.Y}
	at := start.Add(time.Duration(e.AtMS) * time.Millisecond)

	switch strings.ToLower(e.Type) {
	case "press":
		button, err := parseButton(e.Button)
		if err != nil {
			return nil, err
		}
		return []event.Event{event.PointerPressed{Button: button, Position: pos, At: at}}, nil
	case "release":
		button, err := parseButton(e.Button)
		if err != nil {
			return nil, err
		}
		return []event.Event{event.PointerReleased{Button: button}}, nil
	case "move":
		return []event.Event{event.PointerMoved{Position: pos}}, nil
	case "touch_press":
		return []event.Event{event.TouchPressed{Position: pos, At: at}}, nil
	case "touch_move":
		return []event.Event{event.TouchMoved{Position: pos}}, nil
	case "touch_lift":
		return []event.Event{event.TouchLifted{Position: pos}}, nil
	case "touch_lost":
		return []event.Event{event.TouchLost{Position: pos}}, nil
	case "type":
		events := holdModifiers(held, 0)
		for _, r := range e.Text {
			events = append(events, event.CharacterTyped{Rune: r})
		}
		return events, nil
	case "key":
		key, err := parseKey(e.Key)
		if err != nil {
			return nil, err
		}
		pressed := event.KeyPressed{Code: key, Modifiers: event.ParseModifiers(e.Modifiers)}
		// Hosts report held modifiers before the key itself.
		return append(holdModifiers(held, pressed.Modifiers), pressed), nil
	case "key_release":
		key, err := parseKey(e.Key)
		if err != nil {
			return nil, err
		}
		return []event.Event{event.KeyReleased{Code: key}}, nil
	case "modifiers":
		*held = event.ParseModifiers(e.Modifiers)
		return []event.Event{event.ModifiersChanged{Modifiers: *held}}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", e.Type)
	}
}

// holdModifiers reports a change of the held modifiers to mods, if any.
func holdModifiers(held *event.Modifiers, mods event.Modifiers) []event.Event {
	if *held == mods {
		return nil
	}
	*held = mods
	return []event.Event{event.ModifiersChanged{Modifiers: mods}}
}

func parseButton(name string) (event.MouseButton, error) {
	switch strings.ToLower(name) {
	case "", "left":
		return event.MouseButtonLeft, nil
	case "right":
		return event.MouseButtonRight, nil
	case "middle":
		return event.MouseButtonMiddle, nil
	default:
		return event.MouseButtonNone, fmt.Errorf("unknown button %q", name)
	}
}

func parseKey(name string) (event.Key, error) {
	key := event.ParseKey(name)
	if key == event.KeyUnknown {
		return key, fmt.Errorf("unknown key %q", name)
	}
	return key, nil
}
