package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agiangrant/picklist/event"
)

// KeyMap holds the bindings the host handles itself. Every other key goes
// to the control.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Pick key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pick, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Pick}, {k.Quit}}
}

// DefaultKeyMap returns the default bindings. Ctrl+C is left to the control
// for copying.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down/open"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "pick"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// keyEvents translates a terminal key into control events. Terminals don't
// report modifier changes or key releases, so modifiers are inferred from
// each chord and reported before the key, and V is released right after
// each paste chord so that a repeated chord pastes again.
func (m *Model) keyEvents(msg tea.KeyMsg) []event.Event {
	if (msg.Type == tea.KeyRunes && !msg.Alt) || msg.Type == tea.KeySpace {
		runes := msg.Runes
		if msg.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		events := m.setModifiers(0)
		for _, r := range runes {
			events = append(events, event.CharacterTyped{Rune: r})
		}
		return events
	}

	code, mods := parseChord(msg.String())
	if code == event.KeyUnknown {
		return nil
	}
	events := m.setModifiers(mods)
	events = append(events, event.KeyPressed{Code: code, Modifiers: mods})
	if code == event.KeyV {
		events = append(events, event.KeyReleased{Code: event.KeyV})
	}
	return events
}

func (m *Model) setModifiers(mods event.Modifiers) []event.Event {
	if mods == m.held {
		return nil
	}
	m.held = mods
	return []event.Event{event.ModifiersChanged{Modifiers: mods}}
}

// parseChord splits a chord such as "ctrl+shift+left". Alt arrows and
// deletes are word jumps in terminals and map to ctrl.
func parseChord(chord string) (event.Key, event.Modifiers) {
	i := strings.LastIndex(chord, "+")
	if i < 0 {
		return event.ParseKey(chord), 0
	}
	code := event.ParseKey(chord[i+1:])
	mods := event.ParseModifiers(chord[:i])

	if mods.Has(event.ModAlt) {
		switch code {
		case event.KeyLeft, event.KeyRight, event.KeyBackspace, event.KeyDelete:
			mods = mods&^event.ModAlt | event.ModCtrl
		}
	}
	return code, mods
}

// mouseEvent translates a terminal mouse event. Wheel events are dropped.
func mouseEvent(msg tea.MouseMsg) (event.Event, bool) {
	pos := event.Point{X: float32(msg.X), Y: float32(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		button, ok := mouseButton(msg.Button)
		if !ok {
			return nil, false
		}
		return event.PointerPressed{Button: button, Position: pos}, true
	case tea.MouseActionRelease:
		button, ok := mouseButton(msg.Button)
		if !ok {
			button = event.MouseButtonLeft
		}
		return event.PointerReleased{Button: button}, true
	case tea.MouseActionMotion:
		return event.PointerMoved{Position: pos}, true
	}
	return nil, false
}

func mouseButton(b tea.MouseButton) (event.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return event.MouseButtonLeft, true
	case tea.MouseButtonMiddle:
		return event.MouseButtonMiddle, true
	case tea.MouseButtonRight:
		return event.MouseButtonRight, true
	}
	return event.MouseButtonNone, false
}
