package event

import "strings"

// Key is a logical key code. Only the keys the controls react to are named;
// hosts map everything else to KeyUnknown.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEscape
	KeyTab
	KeyA
	KeyC
	KeyV
	KeyX
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyA:         "a",
	KeyC:         "c",
	KeyV:         "v",
	KeyX:         "x",
}

// String returns a lower-case name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps a key name (case-insensitive) to a Key.
// Unrecognized names map to KeyUnknown.
func ParseKey(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "return":
		return KeyEnter
	case "esc":
		return KeyEscape
	case "del":
		return KeyDelete
	}
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyUnknown
}

// ParseModifiers parses a "+"-separated modifier list such as "ctrl+shift".
// Unknown names are skipped.
func ParseModifiers(s string) Modifiers {
	var m Modifiers
	for _, part := range strings.Split(s, "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "shift":
			m |= ModShift
		case "ctrl", "control":
			m |= ModCtrl
		case "alt", "option":
			m |= ModAlt
		case "super", "cmd", "command", "logo", "win":
			m |= ModSuper
		}
	}
	return m
}
