package event

// Platform is the keyboard policy of the host platform. It is resolved once
// at startup and never changes for the lifetime of a control.
type Platform struct {
	// WordJump is the modifier that turns character navigation into word
	// navigation (Alt on Apple platforms, Ctrl elsewhere).
	WordJump Modifiers

	// Command is the modifier for clipboard and select-all shortcuts
	// (Super on Apple platforms, Ctrl elsewhere).
	Command Modifiers
}

var (
	// ApplePlatform is the policy for macOS and iOS.
	ApplePlatform = Platform{WordJump: ModAlt, Command: ModSuper}

	// DefaultPlatform is the policy for every other platform.
	DefaultPlatform = Platform{WordJump: ModCtrl, Command: ModCtrl}
)

// IsJump reports whether the word-jump modifier is held.
func (p Platform) IsJump(m Modifiers) bool {
	return m.Has(p.WordJump)
}

// IsCommand reports whether the command modifier is held.
func (p Platform) IsCommand(m Modifiers) bool {
	return m.Has(p.Command)
}
