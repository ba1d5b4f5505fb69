package control

import (
	"unicode"

	"github.com/agiangrant/picklist/event"
	"github.com/agiangrant/picklist/textinput"
)

// ============================================================================
// Keyboard Handling
// ============================================================================

// typeRune inserts a typed character at the caret.
func (p *PickList[T]) typeRune(s *State[T], r rune, env Env, msgs *[]Message[T]) event.Status {
	if !s.focused {
		return event.Ignored
	}
	if s.pasting != nil || env.platform().IsCommand(s.modifiers) || unicode.IsControl(r) {
		return event.Ignored
	}

	editor := s.editor()
	editor.Insert(r)
	*msgs = append(*msgs, Changed[T](editor.Contents()))
	return event.Captured
}

// keyPressed applies a key press to a focused control. Shortcuts are decided
// by the tracked modifiers, not the ones carried on the event.
func (p *PickList[T]) keyPressed(s *State[T], key event.Key, env Env, msgs *[]Message[T]) {
	mods := s.modifiers
	jump := env.platform().IsJump(mods)
	command := env.platform().IsCommand(mods)

	switch key {
	case event.KeyEnter:
		if p.Submit {
			*msgs = append(*msgs, Submit[T]())
		}

	case event.KeyBackspace:
		if jump && !s.cursor.State(s.value).IsSelection() {
			s.cursor.SelectLeftByWords(s.value)
		}
		editor := s.editor()
		editor.Backspace()
		*msgs = append(*msgs, Changed[T](editor.Contents()))

	case event.KeyDelete:
		if jump && !s.cursor.State(s.value).IsSelection() {
			s.cursor.SelectRightByWords(s.value)
		}
		editor := s.editor()
		editor.Delete()
		*msgs = append(*msgs, Changed[T](editor.Contents()))

	case event.KeyLeft:
		switch {
		case jump && mods.Shift():
			s.cursor.SelectLeftByWords(s.value)
		case jump:
			s.cursor.MoveLeftByWords(s.value)
		case mods.Shift():
			s.cursor.SelectLeft(s.value)
		default:
			s.cursor.MoveLeft(s.value)
		}

	case event.KeyRight:
		switch {
		case jump && mods.Shift():
			s.cursor.SelectRightByWords(s.value)
		case jump:
			s.cursor.MoveRightByWords(s.value)
		case mods.Shift():
			s.cursor.SelectRight(s.value)
		default:
			s.cursor.MoveRight(s.value)
		}

	case event.KeyHome:
		if mods.Shift() {
			s.cursor.SelectRange(s.cursor.Start(s.value), 0)
		} else {
			s.cursor.MoveTo(0)
		}

	case event.KeyEnd:
		if mods.Shift() {
			s.cursor.SelectRange(s.cursor.Start(s.value), s.value.Len())
		} else {
			s.cursor.MoveTo(s.value.Len())
		}

	case event.KeyC:
		if command {
			p.copy(s, env)
		}

	case event.KeyX:
		if command {
			p.cut(s, env, msgs)
		}

	case event.KeyV:
		if !command {
			s.pasting = nil
			return
		}
		p.paste(s, env, msgs)

	case event.KeyA:
		if command {
			s.cursor.SelectAll(s.value)
		}

	case event.KeyEscape:
		s.focused = false
		s.dragging = false
		s.pasting = nil
		s.modifiers = 0
	}
}

func (p *PickList[T]) copy(s *State[T], env Env) {
	text := s.SelectedText()
	if text == "" || env.Clipboard == nil {
		return
	}
	env.Clipboard.Write(text)
}

func (p *PickList[T]) cut(s *State[T], env Env, msgs *[]Message[T]) {
	if !s.cursor.State(s.value).IsSelection() {
		return
	}
	p.copy(s, env)

	editor := s.editor()
	editor.Delete()
	*msgs = append(*msgs, Changed[T](editor.Contents()))
}

// paste inserts the clipboard text. While the shortcut repeats, the content
// read on the first press is reused.
func (p *PickList[T]) paste(s *State[T], env Env, msgs *[]Message[T]) {
	content := s.pasting
	if content == nil {
		var text string
		if env.Clipboard != nil {
			text, _ = env.Clipboard.Read()
		}
		v := textinput.NewValue(textinput.StripControl(text))
		content = &v
		env.logger().Debug().
			Int("runes", v.Len()).
			Msg("pick list pasted from clipboard")
	}

	editor := s.editor()
	editor.Paste(*content)
	s.pasting = content
	*msgs = append(*msgs, Changed[T](editor.Contents()))
}
