// Package textinput is the single-line editing engine shared by the pick
// list controls: the text Value, the Cursor over it, the Editor that applies
// one edit atomically, pixel hit testing and horizontal scrolling.
//
// Positions are counted in Unicode scalar values (runes), never bytes.
package textinput

import (
	"strings"
	"unicode"
)

// Value is the editable text content of a control.
type Value struct {
	runes []rune
}

// NewValue creates a Value holding text.
func NewValue(text string) Value {
	return Value{runes: []rune(text)}
}

// Len returns the number of runes.
func (v Value) Len() int {
	return len(v.runes)
}

// IsEmpty returns true if the value holds no text.
func (v Value) IsEmpty() bool {
	return len(v.runes) == 0
}

// String returns the text content.
func (v Value) String() string {
	return string(v.runes)
}

// Until returns the prefix of length i. i is clamped to Len.
func (v Value) Until(i int) Value {
	i = v.clamp(i)
	return Value{runes: append([]rune(nil), v.runes[:i]...)}
}

// Select returns the runes between start and end, in either order.
func (v Value) Select(start, end int) Value {
	start, end = v.clamp(start), v.clamp(end)
	if start > end {
		start, end = end, start
	}
	return Value{runes: append([]rune(nil), v.runes[start:end]...)}
}

// Insert inserts r before index i.
func (v *Value) Insert(i int, r rune) {
	i = v.clamp(i)
	v.runes = append(v.runes, 0)
	copy(v.runes[i+1:], v.runes[i:])
	v.runes[i] = r
}

// InsertMany inserts content before index i.
func (v *Value) InsertMany(i int, content Value) {
	if content.IsEmpty() {
		return
	}
	i = v.clamp(i)
	out := make([]rune, 0, len(v.runes)+len(content.runes))
	out = append(out, v.runes[:i]...)
	out = append(out, content.runes...)
	out = append(out, v.runes[i:]...)
	v.runes = out
}

// Remove deletes the rune at index i. Out-of-range indices are ignored.
func (v *Value) Remove(i int) {
	if i < 0 || i >= len(v.runes) {
		return
	}
	v.RemoveMany(i, i+1)
}

// RemoveMany deletes the runes in [start, end).
func (v *Value) RemoveMany(start, end int) {
	start, end = v.clamp(start), v.clamp(end)
	if start >= end {
		return
	}
	out := make([]rune, 0, len(v.runes)-(end-start))
	out = append(out, v.runes[:start]...)
	out = append(out, v.runes[end:]...)
	v.runes = out
}

// PreviousStartOfWord returns the start of the word at or before index.
// Whitespace immediately before index is skipped; a punctuation rune counts
// as a word of its own.
func (v Value) PreviousStartOfWord(index int) int {
	pos := v.clamp(index)
	for pos > 0 && unicode.IsSpace(v.runes[pos-1]) {
		pos--
	}
	if pos == 0 {
		return 0
	}
	if !isWordRune(v.runes[pos-1]) {
		return pos - 1
	}
	for pos > 0 && isWordRune(v.runes[pos-1]) {
		pos--
	}
	return pos
}

// NextEndOfWord returns the end of the word at or after index.
func (v Value) NextEndOfWord(index int) int {
	length := len(v.runes)
	pos := v.clamp(index)
	for pos < length && unicode.IsSpace(v.runes[pos]) {
		pos++
	}
	if pos == length {
		return length
	}
	if !isWordRune(v.runes[pos]) {
		return pos + 1
	}
	for pos < length && isWordRune(v.runes[pos]) {
		pos++
	}
	return pos
}

func (v Value) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(v.runes) {
		return len(v.runes)
	}
	return i
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// StripControl removes control characters, which are never inserted by a
// paste.
func StripControl(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}
