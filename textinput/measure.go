package textinput

import "math"

//go:generate mockgen -source=measure.go -destination=mocks/mock_measure.go -package=mocks

// Measurer reports the rendered width of text. Widths must not decrease as
// text grows by appending runes, for a fixed size and font.
type Measurer interface {
	Measure(text string, size float32, font string) float32
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(text string, size float32, font string) float32

// Measure calls f.
func (f MeasureFunc) Measure(text string, size float32, font string) float32 {
	return f(text, size, font)
}

// PrefixWidth returns a function measuring the width of the first n runes of
// value.
func PrefixWidth(m Measurer, value Value, size float32, font string) func(n int) float32 {
	return func(n int) float32 {
		if n <= 0 {
			return 0
		}
		return m.Measure(value.Until(n).String(), size, font)
	}
}

// Rounded wraps a prefix width function so every width is rounded to whole
// pixels. Hit testing compares rounded widths so that sub-pixel kerning does
// not move the caret.
func Rounded(width func(n int) float32) func(n int) float32 {
	return func(n int) float32 {
		return float32(math.Round(float64(width(n))))
	}
}
