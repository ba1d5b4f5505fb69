package platform

import "github.com/mattn/go-runewidth"

// CellMeasurer measures text in terminal cells: each cell is Width pixels
// and wide runes take two. Size and font are ignored.
type CellMeasurer struct {
	Width float32
}

// Measure returns the display width of text.
func (m CellMeasurer) Measure(text string, size float32, font string) float32 {
	w := m.Width
	if w <= 0 {
		w = 1
	}
	return float32(runewidth.StringWidth(text)) * w
}
