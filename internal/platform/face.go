// Package platform adapts host services to the control's collaborator
// interfaces: text measurement and the system clipboard.
package platform

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontBasic selects the fixed 7x13 bitmap face regardless of size.
const FontBasic = "basic"

type faceKey struct {
	font string
	size int // 1/64 px
}

// FaceMeasurer measures text with the Go font family rendered at 72 DPI, so
// one point is one pixel. Font names are "regular", "bold", "italic",
// "bold_italic", "mono" and "basic"; unknown names use regular.
type FaceMeasurer struct {
	fonts map[string]*opentype.Font

	mu    sync.Mutex
	cache map[faceKey]font.Face
}

// NewFaceMeasurer parses the bundled Go fonts.
func NewFaceMeasurer() (*FaceMeasurer, error) {
	sources := map[string][]byte{
		"regular":     goregular.TTF,
		"bold":        gobold.TTF,
		"italic":      goitalic.TTF,
		"bold_italic": gobolditalic.TTF,
		"mono":        gomono.TTF,
	}

	m := &FaceMeasurer{
		fonts: make(map[string]*opentype.Font, len(sources)),
		cache: make(map[faceKey]font.Face),
	}
	for name, ttf := range sources {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s font: %w", name, err)
		}
		m.fonts[name] = f
	}
	return m, nil
}

// Measure returns the advance width of text in pixels.
func (m *FaceMeasurer) Measure(text string, size float32, name string) float32 {
	if text == "" {
		return 0
	}
	face := m.face(name, size)
	adv := font.MeasureString(face, text)
	return float32(adv) / 64
}

// face returns a cached face, falling back to the bitmap face when the font
// cannot be instantiated at size.
func (m *FaceMeasurer) face(name string, size float32) font.Face {
	if name == FontBasic || size <= 0 {
		return basicfont.Face7x13
	}

	base, ok := m.fonts[name]
	if !ok {
		base, ok = m.fonts["regular"]
	}
	if !ok {
		return basicfont.Face7x13
	}

	key := faceKey{font: name, size: int(math.Round(float64(size) * 64))}

	m.mu.Lock()
	defer m.mu.Unlock()

	if f, ok := m.cache[key]; ok {
		return f
	}
	opts := &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingNone}
	f, err := opentype.NewFace(base, opts)
	if err != nil {
		return basicfont.Face7x13
	}
	m.cache[key] = f
	return f
}
