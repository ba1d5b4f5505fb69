package platform

import (
	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
)

// SystemClipboard reads and writes the OS clipboard. Failures are logged and
// read as an empty clipboard.
type SystemClipboard struct {
	logger *zerolog.Logger
}

// NewSystemClipboard returns a clipboard logging to logger (nil for none).
func NewSystemClipboard(logger *zerolog.Logger) *SystemClipboard {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &SystemClipboard{logger: logger}
}

// Available reports whether the platform has a usable clipboard.
func (c *SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// Read returns the clipboard text.
func (c *SystemClipboard) Read() (string, bool) {
	text, err := clipboard.ReadAll()
	if err != nil {
		c.logger.Warn().Err(err).Msg("clipboard read failed")
		return "", false
	}
	return text, true
}

// Write replaces the clipboard text.
func (c *SystemClipboard) Write(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		c.logger.Warn().Err(err).Msg("clipboard write failed")
	}
}
