package control

//go:generate mockgen -source=clipboard.go -destination=mocks/mock_clipboard.go -package=mocks

// Clipboard abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs.
type Clipboard interface {
	// Read retrieves text from the clipboard. ok is false if the clipboard
	// is empty, holds non-text data or cannot be read.
	Read() (text string, ok bool)

	// Write copies text to the clipboard.
	Write(text string)
}

// MemoryClipboard is an in-process clipboard, used by tests and by hosts
// without system clipboard access.
type MemoryClipboard struct {
	text  string
	set   bool
	reads int
}

// Read returns the last written text.
func (c *MemoryClipboard) Read() (string, bool) {
	c.reads++
	return c.text, c.set
}

// Write stores text.
func (c *MemoryClipboard) Write(text string) {
	c.text = text
	c.set = true
}

// Reads returns how many times Read was called.
func (c *MemoryClipboard) Reads() int {
	return c.reads
}
