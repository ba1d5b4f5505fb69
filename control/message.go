package control

// MessageKind identifies an output message.
type MessageKind uint8

const (
	// MessageChanged carries the full text after an edit.
	MessageChanged MessageKind = iota + 1
	// MessageSelected carries an option committed from the dropdown.
	MessageSelected
	// MessageSubmit is emitted on Enter when the control has a submit action.
	MessageSubmit
)

func (k MessageKind) String() string {
	switch k {
	case MessageChanged:
		return "changed"
	case MessageSelected:
		return "selected"
	case MessageSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// Message is emitted by Update for the host to act on.
type Message[T comparable] struct {
	Kind   MessageKind
	Text   string // MessageChanged
	Option T      // MessageSelected
}

// Changed builds a MessageChanged.
func Changed[T comparable](text string) Message[T] {
	return Message[T]{Kind: MessageChanged, Text: text}
}

// Selected builds a MessageSelected.
func Selected[T comparable](option T) Message[T] {
	return Message[T]{Kind: MessageSelected, Option: option}
}

// Submit builds a MessageSubmit.
func Submit[T comparable]() Message[T] {
	return Message[T]{Kind: MessageSubmit}
}
