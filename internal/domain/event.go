package domain

// EventKind tags the variant held by an Event
type EventKind int

const (
	EventCommand EventKind = iota
	EventButtonPress
	EventPlainText
)

func (k EventKind) String() string {
	switch k {
	case EventCommand:
		return "command"
	case EventButtonPress:
		return "button"
	case EventPlainText:
		return "text"
	default:
		return "unknown"
	}
}

// Event is an incoming chat update reduced to what the dispatcher needs.
// Name and Argument are set for commands, Payload and MessageID for
// button presses, Text for plain messages.
type Event struct {
	Kind      EventKind
	UserID    int64
	ChatID    int64
	FirstName string

	Name     string
	Argument string

	Payload   string
	MessageID int

	Text string
}

// ActionKind tags the variant held by an Action
type ActionKind int

const (
	ActionSend ActionKind = iota
	ActionEdit
)

// Action is an outbound call to the chat transport
type Action struct {
	Kind      ActionKind
	ChatID    int64
	MessageID int // ActionEdit only
	Text      string
	Keyboard  *Keyboard
}

// Keyboard is an inline keyboard laid out in rows
type Keyboard struct {
	Rows [][]Button
}

// Button is an inline button carrying a callback payload
type Button struct {
	Text    string
	Payload string
}

// SendMessage builds a send action
func SendMessage(chatID int64, text string) Action {
	return Action{Kind: ActionSend, ChatID: chatID, Text: text}
}

// SendWithKeyboard builds a send action with an inline keyboard
func SendWithKeyboard(chatID int64, text string, kb *Keyboard) Action {
	return Action{Kind: ActionSend, ChatID: chatID, Text: text, Keyboard: kb}
}

// EditMessage builds an edit-in-place action
func EditMessage(chatID int64, messageID int, text string) Action {
	return Action{Kind: ActionEdit, ChatID: chatID, MessageID: messageID, Text: text}
}
