package model

// Realtime event types delivered to live connections.
const (
	EventConnected      = "connected"
	EventJoined         = "joined"
	EventLeft           = "left"
	EventPong           = "pong"
	EventNewMessage     = "newMessage"
	EventThreadActivity = "threadActivity"
	EventError          = "error"
)

// Event is a server-to-client realtime frame.
type Event struct {
	Type           string        `json:"type"`
	ConversationID int64         `json:"conversationId,omitempty"`
	Message        *PlainMessage `json:"message,omitempty"`
	LastMessageID  int64         `json:"lastMessageId,omitempty"`
	SenderID       int64         `json:"senderId,omitempty"`
	ConnectionID   string        `json:"connectionId,omitempty"`
	UserID         int64         `json:"userId,omitempty"`
	Code           string        `json:"code,omitempty"`
	Error          string        `json:"error,omitempty"`
}

// Publisher fans events out to live connections. Delivery is best effort:
// implementations never queue for absent subscribers and never block.
type Publisher interface {
	// Publish delivers the event to every connection subscribed to the
	// conversation and returns how many received it.
	Publish(conversationID int64, event Event) int
	// NotifyUser delivers the event to every live connection of the user.
	NotifyUser(userID int64, event Event) int
}
