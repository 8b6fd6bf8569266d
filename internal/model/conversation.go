package model

import (
	"context"
	"time"
)

// KeySaltSize is the length of the random per-conversation key salt.
const KeySaltSize = 32

// MaxMessageLength is the maximum number of characters in a message body.
const MaxMessageLength = 4000

// ConversationStore defines persistence operations for conversations and
// their participants.
type ConversationStore interface {
	// CreateWithParticipants inserts the conversation and both participant
	// rows in one atomic unit. When the pair already has a conversation the
	// existing one is returned instead.
	CreateWithParticipants(ctx context.Context, conversation Conversation, userA, userB int64) (Conversation, error)
	FindByPair(ctx context.Context, userA, userB int64) (Conversation, error)
	GetByID(ctx context.Context, id int64) (Conversation, error)
	IsParticipant(ctx context.Context, conversationID, userID int64) (bool, error)
	Participants(ctx context.Context, conversationID int64) ([]int64, error)
	ListThreads(ctx context.Context, userID int64) ([]Thread, error)
}

// MessageStore defines persistence operations for encrypted messages.
type MessageStore interface {
	Append(ctx context.Context, message Message) (Message, error)
	ListByConversation(ctx context.Context, conversationID int64) ([]Message, error)
	LatestID(ctx context.Context, conversationID int64) (int64, error)
	CountAfter(ctx context.Context, conversationID, afterID int64) (int64, error)
}

// ReadMarkerStore defines persistence operations for read markers.
type ReadMarkerStore interface {
	// Advance moves the marker to max(existing, messageID) and returns the
	// stored value.
	Advance(ctx context.Context, conversationID, userID, messageID int64) (int64, error)
	// Get returns the stored marker, or zero when the user never read the
	// conversation.
	Get(ctx context.Context, conversationID, userID int64) (int64, error)
}

// RelationshipOracle answers whether two users are mutually connected.
type RelationshipOracle interface {
	AreConnected(ctx context.Context, userA, userB int64) (bool, error)
}

// Conversation is a two-party thread. The key salt never leaves the server.
type Conversation struct {
	ID        int64
	CreatorID int64
	KeySalt   []byte
	PairLow   int64
	PairHigh  int64
	CreatedAt time.Time
}

// Message is a stored message envelope. Only ciphertext is persisted.
type Message struct {
	ID             int64
	ConversationID int64
	SenderID       int64
	Ciphertext     []byte
	Nonce          []byte
	Tag            []byte
	AAD            []byte
	CreatedAt      time.Time
}

// PlainMessage is a decrypted message as returned to participants.
type PlainMessage struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	SenderID       int64     `json:"senderId"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Thread is a conversation summary for the thread list.
type Thread struct {
	ConversationID int64     `json:"conversationId"`
	Participants   []int64   `json:"participants"`
	UnreadCount    int64     `json:"unreadCount"`
	LastMessageID  int64     `json:"lastMessageId"`
	LastReadMsgID  int64     `json:"lastReadMsgId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NormalizePair orders a user pair so that it can be compared and stored
// independently of who initiated the conversation.
func NormalizePair(userA, userB int64) (low, high int64) {
	if userA <= userB {
		return userA, userB
	}
	return userB, userA
}
