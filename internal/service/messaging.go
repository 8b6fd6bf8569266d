package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Jack-Berry/UMC-Back/internal/crypto/envelope"
	"github.com/Jack-Berry/UMC-Back/internal/logger"
	"github.com/Jack-Berry/UMC-Back/internal/model"
)

// Messaging implements the encrypted conversation lifecycle: creation,
// sending, reading and read tracking.
type Messaging struct {
	conversations model.ConversationStore
	messages      model.MessageStore
	markers       model.ReadMarkerStore
	gate          *Gate
	keys          *envelope.KeyDeriver
	publisher     model.Publisher
	storage       model.Storage
	logger        *logger.Logger
}

// MessagingDeps groups the collaborators of the Messaging service.
type MessagingDeps struct {
	Conversations model.ConversationStore
	Messages      model.MessageStore
	Markers       model.ReadMarkerStore
	Gate          *Gate
	Keys          *envelope.KeyDeriver
	// Publisher is optional; without it no realtime events are emitted.
	Publisher model.Publisher
	// Storage is optional; without it archiving is unavailable.
	Storage model.Storage
}

func NewMessaging(deps MessagingDeps, logger *logger.Logger) *Messaging {
	return &Messaging{
		conversations: deps.Conversations,
		messages:      deps.Messages,
		markers:       deps.Markers,
		gate:          deps.Gate,
		keys:          deps.Keys,
		publisher:     deps.Publisher,
		storage:       deps.Storage,
		logger:        logger,
	}
}

// GetOrCreateConversation returns the conversation of the pair, creating it
// with a fresh key salt when none exists. Repeated and concurrent calls for
// the same pair return the same conversation.
func (s *Messaging) GetOrCreateConversation(ctx context.Context, actorID, peerID int64, capabilityToken string) (model.Conversation, error) {
	if actorID <= 0 {
		return model.Conversation{}, validationError("invalid actor id %d", actorID)
	}
	if peerID <= 0 {
		return model.Conversation{}, validationError("invalid or missing peer id")
	}
	if peerID == actorID {
		return model.Conversation{}, validationError("cannot start a conversation with yourself")
	}

	allowed, err := s.gate.Authorize(ctx, actorID, peerID, capabilityToken)
	if err != nil {
		return model.Conversation{}, err
	}
	if !allowed {
		s.logger.Info("Messaging service: conversation not allowed",
			"actor_id", actorID,
			"peer_id", peerID)
		return model.Conversation{}, fmt.Errorf("%w: users are not connected", model.ErrForbidden)
	}

	existing, err := s.conversations.FindByPair(ctx, actorID, peerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Conversation{}, storeError("failed to find conversation", err)
	}

	salt, err := envelope.NewSalt()
	if err != nil {
		return model.Conversation{}, fmt.Errorf("failed to generate key salt: %w", err)
	}

	created, err := s.conversations.CreateWithParticipants(ctx, model.Conversation{
		CreatorID: actorID,
		KeySalt:   salt,
	}, actorID, peerID)
	if err != nil {
		return model.Conversation{}, storeError("failed to create conversation", err)
	}

	s.logger.Info("Messaging service: conversation ready",
		"conversation_id", created.ID,
		"actor_id", actorID,
		"peer_id", peerID)
	return created, nil
}

// PostMessage encrypts and stores a message, advances the sender's read
// marker and fans the plaintext out to live subscribers.
func (s *Messaging) PostMessage(ctx context.Context, conversationID, senderID int64, text string) (model.PlainMessage, error) {
	if strings.TrimSpace(text) == "" {
		return model.PlainMessage{}, validationError("message text required")
	}
	if utf8.RuneCountInString(text) > model.MaxMessageLength {
		return model.PlainMessage{}, validationError("message text longer than %d characters", model.MaxMessageLength)
	}

	conv, err := s.requireParticipant(ctx, conversationID, senderID)
	if err != nil {
		return model.PlainMessage{}, err
	}

	key, err := s.keys.DeriveKey(conv.KeySalt, conv.ID)
	if err != nil {
		return model.PlainMessage{}, fmt.Errorf("failed to derive conversation key: %w", err)
	}
	defer envelope.Zero(key)

	aad, err := envelope.AAD(conv.ID, senderID)
	if err != nil {
		return model.PlainMessage{}, err
	}

	sealed, err := envelope.Seal(key, []byte(text), aad)
	if err != nil {
		return model.PlainMessage{}, fmt.Errorf("failed to encrypt message: %w", err)
	}

	saved, err := s.messages.Append(ctx, model.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Ciphertext:     sealed.Ciphertext,
		Nonce:          sealed.Nonce,
		Tag:            sealed.Tag,
		AAD:            aad,
	})
	if err != nil {
		return model.PlainMessage{}, storeError("failed to store message", err)
	}

	// The message is durable at this point; a failed marker update must not
	// make the client retry and post a duplicate.
	if _, err := s.markers.Advance(ctx, conv.ID, senderID, saved.ID); err != nil {
		s.logger.Warn("Messaging service: failed to advance sender read marker",
			"conversation_id", conv.ID,
			"sender_id", senderID,
			"message_id", saved.ID,
			"error", err)
	}

	plain := model.PlainMessage{
		ID:             saved.ID,
		ConversationID: conv.ID,
		SenderID:       senderID,
		Text:           text,
		CreatedAt:      saved.CreatedAt,
	}

	s.announce(ctx, plain)

	s.logger.Debug("Messaging service: message posted",
		"conversation_id", conv.ID,
		"sender_id", senderID,
		"message_id", saved.ID)
	return plain, nil
}

// GetMessages returns the decrypted history of a conversation in id order.
// A single row that fails verification aborts the whole request.
func (s *Messaging) GetMessages(ctx context.Context, conversationID, callerID int64) ([]model.PlainMessage, error) {
	conv, err := s.requireParticipant(ctx, conversationID, callerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.messages.ListByConversation(ctx, conv.ID)
	if err != nil {
		return nil, storeError("failed to list messages", err)
	}

	key, err := s.keys.DeriveKey(conv.KeySalt, conv.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive conversation key: %w", err)
	}
	defer envelope.Zero(key)

	out := make([]model.PlainMessage, 0, len(rows))
	for _, row := range rows {
		text, err := s.open(key, conv.ID, row)
		if err != nil {
			s.logger.Error("Messaging service: stored message failed verification",
				"conversation_id", conv.ID,
				"message_id", row.ID)
			return nil, err
		}
		out = append(out, model.PlainMessage{
			ID:             row.ID,
			ConversationID: conv.ID,
			SenderID:       row.SenderID,
			Text:           text,
			CreatedAt:      row.CreatedAt,
		})
	}

	return out, nil
}

// ListThreads returns the caller's non-empty conversations, newest first.
func (s *Messaging) ListThreads(ctx context.Context, callerID int64) ([]model.Thread, error) {
	threads, err := s.conversations.ListThreads(ctx, callerID)
	if err != nil {
		return nil, storeError("failed to list threads", err)
	}
	if threads == nil {
		threads = []model.Thread{}
	}
	return threads, nil
}

// MarkRead advances the user's read marker and returns the stored value,
// which never decreases.
func (s *Messaging) MarkRead(ctx context.Context, conversationID, userID, messageID int64) (int64, error) {
	if _, err := s.requireParticipant(ctx, conversationID, userID); err != nil {
		return 0, err
	}
	if messageID <= 0 {
		return 0, validationError("invalid message id %d", messageID)
	}

	latest, err := s.messages.LatestID(ctx, conversationID)
	if err != nil {
		return 0, storeError("failed to get latest message", err)
	}
	if messageID > latest {
		return 0, fmt.Errorf("%w: message %d in conversation %d", model.ErrNotFound, messageID, conversationID)
	}

	stored, err := s.markers.Advance(ctx, conversationID, userID, messageID)
	if err != nil {
		return 0, storeError("failed to advance read marker", err)
	}
	return stored, nil
}

// UnreadCount returns the number of messages after the user's read marker.
func (s *Messaging) UnreadCount(ctx context.Context, conversationID, userID int64) (int64, error) {
	if _, err := s.requireParticipant(ctx, conversationID, userID); err != nil {
		return 0, err
	}

	marker, err := s.markers.Get(ctx, conversationID, userID)
	if err != nil {
		return 0, storeError("failed to get read marker", err)
	}

	n, err := s.messages.CountAfter(ctx, conversationID, marker)
	if err != nil {
		return 0, storeError("failed to count unread messages", err)
	}
	return n, nil
}

// CanJoin reports whether the user may subscribe to the conversation's
// realtime room.
func (s *Messaging) CanJoin(ctx context.Context, conversationID, userID int64) error {
	_, err := s.requireParticipant(ctx, conversationID, userID)
	return err
}

type archiveDocument struct {
	ConversationID int64            `json:"conversationId"`
	Participants   []int64          `json:"participants"`
	ExportedAt     time.Time        `json:"exportedAt"`
	Messages       []archiveMessage `json:"messages"`
}

type archiveMessage struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"senderId"`
	Ciphertext []byte    `json:"ciphertext"`
	Nonce      []byte    `json:"nonce"`
	Tag        []byte    `json:"tag"`
	AAD        []byte    `json:"aad"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ArchiveConversation writes the still-encrypted envelopes of a conversation
// to object storage and returns the object key.
func (s *Messaging) ArchiveConversation(ctx context.Context, conversationID, callerID int64) (string, error) {
	if s.storage == nil {
		return "", fmt.Errorf("%w: archive storage is not configured", model.ErrTransientStore)
	}

	conv, err := s.requireParticipant(ctx, conversationID, callerID)
	if err != nil {
		return "", err
	}

	participants, err := s.conversations.Participants(ctx, conv.ID)
	if err != nil {
		return "", storeError("failed to list participants", err)
	}

	rows, err := s.messages.ListByConversation(ctx, conv.ID)
	if err != nil {
		return "", storeError("failed to list messages", err)
	}

	doc := archiveDocument{
		ConversationID: conv.ID,
		Participants:   participants,
		ExportedAt:     time.Now().UTC(),
		Messages:       make([]archiveMessage, 0, len(rows)),
	}
	for _, row := range rows {
		doc.Messages = append(doc.Messages, archiveMessage{
			ID:         row.ID,
			SenderID:   row.SenderID,
			Ciphertext: row.Ciphertext,
			Nonce:      row.Nonce,
			Tag:        row.Tag,
			AAD:        row.AAD,
			CreatedAt:  row.CreatedAt,
		})
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode archive: %w", err)
	}

	key := archiveKey(conv.ID, uuid.NewString()+".json")
	if err := s.storage.Upload(ctx, key, bytes.NewReader(body), int64(len(body))); err != nil {
		return "", storeError("failed to upload archive", err)
	}

	s.logger.Info("Messaging service: conversation archived",
		"conversation_id", conv.ID,
		"messages", len(rows),
		"key", key)
	return key, nil
}

// OpenArchive returns a previously written archive of the conversation.
// name is the object name returned by ArchiveConversation without its
// directory.
func (s *Messaging) OpenArchive(ctx context.Context, conversationID, callerID int64, name string) (io.ReadCloser, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("%w: archive storage is not configured", model.ErrTransientStore)
	}

	conv, err := s.requireParticipant(ctx, conversationID, callerID)
	if err != nil {
		return nil, err
	}

	id, ok := strings.CutSuffix(name, ".json")
	if !ok || uuid.Validate(id) != nil {
		return nil, validationError("invalid archive name %q", name)
	}

	key := archiveKey(conv.ID, name)
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return nil, storeError("failed to stat archive", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: archive %s", model.ErrNotFound, name)
	}

	rc, err := s.storage.Download(ctx, key)
	if err != nil {
		return nil, storeError("failed to download archive", err)
	}
	return rc, nil
}

func archiveKey(conversationID int64, name string) string {
	return fmt.Sprintf("archives/%d/%s", conversationID, name)
}

func (s *Messaging) requireParticipant(ctx context.Context, conversationID, userID int64) (model.Conversation, error) {
	if conversationID <= 0 {
		return model.Conversation{}, validationError("invalid conversation id %d", conversationID)
	}

	conv, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return model.Conversation{}, storeError("failed to get conversation", err)
	}

	ok, err := s.conversations.IsParticipant(ctx, conv.ID, userID)
	if err != nil {
		return model.Conversation{}, storeError("failed to check participant", err)
	}
	if !ok {
		return model.Conversation{}, fmt.Errorf("%w: not a participant", model.ErrForbidden)
	}

	return conv, nil
}

func (s *Messaging) open(key []byte, conversationID int64, row model.Message) (string, error) {
	if row.ConversationID != conversationID {
		return "", fmt.Errorf("%w: message %d belongs to another conversation", model.ErrIntegrity, row.ID)
	}

	expected, err := envelope.AAD(conversationID, row.SenderID)
	if err != nil {
		return "", err
	}
	if !envelope.EqualAAD(expected, row.AAD) {
		return "", fmt.Errorf("%w: message %d associated data mismatch", model.ErrIntegrity, row.ID)
	}

	plaintext, err := envelope.Open(key, envelope.Sealed{
		Ciphertext: row.Ciphertext,
		Nonce:      row.Nonce,
		Tag:        row.Tag,
	}, expected)
	if err != nil {
		return "", fmt.Errorf("%w: message %d: %w", model.ErrIntegrity, row.ID, err)
	}
	return string(plaintext), nil
}

// announce publishes a new message to the conversation room and nudges the
// other participants' connections. Delivery is best effort.
func (s *Messaging) announce(ctx context.Context, msg model.PlainMessage) {
	if s.publisher == nil {
		return
	}

	s.publisher.Publish(msg.ConversationID, model.Event{
		Type:           model.EventNewMessage,
		ConversationID: msg.ConversationID,
		Message:        &msg,
	})

	participants, err := s.conversations.Participants(ctx, msg.ConversationID)
	if err != nil {
		s.logger.Warn("Messaging service: failed to list participants for notification",
			"conversation_id", msg.ConversationID,
			"error", err)
		return
	}
	for _, userID := range participants {
		if userID == msg.SenderID {
			continue
		}
		s.publisher.NotifyUser(userID, model.Event{
			Type:           model.EventThreadActivity,
			ConversationID: msg.ConversationID,
			LastMessageID:  msg.ID,
			SenderID:       msg.SenderID,
		})
	}
}
