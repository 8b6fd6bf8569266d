package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

var _ model.MessageStore = (*MessageRepository)(nil)

type MessageRepository struct {
	db *Connection
}

func NewMessageRepository(db *Connection) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Append(ctx context.Context, message model.Message) (model.Message, error) {
	const query = `
		INSERT INTO messages (conversation_id, sender_id, ciphertext, nonce, tag, aad)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	saved := message
	err := r.db.QueryRow(ctx, query,
		message.ConversationID, message.SenderID,
		message.Ciphertext, message.Nonce, message.Tag, message.AAD,
	).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to insert message: %w", err)
	}

	return saved, nil
}

func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	const query = `
		SELECT id, conversation_id, sender_id, ciphertext, nonce, tag, aad, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}

	messages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Message, error) {
		var m model.Message
		err := row.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Ciphertext, &m.Nonce, &m.Tag, &m.AAD, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// LatestID returns the highest message id of the conversation, or zero for
// an empty conversation.
func (r *MessageRepository) LatestID(ctx context.Context, conversationID int64) (int64, error) {
	const query = `SELECT COALESCE(MAX(id), 0) FROM messages WHERE conversation_id = $1`

	var id int64
	if err := r.db.QueryRow(ctx, query, conversationID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *MessageRepository) CountAfter(ctx context.Context, conversationID, afterID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM messages WHERE conversation_id = $1 AND id > $2`

	var n int64
	if err := r.db.QueryRow(ctx, query, conversationID, afterID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
