package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

var _ model.ConversationStore = (*ConversationRepository)(nil)

type ConversationRepository struct {
	db *Connection
}

func NewConversationRepository(db *Connection) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// CreateWithParticipants inserts the conversation and its two participants in
// one transaction. A concurrent creator for the same pair hits the unique
// pair constraint and reads back the winner's row instead.
func (r *ConversationRepository) CreateWithParticipants(ctx context.Context, conversation model.Conversation, userA, userB int64) (model.Conversation, error) {
	low, high := model.NormalizePair(userA, userB)
	saved := model.Conversation{}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		const insert = `
			INSERT INTO conversations (creator_id, key_salt, pair_low, pair_high)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (pair_low, pair_high) DO NOTHING
			RETURNING id, creator_id, key_salt, pair_low, pair_high, created_at`

		err := tx.QueryRow(ctx, insert, conversation.CreatorID, conversation.KeySalt, low, high).Scan(
			&saved.ID, &saved.CreatorID, &saved.KeySalt, &saved.PairLow, &saved.PairHigh, &saved.CreatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			const existing = `
				SELECT id, creator_id, key_salt, pair_low, pair_high, created_at
				FROM conversations
				WHERE pair_low = $1 AND pair_high = $2`
			return tx.QueryRow(ctx, existing, low, high).Scan(
				&saved.ID, &saved.CreatorID, &saved.KeySalt, &saved.PairLow, &saved.PairHigh, &saved.CreatedAt,
			)
		}
		if err != nil {
			return fmt.Errorf("failed to insert conversation: %w", err)
		}

		const participants = `
			INSERT INTO conversation_participants (conversation_id, user_id)
			VALUES ($1, $2), ($1, $3)
			ON CONFLICT DO NOTHING`
		if _, err := tx.Exec(ctx, participants, saved.ID, low, high); err != nil {
			return fmt.Errorf("failed to insert participants: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Conversation{}, err
	}

	return saved, nil
}

func (r *ConversationRepository) FindByPair(ctx context.Context, userA, userB int64) (model.Conversation, error) {
	low, high := model.NormalizePair(userA, userB)
	const query = `
		SELECT id, creator_id, key_salt, pair_low, pair_high, created_at
		FROM conversations
		WHERE pair_low = $1 AND pair_high = $2`

	return r.scanOne(ctx, query, low, high)
}

func (r *ConversationRepository) GetByID(ctx context.Context, id int64) (model.Conversation, error) {
	const query = `
		SELECT id, creator_id, key_salt, pair_low, pair_high, created_at
		FROM conversations
		WHERE id = $1`

	return r.scanOne(ctx, query, id)
}

func (r *ConversationRepository) IsParticipant(ctx context.Context, conversationID, userID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM conversation_participants
			WHERE conversation_id = $1 AND user_id = $2
		)`

	var ok bool
	if err := r.db.QueryRow(ctx, query, conversationID, userID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *ConversationRepository) Participants(ctx context.Context, conversationID int64) ([]int64, error) {
	const query = `
		SELECT user_id FROM conversation_participants
		WHERE conversation_id = $1
		ORDER BY user_id`

	rows, err := r.db.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

// ListThreads returns the user's conversations that have at least one
// message, newest conversation first.
func (r *ConversationRepository) ListThreads(ctx context.Context, userID int64) ([]model.Thread, error) {
	const query = `
		SELECT c.id,
		       c.created_at,
		       ARRAY(
		           SELECT cp.user_id FROM conversation_participants cp
		           WHERE cp.conversation_id = c.id
		           ORDER BY cp.user_id
		       ) AS participants,
		       lm.id AS last_message_id,
		       COALESCE(mr.last_read_msg_id, 0) AS last_read_msg_id,
		       (
		           SELECT COUNT(*) FROM messages m
		           WHERE m.conversation_id = c.id
		             AND m.id > COALESCE(mr.last_read_msg_id, 0)
		       ) AS unread_count
		FROM conversations c
		JOIN conversation_participants p
		  ON p.conversation_id = c.id AND p.user_id = $1
		JOIN LATERAL (
		    SELECT id FROM messages
		    WHERE conversation_id = c.id
		    ORDER BY id DESC
		    LIMIT 1
		) lm ON TRUE
		LEFT JOIN message_reads mr
		  ON mr.conversation_id = c.id AND mr.user_id = $1
		ORDER BY c.created_at DESC, c.id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	threads := []model.Thread{}
	for rows.Next() {
		var t model.Thread
		if err := rows.Scan(
			&t.ConversationID, &t.CreatedAt, &t.Participants,
			&t.LastMessageID, &t.LastReadMsgID, &t.UnreadCount,
		); err != nil {
			return nil, err
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return threads, nil
}

func (r *ConversationRepository) scanOne(ctx context.Context, query string, args ...any) (model.Conversation, error) {
	var c model.Conversation
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.CreatorID, &c.KeySalt, &c.PairLow, &c.PairHigh, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Conversation{}, model.ErrNotFound
		}
		return model.Conversation{}, err
	}
	return c, nil
}
