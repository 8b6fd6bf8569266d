package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

var _ model.ReadMarkerStore = (*ReadMarkerRepository)(nil)

type ReadMarkerRepository struct {
	db *Connection
}

func NewReadMarkerRepository(db *Connection) *ReadMarkerRepository {
	return &ReadMarkerRepository{db: db}
}

// Advance upserts the marker, never moving it backwards.
func (r *ReadMarkerRepository) Advance(ctx context.Context, conversationID, userID, messageID int64) (int64, error) {
	const query = `
		INSERT INTO message_reads (conversation_id, user_id, last_read_msg_id, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (conversation_id, user_id) DO UPDATE
		SET last_read_msg_id = GREATEST(message_reads.last_read_msg_id, EXCLUDED.last_read_msg_id),
		    updated_at = now()
		RETURNING last_read_msg_id`

	var stored int64
	if err := r.db.QueryRow(ctx, query, conversationID, userID, messageID).Scan(&stored); err != nil {
		return 0, err
	}
	return stored, nil
}

func (r *ReadMarkerRepository) Get(ctx context.Context, conversationID, userID int64) (int64, error) {
	const query = `
		SELECT last_read_msg_id FROM message_reads
		WHERE conversation_id = $1 AND user_id = $2`

	var id int64
	err := r.db.QueryRow(ctx, query, conversationID, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return id, nil
}
