package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

var (
	_ model.ConversationStore  = (*Store)(nil)
	_ model.MessageStore       = (*Store)(nil)
	_ model.ReadMarkerStore    = (*Store)(nil)
	_ model.RelationshipOracle = (*Store)(nil)
)

type conversationRow struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	CreatorID int64  `gorm:"not null"`
	KeySalt   []byte `gorm:"not null"`
	PairLow   int64  `gorm:"not null;uniqueIndex:idx_conversation_pair"`
	PairHigh  int64  `gorm:"not null;uniqueIndex:idx_conversation_pair"`
	CreatedAt time.Time
}

func (conversationRow) TableName() string { return "conversations" }

type participantRow struct {
	ConversationID int64 `gorm:"primaryKey"`
	UserID         int64 `gorm:"primaryKey;index"`
}

func (participantRow) TableName() string { return "conversation_participants" }

type messageRow struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	ConversationID int64  `gorm:"not null;index"`
	SenderID       int64  `gorm:"not null"`
	Ciphertext     []byte `gorm:"not null"`
	Nonce          []byte `gorm:"not null"`
	Tag            []byte `gorm:"not null"`
	AAD            []byte `gorm:"column:aad;not null"`
	CreatedAt      time.Time
}

func (messageRow) TableName() string { return "messages" }

type readRow struct {
	ConversationID int64 `gorm:"primaryKey"`
	UserID         int64 `gorm:"primaryKey"`
	LastReadMsgID  int64 `gorm:"not null"`
	UpdatedAt      time.Time
}

func (readRow) TableName() string { return "message_reads" }

type friendRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	RequesterID int64  `gorm:"not null;uniqueIndex:idx_friend_pair"`
	ReceiverID  int64  `gorm:"not null;uniqueIndex:idx_friend_pair"`
	Status      string `gorm:"not null;default:pending"`
	CreatedAt   time.Time
}

func (friendRow) TableName() string { return "friends" }

// Store is a single-node backend for every messaging store contract.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	// SQLite allows one writer; a single connection serializes all access.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&conversationRow{}, &participantRow{}, &messageRow{}, &readRow{}, &friendRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) CreateWithParticipants(ctx context.Context, conversation model.Conversation, userA, userB int64) (model.Conversation, error) {
	low, high := model.NormalizePair(userA, userB)
	row := conversationRow{
		CreatorID: conversation.CreatorID,
		KeySalt:   conversation.KeySalt,
		PairLow:   low,
		PairHigh:  high,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var existing conversationRow
			if err := tx.Where("pair_low = ? AND pair_high = ?", low, high).First(&existing).Error; err != nil {
				return err
			}
			row = existing
			return nil
		}
		participants := []participantRow{
			{ConversationID: row.ID, UserID: low},
			{ConversationID: row.ID, UserID: high},
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&participants).Error
	})
	if err != nil {
		return model.Conversation{}, fmt.Errorf("failed to create conversation: %w", err)
	}

	return row.toModel(), nil
}

func (s *Store) FindByPair(ctx context.Context, userA, userB int64) (model.Conversation, error) {
	low, high := model.NormalizePair(userA, userB)
	var row conversationRow
	err := s.db.WithContext(ctx).Where("pair_low = ? AND pair_high = ?", low, high).First(&row).Error
	if err != nil {
		return model.Conversation{}, notFound(err)
	}
	return row.toModel(), nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (model.Conversation, error) {
	var row conversationRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return model.Conversation{}, notFound(err)
	}
	return row.toModel(), nil
}

func (s *Store) IsParticipant(ctx context.Context, conversationID, userID int64) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&participantRow{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) Participants(ctx context.Context, conversationID int64) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).Model(&participantRow{}).
		Where("conversation_id = ?", conversationID).
		Order("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *Store) ListThreads(ctx context.Context, userID int64) ([]model.Thread, error) {
	db := s.db.WithContext(ctx)

	var rows []conversationRow
	err := db.Joins("JOIN conversation_participants p ON p.conversation_id = conversations.id AND p.user_id = ?", userID).
		Where("EXISTS (SELECT 1 FROM messages m WHERE m.conversation_id = conversations.id)").
		Order("conversations.created_at DESC, conversations.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	threads := make([]model.Thread, 0, len(rows))
	for _, row := range rows {
		participants, err := s.Participants(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		lastID, err := s.LatestID(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		marker, err := s.Get(ctx, row.ID, userID)
		if err != nil {
			return nil, err
		}
		unread, err := s.CountAfter(ctx, row.ID, marker)
		if err != nil {
			return nil, err
		}
		threads = append(threads, model.Thread{
			ConversationID: row.ID,
			Participants:   participants,
			UnreadCount:    unread,
			LastMessageID:  lastID,
			LastReadMsgID:  marker,
			CreatedAt:      row.CreatedAt,
		})
	}

	return threads, nil
}

func (s *Store) Append(ctx context.Context, message model.Message) (model.Message, error) {
	row := messageRow{
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Ciphertext:     message.Ciphertext,
		Nonce:          message.Nonce,
		Tag:            message.Tag,
		AAD:            message.AAD,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.Message{}, fmt.Errorf("failed to insert message: %w", err)
	}
	return row.toModel(), nil
}

func (s *Store) ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	var rows []messageRow
	err := s.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	messages := make([]model.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toModel())
	}
	return messages, nil
}

func (s *Store) LatestID(ctx context.Context, conversationID int64) (int64, error) {
	var id int64
	err := s.db.WithContext(ctx).Model(&messageRow{}).
		Where("conversation_id = ?", conversationID).
		Select("COALESCE(MAX(id), 0)").
		Scan(&id).Error
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) CountAfter(ctx context.Context, conversationID, afterID int64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&messageRow{}).
		Where("conversation_id = ? AND id > ?", conversationID, afterID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) Advance(ctx context.Context, conversationID, userID, messageID int64) (int64, error) {
	row := readRow{ConversationID: conversationID, UserID: userID, LastReadMsgID: messageID}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "conversation_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"last_read_msg_id": gorm.Expr("MAX(message_reads.last_read_msg_id, excluded.last_read_msg_id)"),
				"updated_at":       time.Now(),
			}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
		return tx.Where("conversation_id = ? AND user_id = ?", conversationID, userID).First(&row).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to advance read marker: %w", err)
	}
	return row.LastReadMsgID, nil
}

func (s *Store) Get(ctx context.Context, conversationID, userID int64) (int64, error) {
	var row readRow
	err := s.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return row.LastReadMsgID, nil
}

// AreConnected reports whether an accepted friendship exists in either
// direction.
func (s *Store) AreConnected(ctx context.Context, userA, userB int64) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&friendRow{}).
		Where("((requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)) AND status = ?",
			userA, userB, userB, userA, "accepted").
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetFriendship records a friendship with the given status, replacing any
// existing status for the same requester and receiver.
func (s *Store) SetFriendship(ctx context.Context, requesterID, receiverID int64, status string) error {
	row := friendRow{RequesterID: requesterID, ReceiverID: receiverID, Status: status}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "requester_id"}, {Name: "receiver_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(&row).Error
}

func (r conversationRow) toModel() model.Conversation {
	return model.Conversation{
		ID:        r.ID,
		CreatorID: r.CreatorID,
		KeySalt:   r.KeySalt,
		PairLow:   r.PairLow,
		PairHigh:  r.PairHigh,
		CreatedAt: r.CreatedAt,
	}
}

func (r messageRow) toModel() model.Message {
	return model.Message{
		ID:             r.ID,
		ConversationID: r.ConversationID,
		SenderID:       r.SenderID,
		Ciphertext:     r.Ciphertext,
		Nonce:          r.Nonce,
		Tag:            r.Tag,
		AAD:            r.AAD,
		CreatedAt:      r.CreatedAt,
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	return err
}
