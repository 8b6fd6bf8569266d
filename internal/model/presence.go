package model

import (
	"context"
	"time"
)

// LastSeenStore records when a user's last live connection closed.
type LastSeenStore interface {
	Record(ctx context.Context, userID int64, at time.Time) error
	Get(ctx context.Context, userID int64) (time.Time, bool, error)
}

// Presence describes whether a user currently holds a live connection.
type Presence struct {
	UserID   int64      `json:"userId"`
	Online   bool       `json:"online"`
	LastSeen *time.Time `json:"lastSeen,omitempty"`
}

// PresenceTracker reports live presence of users.
type PresenceTracker interface {
	Online(userID int64) bool
	LastSeen(ctx context.Context, userID int64) (time.Time, bool, error)
}
