package service

import (
	"context"
	"fmt"

	"github.com/Jack-Berry/UMC-Back/internal/logger"
	"github.com/Jack-Berry/UMC-Back/internal/model"
)

// Presence exposes the online status of connected peers.
type Presence struct {
	tracker model.PresenceTracker
	gate    *Gate
	logger  *logger.Logger
}

func NewPresence(tracker model.PresenceTracker, gate *Gate, logger *logger.Logger) *Presence {
	return &Presence{tracker: tracker, gate: gate, logger: logger}
}

// Get returns the presence of peerID. Only the user themselves and
// mutually connected users may see it.
func (s *Presence) Get(ctx context.Context, actorID, peerID int64) (model.Presence, error) {
	if peerID <= 0 {
		return model.Presence{}, validationError("invalid user id %d", peerID)
	}

	if actorID != peerID {
		allowed, err := s.gate.Authorize(ctx, actorID, peerID, "")
		if err != nil {
			return model.Presence{}, err
		}
		if !allowed {
			return model.Presence{}, fmt.Errorf("%w: users are not connected", model.ErrForbidden)
		}
	}

	p := model.Presence{UserID: peerID, Online: s.tracker.Online(peerID)}
	if p.Online {
		return p, nil
	}

	seen, ok, err := s.tracker.LastSeen(ctx, peerID)
	if err != nil {
		s.logger.Warn("Presence service: failed to read last seen", "user_id", peerID, "error", err)
		return p, nil
	}
	if ok {
		p.LastSeen = &seen
	}
	return p, nil
}
