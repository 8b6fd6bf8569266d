package service

import (
	"context"

	"github.com/Jack-Berry/UMC-Back/internal/logger"
	"github.com/Jack-Berry/UMC-Back/internal/model"
)

// Gate decides whether two users may share a conversation.
type Gate struct {
	oracle   model.RelationshipOracle
	verifier model.CapabilityVerifier
	logger   *logger.Logger
}

// NewGate creates a Gate. A nil verifier disables capability tokens.
func NewGate(oracle model.RelationshipOracle, verifier model.CapabilityVerifier, logger *logger.Logger) *Gate {
	return &Gate{oracle: oracle, verifier: verifier, logger: logger}
}

// Authorize allows mutually connected users, and otherwise users presenting a
// valid capability token bound to exactly this pair. An oracle failure is
// returned as an error and never treated as permission.
func (g *Gate) Authorize(ctx context.Context, actorID, peerID int64, capabilityToken string) (bool, error) {
	connected, err := g.oracle.AreConnected(ctx, actorID, peerID)
	if err != nil {
		g.logger.Error("Gate: relationship lookup failed",
			"actor_id", actorID,
			"peer_id", peerID,
			"error", err)
		return false, storeError("failed to check relationship", err)
	}
	if connected {
		return true, nil
	}

	if capabilityToken == "" || g.verifier == nil {
		return false, nil
	}

	allowed := g.verifier.VerifyPair(capabilityToken, actorID, peerID)
	g.logger.Debug("Gate: capability token checked",
		"actor_id", actorID,
		"peer_id", peerID,
		"allowed", allowed)
	return allowed, nil
}
