package model

import "time"

// TokenManager issues and validates the bearer tokens used by the transports.
// Access tokens are minted by the external authentication layer with the same
// secret; connect tokens authenticate a websocket once at handshake time.
type TokenManager interface {
	GenerateAccessToken(userID int64) (string, error)
	ParseAccessToken(token string) (int64, error)
	GenerateConnectToken(userID int64) (token string, expiresAt time.Time, err error)
	ParseConnectToken(token string) (int64, error)
}

// CapabilityVerifier validates ephemeral capability tokens that allow one
// conversation between two users that are not connected.
type CapabilityVerifier interface {
	VerifyPair(token string, actorID, peerID int64) bool
}
