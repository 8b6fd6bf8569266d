package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Jack-Berry/UMC-Back/internal/logger"
	"github.com/Jack-Berry/UMC-Back/internal/model"
)

// TokenService resolves bearer tokens and issues realtime connect tokens.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// GetUserID returns the user authenticated by an access token.
func (s *TokenService) GetUserID(_ context.Context, token string) (int64, error) {
	return s.manager.ParseAccessToken(token)
}

// IssueConnectToken mints a short-lived token used to open one realtime
// connection.
func (s *TokenService) IssueConnectToken(_ context.Context, userID int64) (string, time.Time, error) {
	if userID <= 0 {
		return "", time.Time{}, validationError("invalid user id %d", userID)
	}

	token, expiresAt, err := s.manager.GenerateConnectToken(userID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue connect token: %w", err)
	}

	s.logger.Debug("Token service: connect token issued", "user_id", userID, "expires_at", expiresAt)
	return token, expiresAt, nil
}

// VerifyConnectToken returns the user a connect token was issued to.
func (s *TokenService) VerifyConnectToken(_ context.Context, token string) (int64, error) {
	return s.manager.ParseConnectToken(token)
}
