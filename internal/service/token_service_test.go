package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servermocks "github.com/Jack-Berry/UMC-Back/internal/mocks"
	"github.com/Jack-Berry/UMC-Back/internal/model"
	"github.com/Jack-Berry/UMC-Back/internal/testutil"
)

func TestTokenService_GetUserID(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	manager.On("ParseAccessToken", "access").Return(int64(5), nil).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())
	userID, err := svc.GetUserID(context.Background(), "access")
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
}

func TestTokenService_GetUserID_Invalid(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	manager.On("ParseAccessToken", "bad").Return(int64(0), assert.AnError).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())
	_, err := svc.GetUserID(context.Background(), "bad")
	require.Error(t, err)
}

func TestTokenService_IssueConnectToken(t *testing.T) {
	expiresAt := time.Now().Add(time.Minute)
	manager := servermocks.NewTokenManager(t)
	manager.On("GenerateConnectToken", int64(3)).Return("connect", expiresAt, nil).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())
	tok, exp, err := svc.IssueConnectToken(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "connect", tok)
	assert.Equal(t, expiresAt, exp)
}

func TestTokenService_IssueConnectToken_Errors(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	svc := NewTokenService(manager, testutil.MakeNoopLogger())

	_, _, err := svc.IssueConnectToken(context.Background(), 0)
	assert.ErrorIs(t, err, model.ErrValidation)

	manager.On("GenerateConnectToken", int64(3)).Return("", time.Time{}, assert.AnError).Once()
	_, _, err = svc.IssueConnectToken(context.Background(), 3)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_VerifyConnectToken(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	manager.On("ParseConnectToken", "connect").Return(int64(9), nil).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())
	userID, err := svc.VerifyConnectToken(context.Background(), "connect")
	require.NoError(t, err)
	assert.Equal(t, int64(9), userID)
}
