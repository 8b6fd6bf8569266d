package mocks

import (
	"context"
	"io"
	"net"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

// MessagingService is a mock of the messaging operations used by the
// transports.
type MessagingService struct {
	mock.Mock
}

func NewMessagingService(t TestingT) *MessagingService {
	m := &MessagingService{}
	register(&m.Mock, t)
	return m
}

func (_m *MessagingService) GetOrCreateConversation(ctx context.Context, actorID int64, peerID int64, capabilityToken string) (model.Conversation, error) {
	ret := _m.Called(ctx, actorID, peerID, capabilityToken)
	return ret.Get(0).(model.Conversation), ret.Error(1)
}

func (_m *MessagingService) PostMessage(ctx context.Context, conversationID int64, senderID int64, text string) (model.PlainMessage, error) {
	ret := _m.Called(ctx, conversationID, senderID, text)
	return ret.Get(0).(model.PlainMessage), ret.Error(1)
}

func (_m *MessagingService) GetMessages(ctx context.Context, conversationID int64, callerID int64) ([]model.PlainMessage, error) {
	ret := _m.Called(ctx, conversationID, callerID)
	msgs, _ := ret.Get(0).([]model.PlainMessage)
	return msgs, ret.Error(1)
}

func (_m *MessagingService) ListThreads(ctx context.Context, callerID int64) ([]model.Thread, error) {
	ret := _m.Called(ctx, callerID)
	threads, _ := ret.Get(0).([]model.Thread)
	return threads, ret.Error(1)
}

func (_m *MessagingService) MarkRead(ctx context.Context, conversationID int64, userID int64, messageID int64) (int64, error) {
	ret := _m.Called(ctx, conversationID, userID, messageID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MessagingService) UnreadCount(ctx context.Context, conversationID int64, userID int64) (int64, error) {
	ret := _m.Called(ctx, conversationID, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MessagingService) ArchiveConversation(ctx context.Context, conversationID int64, callerID int64) (string, error) {
	ret := _m.Called(ctx, conversationID, callerID)
	return ret.String(0), ret.Error(1)
}

func (_m *MessagingService) OpenArchive(ctx context.Context, conversationID int64, callerID int64, name string) (io.ReadCloser, error) {
	ret := _m.Called(ctx, conversationID, callerID, name)
	rc, _ := ret.Get(0).(io.ReadCloser)
	return rc, ret.Error(1)
}

func (_m *MessagingService) CanJoin(ctx context.Context, conversationID int64, userID int64) error {
	ret := _m.Called(ctx, conversationID, userID)
	return ret.Error(0)
}

// PresenceService is a mock of the presence lookup.
type PresenceService struct {
	mock.Mock
}

func NewPresenceService(t TestingT) *PresenceService {
	m := &PresenceService{}
	register(&m.Mock, t)
	return m
}

func (_m *PresenceService) Get(ctx context.Context, actorID int64, peerID int64) (model.Presence, error) {
	ret := _m.Called(ctx, actorID, peerID)
	return ret.Get(0).(model.Presence), ret.Error(1)
}

// TokenService is a mock of the bearer and connect token operations.
type TokenService struct {
	mock.Mock
}

func NewTokenService(t TestingT) *TokenService {
	m := &TokenService{}
	register(&m.Mock, t)
	return m
}

func (_m *TokenService) GetUserID(ctx context.Context, token string) (int64, error) {
	ret := _m.Called(ctx, token)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *TokenService) IssueConnectToken(ctx context.Context, userID int64) (string, time.Time, error) {
	ret := _m.Called(ctx, userID)
	return ret.String(0), ret.Get(1).(time.Time), ret.Error(2)
}

func (_m *TokenService) VerifyConnectToken(ctx context.Context, token string) (int64, error) {
	ret := _m.Called(ctx, token)
	return ret.Get(0).(int64), ret.Error(1)
}

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func NewTokenManager(t TestingT) *TokenManager {
	m := &TokenManager{}
	register(&m.Mock, t)
	return m
}

func (_m *TokenManager) GenerateAccessToken(userID int64) (string, error) {
	ret := _m.Called(userID)
	return ret.String(0), ret.Error(1)
}

func (_m *TokenManager) ParseAccessToken(token string) (int64, error) {
	ret := _m.Called(token)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *TokenManager) GenerateConnectToken(userID int64) (string, time.Time, error) {
	ret := _m.Called(userID)
	return ret.String(0), ret.Get(1).(time.Time), ret.Error(2)
}

func (_m *TokenManager) ParseConnectToken(token string) (int64, error) {
	ret := _m.Called(token)
	return ret.Get(0).(int64), ret.Error(1)
}

// SecurityLayer is a mock of model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

func NewSecurityLayer(t TestingT) *SecurityLayer {
	m := &SecurityLayer{}
	register(&m.Mock, t)
	return m
}

func (_m *SecurityLayer) Listen(protocol string, addr string) (net.Listener, error) {
	ret := _m.Called(protocol, addr)
	l, _ := ret.Get(0).(net.Listener)
	return l, ret.Error(1)
}

// ContextManager is a mock of model.ContextManager.
type ContextManager struct {
	mock.Mock
}

func NewContextManager(t TestingT) *ContextManager {
	m := &ContextManager{}
	register(&m.Mock, t)
	return m
}

func (_m *ContextManager) SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	ret := _m.Called(ctx, userID)
	return ret.Get(0).(context.Context)
}

func (_m *ContextManager) GetUserIDFromContext(ctx context.Context) (int64, bool) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Bool(1)
}
