package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

// ConversationStore is a mock of model.ConversationStore.
type ConversationStore struct {
	mock.Mock
}

func NewConversationStore(t TestingT) *ConversationStore {
	m := &ConversationStore{}
	register(&m.Mock, t)
	return m
}

func (_m *ConversationStore) CreateWithParticipants(ctx context.Context, conversation model.Conversation, userA int64, userB int64) (model.Conversation, error) {
	ret := _m.Called(ctx, conversation, userA, userB)
	return ret.Get(0).(model.Conversation), ret.Error(1)
}

func (_m *ConversationStore) FindByPair(ctx context.Context, userA int64, userB int64) (model.Conversation, error) {
	ret := _m.Called(ctx, userA, userB)
	return ret.Get(0).(model.Conversation), ret.Error(1)
}

func (_m *ConversationStore) GetByID(ctx context.Context, id int64) (model.Conversation, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.Conversation), ret.Error(1)
}

func (_m *ConversationStore) IsParticipant(ctx context.Context, conversationID int64, userID int64) (bool, error) {
	ret := _m.Called(ctx, conversationID, userID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *ConversationStore) Participants(ctx context.Context, conversationID int64) ([]int64, error) {
	ret := _m.Called(ctx, conversationID)
	ids, _ := ret.Get(0).([]int64)
	return ids, ret.Error(1)
}

func (_m *ConversationStore) ListThreads(ctx context.Context, userID int64) ([]model.Thread, error) {
	ret := _m.Called(ctx, userID)
	threads, _ := ret.Get(0).([]model.Thread)
	return threads, ret.Error(1)
}

// MessageStore is a mock of model.MessageStore.
type MessageStore struct {
	mock.Mock
}

func NewMessageStore(t TestingT) *MessageStore {
	m := &MessageStore{}
	register(&m.Mock, t)
	return m
}

func (_m *MessageStore) Append(ctx context.Context, message model.Message) (model.Message, error) {
	ret := _m.Called(ctx, message)
	return ret.Get(0).(model.Message), ret.Error(1)
}

func (_m *MessageStore) ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	ret := _m.Called(ctx, conversationID)
	msgs, _ := ret.Get(0).([]model.Message)
	return msgs, ret.Error(1)
}

func (_m *MessageStore) LatestID(ctx context.Context, conversationID int64) (int64, error) {
	ret := _m.Called(ctx, conversationID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MessageStore) CountAfter(ctx context.Context, conversationID int64, afterID int64) (int64, error) {
	ret := _m.Called(ctx, conversationID, afterID)
	return ret.Get(0).(int64), ret.Error(1)
}

// ReadMarkerStore is a mock of model.ReadMarkerStore.
type ReadMarkerStore struct {
	mock.Mock
}

func NewReadMarkerStore(t TestingT) *ReadMarkerStore {
	m := &ReadMarkerStore{}
	register(&m.Mock, t)
	return m
}

func (_m *ReadMarkerStore) Advance(ctx context.Context, conversationID int64, userID int64, messageID int64) (int64, error) {
	ret := _m.Called(ctx, conversationID, userID, messageID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *ReadMarkerStore) Get(ctx context.Context, conversationID int64, userID int64) (int64, error) {
	ret := _m.Called(ctx, conversationID, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

// RelationshipOracle is a mock of model.RelationshipOracle.
type RelationshipOracle struct {
	mock.Mock
}

func NewRelationshipOracle(t TestingT) *RelationshipOracle {
	m := &RelationshipOracle{}
	register(&m.Mock, t)
	return m
}

func (_m *RelationshipOracle) AreConnected(ctx context.Context, userA int64, userB int64) (bool, error) {
	ret := _m.Called(ctx, userA, userB)
	return ret.Bool(0), ret.Error(1)
}

// CapabilityVerifier is a mock of model.CapabilityVerifier.
type CapabilityVerifier struct {
	mock.Mock
}

func NewCapabilityVerifier(t TestingT) *CapabilityVerifier {
	m := &CapabilityVerifier{}
	register(&m.Mock, t)
	return m
}

func (_m *CapabilityVerifier) VerifyPair(token string, actorID int64, peerID int64) bool {
	ret := _m.Called(token, actorID, peerID)
	return ret.Bool(0)
}

// Publisher is a mock of model.Publisher.
type Publisher struct {
	mock.Mock
}

func NewPublisher(t TestingT) *Publisher {
	m := &Publisher{}
	register(&m.Mock, t)
	return m
}

func (_m *Publisher) Publish(conversationID int64, event model.Event) int {
	ret := _m.Called(conversationID, event)
	return ret.Int(0)
}

func (_m *Publisher) NotifyUser(userID int64, event model.Event) int {
	ret := _m.Called(userID, event)
	return ret.Int(0)
}

// Storage is a mock of model.Storage.
type Storage struct {
	mock.Mock
}

func NewStorage(t TestingT) *Storage {
	m := &Storage{}
	register(&m.Mock, t)
	return m
}

func (_m *Storage) Upload(ctx context.Context, key string, reader io.Reader, size int64) error {
	ret := _m.Called(ctx, key, reader, size)
	return ret.Error(0)
}

func (_m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	ret := _m.Called(ctx, key)
	rc, _ := ret.Get(0).(io.ReadCloser)
	return rc, ret.Error(1)
}

func (_m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}
