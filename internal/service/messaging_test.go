package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jack-Berry/UMC-Back/internal/crypto/envelope"
	servermocks "github.com/Jack-Berry/UMC-Back/internal/mocks"
	"github.com/Jack-Berry/UMC-Back/internal/model"
	"github.com/Jack-Berry/UMC-Back/internal/repository/sqlite"
	"github.com/Jack-Berry/UMC-Back/internal/testutil"
	"github.com/Jack-Berry/UMC-Back/internal/token"
)

const (
	alice int64 = 1
	bob   int64 = 2
	carol int64 = 3
)

type fixture struct {
	svc        *Messaging
	store      *sqlite.Store
	capability *token.Capability
}

type fixtureOptions struct {
	publisher model.Publisher
	storage   model.Storage
}

func newFixture(t *testing.T, opts fixtureOptions) *fixture {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "messaging.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	keys, err := envelope.NewKeyDeriver(bytes.Repeat([]byte{0x42}, envelope.KeySize))
	require.NoError(t, err)

	capability := token.NewCapability("match-secret", 0)
	log := testutil.MakeNoopLogger()

	svc := NewMessaging(MessagingDeps{
		Conversations: store,
		Messages:      store,
		Markers:       store,
		Gate:          NewGate(store, capability, log),
		Keys:          keys,
		Publisher:     opts.publisher,
		Storage:       opts.storage,
	}, log)

	return &fixture{svc: svc, store: store, capability: capability}
}

func (f *fixture) befriend(t *testing.T, a, b int64) {
	t.Helper()
	require.NoError(t, f.store.SetFriendship(context.Background(), a, b, "accepted"))
}

func (f *fixture) conversation(t *testing.T, a, b int64) model.Conversation {
	t.Helper()
	f.befriend(t, a, b)
	conv, err := f.svc.GetOrCreateConversation(context.Background(), a, b, "")
	require.NoError(t, err)
	return conv
}

func (f *fixture) post(t *testing.T, conversationID, sender int64, n int) []model.PlainMessage {
	t.Helper()
	out := make([]model.PlainMessage, 0, n)
	for i := 0; i < n; i++ {
		m, err := f.svc.PostMessage(context.Background(), conversationID, sender, fmt.Sprintf("message %d", i))
		require.NoError(t, err)
		out = append(out, m)
	}
	return out
}

func TestMessaging_GetOrCreateConversation_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})
	f.befriend(t, alice, bob)

	first, err := f.svc.GetOrCreateConversation(ctx, alice, bob, "")
	require.NoError(t, err)
	assert.Positive(t, first.ID)
	assert.Len(t, first.KeySalt, model.KeySaltSize)
	assert.Equal(t, alice, first.CreatorID)

	second, err := f.svc.GetOrCreateConversation(ctx, alice, bob, "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	reversed, err := f.svc.GetOrCreateConversation(ctx, bob, alice, "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, reversed.ID)
	assert.Equal(t, first.KeySalt, reversed.KeySalt)

	participants, err := f.store.Participants(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{alice, bob}, participants)
}

func TestMessaging_GetOrCreateConversation_Concurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})
	f.befriend(t, alice, bob)

	const workers = 6
	ids := make([]int64, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			actor, peer := alice, bob
			if i%2 == 1 {
				actor, peer = bob, alice
			}
			c, err := f.svc.GetOrCreateConversation(ctx, actor, peer, "")
			ids[i], errs[i] = c.ID, err
		}(i)
	}
	wg.Wait()

	for i := range ids {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}
}

func TestMessaging_GetOrCreateConversation_Forbidden(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})

	_, err := f.svc.GetOrCreateConversation(ctx, alice, bob, "")
	assert.ErrorIs(t, err, model.ErrForbidden)

	require.NoError(t, f.store.SetFriendship(ctx, alice, bob, "pending"))
	_, err = f.svc.GetOrCreateConversation(ctx, alice, bob, "")
	assert.ErrorIs(t, err, model.ErrForbidden)

	_, err = f.store.FindByPair(ctx, alice, bob)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestMessaging_GetOrCreateConversation_CapabilityToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})

	tok, err := f.capability.Issue(alice, bob)
	require.NoError(t, err)

	conv, err := f.svc.GetOrCreateConversation(ctx, alice, bob, tok)
	require.NoError(t, err)
	assert.Positive(t, conv.ID)

	_, err = f.svc.GetOrCreateConversation(ctx, alice, carol, tok)
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestMessaging_GetOrCreateConversation_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})

	for _, peer := range []int64{0, -4, alice} {
		_, err := f.svc.GetOrCreateConversation(ctx, alice, peer, "")
		assert.ErrorIs(t, err, model.ErrValidation, "peer %d", peer)
	}
}

func TestMessaging_PostAndGetMessages(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})
	conv := f.conversation(t, alice, bob)

	posted, err := f.svc.PostMessage(ctx, conv.ID, alice, "hello bob")
	require.NoError(t, err)
	assert.Positive(t, posted.ID)
	assert.Equal(t, "hello bob", posted.Text)
	assert.Equal(t, alice, posted.SenderID)
	assert.Equal(t, conv.ID, posted.ConversationID)

	reply, err := f.svc.PostMessage(ctx, conv.ID, bob, "hi alice ✓")
	require.NoError(t, err)
	assert.Greater(t, reply.ID, posted.ID)

	stored, err := f.store.ListByConversation(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.NotContains(t, string(stored[0].Ciphertext), "hello")
	assert.Len(t, stored[0].Nonce, envelope.NonceSize)
	assert.Len(t, stored[0].Tag, envelope.TagSize)

	for _, reader := range []int64{alice, bob} {
		msgs, err := f.svc.GetMessages(ctx, conv.ID, reader)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "hello bob", msgs[0].Text)
		assert.Equal(t, "hi alice ✓", msgs[1].Text)
		assert.Equal(t, bob, msgs[1].SenderID)
	}

	marker, err := f.store.Get(ctx, conv.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, posted.ID, marker)
}

func TestMessaging_PostMessage_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})
	conv := f.conversation(t, alice, bob)

	tests := []struct {
		name           string
		conversationID int64
		sender         int64
		text           string
		wantErr        error
	}{
		{name: "empty text", conversationID: conv.ID, sender: alice, text: "", wantErr: model.ErrValidation},
		{name: "blank text", conversationID: conv.ID, sender: alice, text: "  \n\t", wantErr: model.ErrValidation},
		{name: "too long", conversationID: conv.ID, sender: alice, text: strings.Repeat("é", model.MaxMessageLength+1), wantErr: model.ErrValidation},
		{name: "unknown conversation", conversationID: conv.ID + 1000, sender: alice, text: "hi", wantErr: model.ErrNotFound},
		{name: "not a participant", conversationID: conv.ID, sender: carol, text: "hi", wantErr: model.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.PostMessage(ctx, tt.conversationID, tt.sender, tt.text)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	msg, err := f.svc.PostMessage(ctx, conv.ID, alice, strings.Repeat("é", model.MaxMessageLength))
	require.NoError(t, err)
	assert.Positive(t, msg.ID)
}

func TestMessaging_GetMessages_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})
	conv := f.conversation(t, alice, bob)

	_, err := f.svc.GetMessages(ctx, conv.ID, carol)
	assert.ErrorIs(t, err, model.ErrForbidden)

	_, err = f.svc.GetMessages(ctx, conv.ID+1000, alice)
	assert.ErrorIs(t, err, model.ErrNotFound)

	msgs, err := f.svc.GetMessages(ctx, conv.ID, alice)
	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestMessaging_GetMessages_Integrity(t *testing.T) {
	ctx := context.Background()
	keys, err := envelope.NewKeyDeriver(bytes.Repeat([]byte{0x42}, envelope.KeySize))
	require.NoError(t, err)

	conv := model.Conversation{ID: 7, CreatorID: alice, KeySalt: bytes.Repeat([]byte{1}, model.KeySaltSize)}
	key, err := keys.DeriveKey(conv.KeySalt, conv.ID)
	require.NoError(t, err)

	seal := func(sender int64, text string) model.Message {
		aad, err := envelope.AAD(conv.ID, sender)
		require.NoError(t, err)
		s, err := envelope.Seal(key, []byte(text), aad)
		require.NoError(t, err)
		return model.Message{ConversationID: conv.ID, SenderID: sender, Ciphertext: s.Ciphertext, Nonce: s.Nonce, Tag: s.Tag, AAD: aad}
	}

	good := seal(alice, "first")
	good.ID = 1

	flipCiphertext := seal(bob, "second")
	flipCiphertext.ID = 2
	flipCiphertext.Ciphertext[0] ^= 0xff

	flipTag := seal(bob, "second")
	flipTag.ID = 2
	flipTag.Tag[3] ^= 0x01

	wrongSender := seal(bob, "second")
	wrongSender.ID = 2
	wrongSender.SenderID = alice

	swappedAAD := seal(bob, "second")
	swappedAAD.ID = 2
	swappedAAD.AAD = good.AAD

	tests := []struct {
		name string
		rows []model.Message
	}{
		{name: "ciphertext tampered", rows: []model.Message{good, flipCiphertext}},
		{name: "tag tampered", rows: []model.Message{good, flipTag}},
		{name: "sender rewritten", rows: []model.Message{good, wrongSender}},
		{name: "aad swapped", rows: []model.Message{good, swappedAAD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conversations := servermocks.NewConversationStore(t)
			messages := servermocks.NewMessageStore(t)
			conversations.On("GetByID", mock.Anything, conv.ID).Return(conv, nil).Once()
			conversations.On("IsParticipant", mock.Anything, conv.ID, alice).Return(true, nil).Once()
			messages.On("ListByConversation", mock.Anything, conv.ID).Return(tt.rows, nil).Once()

			svc := NewMessaging(MessagingDeps{
				Conversations: conversations,
				Messages:      messages,
				Markers:       servermocks.NewReadMarkerStore(t),
				Keys:          keys,
			}, testutil.MakeNoopLogger())

			msgs, err := svc.GetMessages(ctx, conv.ID, alice)
			assert.ErrorIs(t, err, model.ErrIntegrity)
			assert.Nil(t, msgs)
		})
	}
}

func TestMessaging_StoreFailureIsTransient(t *testing.T) {
	ctx := context.Background()
	conversations := servermocks.NewConversationStore(t)
	conversations.On("GetByID", mock.Anything, int64(5)).Return(model.Conversation{}, assert.AnError).Once()
	conversations.On("ListThreads", mock.Anything, alice).Return(nil, assert.AnError).Once()

	svc := NewMessaging(MessagingDeps{Conversations: conversations}, testutil.MakeNoopLogger())

	_, err := svc.PostMessage(ctx, 5, alice, "hi")
	assert.ErrorIs(t, err, model.ErrTransientStore)
	assert.ErrorIs(t, err, assert.AnError)

	_, err = svc.ListThreads(ctx, alice)
	assert.ErrorIs(t, err, model.ErrTransientStore)
}

func TestMessaging_SenderMarkerFailureDoesNotFailPost(t *testing.T) {
	ctx := context.Background()
	keys, err := envelope.NewKeyDeriver(bytes.Repeat([]byte{0x42}, envelope.KeySize))
	require.NoError(t, err)

	conv := model.Conversation{ID: 3, KeySalt: bytes.Repeat([]byte{1}, model.KeySaltSize)}
	conversations := servermocks.NewConversationStore(t)
	messages := servermocks.NewMessageStore(t)
	markers := servermocks.NewReadMarkerStore(t)

	conversations.On("GetByID", mock.Anything, conv.ID).Return(conv, nil).Once()
	conversations.On("IsParticipant", mock.Anything, conv.ID, alice).Return(true, nil).Once()
	messages.On("Append", mock.Anything, mock.MatchedBy(func(m model.Message) bool {
		return m.ConversationID == conv.ID && m.SenderID == alice && !bytes.Contains(m.Ciphertext, []byte("secret"))
	})).Return(model.Message{ID: 11, ConversationID: conv.ID, SenderID: alice}, nil).Once()
	markers.On("Advance", mock.Anything, conv.ID, alice, int64(11)).Return(int64(0), assert.AnError).Once()

	svc := NewMessaging(MessagingDeps{
		Conversations: conversations,
		Messages:      messages,
		Markers:       markers,
		Keys:          keys,
	}, testutil.MakeNoopLogger())

	msg, err := svc.PostMessage(ctx, conv.ID, alice, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(11), msg.ID)
	assert.Equal(t, "secret", msg.Text)
}

func TestMessaging_PublishesAfterPersist(t *testing.T) {
	ctx := context.Background()
	publisher := servermocks.NewPublisher(t)
	f := newFixture(t, fixtureOptions{publisher: publisher})
	conv := f.conversation(t, alice, bob)

	publisher.On("Publish", conv.ID, mock.MatchedBy(func(e model.Event) bool {
		return e.Type == model.EventNewMessage && e.Message != nil && e.Message.Text == "hi" && e.Message.ID > 0
	})).Return(1).Once()
	publisher.On("NotifyUser", bob, mock.MatchedBy(func(e model.Event) bool {
		return e.Type == model.EventThreadActivity && e.ConversationID == conv.ID && e.SenderID == alice
	})).Return(1).Once()

	_, err := f.svc.PostMessage(ctx, conv.ID, alice, "hi")
	require.NoError(t, err)
	publisher.AssertNotCalled(t, "NotifyUser", alice, mock.Anything)
}

func TestMessaging_UnreadCount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})
	conv := f.conversation(t, alice, bob)

	msgs := f.post(t, conv.ID, bob, 5)

	n, err := f.svc.UnreadCount(ctx, conv.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	stored, err := f.svc.MarkRead(ctx, conv.ID, alice, msgs[2].ID)
	require.NoError(t, err)
	assert.Equal(t, msgs[2].ID, stored)

	n, err = f.svc.UnreadCount(ctx, conv.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = f.svc.UnreadCount(ctx, conv.ID, bob)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = f.svc.UnreadCount(ctx, conv.ID, carol)
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestMessaging_MarkReadMonotonic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})
	conv := f.conversation(t, alice, bob)

	msgs := f.post(t, conv.ID, bob, 8)
	ids := make([]int64, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID
	}

	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 5; round++ {
		order := append([]int64(nil), ids...)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		var highest int64
		for _, id := range order {
			if id > highest {
				highest = id
			}
			stored, err := f.svc.MarkRead(ctx, conv.ID, alice, id)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, stored, highest)
		}
	}

	stored, err := f.store.Get(ctx, conv.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, ids[len(ids)-1], stored)
}

func TestMessaging_MarkRead_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})
	conv := f.conversation(t, alice, bob)
	msgs := f.post(t, conv.ID, bob, 2)

	_, err := f.svc.MarkRead(ctx, conv.ID, alice, 0)
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = f.svc.MarkRead(ctx, conv.ID, alice, msgs[1].ID+1)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = f.svc.MarkRead(ctx, conv.ID, carol, msgs[0].ID)
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestMessaging_ConcurrentPosts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})
	conv := f.conversation(t, alice, bob)

	const writers = 10
	results := make([]model.PlainMessage, writers)
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sender := alice
			if i%2 == 0 {
				sender = bob
			}
			results[i], errs[i] = f.svc.PostMessage(ctx, conv.ID, sender, fmt.Sprintf("concurrent %d", i))
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, writers)
	for i := range results {
		require.NoError(t, errs[i])
		assert.False(t, seen[results[i].ID], "duplicate id %d", results[i].ID)
		seen[results[i].ID] = true
	}

	msgs, err := f.svc.GetMessages(ctx, conv.ID, alice)
	require.NoError(t, err)
	require.Len(t, msgs, writers)
	for i := 1; i < len(msgs); i++ {
		assert.Greater(t, msgs[i].ID, msgs[i-1].ID)
	}
}

func TestMessaging_ListThreads(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})

	threads, err := f.svc.ListThreads(ctx, alice)
	require.NoError(t, err)
	assert.NotNil(t, threads)
	assert.Empty(t, threads)

	withBob := f.conversation(t, alice, bob)
	f.conversation(t, alice, carol)
	msgs := f.post(t, withBob.ID, bob, 3)

	threads, err = f.svc.ListThreads(ctx, alice)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, withBob.ID, threads[0].ConversationID)
	assert.Equal(t, int64(3), threads[0].UnreadCount)
	assert.Equal(t, msgs[2].ID, threads[0].LastMessageID)
	assert.Equal(t, []int64{alice, bob}, threads[0].Participants)
}

func TestMessaging_CanJoin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOptions{})
	conv := f.conversation(t, alice, bob)

	assert.NoError(t, f.svc.CanJoin(ctx, conv.ID, bob))
	assert.ErrorIs(t, f.svc.CanJoin(ctx, conv.ID, carol), model.ErrForbidden)
	assert.ErrorIs(t, f.svc.CanJoin(ctx, conv.ID+1000, bob), model.ErrNotFound)
	assert.ErrorIs(t, f.svc.CanJoin(ctx, 0, bob), model.ErrValidation)
}

func TestMessaging_ArchiveConversation(t *testing.T) {
	ctx := context.Background()
	storage := servermocks.NewStorage(t)
	f := newFixture(t, fixtureOptions{storage: storage})
	conv := f.conversation(t, alice, bob)
	f.post(t, conv.ID, alice, 2)

	var uploaded []byte
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, fmt.Sprintf("archives/%d/", conv.ID)) && strings.HasSuffix(key, ".json")
	}), mock.Anything, mock.AnythingOfType("int64")).
		Run(func(args mock.Arguments) {
			b, err := io.ReadAll(args.Get(2).(io.Reader))
			require.NoError(t, err)
			uploaded = b
		}).
		Return(nil).Once()

	key, err := f.svc.ArchiveConversation(ctx, conv.ID, bob)
	require.NoError(t, err)
	assert.Contains(t, key, "archives/")

	var doc archiveDocument
	require.NoError(t, json.Unmarshal(uploaded, &doc))
	assert.Equal(t, conv.ID, doc.ConversationID)
	assert.Len(t, doc.Messages, 2)
	assert.NotContains(t, string(uploaded), "message 0")

	_, err = f.svc.ArchiveConversation(ctx, conv.ID, carol)
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestMessaging_ArchiveWithoutStorage(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	conv := f.conversation(t, alice, bob)

	_, err := f.svc.ArchiveConversation(context.Background(), conv.ID, alice)
	assert.ErrorIs(t, err, model.ErrTransientStore)
}

func TestMessaging_MessageTimestamps(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	conv := f.conversation(t, alice, bob)

	before := time.Now().Add(-time.Minute)
	msg, err := f.svc.PostMessage(context.Background(), conv.ID, alice, "time")
	require.NoError(t, err)
	assert.True(t, msg.CreatedAt.After(before))
}

func TestMessaging_OpenArchive(t *testing.T) {
	ctx := context.Background()
	storage := servermocks.NewStorage(t)
	f := newFixture(t, fixtureOptions{storage: storage})
	conv := f.conversation(t, alice, bob)

	name := "3b8f0a53-1f55-4b8e-9d0c-2f1f2b7c9a10.json"
	key := fmt.Sprintf("archives/%d/%s", conv.ID, name)
	storage.On("Exists", mock.Anything, key).Return(true, nil).Once()
	storage.On("Download", mock.Anything, key).Return(io.NopCloser(strings.NewReader(`{"messages":[]}`)), nil).Once()

	rc, err := f.svc.OpenArchive(ctx, conv.ID, alice, name)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"messages":[]}`, string(body))

	missing := "0f5d3b1e-8d6a-4a57-9a43-6f2f3c1d2e4b.json"
	storage.On("Exists", mock.Anything, fmt.Sprintf("archives/%d/%s", conv.ID, missing)).Return(false, nil).Once()
	_, err = f.svc.OpenArchive(ctx, conv.ID, alice, missing)
	assert.ErrorIs(t, err, model.ErrNotFound)

	for _, bad := range []string{"../../etc/passwd", "notes.json", name + ".bak"} {
		_, err = f.svc.OpenArchive(ctx, conv.ID, alice, bad)
		assert.ErrorIs(t, err, model.ErrValidation, bad)
	}

	_, err = f.svc.OpenArchive(ctx, conv.ID, carol, name)
	assert.ErrorIs(t, err, model.ErrForbidden)
}
