package rest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jack-Berry/UMC-Back/internal/mocks"
	"github.com/Jack-Berry/UMC-Back/internal/model"
	"github.com/Jack-Berry/UMC-Back/internal/realtime"
	"github.com/Jack-Berry/UMC-Back/internal/testutil"
)

const connectToken = "connect-token"

type socketFixture struct {
	url       string
	hub       *realtime.Hub
	messaging *mocks.MessagingService
}

func newSocketFixture(t *testing.T) *socketFixture {
	t.Helper()

	log := testutil.MakeNoopLogger()
	f := &socketFixture{
		hub:       realtime.NewHub(nil, nil, log),
		messaging: mocks.NewMessagingService(t),
	}
	tokens := mocks.NewTokenService(t)
	tokens.On("VerifyConnectToken", mock.Anything, connectToken).Return(userID, nil).Maybe()
	tokens.On("VerifyConnectToken", mock.Anything, mock.Anything).Return(int64(0), fmt.Errorf("invalid token")).Maybe()

	router := NewRouter(Deps{
		Messaging: f.messaging,
		Presence:  mocks.NewPresenceService(t),
		Tokens:    tokens,
		Hub:       f.hub,
	}, Options{AllowedOrigins: []string{"http://localhost:5173"}, SendBuffer: 8}, log)

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		f.hub.Close()
		srv.Close()
	})
	f.url = "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	return f
}

func (f *socketFixture) dial(t *testing.T) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(f.url+"?token="+connectToken, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = resp.Body.Close()
		_ = ws.Close()
	})

	connected := readEvent(t, ws)
	require.Equal(t, model.EventConnected, connected.Type)
	assert.Equal(t, userID, connected.UserID)
	assert.NotEmpty(t, connected.ConnectionID)
	return ws
}

func readEvent(t *testing.T, ws *websocket.Conn) model.Event {
	t.Helper()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event model.Event
	require.NoError(t, ws.ReadJSON(&event))
	return event
}

func TestSocket_JoinAndReceive(t *testing.T) {
	t.Parallel()

	f := newSocketFixture(t)
	f.messaging.On("CanJoin", mock.Anything, int64(42), userID).Return(nil).Once()

	ws := f.dial(t)
	assert.True(t, f.hub.Online(userID))

	require.NoError(t, ws.WriteJSON(clientFrame{Type: frameJoinRoom, ConversationID: 42}))
	joined := readEvent(t, ws)
	assert.Equal(t, model.EventJoined, joined.Type)
	assert.Equal(t, int64(42), joined.ConversationID)

	delivered := f.hub.Publish(42, model.Event{
		Type:           model.EventNewMessage,
		ConversationID: 42,
		Message:        &model.PlainMessage{ID: 1, ConversationID: 42, SenderID: 9, Text: "hi"},
	})
	assert.Equal(t, 1, delivered)

	msg := readEvent(t, ws)
	assert.Equal(t, model.EventNewMessage, msg.Type)
	require.NotNil(t, msg.Message)
	assert.Equal(t, "hi", msg.Message.Text)

	require.NoError(t, ws.WriteJSON(clientFrame{Type: frameLeaveRoom, ConversationID: 42}))
	left := readEvent(t, ws)
	assert.Equal(t, model.EventLeft, left.Type)
	assert.Equal(t, 0, f.hub.Subscribers(42))
}

func TestSocket_JoinForbidden(t *testing.T) {
	t.Parallel()

	f := newSocketFixture(t)
	f.messaging.On("CanJoin", mock.Anything, int64(42), userID).
		Return(fmt.Errorf("%w: not a participant", model.ErrForbidden)).Once()

	ws := f.dial(t)
	require.NoError(t, ws.WriteJSON(clientFrame{Type: frameJoinRoom, ConversationID: 42}))

	event := readEvent(t, ws)
	assert.Equal(t, model.EventError, event.Type)
	assert.Equal(t, "forbidden", event.Code)
	assert.Equal(t, 0, f.hub.Subscribers(42))
}

func TestSocket_PingAndUnknownFrames(t *testing.T) {
	t.Parallel()

	f := newSocketFixture(t)
	ws := f.dial(t)

	require.NoError(t, ws.WriteJSON(clientFrame{Type: framePing}))
	assert.Equal(t, model.EventPong, readEvent(t, ws).Type)

	require.NoError(t, ws.WriteJSON(clientFrame{Type: "typing"}))
	event := readEvent(t, ws)
	assert.Equal(t, model.EventError, event.Type)
	assert.Equal(t, "unsupported_type", event.Code)

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte("{")))
	event = readEvent(t, ws)
	assert.Equal(t, model.EventError, event.Type)
	assert.Equal(t, "bad_request", event.Code)
}

func TestSocket_DisconnectMarksOffline(t *testing.T) {
	t.Parallel()

	f := newSocketFixture(t)
	ws := f.dial(t)
	require.True(t, f.hub.Online(userID))

	require.NoError(t, ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	require.NoError(t, ws.Close())

	assert.Eventually(t, func() bool { return !f.hub.Online(userID) }, 2*time.Second, 10*time.Millisecond)
}

func TestSocket_RejectsHandshake(t *testing.T) {
	t.Parallel()

	f := newSocketFixture(t)

	tests := []struct {
		name     string
		query    string
		origin   string
		wantCode int
	}{
		{name: "missing token", wantCode: http.StatusUnauthorized},
		{name: "invalid token", query: "?token=forged", wantCode: http.StatusUnauthorized},
		{name: "foreign origin", query: "?token=" + connectToken, origin: "http://evil.example", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}

			_, resp, err := websocket.DefaultDialer.Dial(f.url+tt.query, header)
			require.ErrorIs(t, err, websocket.ErrBadHandshake)
			require.NotNil(t, resp)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

func TestSocket_AllowedOrigin(t *testing.T) {
	t.Parallel()

	f := newSocketFixture(t)
	header := http.Header{}
	header.Set("Origin", "http://localhost:5173")

	ws, resp, err := websocket.DefaultDialer.Dial(f.url+"?token="+connectToken, header)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer ws.Close()

	assert.Equal(t, model.EventConnected, readEvent(t, ws).Type)
}
