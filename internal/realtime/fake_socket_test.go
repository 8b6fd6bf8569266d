package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

type fakeSocket struct {
	mu       sync.Mutex
	messages [][]byte
	closed   bool
	block    chan struct{}
}

func newFakeSocket() *fakeSocket {
	return &fakeSocket{}
}

// newBlockingSocket returns a socket whose writes hang until it is closed.
func newBlockingSocket() *fakeSocket {
	return &fakeSocket{block: make(chan struct{})}
}

func (f *fakeSocket) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeSocket) WriteMessage(messageType int, data []byte) error {
	if f.block != nil {
		<-f.block
		return websocket.ErrCloseSent
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return websocket.ErrCloseSent
	}
	if messageType == websocket.TextMessage {
		f.messages = append(f.messages, append([]byte(nil), data...))
	}
	return nil
}

func (f *fakeSocket) WriteControl(int, []byte, time.Time) error { return nil }

func (f *fakeSocket) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		if f.block != nil {
			close(f.block)
		}
	}
	return nil
}

func (f *fakeSocket) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeSocket) events() []model.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Event, 0, len(f.messages))
	for _, m := range f.messages {
		var e model.Event
		if err := json.Unmarshal(m, &e); err == nil {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeSocket) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}
