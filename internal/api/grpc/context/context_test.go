package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestManager_SetAndGetUserID(t *testing.T) {
	m := NewManager()
	ctx := m.SetUserIDToContext(stdctx.Background(), 42)

	got, ok := m.GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), got)
}

func TestManager_GetUserID_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetUserIDFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_SetUserID_WithExistingMetadata(t *testing.T) {
	m := NewManager()
	baseMD := metadata.New(map[string]string{"x-trace-id": "t"})
	ctxWithMD := metadata.NewIncomingContext(stdctx.Background(), baseMD)

	ctx := m.SetUserIDToContext(ctxWithMD, 7)
	got, ok := m.GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), got)

	md, _ := metadata.FromIncomingContext(ctx)
	assert.Equal(t, []string{"t"}, md.Get("x-trace-id"))
	assert.Empty(t, baseMD.Get(userIDKey))
}

func TestManager_GetUserID_Invalid(t *testing.T) {
	m := NewManager()
	for _, raw := range []string{"not-a-number", "0", "-3"} {
		md := metadata.New(map[string]string{"user_id": raw})
		ctx := metadata.NewIncomingContext(stdctx.Background(), md)
		_, ok := m.GetUserIDFromContext(ctx)
		assert.False(t, ok, raw)
	}
}
