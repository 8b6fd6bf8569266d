package router

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/Jack-Berry/UMC-Back/api/proto/umc/messaging/v1"
	grpccontext "github.com/Jack-Berry/UMC-Back/internal/api/grpc/context"
	"github.com/Jack-Berry/UMC-Back/internal/mocks"
	"github.com/Jack-Berry/UMC-Back/internal/model"
	"github.com/Jack-Berry/UMC-Back/internal/testutil"
)

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	r := New(mocks.NewMessagingService(t), mocks.NewTokenService(t), mocks.NewContextManager(t), testutil.MakeNoopLogger())
	s := r.Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, pb.Messaging_ServiceDesc.ServiceName)
	assert.Contains(t, info, "grpc.health.v1.Health")
}

func dial(t *testing.T, r *Router) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := r.Register()
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestRouter_EndToEnd(t *testing.T) {
	svc := mocks.NewMessagingService(t)
	tokens := mocks.NewTokenService(t)
	r := New(svc, tokens, grpccontext.NewManager(), testutil.MakeNoopLogger())
	client := pb.NewMessagingClient(dial(t, r))

	tokens.On("GetUserID", mock.Anything, "good").Return(int64(4), nil)
	tokens.On("GetUserID", mock.Anything, "bad").Return(int64(0), assert.AnError)
	sent := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
	svc.On("PostMessage", mock.Anything, int64(8), int64(4), "hi").
		Return(model.PlainMessage{ID: 21, ConversationID: 8, SenderID: 4, Text: "hi", CreatedAt: sent}, nil).Once()
	svc.On("ListThreads", mock.Anything, int64(4)).
		Return([]model.Thread{{ConversationID: 8, Participants: []int64{4, 9}, UnreadCount: 3, CreatedAt: sent}}, nil).Once()
	svc.On("MarkRead", mock.Anything, int64(8), int64(4), int64(99)).
		Return(int64(0), model.ErrNotFound).Once()

	authed := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer good")

	msg, err := client.PostMessage(authed, &pb.PostMessageRequest{ConversationId: 8, Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(21), msg.GetId())
	assert.Equal(t, int64(4), msg.GetSenderId())
	assert.Equal(t, "hi", msg.GetText())
	assert.True(t, sent.Equal(msg.GetCreatedAt().AsTime()))

	threads, err := client.ListThreads(authed, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, threads.GetThreads(), 1)
	assert.Equal(t, []int64{4, 9}, threads.GetThreads()[0].GetParticipants())
	assert.Equal(t, int64(3), threads.GetThreads()[0].GetUnreadCount())

	_, err = client.MarkRead(authed, &pb.MarkReadRequest{ConversationId: 8, LastReadMsgId: 99})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.ListThreads(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	rejected := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer bad")
	_, err = client.ListThreads(rejected, &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRouter_HealthIsPublic(t *testing.T) {
	r := New(mocks.NewMessagingService(t), mocks.NewTokenService(t), grpccontext.NewManager(), testutil.MakeNoopLogger())
	conn := dial(t, r)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.Messaging_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	r.Shutdown()
	resp, err = healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.Messaging_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
}
