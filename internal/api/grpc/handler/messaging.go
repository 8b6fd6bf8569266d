package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/Jack-Berry/UMC-Back/api/proto/umc/messaging/v1"
	"github.com/Jack-Berry/UMC-Back/internal/logger"
	"github.com/Jack-Berry/UMC-Back/internal/model"
)

// MessagingService defines the conversation operations exposed over gRPC.
type MessagingService interface {
	GetOrCreateConversation(ctx context.Context, actorID, peerID int64, capabilityToken string) (model.Conversation, error)
	PostMessage(ctx context.Context, conversationID, senderID int64, text string) (model.PlainMessage, error)
	GetMessages(ctx context.Context, conversationID, callerID int64) ([]model.PlainMessage, error)
	ListThreads(ctx context.Context, callerID int64) ([]model.Thread, error)
	MarkRead(ctx context.Context, conversationID, userID, messageID int64) (int64, error)
	UnreadCount(ctx context.Context, conversationID, userID int64) (int64, error)
}

// TokenService issues realtime connect tokens.
type TokenService interface {
	IssueConnectToken(ctx context.Context, userID int64) (string, time.Time, error)
}

// Messaging handles gRPC endpoints for conversations.
type Messaging struct {
	pb.UnimplementedMessagingServer
	messagingService MessagingService
	tokenService     TokenService
	contextManager   model.ContextManager
	logger           *logger.Logger
}

// NewMessaging creates a new Messaging handler.
func NewMessaging(messagingService MessagingService, tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Messaging {
	return &Messaging{
		messagingService: messagingService,
		tokenService:     tokenService,
		contextManager:   contextManager,
		logger:           logger,
	}
}

// CreateOrGetConversation returns the caller's conversation with a peer.
func (h *Messaging) CreateOrGetConversation(ctx context.Context, req *pb.CreateOrGetConversationRequest) (*pb.CreateOrGetConversationResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Messaging handler: processing create conversation request",
		"user_id", userID,
		"peer_id", req.GetPeerId())

	conv, err := h.messagingService.GetOrCreateConversation(ctx, userID, req.GetPeerId(), req.GetMatchToken())
	if err != nil {
		return nil, handleError(err)
	}

	return &pb.CreateOrGetConversationResponse{Id: conv.ID, CreatedAt: timestamppb.New(conv.CreatedAt)}, nil
}

// PostMessage stores a message in a conversation.
func (h *Messaging) PostMessage(ctx context.Context, req *pb.PostMessageRequest) (*pb.Message, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := h.messagingService.PostMessage(ctx, req.GetConversationId(), userID, req.GetText())
	if err != nil {
		h.logger.Debug("Messaging handler: post message failed",
			"user_id", userID,
			"conversation_id", req.GetConversationId(),
			"error", err)
		return nil, handleError(err)
	}

	return toMessage(msg), nil
}

// GetMessages returns the decrypted history of a conversation.
func (h *Messaging) GetMessages(ctx context.Context, req *pb.GetMessagesRequest) (*pb.GetMessagesResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	msgs, err := h.messagingService.GetMessages(ctx, req.GetConversationId(), userID)
	if err != nil {
		return nil, handleError(err)
	}

	resp := &pb.GetMessagesResponse{Messages: make([]*pb.Message, 0, len(msgs))}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, toMessage(m))
	}
	return resp, nil
}

// ListThreads returns the caller's conversations with unread counters.
func (h *Messaging) ListThreads(ctx context.Context, _ *emptypb.Empty) (*pb.ListThreadsResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	threads, err := h.messagingService.ListThreads(ctx, userID)
	if err != nil {
		return nil, handleError(err)
	}

	resp := &pb.ListThreadsResponse{Threads: make([]*pb.Thread, 0, len(threads))}
	for _, t := range threads {
		resp.Threads = append(resp.Threads, &pb.Thread{
			ConversationId: t.ConversationID,
			Participants:   t.Participants,
			UnreadCount:    t.UnreadCount,
			LastMessageId:  t.LastMessageID,
			LastReadMsgId:  t.LastReadMsgID,
			CreatedAt:      timestamppb.New(t.CreatedAt),
		})
	}
	return resp, nil
}

// MarkRead advances the caller's read marker.
func (h *Messaging) MarkRead(ctx context.Context, req *pb.MarkReadRequest) (*pb.MarkReadResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	stored, err := h.messagingService.MarkRead(ctx, req.GetConversationId(), userID, req.GetLastReadMsgId())
	if err != nil {
		return nil, handleError(err)
	}

	return &pb.MarkReadResponse{Success: true, LastReadMsgId: stored}, nil
}

// UnreadCount returns the number of unread messages in a conversation.
func (h *Messaging) UnreadCount(ctx context.Context, req *pb.UnreadCountRequest) (*pb.UnreadCountResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	n, err := h.messagingService.UnreadCount(ctx, req.GetConversationId(), userID)
	if err != nil {
		return nil, handleError(err)
	}

	return &pb.UnreadCountResponse{ConversationId: req.GetConversationId(), Unread: n}, nil
}

// IssueConnectToken returns a short-lived token for opening a websocket.
func (h *Messaging) IssueConnectToken(ctx context.Context, _ *emptypb.Empty) (*pb.IssueConnectTokenResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := h.tokenService.IssueConnectToken(ctx, userID)
	if err != nil {
		h.logger.Error("Messaging handler: issue connect token failed",
			"user_id", userID,
			"error", err)
		return nil, handleError(err)
	}

	return &pb.IssueConnectTokenResponse{Token: token, ExpiresAt: timestamppb.New(expiresAt)}, nil
}

func (h *Messaging) userID(ctx context.Context) (int64, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return 0, status.Error(codes.Unauthenticated, "user ID not found in context")
	}
	return userID, nil
}

func toMessage(m model.PlainMessage) *pb.Message {
	return &pb.Message{
		Id:             m.ID,
		ConversationId: m.ConversationID,
		SenderId:       m.SenderID,
		Text:           m.Text,
		CreatedAt:      timestamppb.New(m.CreatedAt),
	}
}
