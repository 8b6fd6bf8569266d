package rest

import (
	"context"
	"io"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jack-Berry/UMC-Back/internal/logger"
	"github.com/Jack-Berry/UMC-Back/internal/model"
)

// MessagingService defines the conversation operations exposed over HTTP.
type MessagingService interface {
	GetOrCreateConversation(ctx context.Context, actorID, peerID int64, capabilityToken string) (model.Conversation, error)
	PostMessage(ctx context.Context, conversationID, senderID int64, text string) (model.PlainMessage, error)
	GetMessages(ctx context.Context, conversationID, callerID int64) ([]model.PlainMessage, error)
	ListThreads(ctx context.Context, callerID int64) ([]model.Thread, error)
	MarkRead(ctx context.Context, conversationID, userID, messageID int64) (int64, error)
	UnreadCount(ctx context.Context, conversationID, userID int64) (int64, error)
	ArchiveConversation(ctx context.Context, conversationID, callerID int64) (string, error)
	OpenArchive(ctx context.Context, conversationID, callerID int64, name string) (io.ReadCloser, error)
	CanJoin(ctx context.Context, conversationID, userID int64) error
}

// PresenceService reports whether a peer is online.
type PresenceService interface {
	Get(ctx context.Context, actorID, peerID int64) (model.Presence, error)
}

// TokenService authenticates access tokens and manages connect tokens.
type TokenService interface {
	Authenticator
	IssueConnectToken(ctx context.Context, userID int64) (string, time.Time, error)
	VerifyConnectToken(ctx context.Context, token string) (int64, error)
}

type handler struct {
	messaging MessagingService
	presence  PresenceService
	tokens    TokenService
	logger    *logger.Logger
}

type createThreadRequest struct {
	PeerID     int64  `json:"peerId"`
	MatchToken string `json:"matchToken"`
}

type postMessageRequest struct {
	Text string `json:"text"`
}

type markReadRequest struct {
	LastReadMsgID int64 `json:"lastReadMsgId"`
}

type threadResponse struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	Participants  []int64   `json:"participants"`
	LastMessageID int64     `json:"lastMessageId"`
	LastReadMsgID int64     `json:"lastReadMsgId"`
	UnreadCount   int64     `json:"unreadCount"`
}

func (h *handler) createThread(c *gin.Context) {
	var req createThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PeerID <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid or missing peerId"})
		return
	}

	conv, err := h.messaging.GetOrCreateConversation(c.Request.Context(), currentUser(c), req.PeerID, req.MatchToken)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": conv.ID})
}

func (h *handler) postMessage(c *gin.Context) {
	conversationID, ok := pathID(c)
	if !ok {
		return
	}

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "message text required"})
		return
	}

	msg, err := h.messaging.PostMessage(c.Request.Context(), conversationID, currentUser(c), req.Text)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

func (h *handler) listMessages(c *gin.Context) {
	conversationID, ok := pathID(c)
	if !ok {
		return
	}

	msgs, err := h.messaging.GetMessages(c.Request.Context(), conversationID, currentUser(c))
	if err != nil {
		if code, _ := errorStatus(err); code >= http.StatusInternalServerError {
			h.logger.Error("HTTP handler: list messages failed",
				"conversation_id", conversationID,
				"error", err)
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, msgs)
}

func (h *handler) listThreads(c *gin.Context) {
	threads, err := h.messaging.ListThreads(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]threadResponse, 0, len(threads))
	for _, t := range threads {
		out = append(out, threadResponse{
			ID:            t.ConversationID,
			CreatedAt:     t.CreatedAt,
			Participants:  t.Participants,
			LastMessageID: t.LastMessageID,
			LastReadMsgID: t.LastReadMsgID,
			UnreadCount:   t.UnreadCount,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) markRead(c *gin.Context) {
	conversationID, ok := pathID(c)
	if !ok {
		return
	}

	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "lastReadMsgId required"})
		return
	}

	stored, err := h.messaging.MarkRead(c.Request.Context(), conversationID, currentUser(c), req.LastReadMsgID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "lastReadMsgId": stored})
}

func (h *handler) unreadCount(c *gin.Context) {
	conversationID, ok := pathID(c)
	if !ok {
		return
	}

	n, err := h.messaging.UnreadCount(c.Request.Context(), conversationID, currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversationId": conversationID, "unread": n})
}

func (h *handler) archive(c *gin.Context) {
	conversationID, ok := pathID(c)
	if !ok {
		return
	}

	key, err := h.messaging.ArchiveConversation(c.Request.Context(), conversationID, currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key, "name": path.Base(key)})
}

func (h *handler) downloadArchive(c *gin.Context) {
	conversationID, ok := pathID(c)
	if !ok {
		return
	}

	rc, err := h.messaging.OpenArchive(c.Request.Context(), conversationID, currentUser(c), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(c.Param("name")))
	c.DataFromReader(http.StatusOK, -1, "application/json", rc, nil)
}

func (h *handler) connectToken(c *gin.Context) {
	token, expiresAt, err := h.tokens.IssueConnectToken(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "expiresAt": expiresAt})
}

func (h *handler) getPresence(c *gin.Context) {
	peerID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || peerID <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	p, err := h.presence.Get(c.Request.Context(), currentUser(c), peerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *handler) status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return 0, false
	}
	return id, true
}
