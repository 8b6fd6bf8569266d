package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jack-Berry/UMC-Back/internal/logger"
	"github.com/Jack-Berry/UMC-Back/internal/realtime"
)

// Deps groups the collaborators of the HTTP API.
type Deps struct {
	Messaging MessagingService
	Presence  PresenceService
	Tokens    TokenService
	Hub       *realtime.Hub
	// Registerer and Gatherer back the request metrics and GET /metrics.
	// Either may be nil.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// Options configures browser access and websocket buffering.
type Options struct {
	AllowedOrigins []string
	SendBuffer     int
}

// NewRouter builds the gin engine serving the REST API under /api/msg, the
// websocket endpoint and the operational endpoints.
func NewRouter(deps Deps, opts Options, log *logger.Logger) *gin.Engine {
	h := &handler{
		messaging: deps.Messaging,
		presence:  deps.Presence,
		tokens:    deps.Tokens,
		logger:    log,
	}
	ws := newSocketHandler(deps.Hub, deps.Messaging, deps.Tokens, opts, log)

	r := gin.New()
	r.Use(gin.Recovery(), requestLog(log), newHTTPMetrics(deps.Registerer).handler(), corsPolicy(opts.AllowedOrigins))

	r.GET("/api/status", h.status)
	r.GET("/ws", ws.handle)
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	msg := r.Group("/api/msg", authenticate(deps.Tokens))
	msg.POST("/threads", h.createThread)
	msg.GET("/threads", h.listThreads)
	msg.POST("/threads/:id/messages", h.postMessage)
	msg.GET("/threads/:id/messages", h.listMessages)
	msg.PUT("/threads/:id/read", h.markRead)
	msg.GET("/threads/:id/unread", h.unreadCount)
	msg.POST("/threads/:id/archive", h.archive)
	msg.GET("/threads/:id/archive/:name", h.downloadArchive)
	msg.POST("/connect-token", h.connectToken)
	msg.GET("/presence/:userId", h.getPresence)

	return r
}
