package router

import (
	"context"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	pb "github.com/Jack-Berry/UMC-Back/api/proto/umc/messaging/v1"
	"github.com/Jack-Berry/UMC-Back/internal/api/grpc/handler"
	"github.com/Jack-Berry/UMC-Back/internal/api/grpc/middleware"
	"github.com/Jack-Berry/UMC-Back/internal/logger"
	"github.com/Jack-Berry/UMC-Back/internal/model"
)

const (
	keepaliveTime     = 2 * time.Minute
	keepaliveTimeout  = 20 * time.Second
	maxConnectionIdle = 15 * time.Minute
	maxMsgSize        = 4 << 20
)

// TokenService authenticates bearer tokens and issues connect tokens.
type TokenService interface {
	middleware.TokenService
	handler.TokenService
}

// Router represents a gRPC router for messaging operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	messagingService handler.MessagingService
	tokenService     TokenService
	logger           *logger.Logger
	contextManager   model.ContextManager
	health           *health.Server
}

// New creates new gRPC Router instance.
// It initializes a gRPC router with the messaging and token services.
//
// Parameters:
//   - messagingService: The conversation service
//   - tokenService: The bearer and connect token service
//   - contextManager: Stores the authenticated user in the request context
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	messagingService handler.MessagingService,
	tokenService TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		messagingService: messagingService,
		tokenService:     tokenService,
		contextManager:   contextManager,
		logger:           logger,
		health:           health.NewServer(),
	}
}

// authRequired reports whether a call must carry a bearer token. Health
// checks and reflection are public.
func authRequired(_ context.Context, c interceptors.CallMeta) bool {
	method := c.FullMethod()
	return !strings.HasPrefix(method, "/grpc.health.v1.Health/") &&
		!strings.HasPrefix(method, "/grpc.reflection.")
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with panic recovery, request logging and
// authentication interceptors.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	recoverFrom := recovery.WithRecoveryHandler(func(p any) error {
		r.logger.Error("gRPC handler panic", "panic", p)
		return status.Error(codes.Internal, "internal server error")
	})

	s := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:              keepaliveTime,
			Timeout:           keepaliveTimeout,
			MaxConnectionIdle: maxConnectionIdle,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             keepaliveTime / 2,
			PermitWithoutStream: true,
		}),
		grpc.MaxRecvMsgSize(maxMsgSize),
		grpc.MaxSendMsgSize(maxMsgSize),
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoverFrom),
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoverFrom),
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
	)
	r.registerMessagingRoutes(s)
	r.registerHealth(s)
	reflection.Register(s)

	return s
}

// Shutdown marks every service as not serving so that load balancers stop
// routing before the server drains.
func (r *Router) Shutdown() {
	r.health.Shutdown()
}

func (r *Router) registerMessagingRoutes(server *grpc.Server) {
	messagingHandler := handler.NewMessaging(r.messagingService, r.tokenService, r.contextManager, r.logger)
	pb.RegisterMessagingServer(server, messagingHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, r.health)
	r.health.SetServingStatus(pb.Messaging_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
}
