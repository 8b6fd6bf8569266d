package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	grpcctx "github.com/Jack-Berry/UMC-Back/internal/api/grpc/context"
	"github.com/Jack-Berry/UMC-Back/internal/api/grpc/router"
	grpcServer "github.com/Jack-Berry/UMC-Back/internal/api/grpc/server"
	"github.com/Jack-Berry/UMC-Back/internal/api/rest"
	"github.com/Jack-Berry/UMC-Back/internal/config"
	"github.com/Jack-Berry/UMC-Back/internal/crypto/envelope"
	"github.com/Jack-Berry/UMC-Back/internal/logger"
	"github.com/Jack-Berry/UMC-Back/internal/model"
	"github.com/Jack-Berry/UMC-Back/internal/realtime"
	"github.com/Jack-Berry/UMC-Back/internal/repository/postgres"
	"github.com/Jack-Berry/UMC-Back/internal/repository/sqlite"
	"github.com/Jack-Berry/UMC-Back/internal/server"
	"github.com/Jack-Berry/UMC-Back/internal/service"
	storage "github.com/Jack-Berry/UMC-Back/internal/storage/minio"
	"github.com/Jack-Berry/UMC-Back/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// stores bundles the persistence ports of the selected database driver.
type stores struct {
	conversations model.ConversationStore
	messages      model.MessageStore
	markers       model.ReadMarkerStore
	oracle        model.RelationshipOracle
	closers       []func() error
}

func (s *stores) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	return errors.Join(errs...)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	envErr := godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)
	if envErr != nil {
		logger.Debug("no .env file loaded", "error", envErr)
	}

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer st.Close()

	master, err := cfg.MasterSecret()
	if err != nil {
		logger.Fatal("invalid master secret", "error", err)
	}
	keys, err := envelope.NewKeyDeriver(master)
	envelope.Zero(master)
	if err != nil {
		logger.Fatal("failed to initialize key derivation", "error", err)
	}

	var capabilities model.CapabilityVerifier
	if cfg.Match.Secret != "" {
		capabilities = token.NewCapability(cfg.Match.Secret, cfg.Match.TTL)
	} else {
		logger.Warn("MATCH_SECRET is not set, capability tokens are disabled")
	}

	var lastSeen model.LastSeenStore
	if cfg.Redis.URL != "" {
		rdb, err := realtime.DialRedis(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Fatal("failed to connect to redis", "error", err)
		}
		defer rdb.Close()
		lastSeen = realtime.NewRedisLastSeen(rdb, cfg.Redis.LastSeenTTL)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	hub := realtime.NewHub(lastSeen, registry, logger)

	var archives model.Storage
	if cfg.Storage.Enabled {
		archives, err = storage.Open(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	tokenService := service.NewTokenService(tokenManager, logger)
	gate := service.NewGate(st.oracle, capabilities, logger)
	messagingService := service.NewMessaging(service.MessagingDeps{
		Conversations: st.conversations,
		Messages:      st.messages,
		Markers:       st.markers,
		Gate:          gate,
		Keys:          keys,
		Publisher:     hub,
		Storage:       archives,
	}, logger)
	presenceService := service.NewPresence(hub, gate, logger)

	grpcRouter := router.New(messagingService, tokenService, grpcctx.NewManager(), logger)
	grpcSrv := grpcServer.NewGRPCServer(grpcRouter.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	gin.SetMode(gin.ReleaseMode)
	httpSrv := rest.NewServer(cfg.HTTP.Port, rest.NewRouter(rest.Deps{
		Messaging:  messagingService,
		Presence:   presenceService,
		Tokens:     tokenService,
		Hub:        hub,
		Registerer: registry,
		Gatherer:   registry,
	}, rest.Options{
		AllowedOrigins: cfg.WS.AllowedOrigins,
		SendBuffer:     cfg.WS.SendBuffer,
	}, logger), cfg.HTTP.ReadHeaderTimeout, logger)

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewSecurityLayer(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	for _, s := range []model.Server{grpcSrv, httpSrv} {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	grpcRouter.Shutdown()
	for _, s := range []model.Server{httpSrv, grpcSrv} {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}
	hub.Close()

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*stores, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("using sqlite store", "path", cfg.Database.SQLitePath)
		return &stores{
			conversations: db,
			messages:      db,
			markers:       db,
			oracle:        db,
			closers:       []func() error{db.Close},
		}, nil
	default:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		friendsDB, err := postgres.OpenFriendsDB(ctx, cfg.FriendsDSN())
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return &stores{
			conversations: postgres.NewConversationRepository(db),
			messages:      postgres.NewMessageRepository(db),
			markers:       postgres.NewReadMarkerRepository(db),
			oracle:        postgres.NewFriendsOracle(friendsDB),
			closers:       []func() error{db.Close, friendsDB.Close},
		}, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
