// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"hotel-admin-service/internal/backend"
	"hotel-admin-service/internal/config"
	"hotel-admin-service/internal/db"
	authHandler "hotel-admin-service/internal/handlers/auth"
	logHandler "hotel-admin-service/internal/handlers/logrecord"
	platformHandler "hotel-admin-service/internal/handlers/platform"
	"hotel-admin-service/internal/middleware"
	"hotel-admin-service/internal/pkg/session"
	authUsecase "hotel-admin-service/internal/service/auth"
	logUsecase "hotel-admin-service/internal/service/logrecord"
	platformUsecase "hotel-admin-service/internal/service/platform"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	if s.cfg.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must be set")
	}

	// ----- Session store -----
	store, err := s.buildSessionStore(ctx)
	if err != nil {
		return err
	}

	// ----- Backend client -----
	backendClient := backend.NewClient(s.cfg.BackendBaseURL, s.cfg.BackendTimeout, logger)

	// ----- Session manager -----
	codec := session.NewCookieCodec(s.cfg.SessionSecret)
	sessionManager := session.NewManager(
		store,
		backendClient,
		codec,
		s.cfg.SessionMaxAge,
		s.cfg.RefreshMargin,
		logger,
	)

	// ----- Services (Usecases) -----
	authService := authUsecase.NewAuthService(backendClient, sessionManager, logger)
	platformService := platformUsecase.NewPlatformService(backendClient, sessionManager, logger)
	logService := logUsecase.NewLogService(backendClient, sessionManager, logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, sessionManager, s.cfg.CookieSecure, logger)
	platformHandlerInst := platformHandler.NewPlatformHandler(platformService)
	logHandlerInst := logHandler.NewLogHandler(logService)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(sessionManager)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.CORSAllowedOrigins),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:     authHandlerInst,
		PlatformHandler: platformHandlerInst,
		LogHandler:      logHandlerInst,
		AuthMiddleware:  authMiddleware,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}

// buildSessionStore picks the store backend from config. Redis is the
// default; postgres is for deployments where sessions must survive a cache
// flush; memory is for local development only.
func (s *Server) buildSessionStore(ctx context.Context) (session.Store, error) {
	switch s.cfg.SessionStore {
	case "redis":
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			DB:       s.cfg.RedisDB,
			PoolSize: 10,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Println("[REDIS] ✅ Connected successfully")
		return session.NewRedisStore(redisClient), nil

	case "postgres":
		pool, err := db.NewPostgresPool(s.cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		store := session.NewPostgresStore(pool)
		if err := store.Migrate(ctx); err != nil {
			return nil, err
		}
		log.Println("[POSTGRES] ✅ Connected successfully")
		return store, nil

	case "memory":
		s.logger.Warn("using in-memory session store; sessions will not survive restarts")
		return session.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown session store %q", s.cfg.SessionStore)
	}
}
