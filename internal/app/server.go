// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"fleetmaint-service/internal/config"
	"fleetmaint-service/internal/db"
	fleetHandler "fleetmaint-service/internal/handlers/fleet"
	planningHandler "fleetmaint-service/internal/handlers/planning"
	syncHandler "fleetmaint-service/internal/handlers/sync"
	wsHandler "fleetmaint-service/internal/handlers/ws"
	"fleetmaint-service/internal/middleware"
	"fleetmaint-service/internal/pkg/jwt"
	"fleetmaint-service/internal/pkg/lock"
	"fleetmaint-service/internal/repository/postgres"
	"fleetmaint-service/internal/service/importer"
	"fleetmaint-service/internal/service/planner"
	"fleetmaint-service/internal/websocket"

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
	engine := gin.Default()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if err := postgres.Bootstrap(ctx, pool); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] ✅ Connected successfully")

	// ----- Repositories -----
	dbWrapper := postgres.NewDB(pool)
	fleetRepo := postgres.NewFleetRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	historyRepo := postgres.NewHistoryRepository(pool)
	syncLogRepo := postgres.NewSyncLogRepository(pool)
	planningRepo := postgres.NewPlanningRepository(dbWrapper)

	// ----- Services -----
	locker := lock.NewRedisLocker(redisClient, s.cfg.GenerationLockTTL)
	importerSvc := importer.NewImporter(fleetRepo, historyRepo, syncLogRepo, logger)
	plannerSvc := planner.NewPlanner(fleetRepo, maintenanceRepo, planningRepo, locker, logger)

	// Seed the static catalog, rules and exclusions up front.
	if err := plannerSvc.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed defaults: %w", err)
	}

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	// ----- Handlers -----
	verifier := jwt.NewVerifier(s.cfg.AdminJWTSecret)
	authMiddleware := middleware.NewAuthMiddleware(verifier)

	handlers := &Handlers{
		FleetHandler:    fleetHandler.NewFleetHandler(fleetRepo),
		PlanningHandler: planningHandler.NewPlanningHandler(planningRepo, plannerSvc, hub),
		SyncHandler:     syncHandler.NewSyncHandler(syncLogRepo, importerSvc, s.cfg.DataDir, hub),
		WSHandler:       wsHandler.NewWSHandler(hub, logger),
		AuthMiddleware:  authMiddleware,
	}

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
	)
	SetupRouter(s.engine, s.cfg, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
