package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"msc-team.backend/internal/config"
	"msc-team.backend/internal/domain/repositories"
	"msc-team.backend/internal/domain/validation"
	mongostore "msc-team.backend/internal/infrastructure/datasources/mongo"
	"msc-team.backend/internal/infrastructure/datasources/postgres"
	"msc-team.backend/internal/infrastructure/datasources/sqlite"
	"msc-team.backend/internal/infrastructure/media"
	"msc-team.backend/internal/infrastructure/models"
	repoimpl "msc-team.backend/internal/infrastructure/repositories"
	"msc-team.backend/internal/interfaces/http/handlers"
	"msc-team.backend/internal/interfaces/http/middleware"
	"msc-team.backend/internal/interfaces/http/response"
	"msc-team.backend/internal/usecases"
	"msc-team.backend/pkg/logger"
	"msc-team.backend/pkg/metrics"
	"msc-team.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv  = godotenv.Load
	loadCfg     = config.Load
	initLog     = logger.Init
	initRedis   = redis.Init
	openStore   = openTeamMemberStore
	newUploader = newImageUploader
	runServer   = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer redis.Close()
		logger.Info(context.Background(), "Redis initialized")
	} else {
		logger.Info(context.Background(), "Redis not configured, idempotency keys are ignored")
	}

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	response.ExposeErrors(!cfg.Server.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn(context.Background(), "Failed to close store", zap.Error(err))
		}
	}()
	logger.Info(ctx, "Team member store ready", zap.String("driver", cfg.Store.Driver))

	uploader, mediaDir, err := newUploader(cfg.Media)
	if err != nil {
		return fmt.Errorf("failed to initialize media uploader: %w", err)
	}

	m := metrics.New()
	teamMemberUsecase := usecases.NewTeamMemberUsecase(repo, m)
	teamMemberHandler := handlers.NewTeamMemberHandler(teamMemberUsecase, validation.New(), m)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(m))

	applyCORSMiddleware(r, cfg.CORS.AllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r, m)
	if mediaDir != "" {
		r.Static(media.PublicPath, mediaDir)
	}
	registerAPIRoutes(r, routeDeps{
		teamMemberHandler: teamMemberHandler,
		uploader:          uploader,
		uploadPolicy:      media.DefaultPolicy(),
		metrics:           m,
	})

	for _, route := range r.Routes() {
		logger.Debug(ctx, "Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "MSC team backend starting",
			zap.String("port", cfg.Server.Port),
			zap.String("api", "http://localhost:"+cfg.Server.Port+"/api/team-members"),
		)
		errCh <- runServer(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// openTeamMemberStore connects the configured backend, prepares its schema
// and returns the repository with a function releasing the connection.
func openTeamMemberStore(ctx context.Context, cfg *config.Config) (repositories.TeamMemberRepository, func() error, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		if err := models.Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("failed to migrate: %w", err)
		}
		return repoimpl.NewTeamMemberRepository(db), sqlDB.Close, nil

	case config.StoreDriverSQLite:
		db, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		if err := models.Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("failed to migrate: %w", err)
		}
		return repoimpl.NewTeamMemberRepository(db), sqlDB.Close, nil

	case config.StoreDriverMongo:
		client, db, err := mongostore.NewConnection(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		disconnect := func() error { return client.Disconnect(context.Background()) }
		repo := repoimpl.NewTeamMemberMongoRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = disconnect()
			return nil, nil, fmt.Errorf("failed to ensure indexes: %w", err)
		}
		return repo, disconnect, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// newImageUploader prefers Cloudinary and falls back to local storage. The
// returned directory is non-empty only for local storage and must be served.
func newImageUploader(cfg config.MediaConfig) (media.Uploader, string, error) {
	if cfg.CloudinaryURL != "" {
		u, err := media.NewCloudinaryUploader(cfg.CloudinaryURL, cfg.Folder)
		if err != nil {
			return nil, "", err
		}
		return u, "", nil
	}
	u, err := media.NewLocalUploader(cfg.Dir, cfg.PublicBaseURL)
	if err != nil {
		return nil, "", err
	}
	return u, u.Dir(), nil
}
