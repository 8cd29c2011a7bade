package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cvcraft-backend/config"
	_ "cvcraft-backend/docs" // Important for Swagger
	"cvcraft-backend/internal/delivery/http/middleware"
	v1 "cvcraft-backend/internal/delivery/http/v1"
	"cvcraft-backend/internal/domain"
	"cvcraft-backend/internal/preview"
	"cvcraft-backend/internal/repository/file"
	"cvcraft-backend/internal/repository/memory"
	"cvcraft-backend/internal/repository/postgres"
	redisrepo "cvcraft-backend/internal/repository/redis"
	"cvcraft-backend/internal/usecase"
	"cvcraft-backend/pkg/ai"
	"cvcraft-backend/pkg/auth"
	"cvcraft-backend/pkg/database"
	"cvcraft-backend/pkg/logger"
	"cvcraft-backend/pkg/oauth"
	redisclient "cvcraft-backend/pkg/redis"
	"cvcraft-backend/pkg/storage"
	"cvcraft-backend/pkg/validation"

	goredis "github.com/redis/go-redis/v9"
)

// @title           CV Builder API
// @version         1.0
// @description     Workspace-scoped CV editing with live preview, local and remote autosave.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting CV builder backend", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checks := map[string]usecase.HealthCheck{}

	// 3. Setup Redis (optional)
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redisclient.Connect(ctx, redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable - using in-memory fallbacks", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			checks["redis"] = func(ctx context.Context) error { return redisclient.HealthCheck(ctx, redisClient) }
		}
	}

	// 4. Setup Repositories
	var remote domain.RemoteStore
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		if err := postgres.Migrate(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
		remote = postgres.NewCVRepository(dbPool)
		checks["database"] = dbPool.Ping
	} else {
		logger.Log.Warn("DATABASE_URL not set - remote documents live in memory")
		remote = memory.NewRemoteStore()
	}

	local, err := newLocalStore(cfg, redisClient)
	if err != nil {
		logger.Log.Error("Failed to set up local store", "error", err)
		os.Exit(1)
	}
	sessions := newSessionStore(cfg, redisClient)

	// 5. Setup Identity
	identityCfg := usecase.IdentityConfig{
		Sessions:   sessions,
		SessionTTL: cfg.SessionTTL,
		Logger:     logger.Log,
	}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" && cfg.StateSecret != "" {
		identityCfg.OAuth = oauth.NewGoogleProvider(oauth.GoogleConfig{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
		})
		identityCfg.State = auth.NewStateSigner(cfg.StateSecret, 10*time.Minute)
	} else {
		logger.Log.Warn("Google sign-in not configured")
	}
	if cfg.SupabaseUrl != "" || cfg.SupabaseJWTSecret != "" {
		identityCfg.Tokens = auth.NewSupabaseVerifier(cfg.SupabaseUrl, cfg.SupabaseJWTSecret)
	}
	identityUC := usecase.NewIdentityUsecase(identityCfg)

	// 6. Setup Workspaces
	validate := validation.New()
	manager := usecase.NewWorkspaceManager(usecase.WorkspaceConfig{
		Local:        local,
		Remote:       remote,
		Identity:     identityUC,
		Validate:     validate,
		AutosaveIdle: cfg.AutosaveIdle,
		WriteTimeout: cfg.RemoteWriteTimeout,
		IdleTTL:      cfg.WorkspaceIdleTTL,
		Logger:       logger.Log,
	})
	go manager.RunJanitor(ctx, time.Minute)

	// 7. Setup UseCases
	renderer := preview.NewRenderer()
	workspaceUC := usecase.NewWorkspaceUsecase(manager)
	previewUC := usecase.NewPreviewUsecase(manager, renderer, validate)

	suggestionCfg := usecase.SuggestionConfig{Logger: logger.Log}
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Warn("Gemini unavailable - canned suggestions only", "error", err)
		} else {
			defer gemini.Close()
			suggestionCfg.Generator = gemini
		}
	}
	suggestionUC := usecase.NewSuggestionUsecase(manager, suggestionCfg)

	shareCfg := usecase.ShareConfig{Renderer: renderer, BaseURL: cfg.PublicBaseURL, Logger: logger.Log}
	shareStore, err := storage.NewStorage(storage.StorageConfig{
		Type:         storage.StorageType(cfg.StorageType),
		LocalPath:    cfg.StorageLocalPath,
		S3Bucket:     cfg.AWSS3Bucket,
		S3Region:     cfg.AWSRegion,
		AWSAccessKey: cfg.AWSAccessKey,
		AWSSecretKey: cfg.AWSSecretKey,
	})
	if err != nil {
		logger.Log.Warn("Share storage unavailable - sharing disabled", "error", err)
	} else {
		shareCfg.Storage = shareStore
	}
	shareUC := usecase.NewShareUsecase(manager, shareCfg)

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewRateLimiter(redisClient)
	} else {
		limiter = middleware.NewRateLimiter(nil)
	}
	go limiter.RunCleanup(ctx, 5*time.Minute)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		WorkspaceUC:  workspaceUC,
		PreviewUC:    previewUC,
		IdentityUC:   identityUC,
		SuggestionUC: suggestionUC,
		ShareUC:      shareUC,
		HealthUC:     usecase.NewHealthUsecase(checks),
		RateLimiter:  limiter,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	// Pending autosaves are flushed before the stores close
	cancel()
	workspaceUC.CloseAll(shutdownCtx)

	logger.Log.Info("Server exiting")
}

func newLocalStore(cfg *config.Config, client *goredis.Client) (domain.LocalStore, error) {
	switch cfg.LocalStore {
	case "redis":
		if client != nil {
			return redisrepo.NewSnapshotStore(client, 0), nil
		}
		logger.Log.Warn("LOCAL_STORE=redis without Redis - snapshots live in memory")
		return memory.NewSnapshotStore(), nil
	case "memory":
		return memory.NewSnapshotStore(), nil
	default:
		return file.NewSnapshotStore(cfg.LocalStorePath)
	}
}

func newSessionStore(cfg *config.Config, client *goredis.Client) domain.SessionStore {
	if cfg.SessionStore == "redis" && client != nil {
		return redisrepo.NewSessionStore(client)
	}
	return memory.NewSessionStore()
}
