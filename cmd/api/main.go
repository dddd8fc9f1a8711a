package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/talentlens/talentlens/pkg/validator"

	"github.com/talentlens/talentlens/internal/adapter/handler"
	"github.com/talentlens/talentlens/internal/adapter/repository"
	"github.com/talentlens/talentlens/internal/infrastructure/cache"
	"github.com/talentlens/talentlens/internal/infrastructure/database"
	httpmw "github.com/talentlens/talentlens/internal/infrastructure/http/middleware"
	"github.com/talentlens/talentlens/internal/infrastructure/storage"
	"github.com/talentlens/talentlens/internal/usecase/interview"
	"github.com/talentlens/talentlens/internal/usecase/job"
	"github.com/talentlens/talentlens/internal/usecase/mocktest"
	pkgai "github.com/talentlens/talentlens/pkg/ai"
	"github.com/talentlens/talentlens/pkg/config"
	"github.com/talentlens/talentlens/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	attemptCache := cache.NewRedisStore(redisClient, logger)

	// Initialize MinIO storage
	log.Println("🗄️  Connecting to object storage...")
	store, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	jobRepo := repository.NewJobRepository(db)

	// Initialize speech-to-text client
	log.Println("🎙️  Initializing transcription client...")
	asmClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)

	// Initialize JWT manager and auth middleware
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	authMW := httpmw.NewAuthMiddleware(jwtManager, userRepo)

	// Initialize services
	log.Println("🧮 Initializing services...")
	mockTestService := mocktest.NewService(attemptRepo, attemptCache, cfg.MockTest.QuestionsPerCategory, logger)
	interviewService := interview.NewService(interviewRepo, asmClient, cfg.Proctoring, logger)
	jobService := job.NewService(jobRepo, logger)

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()
	interviewService.Start(rootCtx)
	defer interviewService.Stop()

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	mockTestHandler := handler.NewMockTest(mockTestService, logger)
	interviewHandler := handler.NewInterview(interviewService, logger)
	jobHandler := handler.NewJob(jobService, store, logger)
	storageHandler := handler.NewStorage(store, jobService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, authMW, mockTestHandler, interviewHandler, jobHandler, storageHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
