package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifeline-qr-server/config"
	deliveryHttp "lifeline-qr-server/internal/delivery/http"
	"lifeline-qr-server/internal/delivery/http/handler"
	"lifeline-qr-server/internal/delivery/http/middleware"
	"lifeline-qr-server/internal/infrastructure/cache"
	"lifeline-qr-server/internal/infrastructure/database"
	"lifeline-qr-server/internal/repository"
	"lifeline-qr-server/internal/service"
	"lifeline-qr-server/internal/usecase"
	"lifeline-qr-server/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected and schema ensured")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	accountRepo := repository.NewAccountRepository()
	qrRepo := repository.NewQRMappingRepository()
	recordRepo := repository.NewMedicalRecordRepository()
	orderRepo := repository.NewOrderRepository()
	feedbackRepo := repository.NewFeedbackRepository()

	// Services
	qrCache := service.NewQRCache(redisClient, log)

	// Usecases
	accountUsecase := usecase.NewAccountUsecase(db, log, accountRepo, qrRepo, qrCache)
	authUsecase := usecase.NewAuthUsecase(db, log, accountRepo)
	qrUsecase := usecase.NewQRUsecase(db, log, qrRepo, qrCache)
	recordUsecase := usecase.NewMedicalRecordUsecase(db, log, recordRepo)
	orderUsecase := usecase.NewOrderUsecase(db, log, orderRepo)
	feedbackUsecase := usecase.NewFeedbackUsecase(db, log, feedbackRepo)

	// Handlers
	accountHandler := handler.NewAccountHandler(accountUsecase, customValidator)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	qrHandler := handler.NewQRHandler(qrUsecase, customValidator)
	recordHandler := handler.NewRecordHandler(recordUsecase, customValidator)
	orderHandler := handler.NewOrderHandler(orderUsecase, customValidator)
	feedbackHandler := handler.NewFeedbackHandler(feedbackUsecase, customValidator)

	// Router, wrapped in CORS so preflight requests short-circuit before
	// method matching.
	router := deliveryHttp.NewRouter(accountHandler, authHandler, qrHandler, recordHandler, orderHandler, feedbackHandler)
	corsMiddleware := middleware.NewCORSMiddleware()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: corsMiddleware.Handle(router.Setup()),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
