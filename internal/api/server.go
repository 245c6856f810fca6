package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/nbashore/connection-event-log/internal/api/handlers"
	"github.com/nbashore/connection-event-log/internal/api/middleware"
	"github.com/nbashore/connection-event-log/internal/eventlog"
	"github.com/nbashore/connection-event-log/internal/logging"
	"github.com/nbashore/connection-event-log/internal/storage"
	platformEvents "github.com/nbashore/connection-event-log/platform/events"
	"github.com/nbashore/connection-event-log/pkg/config"
)

// Server orchestrates HTTP routing and dependencies for the API service.
type Server struct {
	config config.App
	logger logging.Logger
	router *gin.Engine
	db     *sql.DB

	publisher *platformEvents.Publisher
	recorder  *eventlog.Recorder
	queries   *eventlog.QueryService
	retention *eventlog.RetentionManager
	store     *storage.MySQLClient
}

// NewServer wires the API dependencies together.
func NewServer() *Server {
	cfg := config.FromEnv()

	logger, err := logging.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	zapLogger := newZapLogger(cfg)

	db := connectDatabase(cfg, logger)
	store := storage.NewMySQLClient(db)
	if err := store.EnsureSchema(context.Background()); err != nil {
		logger.Fatal("failed to ensure database schema", zap.Error(err))
	}

	// The Kafka mirror is optional; without brokers the recorder simply skips
	// publishing.
	var publisher *platformEvents.Publisher
	var recorderPublisher eventlog.EventPublisher
	if brokers := cfg.BrokerList(); len(brokers) > 0 && cfg.KafkaTopic != "" {
		publisher = platformEvents.NewPublisher(brokers, cfg.KafkaTopic, zapLogger)
		recorderPublisher = publisher
	}

	server := &Server{
		config:    cfg,
		logger:    logger,
		db:        db,
		store:     store,
		publisher: publisher,
		recorder:  eventlog.NewRecorder(store, recorderPublisher, zapLogger),
		queries:   eventlog.NewQueryService(store, zapLogger),
		retention: eventlog.NewRetentionManager(store, zapLogger),
	}

	server.setupRouter(zapLogger)
	return server
}

// setupRouter configures the Gin router with middleware and routes.
func (s *Server) setupRouter(zapLogger *zap.Logger) {
	router := gin.New()

	// Order matters: recovery first so it catches panics from the rest.
	router.Use(ginzap.RecoveryWithZap(zapLogger, true))
	router.Use(middleware.RequestID())
	router.Use(ginzap.Ginzap(zapLogger, time.RFC3339, true))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health and metrics endpoints (no /api/v1 prefix)
	router.GET("/health", handlers.NewHealthHandler(s.logger).Health)
	router.GET("/metrics", handlers.NewMetricsHandler(s.store, s.logger).Metrics)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		eventHandler := handlers.NewEventHandler(s.recorder, s.queries, s.logger)
		ingestHandler := handlers.NewIngestHandler(s.recorder, s.logger)
		events := v1.Group("/events")
		{
			events.POST("", eventHandler.LogEvent)
			events.POST("/batch", ingestHandler.BatchIngest)
			events.GET("/recent", eventHandler.GetRecent)
			events.GET("/by-type", eventHandler.GetByEvent)
		}

		retentionHandler := handlers.NewRetentionHandler(s.retention, s.logger)
		v1.POST("/retention/sweep", retentionHandler.Sweep)
		v1.DELETE("/accounts/:account_id/events", retentionHandler.PurgeAccount)
	}

	s.router = router
}

// Serve starts the HTTP server with graceful shutdown support.
func (s *Server) Serve() error {
	addr := ":" + s.config.APIPort
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.logger.Info("starting API server",
			zap.String("address", addr),
			zap.String("environment", s.config.Environment),
			zap.String("log_level", s.config.LogLevel),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-quit
	s.logger.Info("shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			s.logger.Error("failed to close kafka publisher", zap.Error(err))
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("failed to close database connection", zap.Error(err))
		}
	}

	// Flush logger before exit
	if err := s.logger.Sync(); err != nil {
		// Ignore sync errors on stdout/stderr
		if err.Error() != "sync /dev/stdout: invalid argument" &&
			err.Error() != "sync /dev/stderr: invalid argument" {
			return err
		}
	}

	s.logger.Info("server stopped")
	return nil
}

// newZapLogger builds the raw zap logger used by gin middleware and the
// eventlog services.
func newZapLogger(cfg config.App) *zap.Logger {
	var zapLogger *zap.Logger
	if cfg.Environment == "production" {
		zapLogger, _ = zap.NewProduction()
	} else {
		zapLogger, _ = zap.NewDevelopment()
	}
	return zapLogger
}

func connectDatabase(cfg config.App, logger logging.Logger) *sql.DB {
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("mysql", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open database connection", zap.Error(err))
	}

	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(20)
	db.SetConnMaxLifetime(60 * time.Minute)

	if err := db.Ping(); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	return db
}
