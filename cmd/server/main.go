// Command server runs the mosque portal API.
//
// @title Masjid Portal API
// @version 1.0
// @description Content, finance transparency, consultations and admin tools for the mosque portal.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"masjid/internal/assistant/gemini"
	"masjid/internal/config"
	"masjid/internal/content/fallback"
	"masjid/internal/content/mock"
	"masjid/internal/content/sheet"
	"masjid/internal/email/noop"
	"masjid/internal/email/ses"
	"masjid/internal/handler"
	"masjid/internal/logging"
	"masjid/internal/port"
	"masjid/internal/repository/postgres"
	"masjid/internal/repository/sqlite"
	"masjid/internal/router"
	"masjid/internal/service"
	s3storage "masjid/internal/storage/s3"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Settings store
	db, settingsRepo, err := openSettingsStore(ctx, &cfg.DB, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	endpointSvc := service.NewEndpointService(settingsRepo, cfg.Content.ScriptURL)
	if err := endpointSvc.Load(ctx); err != nil {
		return fmt.Errorf("failed to load content endpoint: %w", err)
	}
	logger.Info("content endpoint", zap.Bool("connected", endpointSvc.Status().Connected))

	// Content source
	var content port.ContentSource = sheet.NewClient(endpointSvc, cfg.Content.Timeout)
	if cfg.Content.MockFallback {
		store, err := mock.NewStore()
		if err != nil {
			return fmt.Errorf("failed to load demo content: %w", err)
		}
		content = fallback.New(content, store, logger)
	}

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender(cfg.Email.FrontendURL, logger)
	}

	// Initialize services
	authSvc := service.NewAuthService(content, cfg.JWT)
	postSvc := service.NewPostService(content)
	contentSvc := service.NewContentService(content, postSvc)
	profileSvc := service.NewProfileService(content)
	financeSvc := service.NewFinanceService(content)
	consultationSvc := service.NewConsultationService(content, emailSender, cfg.Email.UstadzAddress, logger)
	assistantSvc := service.NewAssistantService(gemini.NewAssistant(&cfg.Assistant))
	mediaSvc := service.NewMediaService(s3Client, &cfg.S3, logger)

	// Setup router
	r := router.Setup(authSvc, router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		Content:      handler.NewContentHandler(contentSvc),
		Profile:      handler.NewProfileHandler(profileSvc),
		Post:         handler.NewPostHandler(postSvc),
		Finance:      handler.NewFinanceHandler(financeSvc),
		Consultation: handler.NewConsultationHandler(consultationSvc),
		Assistant:    handler.NewAssistantHandler(assistantSvc),
		Media:        handler.NewMediaHandler(mediaSvc),
		Settings:     handler.NewSettingsHandler(endpointSvc),
		Health:       handler.NewHealthHandler(db),
	}, cfg.CORS.AllowedOrigins, logger)

	server := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}

// openSettingsStore connects to Postgres and migrates it when enabled,
// otherwise opens the local SQLite file.
func openSettingsStore(ctx context.Context, cfg *config.DBConfig, logger *zap.Logger) (*sqlx.DB, port.SettingsRepository, error) {
	if cfg.Enabled {
		if err := postgres.MigrateUp(cfg); err != nil {
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		db, err := postgres.NewDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		logger.Info("settings store", zap.String("driver", "postgres"), zap.String("host", cfg.Host))
		return db, postgres.NewSettingsRepo(db), nil
	}

	db, err := sqlite.NewDB(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open settings file: %w", err)
	}
	logger.Info("settings store", zap.String("driver", "sqlite"), zap.String("path", cfg.SQLitePath))
	return db, sqlite.NewSettingsRepo(db), nil
}
