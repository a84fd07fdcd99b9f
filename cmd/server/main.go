// @title Eventos Listing API
// @version 1.0
// @description REST backend for an event-ticketing listing site: event catalog CRUD with image upload, user auth, and password reset by emailed code.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"eventoslisting/config"
	_ "eventoslisting/docs"
	authadapter "eventoslisting/internal/adapters/auth"
	"eventoslisting/internal/adapters/email"
	"eventoslisting/internal/adapters/storage"
	delivery "eventoslisting/internal/delivery/http"
	"eventoslisting/internal/delivery/http/controllers"
	"eventoslisting/internal/delivery/http/middleware"
	"eventoslisting/internal/domain"
	"eventoslisting/internal/repository/postgres"
	"eventoslisting/internal/services"
)

const (
	tokenExpiry = 2 * time.Hour
	bcryptCost  = 10
)

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	blobStore, uploadDir, err := newBlobStore(cfg)
	if err != nil {
		logger.Error("failed to set up blob store", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to set up mailer", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)
	resetRepo := postgres.NewResetCodeRepository(db)

	hasher := authadapter.NewBcryptHasher(bcryptCost)
	tokens := authadapter.NewJWTIssuer(cfg.JWTSecret)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	eventService := services.NewEventService(eventRepo, blobStore, logger)
	authService := services.NewAuthService(userRepo, hasher, tokens, tokenExpiry)
	resetService := services.NewPasswordResetService(userRepo, resetRepo, hasher, emailService, logger)

	mux := delivery.NewRouter(
		delivery.RouterConfig{Logger: logger, TokenVerifier: tokens, UploadDir: uploadDir},
		controllers.NewEventController(logger, eventService),
		controllers.NewAuthController(logger, authService),
		controllers.NewPasswordResetController(logger, resetService),
	)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("server listening", "addr", addr, "env", cfg.Environment, "storage", cfg.StorageProvider, "mail", cfg.MailProvider)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// newBlobStore builds the configured blob store. The returned dir is empty
// unless images are stored on local disk and need static serving.
func newBlobStore(cfg *config.Config) (domain.BlobStore, string, error) {
	switch cfg.StorageProvider {
	case "s3":
		store := storage.NewS3Store(storage.S3Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
		})
		return store, "", nil
	case "local":
		store, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
		if err != nil {
			return nil, "", err
		}
		return store, cfg.UploadDir, nil
	default:
		return nil, "", fmt.Errorf("unknown storage provider %q", cfg.StorageProvider)
	}
}
