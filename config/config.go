package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	DBUrl       string
	JWTSecret   string

	AllowedOrigins []string

	// StorageProvider is "local" or "s3".
	StorageProvider string
	UploadDir       string
	S3Region        string
	S3Bucket        string
	S3AccessKeyID   string
	S3SecretKey     string

	// MailProvider is "ses" or "noop".
	MailProvider    string
	MailFromAddress string
	MailFromName    string
	SESRegion       string
	SESAccessKeyID  string
	SESSecretKey    string
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
// Missing DATABASE_URL or JWT_SECRET is a startup error, never a
// per-request one.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist; we rely on system environment variables.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:     env,
		Port:            os.Getenv("PORT"),
		DBUrl:           os.Getenv("DATABASE_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StorageProvider: os.Getenv("STORAGE_PROVIDER"),
		UploadDir:       os.Getenv("UPLOAD_DIR"),
		S3Region:        os.Getenv("S3_REGION"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3AccessKeyID:   os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretKey:     os.Getenv("S3_SECRET_ACCESS_KEY"),
		MailProvider:    os.Getenv("MAIL_PROVIDER"),
		MailFromAddress: os.Getenv("MAIL_FROM_ADDRESS"),
		MailFromName:    os.Getenv("MAIL_FROM_NAME"),
		SESRegion:       os.Getenv("SES_REGION"),
		SESAccessKeyID:  os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretKey:    os.Getenv("SES_SECRET_ACCESS_KEY"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StorageProvider == "" {
		cfg.StorageProvider = "local"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.MailProvider == "" {
		cfg.MailProvider = "noop"
	}

	if cfg.DBUrl == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.StorageProvider == "s3" && cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required when STORAGE_PROVIDER=s3")
	}

	return cfg, nil
}
