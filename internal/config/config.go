package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	DB      DatabaseConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	Session SessionConfig
	Worker  WorkerConfig
	Media   MediaConfig
	AWS     AWSConfig
}

// DatabaseConfig contains PostgreSQL connection parameters for the
// console-local store (drafts, refresh sessions). Product data of record
// never lives here.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// CatalogConfig contains credentials for the remote catalog service.
type CatalogConfig struct {
	BaseURL       string
	ConsoleKey    string
	ConsoleSecret string
	WebhookSecret string
}

// SessionConfig controls console session lifetimes.
type SessionConfig struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	FormTTL    time.Duration
	DraftTTL   time.Duration
}

// WorkerConfig contains interval configuration for background workers.
type WorkerConfig struct {
	ReferenceSyncInterval time.Duration
	DraftCleanupInterval  time.Duration
}

// MediaConfig contains S3 staging configuration for product media.
type MediaConfig struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	MaxUploadBytes  int64
}

// AWSConfig contains AWS configuration for Rekognition image moderation.
type AWSConfig struct {
	AccessKeyID       string
	SecretAccessKey   string
	RekognitionRegion string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")

	// Database
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// Catalog backend
	cfg.Catalog = CatalogConfig{
		BaseURL:       getEnv("CATALOG_BASE_URL", ""),
		ConsoleKey:    getEnv("CATALOG_CONSOLE_KEY", ""),
		ConsoleSecret: getEnv("CATALOG_CONSOLE_SECRET", ""),
		WebhookSecret: getEnv("CATALOG_WEBHOOK_SECRET", ""),
	}

	// Media staging (S3)
	cfg.Media = MediaConfig{
		Region:          getEnv("MEDIA_S3_REGION", "me-central-1"),
		Bucket:          getEnv("MEDIA_S3_BUCKET", "telmart-seller-media"),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		MaxUploadBytes:  int64(getEnvInt("MEDIA_MAX_UPLOAD_BYTES", 10<<20)),
	}

	// AWS (Rekognition moderation)
	cfg.AWS = AWSConfig{
		AccessKeyID:       getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretAccessKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		RekognitionRegion: getEnv("AWS_REKOGNITION_REGION", "eu-west-1"),
	}

	// Sessions and workers (durations)
	var err error
	if cfg.Session.AccessTTL, err = parseDurationEnv("SESSION_ACCESS_TTL", "15m"); err != nil {
		return nil, fmt.Errorf("invalid SESSION_ACCESS_TTL: %w", err)
	}
	if cfg.Session.RefreshTTL, err = parseDurationEnv("SESSION_REFRESH_TTL", "720h"); err != nil {
		return nil, fmt.Errorf("invalid SESSION_REFRESH_TTL: %w", err)
	}
	if cfg.Session.FormTTL, err = parseDurationEnv("FORM_SESSION_TTL", "2h"); err != nil {
		return nil, fmt.Errorf("invalid FORM_SESSION_TTL: %w", err)
	}
	if cfg.Session.DraftTTL, err = parseDurationEnv("DRAFT_TTL", "720h"); err != nil {
		return nil, fmt.Errorf("invalid DRAFT_TTL: %w", err)
	}
	if cfg.Worker.ReferenceSyncInterval, err = parseDurationEnv("REFERENCE_SYNC_INTERVAL", "15m"); err != nil {
		return nil, fmt.Errorf("invalid REFERENCE_SYNC_INTERVAL: %w", err)
	}
	if cfg.Worker.DraftCleanupInterval, err = parseDurationEnv("DRAFT_CLEANUP_INTERVAL", "1h"); err != nil {
		return nil, fmt.Errorf("invalid DRAFT_CLEANUP_INTERVAL: %w", err)
	}

	// Basic validation — keeps messages concise and helpful.
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}
	if cfg.Catalog.BaseURL == "" {
		return nil, errors.New("CATALOG_BASE_URL must be set")
	}
	if cfg.Catalog.ConsoleSecret == "" {
		return nil, errors.New("CATALOG_CONSOLE_SECRET must be set for request signing")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set for authentication")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
