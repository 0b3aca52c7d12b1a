package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable through STORAGE_BACKEND.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
	StorageS3       = "s3"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	StorageBackend         string
	DocumentKey            string
	SaveTimeoutSeconds     int
	ShutdownTimeoutSeconds int

	// Postgres backend
	DatabaseURL    string
	MigrationsPath string

	// SQLite backend
	SQLitePath string

	// Redis backend
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// S3 backend
	S3Endpoint     string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
	S3UsePathStyle bool

	// Presentation
	Locale         string
	CurrencySuffix string

	// HTTP
	CORSAllowedOrigins []string
	RateLimit          string

	// Installment reminder
	ReminderCron       string
	ReminderWindowDays int
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	ReminderFrom       string
	ReminderTo         []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetString("PORT"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
		LogLevel:     strings.ToLower(v.GetString("LOG_LEVEL")),

		StorageBackend:         strings.ToLower(v.GetString("STORAGE_BACKEND")),
		DocumentKey:            v.GetString("DOCUMENT_KEY"),
		SaveTimeoutSeconds:     v.GetInt("SAVE_TIMEOUT_SECONDS"),
		ShutdownTimeoutSeconds: v.GetInt("SHUTDOWN_TIMEOUT_SECONDS"),

		DatabaseURL:    v.GetString("PGSQL_URL"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),

		SQLitePath: v.GetString("SQLITE_PATH"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		S3Endpoint:     v.GetString("S3_ENDPOINT"),
		S3Region:       v.GetString("S3_REGION"),
		S3Bucket:       v.GetString("S3_BUCKET"),
		S3AccessKey:    v.GetString("S3_ACCESS_KEY"),
		S3SecretKey:    v.GetString("S3_SECRET_KEY"),
		S3UsePathStyle: v.GetBool("S3_USE_PATH_STYLE"),

		Locale:         v.GetString("LOCALE"),
		CurrencySuffix: v.GetString("CURRENCY_SUFFIX"),

		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:          v.GetString("RATE_LIMIT"),

		ReminderCron:       v.GetString("REMINDER_CRON"),
		ReminderWindowDays: v.GetInt("REMINDER_WINDOW_DAYS"),
		SMTPHost:           v.GetString("SMTP_HOST"),
		SMTPPort:           v.GetInt("SMTP_PORT"),
		SMTPUsername:       v.GetString("SMTP_USERNAME"),
		SMTPPassword:       v.GetString("SMTP_PASSWORD"),
		ReminderFrom:       v.GetString("REMINDER_FROM"),
		ReminderTo:         splitList(v.GetString("REMINDER_TO")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}

	switch cfg.StorageBackend {
	case StorageMemory:
		slog.Warn("Using in-memory storage, data is lost on restart")
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			slog.Warn("PGSQL_URL environment variable not set")
		}
	case StorageSQLite, StorageRedis, StorageS3:
	default:
		slog.Warn("Unknown STORAGE_BACKEND, falling back to memory", slog.String("backend", cfg.StorageBackend))
		cfg.StorageBackend = StorageMemory
	}

	if cfg.ReminderWindowDays < 0 {
		slog.Warn("Negative REMINDER_WINDOW_DAYS, using default", slog.Int("value", cfg.ReminderWindowDays))
		cfg.ReminderWindowDays = 7
	}

	return cfg, nil
}

// SMTPEnabled reports whether reminders can be e-mailed.
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.ReminderFrom != "" && len(c.ReminderTo) > 0
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_BACKEND", StorageMemory)
	v.SetDefault("DOCUMENT_KEY", "current_data")
	v.SetDefault("SAVE_TIMEOUT_SECONDS", 30)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 15)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SQLITE_PATH", "finance.db")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("S3_USE_PATH_STYLE", false)
	v.SetDefault("LOCALE", "fa")
	v.SetDefault("CURRENCY_SUFFIX", "تومان")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("REMINDER_CRON", "")
	v.SetDefault("REMINDER_WINDOW_DAYS", 7)
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("REMINDER_FROM", "")
	v.SetDefault("REMINDER_TO", "")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
