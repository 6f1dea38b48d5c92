package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	JWT       JWTConfig
	Content   ContentConfig
	S3        S3Config
	Assistant AssistantConfig
	Email     EmailConfig
	Log       LogConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings. The database only stores
// portal settings; when disabled those live in the SQLite file at SQLitePath.
type DBConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	SQLitePath string `mapstructure:"sqlite_path"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	Name       string `mapstructure:"name"`
	SSLMode    string `mapstructure:"sslmode"`
	MaxOpen    int    `mapstructure:"max_open"`
	MaxIdle    int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// ContentConfig holds spreadsheet endpoint settings.
type ContentConfig struct {
	// ScriptURL is the initial endpoint; an admin may replace it at runtime.
	ScriptURL    string        `mapstructure:"script_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MockFallback bool          `mapstructure:"mock_fallback"`
}

// S3Config holds AWS S3 settings for gallery uploads.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// AssistantConfig holds settings for the AI ustadz chat.
type AssistantConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider      string `mapstructure:"provider"`
	Region        string `mapstructure:"region"`
	FromAddress   string `mapstructure:"from_address"`
	FromName      string `mapstructure:"from_name"`
	UstadzAddress string `mapstructure:"ustadz_address"`
	FrontendURL   string `mapstructure:"frontend_url"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the MASJID_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MASJID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.enabled", false)
	v.SetDefault("db.sqlite_path", "masjid-settings.db")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "masjid")
	v.SetDefault("db.password", "masjid_secret")
	v.SetDefault("db.name", "masjid_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "24h")
	v.SetDefault("jwt.issuer", "masjid")

	// Content defaults
	v.SetDefault("content.script_url", "")
	v.SetDefault("content.timeout", "10s")
	v.SetDefault("content.mock_fallback", true)

	// S3 defaults
	v.SetDefault("s3.region", "ap-southeast-3")
	v.SetDefault("s3.bucket", "masjid-media")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.presign_expiry", 3600)

	// Assistant defaults
	v.SetDefault("assistant.provider", "gemini")
	v.SetDefault("assistant.api_key", "")
	v.SetDefault("assistant.model", "gemini-2.0-flash")
	v.SetDefault("assistant.timeout_secs", 60)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-southeast-1")
	v.SetDefault("email.from_address", "noreply@almuamalah.id")
	v.SetDefault("email.from_name", "Masjid Al-Muamalah")
	v.SetDefault("email.ustadz_address", "")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "MASJID_SERVER_PORT",
		"server.read_timeout":    "MASJID_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "MASJID_SERVER_WRITE_TIMEOUT",
		"server.environment":     "MASJID_SERVER_ENVIRONMENT",
		"db.enabled":             "MASJID_DB_ENABLED",
		"db.sqlite_path":         "MASJID_DB_SQLITE_PATH",
		"db.host":                "MASJID_DB_HOST",
		"db.port":                "MASJID_DB_PORT",
		"db.user":                "MASJID_DB_USER",
		"db.password":            "MASJID_DB_PASSWORD",
		"db.name":                "MASJID_DB_NAME",
		"db.sslmode":             "MASJID_DB_SSLMODE",
		"db.max_open":            "MASJID_DB_MAX_OPEN",
		"db.max_idle":            "MASJID_DB_MAX_IDLE",
		"jwt.secret":             "MASJID_JWT_SECRET",
		"jwt.access_expiry":      "MASJID_JWT_ACCESS_EXPIRY",
		"jwt.issuer":             "MASJID_JWT_ISSUER",
		"content.script_url":     "MASJID_CONTENT_SCRIPT_URL",
		"content.timeout":        "MASJID_CONTENT_TIMEOUT",
		"content.mock_fallback":  "MASJID_CONTENT_MOCK_FALLBACK",
		"s3.region":              "MASJID_S3_REGION",
		"s3.bucket":              "MASJID_S3_BUCKET",
		"s3.endpoint":            "MASJID_S3_ENDPOINT",
		"s3.access_key":          "MASJID_S3_ACCESS_KEY",
		"s3.secret_key":          "MASJID_S3_SECRET_KEY",
		"s3.max_file_size_mb":    "MASJID_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":      "MASJID_S3_PRESIGN_EXPIRY",
		"assistant.provider":     "MASJID_ASSISTANT_PROVIDER",
		"assistant.api_key":      "MASJID_ASSISTANT_API_KEY",
		"assistant.model":        "MASJID_ASSISTANT_MODEL",
		"assistant.timeout_secs": "MASJID_ASSISTANT_TIMEOUT_SECS",
		"email.provider":         "MASJID_EMAIL_PROVIDER",
		"email.region":           "MASJID_EMAIL_REGION",
		"email.from_address":     "MASJID_EMAIL_FROM_ADDRESS",
		"email.from_name":        "MASJID_EMAIL_FROM_NAME",
		"email.ustadz_address":   "MASJID_EMAIL_USTADZ_ADDRESS",
		"email.frontend_url":     "MASJID_EMAIL_FRONTEND_URL",
		"log.level":              "MASJID_LOG_LEVEL",
		"log.format":             "MASJID_LOG_FORMAT",
		"cors.allowed_origins":   "MASJID_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MASJID_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MASJID_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Enabled:    v.GetBool("db.enabled"),
		SQLitePath: v.GetString("db.sqlite_path"),
		Host:       v.GetString("db.host"),
		Port:       v.GetInt("db.port"),
		User:       v.GetString("db.user"),
		Password:   v.GetString("db.password"),
		Name:       v.GetString("db.name"),
		SSLMode:    v.GetString("db.sslmode"),
		MaxOpen:    v.GetInt("db.max_open"),
		MaxIdle:    v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.Content = ContentConfig{
		ScriptURL:    strings.TrimSpace(v.GetString("content.script_url")),
		Timeout:      v.GetDuration("content.timeout"),
		MockFallback: v.GetBool("content.mock_fallback"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Assistant = AssistantConfig{
		Provider:    v.GetString("assistant.provider"),
		APIKey:      v.GetString("assistant.api_key"),
		Model:       v.GetString("assistant.model"),
		TimeoutSecs: v.GetInt("assistant.timeout_secs"),
	}
	cfg.Email = EmailConfig{
		Provider:      v.GetString("email.provider"),
		Region:        v.GetString("email.region"),
		FromAddress:   v.GetString("email.from_address"),
		FromName:      v.GetString("email.from_name"),
		UstadzAddress: v.GetString("email.ustadz_address"),
		FrontendURL:   v.GetString("email.frontend_url"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
