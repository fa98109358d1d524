package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Log    LogConfig
	CORS   CORSConfig
	Email  EmailConfig
}

// EmailConfig holds package-update notification settings.
type EmailConfig struct {
	Provider        string   `mapstructure:"provider"`
	Region          string   `mapstructure:"region"`
	FromAddress     string   `mapstructure:"from_address"`
	FromName        string   `mapstructure:"from_name"`
	FrontendURL     string   `mapstructure:"frontend_url"`
	NotifyAddresses []string `mapstructure:"notify_addresses"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`

	MaxLifetime    time.Duration `mapstructure:"max_lifetime"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	MigrationsPath string        `mapstructure:"migrations_path"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the STUDIO_ prefix.
// A .env file in the working directory, when present, is loaded first and
// never overrides variables already set in the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("config.Load: ignoring unreadable .env file: %v", err)
	}

	v := viper.New()
	v.SetEnvPrefix("STUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "studio")
	v.SetDefault("db.password", "studio_secret")
	v.SetDefault("db.name", "studio_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)
	v.SetDefault("db.max_lifetime", "30m")
	v.SetDefault("db.connect_timeout", "5s")
	v.SetDefault("db.migrations_path", "db/migrations")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@studio.example.com")
	v.SetDefault("email.from_name", "Studio Portal")
	v.SetDefault("email.frontend_url", "http://localhost:3000")
	v.SetDefault("email.notify_addresses", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "STUDIO_SERVER_PORT",
		"server.read_timeout":    "STUDIO_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "STUDIO_SERVER_WRITE_TIMEOUT",
		"server.environment":     "STUDIO_SERVER_ENVIRONMENT",
		"db.host":                "STUDIO_DB_HOST",
		"db.port":                "STUDIO_DB_PORT",
		"db.user":                "STUDIO_DB_USER",
		"db.password":            "STUDIO_DB_PASSWORD",
		"db.name":                "STUDIO_DB_NAME",
		"db.sslmode":             "STUDIO_DB_SSLMODE",
		"db.max_open":            "STUDIO_DB_MAX_OPEN",
		"db.max_idle":            "STUDIO_DB_MAX_IDLE",
		"db.max_lifetime":        "STUDIO_DB_MAX_LIFETIME",
		"db.connect_timeout":     "STUDIO_DB_CONNECT_TIMEOUT",
		"db.migrations_path":     "STUDIO_DB_MIGRATIONS_PATH",
		"log.level":              "STUDIO_LOG_LEVEL",
		"log.format":             "STUDIO_LOG_FORMAT",
		"cors.allowed_origins":   "STUDIO_CORS_ALLOWED_ORIGINS",
		"email.provider":         "STUDIO_EMAIL_PROVIDER",
		"email.region":           "STUDIO_EMAIL_REGION",
		"email.from_address":     "STUDIO_EMAIL_FROM_ADDRESS",
		"email.from_name":        "STUDIO_EMAIL_FROM_NAME",
		"email.frontend_url":     "STUDIO_EMAIL_FRONTEND_URL",
		"email.notify_addresses": "STUDIO_EMAIL_NOTIFY_ADDRESSES",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if STUDIO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("STUDIO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),

		MaxLifetime:    v.GetDuration("db.max_lifetime"),
		ConnectTimeout: v.GetDuration("db.connect_timeout"),
		MigrationsPath: v.GetString("db.migrations_path"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Email = EmailConfig{
		Provider:        v.GetString("email.provider"),
		Region:          v.GetString("email.region"),
		FromAddress:     v.GetString("email.from_address"),
		FromName:        v.GetString("email.from_name"),
		FrontendURL:     v.GetString("email.frontend_url"),
		NotifyAddresses: splitList(v.GetString("email.notify_addresses")),
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
