package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Model    ModelConfig
	AuditLog AuditLogConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	MaxConcurrent   int
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type ModelConfig struct {
	Path        string
	LoadRetries int
	LoadBackoff time.Duration
}

type AuditLogConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c AuditLogConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_MAX_CONCURRENT", 64)
	v.SetDefault("SERVER_REQUEST_TIMEOUT", "30s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("MODEL_PATH", "/opt/ml/model")
	v.SetDefault("MODEL_LOAD_RETRIES", 3)
	v.SetDefault("MODEL_LOAD_BACKOFF", "500ms")
	v.SetDefault("AUDIT_LOG_ENABLED", false)
	v.SetDefault("AUDIT_LOG_HOST", "localhost")
	v.SetDefault("AUDIT_LOG_PORT", 5432)
	v.SetDefault("AUDIT_LOG_USER", "forecast")
	v.SetDefault("AUDIT_LOG_PASSWORD", "")
	v.SetDefault("AUDIT_LOG_DBNAME", "forecast")
	v.SetDefault("AUDIT_LOG_SSLMODE", "disable")
	v.SetDefault("AUDIT_LOG_MAX_OPEN_CONNS", 10)
	v.SetDefault("AUDIT_LOG_MAX_IDLE_CONNS", 2)
	v.SetDefault("AUDIT_LOG_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			MaxConcurrent:   v.GetInt("SERVER_MAX_CONCURRENT"),
			RequestTimeout:  parseDuration(v, "SERVER_REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: parseDuration(v, "SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Model: ModelConfig{
			Path:        v.GetString("MODEL_PATH"),
			LoadRetries: v.GetInt("MODEL_LOAD_RETRIES"),
			LoadBackoff: parseDuration(v, "MODEL_LOAD_BACKOFF", 500*time.Millisecond),
		},
		AuditLog: AuditLogConfig{
			Enabled:         v.GetBool("AUDIT_LOG_ENABLED"),
			Host:            v.GetString("AUDIT_LOG_HOST"),
			Port:            v.GetInt("AUDIT_LOG_PORT"),
			User:            v.GetString("AUDIT_LOG_USER"),
			Password:        v.GetString("AUDIT_LOG_PASSWORD"),
			DBName:          v.GetString("AUDIT_LOG_DBNAME"),
			SSLMode:         v.GetString("AUDIT_LOG_SSLMODE"),
			MaxOpenConns:    v.GetInt("AUDIT_LOG_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("AUDIT_LOG_MAX_IDLE_CONNS"),
			ConnMaxLifetime: parseDuration(v, "AUDIT_LOG_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	if cfg.Model.Path == "" {
		return nil, fmt.Errorf("MODEL_PATH must not be empty")
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}
