package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"log"
	"log/slog"
	"time"
)

type Config struct {
	HTTPServer  HTTPServer
	RateService RateService
	Dashboard   Dashboard
	Preferences Preferences
	Redis       Redis
	Storage     Storage
	Log         Log
}

type HTTPServer struct {
	Port        string        `env:"HTTP_PORT" env-default:"8082"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"2m"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type RateService struct {
	URL string `env:"RATE_SERVICE_URL" env-default:"http://localhost:8081/api"`
}

type Dashboard struct {
	DefaultFrom    string        `env:"DASHBOARD_DEFAULT_FROM" env-default:"USD"`
	DefaultTo      string        `env:"DASHBOARD_DEFAULT_TO" env-default:"EUR"`
	DefaultAmount  float64       `env:"DASHBOARD_DEFAULT_AMOUNT" env-default:"1"`
	DefaultRange   string        `env:"DASHBOARD_DEFAULT_RANGE" env-default:"1M"`
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" env-default:"30m"`
	SweepInterval  time.Duration `env:"SESSION_SWEEP_INTERVAL" env-default:"1m"`
}

type Preferences struct {
	Backend         string `env:"PREFERENCES_BACKEND" env-default:"redis"`
	DefaultTheme    string `env:"PREFERENCES_DEFAULT_THEME" env-default:"light"`
	DefaultLanguage string `env:"PREFERENCES_DEFAULT_LANGUAGE" env-default:"en"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
	Prefix   string `env:"REDIS_PREFIX" env-default:"fxdash:"`
}

type Storage struct {
	Timeout  time.Duration `env:"BD_TIMEOUT" env-default:"10s"`
	Host     string        `env:"BD_HOST" env-default:"localhost"`
	Port     int           `env:"BD_PORT" env-default:"5432"`
	User     string        `env:"BD_USER" env-default:"postgres"`
	Password string        `env:"BD_PASSWORD"`
	DBName   string        `env:"BD_DBNAME" env-default:"fxdash"`
	SSLMode  string        `env:"BD_SSL_MODE" env-default:"disable"`
	Schema   string        `env:"BD_SCHEMA" env-default:"public"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" env-default:"debug"`
}

func NewConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal("Error reading env: ", err)
	}

	return cfg
}

func Load() (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load(".env")

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

func (s Storage) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		s.Host,
		s.Port,
		s.User,
		s.Password,
		s.DBName,
		s.SSLMode,
		s.Schema,
	)
}

// SlogLevel falls back to debug when LOG_LEVEL cannot be parsed.
func (l Log) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelDebug
	}
	return level
}
