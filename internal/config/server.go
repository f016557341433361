package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server is the API server configuration, read from the environment.
type Server struct {
	Port           string        `env:"API_PORT" envDefault:"8080"`
	Env            string        `env:"API_ENV" envDefault:"development"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	EnableCache    bool          `env:"ENABLE_ADJUSTER_CACHE"`
	CacheTTL       time.Duration `env:"ADJUSTER_CACHE_TTL" envDefault:"1h"`
}

func LoadServer() (Server, error) {
	var s Server
	if err := env.Parse(&s); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

func (s Server) Production() bool { return s.Env == "production" }

// CacheEnabled keeps the adjuster cache out of production deployments.
func (s Server) CacheEnabled() bool { return s.EnableCache && !s.Production() }

func (s Server) Level() slog.Level {
	switch strings.ToLower(s.LogLevel) {
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
