package main

import (
	"fmt"
	"log/slog"
	"os"

	"fdm-dividend/internal/api"
	"fdm-dividend/internal/config"
	"fdm-dividend/internal/data"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	var cache *data.AdjusterCache
	if cfg.CacheEnabled() {
		cache = data.NewAdjusterCache(cfg.CacheTTL)
		defer cache.Close()
		logger.Info("adjuster cache enabled", "ttl", cfg.CacheTTL)
	}

	router := api.NewRouter(cfg, cache, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("starting API server", "addr", addr, "env", cfg.Env)
	if err := router.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
