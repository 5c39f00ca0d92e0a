package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"

	"consorcio-simulator/config"
	httpLayer "consorcio-simulator/http"
	"consorcio-simulator/repository"
	"consorcio-simulator/service"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the simulation HTTP API" }
func (*serveCmd) Usage() string {
	return `consorcio serve [-addr <host:port>]

  Serves the consórcio simulation API. Settings come from .env, the YAML file
  named by CONSORCIO_CONFIG and the environment.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Listen address, overrides CONSORCIO_ADDR")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.addr != "" {
		cfg.Addr = c.addr
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	if err := serve(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func newCache(ctx context.Context, cfg config.Config, logger *slog.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, using in-memory cache")
		return repository.NewMemoryCache()
	}
	cache, err := repository.NewRedisCache(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory cache", "error", err)
		return repository.NewMemoryCache()
	}
	logger.Info("connected to redis", "addr", cfg.RedisAddr)
	return cache
}

func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	simulationRepo := repository.NewSimulationRepositoryMemory(cfg.HistorySize)
	cache := newCache(ctx, cfg, logger)
	if closer, ok := cache.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	aiService := service.NewAIService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	simulationService := service.NewSimulationService(simulationRepo, cache, cfg.CacheTTL, aiService, logger)
	scenarioService := service.NewScenarioService(simulationService, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	handler := httpLayer.NewRouter(
		httpLayer.NewSimulationHandler(simulationService),
		httpLayer.NewScenarioHandler(scenarioService),
		rateLimiter,
		logger,
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("starting server: %w", err)
	case <-quit:
		logger.Info("shutting down server")
	case <-ctx.Done():
		logger.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server exited")
	return nil
}
