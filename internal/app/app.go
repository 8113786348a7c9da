package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/vocab-catalog/internal/config"
	"github.com/heartmarshall/vocab-catalog/internal/service/vocabulary"
	"github.com/heartmarshall/vocab-catalog/internal/transport/middleware"
	"github.com/heartmarshall/vocab-catalog/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// configured storage, serves the HTTP API and shuts down gracefully once ctx
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store_driver", cfg.Store.Driver),
	)

	shutdownTracing, err := SetupTracing(cfg.Tracing, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	storage, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			logger.Warn("close storage", slog.String("error", err.Error()))
		}
	}()

	svc := vocabulary.NewService(logger, storage.Vocabulary)
	handler, stop := NewHandler(cfg, logger, svc, storage.Checks)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// NewHandler builds the routed and wrapped HTTP handler. The returned stop
// function releases background resources of the middleware.
func NewHandler(cfg *config.Config, logger *slog.Logger, svc *vocabulary.Service, checks []rest.Check) (http.Handler, func()) {
	mux := http.NewServeMux()

	rest.NewVocabularyHandler(svc, logger, cfg.Server.MaxBodyBytes).Register(mux)
	rest.NewHealthHandler(BuildVersion(), checks...).Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	stop := func() {}
	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit)
		limit, stop = rl.Middleware(), rl.Stop
	}

	h := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
		limit,
	)(mux)

	return h, stop
}

func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
