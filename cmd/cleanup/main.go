// Command cleanup physically removes vocabulary documents whose TTL has
// elapsed. Expired rows are already invisible to reads; this reclaims the
// space. It is intended to be invoked by an external cron job.
//
// Only the postgres store needs it; badger expires keys on its own.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/vocab-catalog/internal/adapter/postgres"
	pgvocab "github.com/heartmarshall/vocab-catalog/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/vocab-catalog/internal/app"
	"github.com/heartmarshall/vocab-catalog/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Store.Driver != config.DriverPostgres {
		logger.Info("nothing to clean up", slog.String("driver", cfg.Store.Driver))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := pgvocab.New(pool, postgres.NewTxManager(pool))
	cutoff := time.Now().UTC()

	deleted, err := repo.DeleteExpired(ctx, cutoff)
	if err != nil {
		logger.Error("delete expired failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	logger.Info("delete expired completed",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)
}
