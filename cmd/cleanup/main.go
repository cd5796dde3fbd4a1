// Command cleanup removes attachments that no update entry references and
// that are older than the configured retention. It is intended to be invoked
// by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/sectorflow/demand-service/internal/adapter/filestore"
	"github.com/sectorflow/demand-service/internal/adapter/postgres"
	"github.com/sectorflow/demand-service/internal/adapter/postgres/file"
	"github.com/sectorflow/demand-service/internal/app"
	"github.com/sectorflow/demand-service/internal/config"
	"github.com/sectorflow/demand-service/internal/domain"
	"github.com/sectorflow/demand-service/internal/service/sweeper"
)

const batchSize = 200

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	store, err := filestore.New(ctx, cfg.Storage)
	if err != nil {
		logger.Error("open file store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	clk, err := domain.NewCivilClock(cfg.Demand.Timezone)
	if err != nil {
		logger.Error("demand timezone", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sw := sweeper.New(logger, file.New(pool), store, clk, batchSize)

	res, err := sw.Run(ctx, cfg.Cleanup.OrphanRetention)
	if err != nil {
		logger.Error("orphan sweep failed",
			slog.String("error", err.Error()),
			slog.Int("removed", res.Removed),
		)
		os.Exit(1)
	}

	logger.Info("orphan sweep completed",
		slog.Int("removed", res.Removed),
		slog.Int("failed", res.Failed),
		slog.Duration("retention", cfg.Cleanup.OrphanRetention),
	)
}
