package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/sectorflow/demand-service/internal/adapter/cache"
	"github.com/sectorflow/demand-service/internal/adapter/directory"
	"github.com/sectorflow/demand-service/internal/adapter/filestore"
	"github.com/sectorflow/demand-service/internal/adapter/postgres"
	alertrepo "github.com/sectorflow/demand-service/internal/adapter/postgres/alert"
	categoryrepo "github.com/sectorflow/demand-service/internal/adapter/postgres/category"
	demandrepo "github.com/sectorflow/demand-service/internal/adapter/postgres/demand"
	filerepo "github.com/sectorflow/demand-service/internal/adapter/postgres/file"
	"github.com/sectorflow/demand-service/internal/config"
	"github.com/sectorflow/demand-service/internal/domain"
	"github.com/sectorflow/demand-service/internal/metrics"
	"github.com/sectorflow/demand-service/internal/service/alert"
	"github.com/sectorflow/demand-service/internal/service/category"
	"github.com/sectorflow/demand-service/internal/service/demand"
	"github.com/sectorflow/demand-service/internal/service/stats"
	"github.com/sectorflow/demand-service/internal/transport/rest"
)

// clientDirectory is satisfied by both the HTTP directory and its cache.
type clientDirectory interface {
	Clients(ctx context.Context) ([]domain.Client, error)
}

// Run loads configuration, wires every dependency and serves HTTP until ctx
// is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Backend),
	)

	// 1. Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	demands := demandrepo.New(pool)
	files := filerepo.New(pool)
	categories := categoryrepo.New(pool)
	alerts := alertrepo.New(pool)

	// 2. Directories, optionally behind the Redis cache.
	users := directory.NewUsers(cfg.Directory.UsersURL, cfg.Directory.Timeout, logger)
	var clients clientDirectory = directory.NewClients(cfg.Directory.ClientsURL, cfg.Directory.Timeout, logger)

	checks := []rest.HealthCheck{{Name: "database", Ping: pool.Ping, Critical: true}}

	rdb, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		checks = append(checks, rest.HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
		clients = cache.NewClients(rdb, clients, cfg.Redis.ClientCacheTTL, logger)
		logger.Info("client directory cache enabled", slog.Duration("ttl", cfg.Redis.ClientCacheTTL))
	}

	// 3. Attachment content.
	store, err := filestore.New(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("file store: %w", err)
	}

	// 4. Metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// 5. Services.
	clk, err := domain.NewCivilClock(cfg.Demand.Timezone)
	if err != nil {
		return fmt.Errorf("demand timezone: %w", err)
	}

	demandService := demand.NewService(logger, demands, files, store, users, clients, txm, clk, m, demand.Config{
		MutateRetries: cfg.Demand.MutateRetries,
		NewestLimit:   cfg.Demand.NewestLimit,
	})
	statsService := stats.NewService(logger, demands, clients, m)
	categoryService := category.NewService(logger, categories, clk)
	alertService := alert.NewService(logger, alerts, clk)

	// 6. HTTP.
	router := rest.NewRouter(rest.RouterDeps{
		Logger:         logger,
		CORS:           cfg.CORS,
		Metrics:        m,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Health:         rest.NewHealthHandler(BuildVersion(), checks...),
		Demands:        rest.NewDemandHandler(demandService, cfg.Storage.MaxUploadBytes, logger),
		Stats:          rest.NewStatsHandler(statsService, logger),
		Categories:     rest.NewCategoryHandler(categoryService, logger),
		Alerts:         rest.NewAlertHandler(alertService, logger),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
