package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/sectorflow/demand-service/internal/app"
	"github.com/sectorflow/demand-service/internal/config"
	"github.com/sectorflow/demand-service/migrations"
)

type options struct {
	dsn      string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the demand service database schema",
		Version:       app.BuildVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&opts.dsn, "dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL connection string")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newUpCmd(opts), newDownCmd(opts), newStatusCmd(opts))
	return root
}

func newUpCmd(opts *options) *cobra.Command {
	var to int64
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd.Context(), opts, func(ctx context.Context, p *goose.Provider, log *slog.Logger) error {
				var (
					results []*goose.MigrationResult
					err     error
				)
				if to > 0 {
					results, err = p.UpTo(ctx, to)
				} else {
					results, err = p.Up(ctx)
				}
				logResults(log, results)
				return err
			})
		},
	}
	cmd.Flags().Int64Var(&to, "to", 0, "migrate up to this version (default: latest)")
	return cmd
}

func newDownCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd.Context(), opts, func(ctx context.Context, p *goose.Provider, log *slog.Logger) error {
				res, err := p.Down(ctx)
				if res != nil {
					logResults(log, []*goose.MigrationResult{res})
				}
				if errors.Is(err, goose.ErrNoNextVersion) {
					log.Info("nothing to roll back")
					return nil
				}
				return err
			})
		},
	}
}

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which migrations are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd.Context(), opts, func(ctx context.Context, p *goose.Provider, _ *slog.Logger) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, s := range statuses {
					applied := "pending"
					if s.State == goose.StateApplied {
						applied = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(out, "%5d  %-24s  %s\n", s.Source.Version, applied, s.Source.Path)
				}
				return nil
			})
		},
	}
}

func withProvider(
	ctx context.Context,
	opts *options,
	fn func(ctx context.Context, p *goose.Provider, log *slog.Logger) error,
) error {
	log := app.NewLogger(config.LogConfig{Level: opts.logLevel, Format: "text"})

	if opts.dsn == "" {
		log.Error("no database DSN: set --dsn or DATABASE_DSN")
		return errors.New("missing dsn")
	}

	db, err := sql.Open("pgx", opts.dsn)
	if err != nil {
		log.Error("open database", slog.String("error", err.Error()))
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Error("ping database", slog.String("error", err.Error()))
		return err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Error("load migrations", slog.String("error", err.Error()))
		return err
	}

	if err := fn(ctx, provider, log); err != nil {
		log.Error("migration failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func logResults(log *slog.Logger, results []*goose.MigrationResult) {
	if len(results) == 0 {
		log.Info("schema is up to date")
		return
	}
	for _, r := range results {
		attrs := []any{
			slog.Int64("version", r.Source.Version),
			slog.String("direction", r.Direction),
			slog.Duration("duration", r.Duration),
		}
		if r.Error != nil {
			log.Error("migration", append(attrs, slog.String("error", r.Error.Error()))...)
			continue
		}
		log.Info("migration", attrs...)
	}
}
