package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/tuanvumaihuynh/invoicing-api/internal/config"
	"github.com/tuanvumaihuynh/invoicing-api/internal/log"
	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/db"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE:  runUp,
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd.Context(), func(ctx context.Context, logger *slog.Logger, provider *goose.Provider) error {
			result, err := provider.Down(ctx)
			if errors.Is(err, goose.ErrNoNextVersion) {
				logger.InfoContext(ctx, "no migration to roll back")
				return nil
			}
			if err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}

			logResult(ctx, logger, result)
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every migration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd.Context(), func(ctx context.Context, _ *slog.Logger, provider *goose.Provider) error {
			statuses, err := provider.Status(ctx)
			if err != nil {
				return fmt.Errorf("migration status: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, st := range statuses {
				appliedAt := "-"
				if st.State == goose.StateApplied {
					appliedAt = st.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(out, "%-40s %-10s %s\n", st.Source.Path, st.State, appliedAt)
			}
			return nil
		})
	},
}

func runUp(cmd *cobra.Command, _ []string) error {
	return withMigrator(cmd.Context(), func(ctx context.Context, logger *slog.Logger, provider *goose.Provider) error {
		logger.InfoContext(ctx, "starting database migration")

		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}

		for _, result := range results {
			logResult(ctx, logger, result)
		}
		logger.InfoContext(ctx, "database migration completed successfully", slog.Int("applied", len(results)))
		return nil
	})
}

type migratorFunc func(ctx context.Context, logger *slog.Logger, provider *goose.Provider) error

// withMigrator loads config, connects to Postgres and runs fn with a goose
// provider over the embedded migrations.
func withMigrator(ctx context.Context, fn migratorFunc) error {
	if ctx == nil {
		ctx = context.Background()
	}

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	return runMigrator(ctx, logger, pgxPool, fn)
}

func runMigrator(ctx context.Context, logger *slog.Logger, pool *pgxpool.Pool, fn migratorFunc) error {
	provider, closeFn, err := db.NewMigrator(pool)
	if err != nil {
		return fmt.Errorf("error creating migrator: %w", err)
	}
	defer func() {
		if err := closeFn(); err != nil {
			logger.WarnContext(ctx, "error closing migrator", slog.Any("error", err))
		}
	}()

	return fn(ctx, logger, provider)
}

func logResult(ctx context.Context, logger *slog.Logger, result *goose.MigrationResult) {
	if result == nil {
		return
	}

	logger.InfoContext(ctx, "migration applied",
		slog.String("file", result.Source.Path),
		slog.String("direction", result.Direction),
		slog.Duration("duration", result.Duration),
	)
}
