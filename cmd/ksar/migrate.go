package main

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/ksarapp/ksar-backend/internal/adapter/postgres"
	"github.com/ksarapp/ksar-backend/internal/app"
	"github.com/ksarapp/ksar-backend/internal/config"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, log *slog.Logger, p *goose.Provider) error {
				results, err := p.Up(ctx)
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				for _, r := range results {
					log.Info("migration applied",
						slog.Int64("version", r.Source.Version),
						slog.Duration("duration", r.Duration),
					)
				}
				log.Info("schema up to date", slog.Int("applied", len(results)))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, log *slog.Logger, p *goose.Provider) error {
				r, err := p.Down(ctx)
				if err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				log.Info("migration rolled back", slog.Int64("version", r.Source.Version))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the state of every migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, _ *slog.Logger, p *goose.Provider) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
				for _, s := range statuses {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return w.Flush()
			})
		},
	})

	return cmd
}

func withMigrator(ctx context.Context, fn func(context.Context, *slog.Logger, *goose.Provider) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	provider, closeDB, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer func() { _ = closeDB() }()

	return fn(ctx, log, provider)
}
