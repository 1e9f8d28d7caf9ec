package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ksarapp/ksar-backend/internal/app"
	"github.com/ksarapp/ksar-backend/internal/config"
)

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Install reference data",
	}

	var file string
	aidTypes := &cobra.Command{
		Use:   "aid-types",
		Short: "Insert missing aid-type labels",
		Long: `Insert every catalog label that does not exist yet. Labels already
present are left untouched, so the command can be re-run safely.

Without --file the default catalog is installed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			labels, err := app.LoadAidTypeCatalog(file)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := app.NewLogger(cfg.Log)

			a, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			added, err := a.Services.AidTypes.SeedLabels(cmd.Context(), labels)
			if err != nil {
				return err
			}

			log.Info("aid types seeded",
				slog.Int("requested", len(labels)),
				slog.Int("added", added),
			)
			return nil
		},
	}
	aidTypes.Flags().StringVar(&file, "file", "", "YAML catalog with an aid_types list")

	cmd.AddCommand(aidTypes)
	return cmd
}
