package main

import (
	"github.com/spf13/cobra"

	"github.com/ksarapp/ksar-backend/internal/app"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the health and metrics server",
		Long: `Connect to PostgreSQL (and Redis when REDIS_URL is set), apply
migrations when database.auto_migrate is enabled, and serve /live, /ready,
/health and /metrics until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context())
		},
	}
}
