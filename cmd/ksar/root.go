package main

import (
	"github.com/spf13/cobra"

	"github.com/ksarapp/ksar-backend/internal/app"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ksar",
		Short:         "Humanitarian aid case backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newSeedCommand())

	return cmd
}
