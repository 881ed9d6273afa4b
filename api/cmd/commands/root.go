package commands

import (
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/baechuer/hbnb-service/internal/config"
	"github.com/baechuer/hbnb-service/internal/logger"
)

var cfg *config.Config

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hbnb",
		Short:         "HBnB catalog API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init()
			c, err := config.Load()
			if err != nil {
				return err
			}
			cfg = c
			return nil
		},
	}

	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())
	return root
}

// Execute runs the CLI. With no subcommand it serves the API.
func Execute() error {
	root := newRootCmd()
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	}
	if err := root.Execute(); err != nil {
		zlog.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}
