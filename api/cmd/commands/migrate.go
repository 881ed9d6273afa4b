package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/baechuer/hbnb-service/internal/infrastructure/db/postgres"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DatabaseURL == "" {
				return errors.New("migrate needs DATABASE_URL")
			}
			db, err := postgres.Open(cmd.Context(), cfg.DBDriver, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()
			return postgres.Migrate(db)
		},
	}
}
