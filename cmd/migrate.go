package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/praython/djenofdjango/internal/database"
)

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(config.Database.Type, config.Database.URI)
		if err != nil {
			return err
		}
		defer closeDB(db)

		if err := database.Migrate(db, config.Database.Type); err != nil {
			return err
		}

		slog.Info("migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(config.Database.Type, config.Database.URI)
		if err != nil {
			return err
		}
		defer closeDB(db)

		return database.Rollback(db, config.Database.Type)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(config.Database.Type, config.Database.URI)
		if err != nil {
			return err
		}
		defer closeDB(db)

		return database.Status(db, config.Database.Type)
	},
}
