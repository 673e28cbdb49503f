package main

import (
	"fmt"
	"leaguecatalog/pkg/config"
	"leaguecatalog/pkg/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("couldn't get the sql connection: %w", err)
			}

			if err := database.RunMigrations(cmd.Context(), sqlDB); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}
}
