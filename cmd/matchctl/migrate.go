package main

import (
	"fmt"

	"foodcart/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var db *gorm.DB
			stop, err := startApp(cmd.Context(), &db)
			if err != nil {
				return err
			}
			defer stop()

			if err := postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")

			return nil
		},
	}
}
