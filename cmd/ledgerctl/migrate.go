package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/print-shop/ledger/internal/infra/db"
)

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the ledger tables",
		Long: `Create or update the categories, sources and transactions tables.

Migration is additive: existing rows and columns are left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := c.config()

			database, err := db.NewConnection(&cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			slog.Info("Running database migrations", "driver", cfg.Database.Driver)
			if err := database.Migrate(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
