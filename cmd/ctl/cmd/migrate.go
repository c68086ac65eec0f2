package cmd

import (
	"fmt"

	"characterdex/internal/infrastructure/migration"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить миграции схемы (data, users, sessions)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		version, err := migration.NewMigration(cfg.DB.Path, nil, log).Up()
		if err != nil {
			return err
		}
		fmt.Fprintf(out(cmd), "Schema of %s is at version %d\n", cfg.DB.Path, version)
		return nil
	},
}
