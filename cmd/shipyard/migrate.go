package main

import (
	"github.com/spf13/cobra"

	"space-catalog/shipyard/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the ships table",
	RunE: func(cmd *cobra.Command, args []string) error {
		gormDB, err := db.InitORM(cfg.DB)
		if err != nil {
			return err
		}
		return db.Migrate(gormDB)
	},
}
