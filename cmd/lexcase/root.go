package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"lexcase/config"
	"lexcase/db"
	"lexcase/repo"
	"lexcase/store"
)

var (
	cfg   *config.Config
	conn  *gorm.DB
	st    *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "lexcase",
	Short: "Record store for the legal case-management tool",
	Long: `lexcase manages the local record store of the case-management tool:
cases, hearings, documents and notes, persisted as whole collections
in a single SQLite database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()

		var err error
		conn, err = db.Initialize(cfg.DBPath, cfg.Environment)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		st = store.New(conn)
		if err := st.Migrate(); err != nil {
			return err
		}

		// The initializer is idempotent, so running it on every start is safe
		if cfg.SeedSampleData {
			if err := repo.SeedSampleCases(st); err != nil {
				return fmt.Errorf("failed to seed sample data: %w", err)
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return db.Close(conn)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
