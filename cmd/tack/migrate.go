package main

import (
	"fmt"

	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, func(st *sqlite.Store) error {
					if err := st.ApplyMigrations(); err != nil {
						return err
					}
					return printVersion(cmd, st)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert every applied migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, func(st *sqlite.Store) error {
					if err := st.RollbackMigrations(); err != nil {
						return err
					}
					return printVersion(cmd, st)
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, func(st *sqlite.Store) error {
					return printVersion(cmd, st)
				})
			},
		},
	)

	return cmd
}

func withStore(cmd *cobra.Command, fn func(st *sqlite.Store) error) error {
	cfg := loadConfig(cmd)

	st, err := sqlite.NewStore(fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer st.Close()

	return fn(st)
}

func printVersion(cmd *cobra.Command, st *sqlite.Store) error {
	version, dirty, err := st.MigrationVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		cmd.Printf("schema version %d (dirty)\n", version)
		return nil
	}
	cmd.Printf("schema version %d\n", version)
	return nil
}
