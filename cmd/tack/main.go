// Command tack runs the tack project management API.
package main

//go:generate swag init -g router.go -d ../../internal/tack/http,../../pkg/tacksdk -o ../../api/tack --packageName tack --outputTypes go

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "tack",
		Short:         "Multi-tenant project management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		// No subcommand behaves like serve so the container needs no arguments.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
	root.PersistentFlags().Int("port", 0, "HTTP port (overrides PORT)")
	root.PersistentFlags().String("db", "", "SQLite database file (overrides TACK_DATABASE_FILE)")

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
	)

	if err := root.Execute(); err != nil {
		log.Fatalf("tack: %v", err)
	}
}
