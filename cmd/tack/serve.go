package main

import (
	"fmt"

	"github.com/aussiebroadwan/tack/internal/tack/app"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	cfg := loadConfig(cmd)

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := application.Run(); err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	return nil
}

// loadConfig reads the environment, then applies any flags that were set.
func loadConfig(cmd *cobra.Command) app.Config {
	cfg := app.LoadConfig()

	flags := cmd.Flags()
	if flags.Changed("port") {
		if port, err := flags.GetInt("port"); err == nil {
			cfg.Port = port
		}
	}
	if flags.Changed("db") {
		if db, err := flags.GetString("db"); err == nil {
			cfg.DatabaseFile = db
		}
	}
	return cfg
}
