package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cienciascontic/textlabx/internal/adapter/client"
	"github.com/cienciascontic/textlabx/internal/infrastructure/config"
)

var configPath string

// rootCmd is the root of the command-line application.
var rootCmd = &cobra.Command{
	Use:   "textlabx",
	Short: "Text classification gateway and client for TextLabX models",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: textlabx.yaml search path)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(trainCmd())
	rootCmd.AddCommand(healthCmd())
	rootCmd.SilenceUsage = true
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *client.TextLabXClient {
	return client.NewTextLabXClient(cfg.Classifier.BaseURL, cfg.Classifier.Timeout)
}
