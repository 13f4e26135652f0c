package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the classification server is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			c := newClient(cfg)
			resp, err := c.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s: %w", c.BaseURL(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s\n", c.BaseURL(), resp.Status, resp.Message)
			return nil
		},
	}
}
