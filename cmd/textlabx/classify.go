package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cienciascontic/textlabx/internal/adapter/client"
	"github.com/cienciascontic/textlabx/internal/adapter/extension"
	"github.com/cienciascontic/textlabx/internal/usecase"
)

// classifyCmd classifies one text with one model and prints the result the
// way the classify block would show it.
func classifyCmd() *cobra.Command {
	var (
		modelID string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "classify [text...]",
		Short: "Classify text with a model",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			c := usecase.NewClassificationClient(client.NewRemotePredictor(newClient(cfg)))
			ext := extension.New(extension.Standalone(c))
			if _, err := ext.Invoke(cmd.Context(), extension.OpcodeSetModel, map[string]any{"ID": modelID}); err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if !verbose {
				result, err := ext.Invoke(cmd.Context(), extension.OpcodeClassify, map[string]any{"TEXTO": text})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result)
				return nil
			}

			outcome := c.Classify(cmd.Context(), text)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", outcome.Kind, outcome)
			if outcome.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "cause: %v\n", outcome.Err)
			}
			if outcome.ServerError != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "server error: %s\n", outcome.ServerError)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&modelID, "model", "", "Model ID")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Print the outcome kind and its cause")
	return cmd
}
