package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cienciascontic/textlabx/internal/usecase"
)

func trainCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a model from a YAML file of examples",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := loadExamples(path)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			model, err := usecase.NewModelUsecase(newClient(cfg)).Train(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "model_id: %s\nendpoint: %s\n", model.ModelID, model.Endpoint)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "Path to the examples file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// loadExamples reads a file of the form
//
//	ejemplos:
//	  - texto: me encanta
//	    categoria: positivo
func loadExamples(path string) (*usecase.TrainModelInput, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read examples: %w", err)
	}

	var input usecase.TrainModelInput
	if err := yaml.Unmarshal(b, &input); err != nil {
		return nil, fmt.Errorf("unmarshal examples: %w", err)
	}
	if len(input.Examples) == 0 {
		return nil, fmt.Errorf("%s has no examples", path)
	}
	return &input, nil
}
