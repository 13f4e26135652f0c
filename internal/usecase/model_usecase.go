package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cienciascontic/textlabx/internal/domain/entity"
	"github.com/cienciascontic/textlabx/internal/domain/service"
)

// Error definitions for model usecase
var (
	ErrInvalidRequest = errors.New("invalid request")
)

// TrainModelInput represents the input for training a model
type TrainModelInput struct {
	Examples []entity.TrainingExample `json:"ejemplos" yaml:"ejemplos" binding:"required,min=1"`
}

// ModelUsecase creates models on the classification server
type ModelUsecase interface {
	Train(ctx context.Context, input *TrainModelInput) (*entity.TrainedModel, error)
}

type modelUsecase struct {
	trainer service.Trainer
}

// NewModelUsecase creates a new model usecase
func NewModelUsecase(trainer service.Trainer) ModelUsecase {
	return &modelUsecase{trainer: trainer}
}

func (u *modelUsecase) Train(ctx context.Context, input *TrainModelInput) (*entity.TrainedModel, error) {
	if input == nil || len(input.Examples) == 0 {
		return nil, fmt.Errorf("%w: no examples", ErrInvalidRequest)
	}

	examples := make([]entity.TrainingExample, len(input.Examples))
	for i, e := range input.Examples {
		text := strings.TrimSpace(e.Text)
		category := strings.TrimSpace(e.Category)
		if text == "" || category == "" {
			return nil, fmt.Errorf("%w: example %d needs texto and categoria", ErrInvalidRequest, i)
		}
		examples[i] = entity.TrainingExample{Text: text, Category: category}
	}

	return u.trainer.Train(ctx, examples)
}
