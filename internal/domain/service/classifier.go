package service

import (
	"context"
	"fmt"

	"github.com/cienciascontic/textlabx/internal/domain/entity"
)

// StatusError is returned when the classification server answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("classification service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("classification service returned status %d: %s", e.StatusCode, e.Body)
}

// Predictor asks a remote model for the category of a text
type Predictor interface {
	// Predict sends text to the model identified by modelID.
	// It returns *StatusError for non-2xx responses.
	Predict(ctx context.Context, modelID, text string) (*entity.Prediction, error)
}

// Trainer creates a new remote model from labelled examples
type Trainer interface {
	Train(ctx context.Context, examples []entity.TrainingExample) (*entity.TrainedModel, error)
}

// HealthChecker reports whether the classification server is reachable
type HealthChecker interface {
	Ready(ctx context.Context) error
}
