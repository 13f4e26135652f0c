package client

import (
	"context"
	"encoding/json"
	"math"

	"github.com/cienciascontic/textlabx/internal/domain/entity"
	"github.com/cienciascontic/textlabx/internal/domain/service"
)

// RemotePredictor adapts TextLabXClient to the Predictor interface
type RemotePredictor struct {
	client *TextLabXClient
}

// NewRemotePredictor creates a new RemotePredictor
func NewRemotePredictor(client *TextLabXClient) service.Predictor {
	return &RemotePredictor{client: client}
}

// Predict asks the remote model for a category
func (p *RemotePredictor) Predict(ctx context.Context, modelID, text string) (*entity.Prediction, error) {
	resp, err := p.client.Predict(ctx, modelID, text)
	if err != nil {
		return nil, err
	}

	return &entity.Prediction{
		Category:    categoryLabel(resp.Categoria),
		ServerError: resp.Error,
	}, nil
}

// categoryLabel renders a decoded categoria value as display text.
// Falsy values (null, "", 0, false) yield an empty label.
func categoryLabel(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return ""
	case float64:
		if val == 0 || math.IsNaN(val) {
			return ""
		}
		return entity.FormatNumber(val)
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
