package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/cienciascontic/textlabx/internal/domain/entity"
	"github.com/cienciascontic/textlabx/internal/domain/service"
)

// ClassificationClient holds one model selection and classifies text against it.
// The predictor, and with it the server address, is fixed at construction.
type ClassificationClient struct {
	predictor service.Predictor

	mu      sync.RWMutex
	modelID string
}

// NewClassificationClient creates a client with no model selected
func NewClassificationClient(predictor service.Predictor) *ClassificationClient {
	return &ClassificationClient{predictor: predictor}
}

// SelectModel stores the trimmed id. An empty id clears the selection.
func (c *ClassificationClient) SelectModel(id string) {
	c.mu.Lock()
	c.modelID = entity.NormalizeModelID(id)
	c.mu.Unlock()
}

// ModelID returns the current selection
func (c *ClassificationClient) ModelID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.modelID
}

// Classify asks the selected model for the category of text.
// Empty text and a missing selection return without touching the network.
func (c *ClassificationClient) Classify(ctx context.Context, text string) entity.Outcome {
	text = strings.TrimSpace(text)
	if text == "" {
		return entity.EmptyOutcome()
	}

	modelID := c.ModelID()
	if modelID == "" {
		return entity.NoModelOutcome()
	}

	prediction, err := c.predictor.Predict(ctx, modelID, text)
	if err != nil {
		var statusErr *service.StatusError
		if errors.As(err, &statusErr) {
			return entity.StatusOutcome(modelID, statusErr.StatusCode)
		}
		return entity.TransportOutcome(modelID, err)
	}

	if !prediction.HasCategory() {
		serverError := ""
		if prediction != nil {
			serverError = prediction.ServerError
		}
		return entity.NoAnswerOutcome(modelID, serverError)
	}

	return entity.LabelOutcome(modelID, prediction.Category)
}

// ClassifyText is Classify flattened to the string a reporter block displays
func (c *ClassificationClient) ClassifyText(ctx context.Context, text string) string {
	return c.Classify(ctx, text).String()
}
