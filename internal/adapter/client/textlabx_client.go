package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/cienciascontic/textlabx/internal/domain/entity"
	"github.com/cienciascontic/textlabx/internal/domain/service"
)

// Errors returned by TextLabXClient
var (
	ErrNoExamples   = errors.New("at least one training example is required")
	ErrNullResponse = errors.New("response body is null")
	ErrNotReady     = errors.New("classification service not ready")
)

// PredictRequest is the body of POST /predict/{model_id}
type PredictRequest struct {
	Text string `json:"texto"`
}

// PredictResponse is the decoded body of a 2xx predict response.
// Categoria keeps whatever JSON type the server sent.
type PredictResponse struct {
	Categoria any    `json:"categoria"`
	Error     string `json:"error,omitempty"`
}

// TrainRequest is the body of POST /train
type TrainRequest struct {
	Examples []entity.TrainingExample `json:"ejemplos"`
}

// HealthResponse represents the GET / response
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// TextLabXClient is an HTTP client for the TextLabX classification server
type TextLabXClient struct {
	baseURL string
	http    *resty.Client
}

// NewTextLabXClient creates a new client. A zero timeout leaves requests unbounded
// apart from the caller's context.
func NewTextLabXClient(baseURL string, timeout time.Duration) *TextLabXClient {
	return &TextLabXClient{
		baseURL: baseURL,
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}

// SetLogger routes resty's internal warnings through zap
func (c *TextLabXClient) SetLogger(logger *zap.Logger) *TextLabXClient {
	c.http.SetLogger(logger.Named("resty").Sugar())
	return c
}

// BaseURL returns the server address the client was built with
func (c *TextLabXClient) BaseURL() string {
	return c.baseURL
}

// Predict sends one text to a model
func (c *TextLabXClient) Predict(ctx context.Context, modelID, text string) (*PredictResponse, error) {
	body, err := json.Marshal(PredictRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("modelId", modelID).
		SetBody(body).
		Post("/predict/{modelId}")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if !isSuccess(resp) {
		return nil, &service.StatusError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return decodePredictResponse(resp.Body())
}

func decodePredictResponse(body []byte) (*PredictResponse, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if payload == nil {
		return nil, ErrNullResponse
	}

	// Arrays and scalars carry no category
	fields, ok := payload.(map[string]any)
	if !ok {
		return &PredictResponse{}, nil
	}

	result := &PredictResponse{Categoria: fields["categoria"]}
	if msg, ok := fields["error"].(string); ok {
		result.Error = msg
	}
	return result, nil
}

// Train creates a new model from labelled examples
func (c *TextLabXClient) Train(ctx context.Context, examples []entity.TrainingExample) (*entity.TrainedModel, error) {
	if len(examples) == 0 {
		return nil, ErrNoExamples
	}

	var result entity.TrainedModel
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(TrainRequest{Examples: examples}).
		SetResult(&result).
		Post("/train")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if !isSuccess(resp) {
		return nil, &service.StatusError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	if result.ModelID == "" {
		return nil, fmt.Errorf("training response has no model_id: %s", resp.String())
	}

	return &result, nil
}

// Health checks the classification server
func (c *TextLabXClient) Health(ctx context.Context) (*HealthResponse, error) {
	var result HealthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if !isSuccess(resp) {
		return nil, &service.StatusError{StatusCode: resp.StatusCode()}
	}

	return &result, nil
}

// Ready checks if the classification server reports status ok
func (c *TextLabXClient) Ready(ctx context.Context) error {
	health, err := c.Health(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotReady, err)
	}
	if health.Status != "ok" {
		return fmt.Errorf("%w: status %q", ErrNotReady, health.Status)
	}
	return nil
}

func isSuccess(resp *resty.Response) bool {
	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}
