package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cienciascontic/textlabx/internal/domain/entity"
	"github.com/cienciascontic/textlabx/internal/domain/repository"
	"github.com/cienciascontic/textlabx/internal/domain/service"
)

// Error definitions for session usecase
var (
	ErrSessionNotFound = errors.New("session not found")
)

// OutcomeObserver records finished classifications
type OutcomeObserver interface {
	ObserveOutcome(outcome string, latency time.Duration)
}

// SessionOutput represents a session's current selection
type SessionOutput struct {
	SessionID string `json:"session_id"`
	ModelID   string `json:"model_id"`
}

// SessionUsecase serves one model selection per host session
type SessionUsecase interface {
	Open(ctx context.Context) (*SessionOutput, error)
	Get(ctx context.Context, sessionID string) (*SessionOutput, error)
	Close(ctx context.Context, sessionID string) error
	SelectModel(ctx context.Context, sessionID, modelID string) (*SessionOutput, error)
	Classify(ctx context.Context, sessionID, text string) (entity.Outcome, error)
	Session(sessionID string) *SessionHandle
}

type sessionUsecase struct {
	predictor service.Predictor
	repo      repository.SessionRepository
	observer  OutcomeObserver
}

// NewSessionUsecase creates a new session usecase. observer may be nil.
func NewSessionUsecase(predictor service.Predictor, repo repository.SessionRepository, observer OutcomeObserver) SessionUsecase {
	return &sessionUsecase{
		predictor: predictor,
		repo:      repo,
		observer:  observer,
	}
}

func (u *sessionUsecase) Open(ctx context.Context) (*SessionOutput, error) {
	sessionID := uuid.NewString()
	if err := u.repo.Create(ctx, sessionID); err != nil {
		return nil, err
	}

	return &SessionOutput{SessionID: sessionID}, nil
}

func (u *sessionUsecase) Get(ctx context.Context, sessionID string) (*SessionOutput, error) {
	client, err := u.client(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &SessionOutput{SessionID: sessionID, ModelID: client.ModelID()}, nil
}

func (u *sessionUsecase) Close(ctx context.Context, sessionID string) error {
	deleted, err := u.repo.Delete(ctx, sessionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSessionNotFound
	}

	return nil
}

func (u *sessionUsecase) SelectModel(ctx context.Context, sessionID, modelID string) (*SessionOutput, error) {
	selected := entity.NormalizeModelID(modelID)
	saved, err := u.repo.SaveModel(ctx, sessionID, selected)
	if err != nil {
		return nil, err
	}
	if !saved {
		return nil, ErrSessionNotFound
	}

	return &SessionOutput{SessionID: sessionID, ModelID: selected}, nil
}

func (u *sessionUsecase) Classify(ctx context.Context, sessionID, text string) (entity.Outcome, error) {
	client, err := u.client(ctx, sessionID)
	if err != nil {
		return entity.Outcome{}, err
	}

	start := time.Now()
	outcome := client.Classify(ctx, text)
	if u.observer != nil {
		u.observer.ObserveOutcome(string(outcome.Kind), time.Since(start))
	}

	return outcome, nil
}

func (u *sessionUsecase) Session(sessionID string) *SessionHandle {
	return NewSessionHandle(u, sessionID)
}

// client builds a ClassificationClient holding the session's stored selection.
// The repository is read on every call so expiry and closes elsewhere are seen.
func (u *sessionUsecase) client(ctx context.Context, sessionID string) (*ClassificationClient, error) {
	modelID, found, err := u.repo.GetModel(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrSessionNotFound
	}

	client := NewClassificationClient(u.predictor)
	client.SelectModel(modelID)
	return client, nil
}

// SessionHandle binds a SessionUsecase to one session id
type SessionHandle struct {
	usecase   SessionUsecase
	sessionID string
}

// NewSessionHandle binds sessionID to uc
func NewSessionHandle(uc SessionUsecase, sessionID string) *SessionHandle {
	return &SessionHandle{usecase: uc, sessionID: sessionID}
}

// ID returns the session id
func (h *SessionHandle) ID() string {
	return h.sessionID
}

// SelectModel selects a model for the session
func (h *SessionHandle) SelectModel(ctx context.Context, modelID string) error {
	_, err := h.usecase.SelectModel(ctx, h.sessionID, modelID)
	return err
}

// ClassifyText classifies text and returns the display string
func (h *SessionHandle) ClassifyText(ctx context.Context, text string) (string, error) {
	outcome, err := h.usecase.Classify(ctx, h.sessionID, text)
	if err != nil {
		return "", err
	}
	return outcome.String(), nil
}
