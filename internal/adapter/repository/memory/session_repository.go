package memory

import (
	"context"
	"sync"

	"github.com/cienciascontic/textlabx/internal/domain/repository"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewSessionRepository creates a process-local session repository
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{sessions: make(map[string]string)}
}

func (r *sessionRepository) Create(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = ""
	return nil
}

func (r *sessionRepository) GetModel(_ context.Context, sessionID string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modelID, ok := r.sessions[sessionID]
	return modelID, ok, nil
}

func (r *sessionRepository) SaveModel(_ context.Context, sessionID, modelID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return false, nil
	}
	r.sessions[sessionID] = modelID
	return true, nil
}

func (r *sessionRepository) Delete(_ context.Context, sessionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	return ok, nil
}
