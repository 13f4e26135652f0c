package repository

import "context"

// SessionRepository stores the model selected by each host session.
// It is the only record of which sessions exist.
type SessionRepository interface {
	// Create registers a session with no model selected
	Create(ctx context.Context, sessionID string) error

	// GetModel returns the stored model id and whether the session exists
	GetModel(ctx context.Context, sessionID string) (string, bool, error)

	// SaveModel overwrites the model id of an existing session.
	// It reports false and writes nothing when the session does not exist.
	SaveModel(ctx context.Context, sessionID, modelID string) (bool, error)

	// Delete removes a session and reports whether it existed
	Delete(ctx context.Context, sessionID string) (bool, error)
}
