package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cienciascontic/textlabx/internal/adapter/repository/memory"
	"github.com/cienciascontic/textlabx/internal/domain/entity"
)

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionRepository) GetModel(ctx context.Context, sessionID string) (string, bool, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockSessionRepository) SaveModel(ctx context.Context, sessionID, modelID string) (bool, error) {
	args := m.Called(ctx, sessionID, modelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

// MockOutcomeObserver is a mock implementation of OutcomeObserver
type MockOutcomeObserver struct {
	mock.Mock
}

func (m *MockOutcomeObserver) ObserveOutcome(outcome string, latency time.Duration) {
	m.Called(outcome, latency)
}

func TestSessionUsecase_Open(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("string")).Return(nil)
		uc := NewSessionUsecase(new(MockPredictor), repo, nil)

		output, err := uc.Open(context.Background())

		require.NoError(t, err)
		_, parseErr := uuid.Parse(output.SessionID)
		assert.NoError(t, parseErr)
		assert.Empty(t, output.ModelID)
		repo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("redis down"))
		uc := NewSessionUsecase(new(MockPredictor), repo, nil)

		output, err := uc.Open(context.Background())

		assert.Error(t, err)
		assert.Nil(t, output)
	})
}

func TestSessionUsecase_SelectModel(t *testing.T) {
	ctx := context.Background()

	t.Run("stores trimmed selection", func(t *testing.T) {
		repo := memory.NewSessionRepository()
		uc := NewSessionUsecase(new(MockPredictor), repo, nil)
		session, err := uc.Open(ctx)
		require.NoError(t, err)

		output, err := uc.SelectModel(ctx, session.SessionID, "  xyz  ")

		require.NoError(t, err)
		assert.Equal(t, "xyz", output.ModelID)
		stored, found, err := repo.GetModel(ctx, session.SessionID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "xyz", stored)
	})

	t.Run("unknown session", func(t *testing.T) {
		uc := NewSessionUsecase(new(MockPredictor), memory.NewSessionRepository(), nil)

		output, err := uc.SelectModel(ctx, "missing", "abc")

		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.Nil(t, output)
	})

	t.Run("repository write error", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("SaveModel", mock.Anything, "s1", "abc").Return(false, errors.New("redis down"))
		uc := NewSessionUsecase(new(MockPredictor), repo, nil)

		_, err := uc.SelectModel(ctx, "s1", "abc")

		assert.EqualError(t, err, "redis down")
	})
}

func TestSessionUsecase_Classify(t *testing.T) {
	ctx := context.Background()

	t.Run("classifies with session selection and records outcome", func(t *testing.T) {
		predictor := new(MockPredictor)
		predictor.On("Predict", mock.Anything, "abc123", "hola").
			Return(&entity.Prediction{Category: "positivo"}, nil)
		observer := new(MockOutcomeObserver)
		observer.On("ObserveOutcome", "label", mock.AnythingOfType("time.Duration")).Return()

		uc := NewSessionUsecase(predictor, memory.NewSessionRepository(), observer)
		session, err := uc.Open(ctx)
		require.NoError(t, err)
		_, err = uc.SelectModel(ctx, session.SessionID, "abc123")
		require.NoError(t, err)

		outcome, err := uc.Classify(ctx, session.SessionID, "hola")

		require.NoError(t, err)
		assert.Equal(t, "positivo", outcome.String())
		predictor.AssertExpectations(t)
		observer.AssertExpectations(t)
	})

	t.Run("sessions do not share selection", func(t *testing.T) {
		uc := NewSessionUsecase(new(MockPredictor), memory.NewSessionRepository(), nil)
		first, err := uc.Open(ctx)
		require.NoError(t, err)
		second, err := uc.Open(ctx)
		require.NoError(t, err)

		_, err = uc.SelectModel(ctx, first.SessionID, "abc123")
		require.NoError(t, err)

		outcome, err := uc.Classify(ctx, second.SessionID, "hola")
		require.NoError(t, err)
		assert.Equal(t, "SIN MODELO", outcome.String())
	})

	t.Run("reads selection from repository on every call", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("GetModel", mock.Anything, "s1").Return("stored-model", true, nil).Twice()
		predictor := new(MockPredictor)
		predictor.On("Predict", mock.Anything, "stored-model", "hola").
			Return(&entity.Prediction{Category: "x"}, nil).Twice()

		uc := NewSessionUsecase(predictor, repo, nil)

		for i := 0; i < 2; i++ {
			outcome, err := uc.Classify(ctx, "s1", "hola")
			require.NoError(t, err)
			assert.Equal(t, "x", outcome.String())
		}
		repo.AssertExpectations(t)
		predictor.AssertExpectations(t)
	})

	t.Run("unknown session", func(t *testing.T) {
		uc := NewSessionUsecase(new(MockPredictor), memory.NewSessionRepository(), nil)

		_, err := uc.Classify(ctx, "missing", "hola")

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestSessionUsecase_Close(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := memory.NewSessionRepository()
		uc := NewSessionUsecase(new(MockPredictor), repo, nil)
		session, err := uc.Open(ctx)
		require.NoError(t, err)

		require.NoError(t, uc.Close(ctx, session.SessionID))

		_, err = uc.Get(ctx, session.SessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("unknown session", func(t *testing.T) {
		uc := NewSessionUsecase(new(MockPredictor), memory.NewSessionRepository(), nil)

		err := uc.Close(ctx, "missing")

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Delete", mock.Anything, "s1").Return(false, errors.New("redis down"))
		uc := NewSessionUsecase(new(MockPredictor), repo, nil)

		err := uc.Close(ctx, "s1")

		assert.EqualError(t, err, "redis down")
	})
}

func TestSessionUsecase_RepositoryIsSourceOfTruth(t *testing.T) {
	ctx := context.Background()

	t.Run("session removed from store is gone", func(t *testing.T) {
		repo := memory.NewSessionRepository()
		uc := NewSessionUsecase(new(MockPredictor), repo, nil)
		session, err := uc.Open(ctx)
		require.NoError(t, err)
		_, err = uc.SelectModel(ctx, session.SessionID, "abc123")
		require.NoError(t, err)

		// Expiry or a close on another gateway instance
		_, err = repo.Delete(ctx, session.SessionID)
		require.NoError(t, err)

		_, err = uc.Get(ctx, session.SessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound)

		_, err = uc.SelectModel(ctx, session.SessionID, "def456")
		assert.ErrorIs(t, err, ErrSessionNotFound)

		_, err = uc.Classify(ctx, session.SessionID, "hola")
		assert.ErrorIs(t, err, ErrSessionNotFound)

		_, found, err := repo.GetModel(ctx, session.SessionID)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("selection made by another instance is seen", func(t *testing.T) {
		repo := memory.NewSessionRepository()
		predictor := new(MockPredictor)
		predictor.On("Predict", mock.Anything, "def456", "hola").
			Return(&entity.Prediction{Category: "negativo"}, nil)
		first := NewSessionUsecase(predictor, repo, nil)
		second := NewSessionUsecase(predictor, repo, nil)

		session, err := first.Open(ctx)
		require.NoError(t, err)
		_, err = first.SelectModel(ctx, session.SessionID, "abc123")
		require.NoError(t, err)
		_, err = second.SelectModel(ctx, session.SessionID, "def456")
		require.NoError(t, err)

		outcome, err := first.Classify(ctx, session.SessionID, "hola")
		require.NoError(t, err)
		assert.Equal(t, "negativo", outcome.String())
		predictor.AssertExpectations(t)
	})
}

func TestSessionHandle(t *testing.T) {
	ctx := context.Background()
	predictor := new(MockPredictor)
	predictor.On("Predict", mock.Anything, "abc123", "hola").
		Return(&entity.Prediction{Category: "positivo"}, nil)

	uc := NewSessionUsecase(predictor, memory.NewSessionRepository(), nil)
	session, err := uc.Open(ctx)
	require.NoError(t, err)

	handle := uc.Session(session.SessionID)
	assert.Equal(t, session.SessionID, handle.ID())

	require.NoError(t, handle.SelectModel(ctx, "abc123"))
	result, err := handle.ClassifyText(ctx, "hola")
	require.NoError(t, err)
	assert.Equal(t, "positivo", result)

	_, err = uc.Session("missing").ClassifyText(ctx, "hola")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
