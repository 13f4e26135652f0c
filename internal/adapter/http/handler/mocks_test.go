package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cienciascontic/textlabx/internal/domain/entity"
	"github.com/cienciascontic/textlabx/internal/usecase"
)

// MockSessionUsecase is a mock implementation of SessionUsecase
type MockSessionUsecase struct {
	mock.Mock
}

func (m *MockSessionUsecase) Open(ctx context.Context) (*usecase.SessionOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SessionOutput), args.Error(1)
}

func (m *MockSessionUsecase) Get(ctx context.Context, sessionID string) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SessionOutput), args.Error(1)
}

func (m *MockSessionUsecase) Close(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionUsecase) SelectModel(ctx context.Context, sessionID, modelID string) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, sessionID, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SessionOutput), args.Error(1)
}

func (m *MockSessionUsecase) Classify(ctx context.Context, sessionID, text string) (entity.Outcome, error) {
	args := m.Called(ctx, sessionID, text)
	return args.Get(0).(entity.Outcome), args.Error(1)
}

func (m *MockSessionUsecase) Session(sessionID string) *usecase.SessionHandle {
	return usecase.NewSessionHandle(m, sessionID)
}

// MockModelUsecase is a mock implementation of ModelUsecase
type MockModelUsecase struct {
	mock.Mock
}

func (m *MockModelUsecase) Train(ctx context.Context, input *usecase.TrainModelInput) (*entity.TrainedModel, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TrainedModel), args.Error(1)
}

// MockHealthChecker is a mock implementation of HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
