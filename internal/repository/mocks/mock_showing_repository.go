package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
)

type MockShowingRepository struct {
	mock.Mock
}

func (m *MockShowingRepository) Create(ctx context.Context, s *model.Showing) (*model.Showing, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Showing), args.Error(1)
}

func (m *MockShowingRepository) FindByID(ctx context.Context, id string) (*model.Showing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Showing), args.Error(1)
}

func (m *MockShowingRepository) List(ctx context.Context, f repository.ShowingFilter) ([]model.Showing, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Showing), args.Error(1)
}

func (m *MockShowingRepository) Update(ctx context.Context, s *model.Showing) (*model.Showing, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Showing), args.Error(1)
}

func (m *MockShowingRepository) FindActiveBetween(ctx context.Context, propertyID string, from, to time.Time) (*model.Showing, error) {
	args := m.Called(ctx, propertyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Showing), args.Error(1)
}
