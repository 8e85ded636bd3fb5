package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/service"
)

type MockShowingService struct {
	mock.Mock
}

func (m *MockShowingService) Create(ctx context.Context, actor model.Actor, in service.CreateShowingInput) (*model.Showing, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Showing), args.Error(1)
}

func (m *MockShowingService) List(ctx context.Context, actor model.Actor) ([]model.Showing, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Showing), args.Error(1)
}

func (m *MockShowingService) Get(ctx context.Context, actor model.Actor, id string) (*model.Showing, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Showing), args.Error(1)
}

func (m *MockShowingService) Update(ctx context.Context, actor model.Actor, id string, in service.UpdateShowingInput) (*model.Showing, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Showing), args.Error(1)
}

func (m *MockShowingService) Cancel(ctx context.Context, actor model.Actor, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockShowingService) AddFeedback(ctx context.Context, actor model.Actor, id string, in service.FeedbackInput) (*model.Showing, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Showing), args.Error(1)
}
