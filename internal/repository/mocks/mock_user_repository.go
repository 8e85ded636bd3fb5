package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Hashimp6/broperty/internal/model"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindSummaries(ctx context.Context, ids []string) (map[string]model.UserSummary, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.UserSummary), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
