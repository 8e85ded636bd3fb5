package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
	"github.com/Hashimp6/broperty/internal/search"
)

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Search(ctx context.Context, q search.Query) (*repository.PageResult[model.Property], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Property]), args.Error(1)
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id string) (*model.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *model.Property) (*model.Property, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, p *model.Property) (*model.Property, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPropertyRepository) AppendMedia(ctx context.Context, id string, media []model.Media) error {
	args := m.Called(ctx, id, media)
	return args.Error(0)
}

func (m *MockPropertyRepository) IDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
