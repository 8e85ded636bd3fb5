package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/search"
	"github.com/Hashimp6/broperty/internal/service"
)

type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Search(ctx context.Context, params search.Params) (*search.Result, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*search.Result), args.Error(1)
}

func (m *MockPropertyService) Get(ctx context.Context, id string) (*model.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyService) Create(ctx context.Context, actor model.Actor, in service.CreatePropertyInput) (*model.Property, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyService) Update(ctx context.Context, actor model.Actor, id string, in service.UpdatePropertyInput) (*model.Property, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyService) Delete(ctx context.Context, actor model.Actor, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockPropertyService) AddMedia(ctx context.Context, actor model.Actor, id string, files []service.Upload) (*model.Property, error) {
	args := m.Called(ctx, actor, id, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}
