package repository

import (
	"context"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/search"
)

// UserRepository is read-only: users are managed by the identity service.
type UserRepository interface {
	search.UserLookup

	// FindByID returns a user by ID or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.User, error)
}
