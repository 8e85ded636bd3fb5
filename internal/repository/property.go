package repository

import (
	"context"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/search"
)

// PropertyRepository defines data access for property listings.
// No business logic here, only persistence.
type PropertyRepository interface {
	// Search evaluates a compiled query: predicate, ranking strategy and page window.
	// In proximity mode Items carry Distance and Total counts matches within the radius.
	Search(ctx context.Context, q search.Query) (*PageResult[model.Property], error)

	// FindByID returns a property by its ID or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Property, error)

	// Create inserts a new property and returns the stored record.
	Create(ctx context.Context, p *model.Property) (*model.Property, error)

	// Update overwrites a property in place. Returns ErrNotFound if it does not exist.
	Update(ctx context.Context, p *model.Property) (*model.Property, error)

	// Delete removes a property by ID. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error

	// AppendMedia adds attachments to the end of a property's media list.
	AppendMedia(ctx context.Context, id string, media []model.Media) error

	// IDsByOwner returns the IDs of every property owned by the user.
	IDsByOwner(ctx context.Context, ownerID string) ([]string, error)
}
