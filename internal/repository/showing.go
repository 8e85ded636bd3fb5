package repository

import (
	"context"
	"time"

	"github.com/Hashimp6/broperty/internal/model"
)

// ShowingFilter narrows a showing listing. Empty fields place no constraint.
type ShowingFilter struct {
	BuyerID     string
	AgentID     string
	PropertyIDs []string
	// Scoped marks that PropertyIDs is authoritative even when empty.
	Scoped bool
}

// ShowingRepository defines data access for scheduled showings.
type ShowingRepository interface {
	Create(ctx context.Context, s *model.Showing) (*model.Showing, error)

	// FindByID returns a showing by ID or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Showing, error)

	// List returns showings matching the filter ordered by scheduled time, latest first.
	List(ctx context.Context, f ShowingFilter) ([]model.Showing, error)

	// Update overwrites the mutable fields of a showing. Returns ErrNotFound if it does not exist.
	Update(ctx context.Context, s *model.Showing) (*model.Showing, error)

	// FindActiveBetween returns a pending or confirmed showing of the property scheduled
	// within [from, to], or ErrNotFound when the slot is free.
	FindActiveBetween(ctx context.Context, propertyID string, from, to time.Time) (*model.Showing, error)
}
