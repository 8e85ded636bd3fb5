package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
	"github.com/Hashimp6/broperty/internal/search"
)

// ConflictWindow is how close to an active showing of the same property a new one may be booked.
const ConflictWindow = time.Hour

// CreateShowingInput is the body of POST /showings.
type CreateShowingInput struct {
	PropertyID      string    `json:"propertyId" validate:"required"`
	ScheduledAt     time.Time `json:"scheduledDate" validate:"required"`
	DurationMinutes int       `json:"duration" validate:"gte=0,lte=1440"`
	Notes           string    `json:"notes" validate:"max=1000"`
}

// UpdateShowingInput is the body of PUT /showings/:id. Nil fields are left unchanged.
type UpdateShowingInput struct {
	ScheduledAt     *time.Time           `json:"scheduledDate"`
	DurationMinutes *int                 `json:"duration" validate:"omitempty,gt=0,lte=1440"`
	Status          *model.ShowingStatus `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Notes           *string              `json:"notes" validate:"omitempty,max=1000"`
}

// FeedbackInput is the body of POST /showings/:id/feedback.
type FeedbackInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=500"`
}

// ShowingService defines the use cases for scheduling property viewings.
type ShowingService interface {
	// Create books a viewing for the acting buyer. The property must be available
	// and no pending or confirmed showing may lie within ConflictWindow.
	Create(ctx context.Context, actor model.Actor, in CreateShowingInput) (*model.Showing, error)

	// List returns the showings visible to the actor, latest first.
	List(ctx context.Context, actor model.Actor) ([]model.Showing, error)

	Get(ctx context.Context, actor model.Actor, id string) (*model.Showing, error)
	Update(ctx context.Context, actor model.Actor, id string, in UpdateShowingInput) (*model.Showing, error)
	Cancel(ctx context.Context, actor model.Actor, id string) error
	AddFeedback(ctx context.Context, actor model.Actor, id string, in FeedbackInput) (*model.Showing, error)
}

type showingService struct {
	showings   repository.ShowingRepository
	properties repository.PropertyRepository
	users      search.UserLookup
	now        func() time.Time
}

func NewShowingService(
	showings repository.ShowingRepository,
	properties repository.PropertyRepository,
	users search.UserLookup,
) ShowingService {
	return &showingService{
		showings:   showings,
		properties: properties,
		users:      users,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *showingService) Create(ctx context.Context, actor model.Actor, in CreateShowingInput) (*model.Showing, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}
	in.PropertyID = strings.TrimSpace(in.PropertyID)
	if err := validateStruct(&in); err != nil {
		return nil, err
	}

	p, err := s.properties.FindByID(ctx, in.PropertyID)
	if err != nil {
		return nil, storeErr("find property", err)
	}
	if p.Status != model.PropertyStatusAvailable {
		return nil, invalid("propertyId", "property is not available for showing")
	}

	at := in.ScheduledAt.UTC()
	_, err = s.showings.FindActiveBetween(ctx, p.ID, at.Add(-ConflictWindow), at.Add(ConflictWindow))
	switch {
	case err == nil:
		return nil, ErrConflict
	case !errors.Is(err, repository.ErrNotFound):
		return nil, &StoreError{Op: "check showing conflicts", Err: err}
	}

	duration := in.DurationMinutes
	if duration == 0 {
		duration = model.DefaultShowingDuration
	}
	now := s.now()
	created, err := s.showings.Create(ctx, &model.Showing{
		PropertyID:      p.ID,
		BuyerID:         actor.ID,
		AgentID:         p.AgentID,
		ScheduledAt:     at,
		DurationMinutes: duration,
		Status:          model.ShowingStatusPending,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, storeErr("create showing", err)
	}
	created.Property = p.Summary()
	if err := s.hydrate(ctx, []*model.Showing{created}); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *showingService) List(ctx context.Context, actor model.Actor) ([]model.Showing, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}

	var f repository.ShowingFilter
	switch actor.Role {
	case model.RoleBuyer:
		f.BuyerID = actor.ID
	case model.RoleAgent:
		f.AgentID = actor.ID
	case model.RoleSeller:
		ids, err := s.properties.IDsByOwner(ctx, actor.ID)
		if err != nil {
			return nil, storeErr("list owned properties", err)
		}
		f.PropertyIDs, f.Scoped = ids, true
	case model.RoleAdmin:
	default:
		return nil, ErrForbidden
	}

	items, err := s.showings.List(ctx, f)
	if err != nil {
		return nil, storeErr("list showings", err)
	}
	refs := make([]*model.Showing, len(items))
	for i := range items {
		refs[i] = &items[i]
	}
	if err := s.attachProperties(ctx, refs); err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, refs); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *showingService) Get(ctx context.Context, actor model.Actor, id string) (*model.Showing, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}
	sh, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachProperties(ctx, []*model.Showing{sh}); err != nil {
		return nil, err
	}

	owner := sh.Property != nil && sh.Property.OwnerID == actor.ID
	if sh.BuyerID != actor.ID && !isAgent(sh, actor) && !owner && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := s.hydrate(ctx, []*model.Showing{sh}); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *showingService) Update(ctx context.Context, actor model.Actor, id string, in UpdateShowingInput) (*model.Showing, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}
	if err := validateStruct(&in); err != nil {
		return nil, err
	}
	sh, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if sh.BuyerID != actor.ID && !isAgent(sh, actor) && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if in.ScheduledAt != nil {
		sh.ScheduledAt = in.ScheduledAt.UTC()
	}
	if in.DurationMinutes != nil {
		sh.DurationMinutes = *in.DurationMinutes
	}
	if in.Status != nil {
		sh.Status = *in.Status
	}
	if in.Notes != nil {
		sh.Notes = *in.Notes
	}
	sh.UpdatedAt = s.now()

	updated, err := s.showings.Update(ctx, sh)
	if err != nil {
		return nil, storeErr("update showing", err)
	}
	refs := []*model.Showing{updated}
	if err := s.attachProperties(ctx, refs); err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, refs); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *showingService) Cancel(ctx context.Context, actor model.Actor, id string) error {
	if actor.ID == "" {
		return ErrUnauthenticated
	}
	sh, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if sh.BuyerID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}
	sh.Status = model.ShowingStatusCancelled
	sh.UpdatedAt = s.now()
	if _, err := s.showings.Update(ctx, sh); err != nil {
		return storeErr("cancel showing", err)
	}
	return nil
}

func (s *showingService) AddFeedback(ctx context.Context, actor model.Actor, id string, in FeedbackInput) (*model.Showing, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}
	sh, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if sh.BuyerID != actor.ID {
		return nil, ErrForbidden
	}
	if sh.Status != model.ShowingStatusCompleted {
		return nil, invalid("status", "feedback can only be added to completed showings")
	}
	if err := validateStruct(&in); err != nil {
		return nil, err
	}

	sh.Feedback = &model.Feedback{Rating: in.Rating, Comment: strings.TrimSpace(in.Comment)}
	sh.UpdatedAt = s.now()
	updated, err := s.showings.Update(ctx, sh)
	if err != nil {
		return nil, storeErr("add feedback", err)
	}
	refs := []*model.Showing{updated}
	if err := s.attachProperties(ctx, refs); err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, refs); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *showingService) find(ctx context.Context, id string) (*model.Showing, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	sh, err := s.showings.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("find showing", err)
	}
	return sh, nil
}

// attachProperties embeds a summary of each showing's property.
// Showings whose property no longer exists keep a nil summary.
func (s *showingService) attachProperties(ctx context.Context, items []*model.Showing) error {
	cache := make(map[string]*model.PropertySummary)
	for _, sh := range items {
		if sh.Property != nil {
			continue
		}
		summary, ok := cache[sh.PropertyID]
		if !ok {
			p, err := s.properties.FindByID(ctx, sh.PropertyID)
			switch {
			case err == nil:
				summary = p.Summary()
			case errors.Is(err, repository.ErrNotFound):
			default:
				return &StoreError{Op: "find showing property", Err: err}
			}
			cache[sh.PropertyID] = summary
		}
		sh.Property = summary
	}
	return nil
}

// hydrate resolves buyers and agents with one lookup.
func (s *showingService) hydrate(ctx context.Context, items []*model.Showing) error {
	ids := make([]string, 0, len(items)*2)
	for _, sh := range items {
		ids = append(ids, sh.BuyerID)
		if sh.AgentID != "" {
			ids = append(ids, sh.AgentID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	users, err := s.users.FindSummaries(ctx, ids)
	if err != nil {
		return &StoreError{Op: "resolve users", Err: err}
	}
	for _, sh := range items {
		if u, ok := users[sh.BuyerID]; ok {
			buyer := u
			sh.Buyer = &buyer
		}
		if u, ok := users[sh.AgentID]; ok {
			agent := u
			sh.Agent = &agent
		}
	}
	return nil
}

func isAgent(sh *model.Showing, actor model.Actor) bool {
	return sh.AgentID != "" && sh.AgentID == actor.ID
}
