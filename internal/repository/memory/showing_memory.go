package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
)

type ShowingMemory struct {
	mu    sync.RWMutex
	items map[string]model.Showing
}

func NewShowingMemory() *ShowingMemory {
	return &ShowingMemory{items: make(map[string]model.Showing)}
}

var _ repository.ShowingRepository = (*ShowingMemory)(nil)

func (r *ShowingMemory) Create(_ context.Context, s *model.Showing) (*model.Showing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := stripShowing(*s)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.items[stored.ID] = stored
	out := cloneShowing(stored)
	return &out, nil
}

func (r *ShowingMemory) FindByID(_ context.Context, id string) (*model.Showing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneShowing(s)
	return &out, nil
}

func (r *ShowingMemory) List(_ context.Context, f repository.ShowingFilter) ([]model.Showing, error) {
	scope := make(map[string]struct{}, len(f.PropertyIDs))
	for _, id := range f.PropertyIDs {
		scope[id] = struct{}{}
	}
	scoped := f.Scoped || len(f.PropertyIDs) > 0

	r.mu.RLock()
	out := make([]model.Showing, 0)
	for _, s := range r.items {
		if f.BuyerID != "" && s.BuyerID != f.BuyerID {
			continue
		}
		if f.AgentID != "" && s.AgentID != f.AgentID {
			continue
		}
		if scoped {
			if _, ok := scope[s.PropertyID]; !ok {
				continue
			}
		}
		out = append(out, cloneShowing(s))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ScheduledAt.After(out[j].ScheduledAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *ShowingMemory) Update(_ context.Context, s *model.Showing) (*model.Showing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[s.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := stripShowing(*s)
	r.items[s.ID] = stored
	out := cloneShowing(stored)
	return &out, nil
}

func (r *ShowingMemory) FindActiveBetween(_ context.Context, propertyID string, from, to time.Time) (*model.Showing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *model.Showing
	for _, s := range r.items {
		if s.PropertyID != propertyID || !s.Active() {
			continue
		}
		if s.ScheduledAt.Before(from) || s.ScheduledAt.After(to) {
			continue
		}
		if found == nil || s.ScheduledAt.Before(found.ScheduledAt) {
			c := cloneShowing(s)
			found = &c
		}
	}
	if found == nil {
		return nil, repository.ErrNotFound
	}
	return found, nil
}

// stripShowing drops hydrated references before storage.
func stripShowing(s model.Showing) model.Showing {
	s = cloneShowing(s)
	s.Property, s.Buyer, s.Agent = nil, nil, nil
	return s
}

func cloneShowing(s model.Showing) model.Showing {
	if s.Feedback != nil {
		fb := *s.Feedback
		s.Feedback = &fb
	}
	return s
}
