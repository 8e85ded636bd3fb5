package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
	"github.com/Hashimp6/broperty/internal/search"
)

// PropertyMemory keeps properties in process memory and evaluates searches
// with the in-memory filter, ranking and paging of package search.
type PropertyMemory struct {
	mu    sync.RWMutex
	items map[string]model.Property
}

func NewPropertyMemory(seed ...model.Property) *PropertyMemory {
	r := &PropertyMemory{items: make(map[string]model.Property, len(seed))}
	for _, p := range seed {
		r.items[p.ID] = cloneProperty(p)
	}
	return r
}

var _ repository.PropertyRepository = (*PropertyMemory)(nil)

func (r *PropertyMemory) Search(ctx context.Context, q search.Query) (*repository.PageResult[model.Property], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	all := make([]model.Property, 0, len(r.items))
	for _, p := range r.items {
		all = append(all, cloneProperty(p))
	}
	r.mu.RUnlock()

	ranked := search.Rank(search.Filter(all, q.Predicate), q.Near)
	window := search.Window(q.Page, ranked)
	return &repository.PageResult[model.Property]{
		Items: append([]model.Property{}, window...),
		Total: len(ranked),
	}, nil
}

func (r *PropertyMemory) FindByID(_ context.Context, id string) (*model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneProperty(p)
	return &out, nil
}

func (r *PropertyMemory) Create(_ context.Context, p *model.Property) (*model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneProperty(*p)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	stored.Owner, stored.Agent, stored.Distance = nil, nil, nil
	r.items[stored.ID] = stored
	out := cloneProperty(stored)
	return &out, nil
}

func (r *PropertyMemory) Update(_ context.Context, p *model.Property) (*model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := cloneProperty(*p)
	stored.Owner, stored.Agent, stored.Distance = nil, nil, nil
	r.items[p.ID] = stored
	out := cloneProperty(stored)
	return &out, nil
}

func (r *PropertyMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *PropertyMemory) AppendMedia(_ context.Context, id string, media []model.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Media = append(append([]model.Media{}, p.Media...), media...)
	p.UpdatedAt = time.Now().UTC()
	r.items[id] = p
	return nil
}

func (r *PropertyMemory) IDsByOwner(_ context.Context, ownerID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0)
	for id, p := range r.items {
		if p.OwnerID == ownerID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func cloneProperty(p model.Property) model.Property {
	p.Amenities = append([]string{}, p.Amenities...)
	p.Media = append([]model.Media{}, p.Media...)
	if p.ProjectDetails != nil {
		d := *p.ProjectDetails
		p.ProjectDetails = &d
	}
	if p.Features.YearBuilt != nil {
		y := *p.Features.YearBuilt
		p.Features.YearBuilt = &y
	}
	if p.Features.LandType != nil {
		lt := *p.Features.LandType
		p.Features.LandType = &lt
	}
	return p
}
