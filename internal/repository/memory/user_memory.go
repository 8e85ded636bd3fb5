package memory

import (
	"context"
	"sync"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
)

type UserMemory struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserMemory(seed ...model.User) *UserMemory {
	r := &UserMemory{users: make(map[string]model.User, len(seed))}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}

var _ repository.UserRepository = (*UserMemory)(nil)

// Put inserts or replaces a user.
func (r *UserMemory) Put(u model.User) {
	r.mu.Lock()
	r.users[u.ID] = u
	r.mu.Unlock()
}

func (r *UserMemory) FindSummaries(_ context.Context, ids []string) (map[string]model.UserSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]model.UserSummary, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u.UserSummary
		}
	}
	return out, nil
}

func (r *UserMemory) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}
