package search

import (
	"context"
	"fmt"

	"github.com/Hashimp6/broperty/internal/model"
)

// UserLookup resolves user IDs to their public summaries.
// IDs without a matching user are absent from the returned map.
type UserLookup interface {
	FindSummaries(ctx context.Context, ids []string) (map[string]model.UserSummary, error)
}

// Hydrator attaches owner and agent summaries to properties.
type Hydrator struct {
	users UserLookup
}

func NewHydrator(users UserLookup) *Hydrator {
	return &Hydrator{users: users}
}

// Hydrate resolves owner and agent references of props in place with a single lookup.
func (h *Hydrator) Hydrate(ctx context.Context, props []model.Property) error {
	ids := make([]string, 0, len(props)*2)
	seen := make(map[string]struct{}, len(props)*2)
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for i := range props {
		add(props[i].OwnerID)
		add(props[i].AgentID)
	}
	if len(ids) == 0 {
		return nil
	}

	users, err := h.users.FindSummaries(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve users: %w", err)
	}

	for i := range props {
		if u, ok := users[props[i].OwnerID]; ok {
			owner := u
			props[i].Owner = &owner
		}
		if u, ok := users[props[i].AgentID]; ok {
			agent := u
			props[i].Agent = &agent
		}
	}
	return nil
}
