package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
)

func showing(id, propertyID, buyerID string, at time.Time, status model.ShowingStatus) *model.Showing {
	return &model.Showing{
		ID: id, PropertyID: propertyID, BuyerID: buyerID, AgentID: "agent-1",
		ScheduledAt: at, DurationMinutes: 60, Status: status,
	}
}

func TestShowingMemory_ListScopes(t *testing.T) {
	repo := NewShowingMemory()
	ctx := context.Background()
	for _, s := range []*model.Showing{
		showing("s1", "p1", "b1", t0, model.ShowingStatusPending),
		showing("s2", "p2", "b1", t0.Add(time.Hour), model.ShowingStatusPending),
		showing("s3", "p2", "b2", t0.Add(2*time.Hour), model.ShowingStatusConfirmed),
	} {
		_, err := repo.Create(ctx, s)
		require.NoError(t, err)
	}

	byBuyer, err := repo.List(ctx, repository.ShowingFilter{BuyerID: "b1"})
	require.NoError(t, err)
	require.Len(t, byBuyer, 2)
	assert.Equal(t, "s2", byBuyer[0].ID)

	byProperty, err := repo.List(ctx, repository.ShowingFilter{PropertyIDs: []string{"p2"}, Scoped: true})
	require.NoError(t, err)
	assert.Len(t, byProperty, 2)

	none, err := repo.List(ctx, repository.ShowingFilter{Scoped: true})
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.List(ctx, repository.ShowingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestShowingMemory_FindActiveBetween(t *testing.T) {
	repo := NewShowingMemory()
	ctx := context.Background()
	_, _ = repo.Create(ctx, showing("s1", "p1", "b1", t0, model.ShowingStatusCancelled))
	_, _ = repo.Create(ctx, showing("s2", "p1", "b1", t0.Add(30*time.Minute), model.ShowingStatusConfirmed))

	got, err := repo.FindActiveBetween(ctx, "p1", t0.Add(-time.Hour), t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "s2", got.ID)

	_, err = repo.FindActiveBetween(ctx, "p1", t0.Add(2*time.Hour), t0.Add(4*time.Hour))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestShowingMemory_UpdateMissing(t *testing.T) {
	_, err := NewShowingMemory().Update(context.Background(), &model.Showing{ID: "nope"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
