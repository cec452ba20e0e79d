package event

import (
	"context"
	"testing"

	"github.com/planhive/planhive/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepoImpl_StoreAndGet(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	stored := Event{
		Id:          "event-1",
		Name:        "Priya & Rohan Wedding",
		EventType:   "wedding",
		Date:        "2026-11-21",
		TotalBudget: 1000000,
	}
	require.NoError(t, repo.Store(ctx, stored))

	loaded, err := repo.Get(ctx, "event-1")
	require.NoError(t, err)
	assert.Equal(t, stored, loaded)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepoImpl_GetAll(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, Event{Id: "e1", Name: "Later", Date: "2026-12-01"}))
	require.NoError(t, repo.Store(ctx, Event{Id: "e2", Name: "Earlier", Date: "2026-05-01"}))

	events, err := repo.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "e2", events[0].Id)
	assert.Equal(t, "e1", events[1].Id)
}

func TestEventRepoImpl_Update(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	original := Event{Id: "event-1", Name: "Party", TotalBudget: 50000}
	require.NoError(t, repo.Store(ctx, original))

	original.TotalBudget = 75000
	updated, err := repo.Update(ctx, original)
	require.NoError(t, err)
	assert.True(t, updated)

	loaded, err := repo.Get(ctx, "event-1")
	require.NoError(t, err)
	assert.Equal(t, 75000.0, loaded.TotalBudget)

	updated, err = repo.Update(ctx, Event{Id: "missing", Name: "x"})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestEventRepoImpl_Delete(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, Event{Id: "event-1", Name: "Party"}))

	deleted, err := repo.Delete(ctx, "event-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "event-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
