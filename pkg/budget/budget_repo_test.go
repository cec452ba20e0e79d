package budget

import (
	"context"
	"testing"

	"github.com/planhive/planhive/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetRepoImpl_Upsert(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewBudgetRepo(db)
	ctx := context.Background()

	// insert
	err := repo.Upsert(ctx, "event-1", CategoryAllocation{CategoryId: "venue", Name: "Venue", Amount: 50000, Percentage: 50, Selected: true})
	require.NoError(t, err)

	// overwrite
	err = repo.Upsert(ctx, "event-1", CategoryAllocation{CategoryId: "venue", Name: "Venue", Amount: 80000, Percentage: 80, Selected: true})
	require.NoError(t, err)

	loaded, err := repo.Get(ctx, "event-1", "venue")
	require.NoError(t, err)
	assert.Equal(t, 80000.0, loaded.Amount)
	assert.Equal(t, 80.0, loaded.Percentage)
}

func TestBudgetRepoImpl_UpsertSelection_PreservesAmount(t *testing.T) {
	// given a category with an allocated amount
	db := test_utils.SetupTestDB(t)
	repo := NewBudgetRepo(db)
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, "event-1", CategoryAllocation{CategoryId: "venue", Name: "Venue", Amount: 50000, Percentage: 50, Selected: true}))

	// when the selection is rewritten without an amount
	err := repo.UpsertSelection(ctx, "event-1", CategoryAllocation{CategoryId: "venue", Name: "Main Venue", Selected: false})
	require.NoError(t, err)

	// then name and selection change, the amount stays
	loaded, err := repo.Get(ctx, "event-1", "venue")
	require.NoError(t, err)
	assert.Equal(t, "Main Venue", loaded.Name)
	assert.False(t, loaded.Selected)
	assert.Equal(t, 50000.0, loaded.Amount)
	assert.Equal(t, 50.0, loaded.Percentage)
}

func TestBudgetRepoImpl_GetAllForEvent(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewBudgetRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "event-1", CategoryAllocation{CategoryId: "venue", Name: "Venue"}))
	require.NoError(t, repo.Upsert(ctx, "event-1", CategoryAllocation{CategoryId: "catering", Name: "Catering"}))
	require.NoError(t, repo.Upsert(ctx, "event-2", CategoryAllocation{CategoryId: "venue", Name: "Venue"}))

	allocations, err := repo.GetAllForEvent(ctx, "event-1")

	require.NoError(t, err)
	require.Len(t, allocations, 2)
	assert.Equal(t, "catering", allocations[0].CategoryId)
	assert.Equal(t, "venue", allocations[1].CategoryId)
}

func TestBudgetRepoImpl_Get_NotFound(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewBudgetRepo(db)

	_, err := repo.Get(context.Background(), "event-1", "missing")

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
