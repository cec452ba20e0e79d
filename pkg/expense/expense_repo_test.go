package expense

import (
	"context"
	"testing"

	"github.com/planhive/planhive/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseRepoImpl_StoreAndGet(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewExpenseRepo(db)
	ctx := context.Background()

	stored := ExpenseItem{
		Id:       "exp-1",
		EventId:  "event-1",
		Category: "Photography",
		Name:     "Drone operator",
		Amount:   5000,
		Status:   StatusPaid,
	}
	require.NoError(t, repo.Store(ctx, stored))

	loaded, err := repo.Get(ctx, "exp-1")
	require.NoError(t, err)
	assert.Equal(t, stored, loaded)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestExpenseRepoImpl_GetAllForEvent(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewExpenseRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, ExpenseItem{Id: "e2", EventId: "event-1", Category: "Venue", Name: "Deposit", Status: StatusPending}))
	require.NoError(t, repo.Store(ctx, ExpenseItem{Id: "e1", EventId: "event-1", Category: "Catering", Name: "Tasting", Status: StatusPending}))
	require.NoError(t, repo.Store(ctx, ExpenseItem{Id: "e3", EventId: "event-2", Category: "Venue", Name: "Deposit", Status: StatusPending}))

	items, err := repo.GetAllForEvent(ctx, "event-1")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "e1", items[0].Id)
	assert.Equal(t, "e2", items[1].Id)
}

func TestExpenseRepoImpl_Update(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewExpenseRepo(db)
	ctx := context.Background()

	original := ExpenseItem{Id: "exp-1", EventId: "event-1", Category: "Photography", Name: "Drone operator", Amount: 5000, Status: StatusPending}
	require.NoError(t, repo.Store(ctx, original))

	original.Amount = 6500
	original.Status = StatusPaid

	updated, err := repo.Update(ctx, original)
	require.NoError(t, err)
	assert.True(t, updated)

	loaded, err := repo.Get(ctx, "exp-1")
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	updated, err = repo.Update(ctx, ExpenseItem{Id: "missing", Status: StatusPending})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestExpenseRepoImpl_Delete(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewExpenseRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, ExpenseItem{Id: "exp-1", EventId: "event-1", Category: "Photography", Name: "Drone operator", Status: StatusPending}))

	deleted, err := repo.Delete(ctx, "exp-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "exp-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
