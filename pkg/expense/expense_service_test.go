package expense

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an id and defaults status to pending", func(t *testing.T) {
		repo := NewStubExpenseRepo()
		service := NewExpenseService(repo, nil)

		added, err := service.Add(ctx, ExpenseItem{
			EventId:  "event-1",
			Category: "Photography",
			Name:     "Drone operator",
			Amount:   5000,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, added.Id)
		assert.Equal(t, StatusPending, added.Status)

		stored, err := repo.Get(ctx, added.Id)
		require.NoError(t, err)
		assert.Equal(t, added, stored)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		service := NewExpenseService(NewStubExpenseRepo(), nil)

		valid := ExpenseItem{EventId: "event-1", Category: "Photography", Name: "Drone operator", Amount: 5000}

		invalid := valid
		invalid.Name = "  "
		_, err := service.Add(ctx, invalid)
		assert.ErrorIs(t, err, ErrValidation)

		invalid = valid
		invalid.EventId = ""
		_, err = service.Add(ctx, invalid)
		assert.ErrorIs(t, err, ErrValidation)

		invalid = valid
		invalid.Category = ""
		_, err = service.Add(ctx, invalid)
		assert.ErrorIs(t, err, ErrValidation)

		invalid = valid
		invalid.Amount = -1
		_, err = service.Add(ctx, invalid)
		assert.ErrorIs(t, err, ErrValidation)

		invalid = valid
		invalid.Status = Status("refunded")
		_, err = service.Add(ctx, invalid)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestExpenseService_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewStubExpenseRepo()
	service := NewExpenseService(repo, nil)

	added, err := service.Add(ctx, ExpenseItem{EventId: "event-1", Category: "Photography", Name: "Drone operator", Amount: 5000})
	require.NoError(t, err)

	t.Run("merges only the provided fields", func(t *testing.T) {
		newAmount := 6500.0
		newStatus := StatusPaid

		updated, err := service.Update(ctx, added.Id, ExpenseUpdate{Amount: &newAmount, Status: &newStatus})

		require.NoError(t, err)
		assert.Equal(t, 6500.0, updated.Amount)
		assert.Equal(t, StatusPaid, updated.Status)
		assert.Equal(t, "Drone operator", updated.Name)
		assert.Equal(t, "Photography", updated.Category)
	})

	t.Run("unknown expense is an error", func(t *testing.T) {
		newAmount := 1.0
		_, err := service.Update(ctx, "missing", ExpenseUpdate{Amount: &newAmount})

		assert.ErrorIs(t, err, ErrExpenseNotFound)
	})
}

func TestExpenseService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewStubExpenseRepo()
	service := NewExpenseService(repo, nil)

	added, err := service.Add(ctx, ExpenseItem{EventId: "event-1", Category: "Photography", Name: "Drone operator", Amount: 5000})
	require.NoError(t, err)

	// deleting twice is fine, the second call is a no-op
	assert.NoError(t, service.Delete(ctx, added.Id))
	assert.NoError(t, service.Delete(ctx, added.Id))
}

func TestExpenseService_TotalManualSpend(t *testing.T) {
	ctx := context.Background()
	repo := NewStubExpenseRepo()
	service := NewExpenseService(repo, nil)

	// given expenses across categories and statuses
	_, err := service.Add(ctx, ExpenseItem{EventId: "event-1", Category: "Photography", Name: "Drone operator", Amount: 5000, Status: StatusPaid})
	require.NoError(t, err)
	_, err = service.Add(ctx, ExpenseItem{EventId: "event-1", Category: "photography ", Name: "Prints", Amount: 1200, Status: StatusPending})
	require.NoError(t, err)
	_, err = service.Add(ctx, ExpenseItem{EventId: "event-1", Category: "Catering", Name: "Tasting", Amount: 900})
	require.NoError(t, err)

	// when
	total, err := service.TotalManualSpend(ctx, "event-1", "PHOTOGRAPHY")

	// then category matching ignores case and status never gates inclusion
	require.NoError(t, err)
	assert.Equal(t, 6200.0, total)
}
