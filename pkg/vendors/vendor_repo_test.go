package vendors

import (
	"context"
	"testing"

	"github.com/planhive/planhive/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorRepoImpl_StoreAndGet(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewVendorRepo(db)
	ctx := context.Background()

	stored := VendorAllocation{
		VendorId:    "vendor-1",
		Category:    "Photography",
		Comments:    "shortlisted",
		AgreedPrice: "50,000",
	}
	require.NoError(t, repo.Store(ctx, "event-1", stored))

	loaded, err := repo.Get(ctx, "event-1", "vendor-1")
	require.NoError(t, err)
	assert.Equal(t, stored, loaded)

	_, err = repo.Get(ctx, "event-1", "missing")
	assert.ErrorIs(t, err, ErrAllocationNotFound)
}

func TestVendorRepoImpl_GetAllForEvent(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewVendorRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "event-1", VendorAllocation{VendorId: "v2", Category: "Photography"}))
	require.NoError(t, repo.Store(ctx, "event-1", VendorAllocation{VendorId: "v1", Category: "Catering"}))
	require.NoError(t, repo.Store(ctx, "event-2", VendorAllocation{VendorId: "v3", Category: "Catering"}))

	allocations, err := repo.GetAllForEvent(ctx, "event-1")

	require.NoError(t, err)
	require.Len(t, allocations, 2)
	assert.Equal(t, "v1", allocations[0].VendorId)
	assert.Equal(t, "v2", allocations[1].VendorId)
}

func TestVendorRepoImpl_UpdateDetails(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewVendorRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "event-1", VendorAllocation{VendorId: "vendor-1", Category: "Photography"}))

	updated, err := repo.UpdateDetails(ctx, "event-1", "vendor-1", "negotiating", "45,000")
	require.NoError(t, err)
	assert.True(t, updated)

	loaded, err := repo.Get(ctx, "event-1", "vendor-1")
	require.NoError(t, err)
	assert.Equal(t, "negotiating", loaded.Comments)
	assert.Equal(t, "45,000", loaded.AgreedPrice)

	updated, err = repo.UpdateDetails(ctx, "event-1", "missing", "", "")
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestVendorRepoImpl_ToggleFinalization(t *testing.T) {
	ctx := context.Background()

	t.Run("finalizes and unsets the previous vendor in one transaction", func(t *testing.T) {
		// given two photography vendors, one already finalized
		db := test_utils.SetupTestDB(t)
		repo := NewVendorRepo(db)
		require.NoError(t, repo.Store(ctx, "event-1", VendorAllocation{VendorId: "v1", Category: "Photography", PriceFinalized: true}))
		require.NoError(t, repo.Store(ctx, "event-1", VendorAllocation{VendorId: "v2", Category: "photography"}))

		// when finalizing the second; category matching ignores case
		result, err := repo.ToggleFinalization(ctx, "event-1", "v2")

		// then
		require.NoError(t, err)
		assert.True(t, result.Allocation.PriceFinalized)
		assert.Equal(t, "v1", result.UnsetVendorId)

		previous, err := repo.Get(ctx, "event-1", "v1")
		require.NoError(t, err)
		assert.False(t, previous.PriceFinalized)
	})

	t.Run("unfinalizing does not touch other vendors", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewVendorRepo(db)
		require.NoError(t, repo.Store(ctx, "event-1", VendorAllocation{VendorId: "v1", Category: "Photography", PriceFinalized: true}))
		require.NoError(t, repo.Store(ctx, "event-1", VendorAllocation{VendorId: "v2", Category: "Catering", PriceFinalized: true}))

		result, err := repo.ToggleFinalization(ctx, "event-1", "v1")

		require.NoError(t, err)
		assert.False(t, result.Allocation.PriceFinalized)
		assert.Empty(t, result.UnsetVendorId)

		other, err := repo.Get(ctx, "event-1", "v2")
		require.NoError(t, err)
		assert.True(t, other.PriceFinalized)
	})

	t.Run("unknown vendor is an error", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewVendorRepo(db)

		_, err := repo.ToggleFinalization(ctx, "event-1", "missing")

		assert.ErrorIs(t, err, ErrAllocationNotFound)
	})
}

func TestVendorRepoImpl_Delete(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewVendorRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "event-1", VendorAllocation{VendorId: "vendor-1", Category: "Photography"}))

	deleted, err := repo.Delete(ctx, "event-1", "vendor-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "event-1", "vendor-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
