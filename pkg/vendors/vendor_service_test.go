package vendors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a fresh allocation", func(t *testing.T) {
		repo := NewStubVendorRepo()
		service := NewVendorService(repo, nil)

		allocation, err := service.Add(ctx, "event-1", "Photography", "vendor-1")

		require.NoError(t, err)
		assert.Equal(t, "vendor-1", allocation.VendorId)
		assert.Equal(t, "Photography", allocation.Category)
		assert.False(t, allocation.PriceFinalized)
	})

	t.Run("rejects blank vendor id or category", func(t *testing.T) {
		service := NewVendorService(NewStubVendorRepo(), nil)

		_, err := service.Add(ctx, "event-1", "Photography", "  ")
		assert.ErrorIs(t, err, ErrValidation)

		_, err = service.Add(ctx, "event-1", "", "vendor-1")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestVendorService_Remove(t *testing.T) {
	ctx := context.Background()
	repo := NewStubVendorRepo()
	service := NewVendorService(repo, nil)

	_, err := service.Add(ctx, "event-1", "Photography", "vendor-1")
	require.NoError(t, err)

	// removing twice is fine, the second call is a no-op
	assert.NoError(t, service.Remove(ctx, "event-1", "vendor-1"))
	assert.NoError(t, service.Remove(ctx, "event-1", "vendor-1"))
}

func TestVendorService_UpdateDetails(t *testing.T) {
	ctx := context.Background()
	repo := NewStubVendorRepo()
	service := NewVendorService(repo, nil)

	_, err := service.Add(ctx, "event-1", "Photography", "vendor-1")
	require.NoError(t, err)

	t.Run("updates comments and agreed price", func(t *testing.T) {
		allocation, err := service.UpdateDetails(ctx, "event-1", "vendor-1", "shortlisted", "50,000")

		require.NoError(t, err)
		assert.Equal(t, "shortlisted", allocation.Comments)
		assert.Equal(t, "50,000", allocation.AgreedPrice)
	})

	t.Run("unknown vendor is an error", func(t *testing.T) {
		_, err := service.UpdateDetails(ctx, "event-1", "missing", "", "100")

		assert.ErrorIs(t, err, ErrAllocationNotFound)
	})
}

func TestVendorService_ToggleFinalization(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *VendorServiceImpl {
		service := NewVendorService(NewStubVendorRepo(), nil)
		_, err := service.Add(ctx, "event-1", "Photography", "vendor-1")
		require.NoError(t, err)
		_, err = service.Add(ctx, "event-1", "Photography", "vendor-2")
		require.NoError(t, err)
		_, err = service.Add(ctx, "event-1", "Catering", "vendor-3")
		require.NoError(t, err)
		return service
	}

	finalized := func(t *testing.T, service *VendorServiceImpl) []string {
		allocations, err := service.ListForEvent(ctx, "event-1")
		require.NoError(t, err)
		ids := make([]string, 0)
		for _, allocation := range allocations {
			if allocation.PriceFinalized {
				ids = append(ids, allocation.VendorId)
			}
		}
		return ids
	}

	t.Run("finalizing a vendor unsets the previous one in the same category", func(t *testing.T) {
		service := setup(t)

		_, err := service.ToggleFinalization(ctx, "event-1", "vendor-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"vendor-1"}, finalized(t, service))

		allocation, err := service.ToggleFinalization(ctx, "event-1", "vendor-2")
		require.NoError(t, err)
		assert.True(t, allocation.PriceFinalized)
		assert.Equal(t, []string{"vendor-2"}, finalized(t, service))
	})

	t.Run("finalization in another category is untouched", func(t *testing.T) {
		service := setup(t)

		_, err := service.ToggleFinalization(ctx, "event-1", "vendor-3")
		require.NoError(t, err)
		_, err = service.ToggleFinalization(ctx, "event-1", "vendor-1")
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"vendor-1", "vendor-3"}, finalized(t, service))
	})

	t.Run("toggling a finalized vendor just unsets it", func(t *testing.T) {
		service := setup(t)

		_, err := service.ToggleFinalization(ctx, "event-1", "vendor-1")
		require.NoError(t, err)
		allocation, err := service.ToggleFinalization(ctx, "event-1", "vendor-1")
		require.NoError(t, err)

		assert.False(t, allocation.PriceFinalized)
		assert.Empty(t, finalized(t, service))
	})

	t.Run("unknown vendor is an error", func(t *testing.T) {
		service := setup(t)

		_, err := service.ToggleFinalization(ctx, "event-1", "missing")

		assert.ErrorIs(t, err, ErrAllocationNotFound)
	})
}

func TestVendorService_FinalizedSpend(t *testing.T) {
	ctx := context.Background()
	repo := NewStubVendorRepo()
	service := NewVendorService(repo, nil)

	// given one finalized and one pending vendor in the category, plus a
	// finalized vendor elsewhere
	require.NoError(t, repo.Store(ctx, "event-1", VendorAllocation{VendorId: "v1", Category: "Photography", AgreedPrice: "50,000", PriceFinalized: true}))
	require.NoError(t, repo.Store(ctx, "event-1", VendorAllocation{VendorId: "v2", Category: "photography", AgreedPrice: "99,999"}))
	require.NoError(t, repo.Store(ctx, "event-1", VendorAllocation{VendorId: "v3", Category: "Catering", AgreedPrice: "80,000", PriceFinalized: true}))

	// when
	spend, err := service.FinalizedSpend(ctx, "event-1", "photography")

	// then only the finalized photography price counts
	require.NoError(t, err)
	assert.Equal(t, 50000.0, spend)
}
