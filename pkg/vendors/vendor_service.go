package vendors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/planhive/planhive/internal/event_bus"
	"github.com/planhive/planhive/internal/utils"
	log "github.com/sirupsen/logrus"
)

var ErrValidation = errors.New("validation failed")

type VendorService interface {
	Add(ctx context.Context, eventId string, category string, vendorId string) (VendorAllocation, error)
	Remove(ctx context.Context, eventId string, vendorId string) error
	UpdateDetails(ctx context.Context, eventId string, vendorId string, comments string, agreedPrice string) (VendorAllocation, error)
	ToggleFinalization(ctx context.Context, eventId string, vendorId string) (VendorAllocation, error)
	ListForEvent(ctx context.Context, eventId string) ([]VendorAllocation, error)
	// FinalizedSpend sums the parsed agreed prices of finalized allocations in
	// the category. Only finalized prices count toward spend.
	FinalizedSpend(ctx context.Context, eventId string, category string) (float64, error)
}

type VendorServiceImpl struct {
	repo VendorRepo
	// eventLocks serializes finalization toggles per event so concurrent toggles
	// cannot race past the single-finalized-vendor invariant.
	eventLocks *utils.KeyedMutex
	eventBus   *event_bus.EventBus
}

func NewVendorService(repo VendorRepo, eventBus *event_bus.EventBus) *VendorServiceImpl {
	return &VendorServiceImpl{repo: repo, eventLocks: utils.NewKeyedMutex(), eventBus: eventBus}
}

func (s *VendorServiceImpl) Add(ctx context.Context, eventId string, category string, vendorId string) (VendorAllocation, error) {
	if strings.TrimSpace(vendorId) == "" {
		return VendorAllocation{}, fmt.Errorf("%w: vendor id must not be empty", ErrValidation)
	}
	if strings.TrimSpace(category) == "" {
		return VendorAllocation{}, fmt.Errorf("%w: category must not be empty", ErrValidation)
	}

	allocation := VendorAllocation{
		VendorId: vendorId,
		Category: category,
	}
	if err := s.repo.Store(ctx, eventId, allocation); err != nil {
		return VendorAllocation{}, err
	}
	return allocation, nil
}

// Remove is idempotent: removing an already absent allocation is not an error.
func (s *VendorServiceImpl) Remove(ctx context.Context, eventId string, vendorId string) error {
	deleted, err := s.repo.Delete(ctx, eventId, vendorId)
	if err != nil {
		return err
	}
	if !deleted {
		log.Debugf("vendor allocation %s already absent for event %s, nothing to remove", vendorId, eventId)
	}
	return nil
}

func (s *VendorServiceImpl) UpdateDetails(ctx context.Context, eventId string, vendorId string, comments string, agreedPrice string) (VendorAllocation, error) {
	updated, err := s.repo.UpdateDetails(ctx, eventId, vendorId, comments, agreedPrice)
	if err != nil {
		return VendorAllocation{}, err
	}
	if !updated {
		return VendorAllocation{}, ErrAllocationNotFound
	}
	return s.repo.Get(ctx, eventId, vendorId)
}

func (s *VendorServiceImpl) ToggleFinalization(ctx context.Context, eventId string, vendorId string) (VendorAllocation, error) {
	unlock := s.eventLocks.Lock(eventId)
	defer unlock()

	result, err := s.repo.ToggleFinalization(ctx, eventId, vendorId)
	if err != nil {
		return VendorAllocation{}, err
	}
	if result.UnsetVendorId != "" {
		log.Infof("finalizing vendor %s replaced finalized vendor %s in category %s",
			vendorId, result.UnsetVendorId, result.Allocation.Category)
	}

	if s.eventBus != nil {
		err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.TypeVendorFinalization, event_bus.VendorFinalizationChanged{
			EventId:       eventId,
			VendorId:      vendorId,
			Category:      result.Allocation.Category,
			Finalized:     result.Allocation.PriceFinalized,
			UnsetVendorId: result.UnsetVendorId,
		}))
		if err != nil {
			log.Errorf("failed to publish vendor finalization event: %v", err)
		}
	}

	return result.Allocation, nil
}

func (s *VendorServiceImpl) ListForEvent(ctx context.Context, eventId string) ([]VendorAllocation, error) {
	return s.repo.GetAllForEvent(ctx, eventId)
}

func (s *VendorServiceImpl) FinalizedSpend(ctx context.Context, eventId string, category string) (float64, error) {
	allocations, err := s.repo.GetAllForEvent(ctx, eventId)
	if err != nil {
		return 0, err
	}

	spend := 0.0
	for _, allocation := range allocations {
		if !allocation.PriceFinalized {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(allocation.Category), strings.TrimSpace(category)) {
			continue
		}
		spend += ParseCurrency(allocation.AgreedPrice)
	}
	return spend, nil
}
