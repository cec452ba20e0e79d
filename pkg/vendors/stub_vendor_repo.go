package vendors

import (
	"context"
	"sort"
	"strings"
)

type StubVendorRepo struct {
	data map[string]map[string]VendorAllocation
}

func NewStubVendorRepo() *StubVendorRepo {
	return &StubVendorRepo{data: map[string]map[string]VendorAllocation{}}
}

func (s *StubVendorRepo) Store(ctx context.Context, eventId string, allocation VendorAllocation) error {
	if s.data[eventId] == nil {
		s.data[eventId] = map[string]VendorAllocation{}
	}
	s.data[eventId][allocation.VendorId] = allocation
	return nil
}

func (s *StubVendorRepo) Get(ctx context.Context, eventId string, vendorId string) (VendorAllocation, error) {
	allocation, ok := s.data[eventId][vendorId]
	if !ok {
		return VendorAllocation{}, ErrAllocationNotFound
	}
	return allocation, nil
}

func (s *StubVendorRepo) GetAllForEvent(ctx context.Context, eventId string) ([]VendorAllocation, error) {
	allocations := make([]VendorAllocation, 0, len(s.data[eventId]))
	for _, allocation := range s.data[eventId] {
		allocations = append(allocations, allocation)
	}
	sort.Slice(allocations, func(i, j int) bool {
		if allocations[i].Category != allocations[j].Category {
			return allocations[i].Category < allocations[j].Category
		}
		return allocations[i].VendorId < allocations[j].VendorId
	})
	return allocations, nil
}

func (s *StubVendorRepo) UpdateDetails(ctx context.Context, eventId string, vendorId string, comments string, agreedPrice string) (bool, error) {
	allocation, ok := s.data[eventId][vendorId]
	if !ok {
		return false, nil
	}
	allocation.Comments = comments
	allocation.AgreedPrice = agreedPrice
	s.data[eventId][vendorId] = allocation
	return true, nil
}

func (s *StubVendorRepo) Delete(ctx context.Context, eventId string, vendorId string) (bool, error) {
	if _, ok := s.data[eventId][vendorId]; !ok {
		return false, nil
	}
	delete(s.data[eventId], vendorId)
	return true, nil
}

func (s *StubVendorRepo) ToggleFinalization(ctx context.Context, eventId string, vendorId string) (ToggleResult, error) {
	allocation, ok := s.data[eventId][vendorId]
	if !ok {
		return ToggleResult{}, ErrAllocationNotFound
	}

	result := ToggleResult{}
	if !allocation.PriceFinalized {
		for id, other := range s.data[eventId] {
			if id == vendorId || !other.PriceFinalized {
				continue
			}
			if strings.EqualFold(other.Category, allocation.Category) {
				other.PriceFinalized = false
				s.data[eventId][id] = other
				result.UnsetVendorId = id
			}
		}
	}

	allocation.PriceFinalized = !allocation.PriceFinalized
	s.data[eventId][vendorId] = allocation
	result.Allocation = allocation
	return result, nil
}

func (s *StubVendorRepo) Cleanup() {
	s.data = map[string]map[string]VendorAllocation{}
}
