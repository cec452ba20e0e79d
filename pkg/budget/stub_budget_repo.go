package budget

import (
	"context"
	"sort"
)

type StubBudgetRepo struct {
	data map[string]map[string]CategoryAllocation
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{data: map[string]map[string]CategoryAllocation{}}
}

func (s *StubBudgetRepo) Upsert(ctx context.Context, eventId string, allocation CategoryAllocation) error {
	if s.data[eventId] == nil {
		s.data[eventId] = map[string]CategoryAllocation{}
	}
	s.data[eventId][allocation.CategoryId] = allocation
	return nil
}

func (s *StubBudgetRepo) UpsertSelection(ctx context.Context, eventId string, allocation CategoryAllocation) error {
	if s.data[eventId] == nil {
		s.data[eventId] = map[string]CategoryAllocation{}
	}
	existing, ok := s.data[eventId][allocation.CategoryId]
	if ok {
		existing.Name = allocation.Name
		existing.Selected = allocation.Selected
		s.data[eventId][allocation.CategoryId] = existing
		return nil
	}
	s.data[eventId][allocation.CategoryId] = allocation
	return nil
}

func (s *StubBudgetRepo) GetAllForEvent(ctx context.Context, eventId string) ([]CategoryAllocation, error) {
	allocations := make([]CategoryAllocation, 0, len(s.data[eventId]))
	for _, allocation := range s.data[eventId] {
		allocations = append(allocations, allocation)
	}
	sort.Slice(allocations, func(i, j int) bool {
		return allocations[i].CategoryId < allocations[j].CategoryId
	})
	return allocations, nil
}

func (s *StubBudgetRepo) Get(ctx context.Context, eventId string, categoryId string) (CategoryAllocation, error) {
	allocation, ok := s.data[eventId][categoryId]
	if !ok {
		return CategoryAllocation{}, ErrCategoryNotFound
	}
	return allocation, nil
}

func (s *StubBudgetRepo) Cleanup() {
	s.data = map[string]map[string]CategoryAllocation{}
}
