package expense

import (
	"context"
	"sort"
)

type StubExpenseRepo struct {
	data map[string]ExpenseItem
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{data: map[string]ExpenseItem{}}
}

func (s *StubExpenseRepo) Store(ctx context.Context, item ExpenseItem) error {
	s.data[item.Id] = item
	return nil
}

func (s *StubExpenseRepo) Get(ctx context.Context, expenseId string) (ExpenseItem, error) {
	item, ok := s.data[expenseId]
	if !ok {
		return ExpenseItem{}, ErrExpenseNotFound
	}
	return item, nil
}

func (s *StubExpenseRepo) GetAllForEvent(ctx context.Context, eventId string) ([]ExpenseItem, error) {
	items := make([]ExpenseItem, 0)
	for _, item := range s.data {
		if item.EventId == eventId {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (s *StubExpenseRepo) Update(ctx context.Context, item ExpenseItem) (bool, error) {
	if _, ok := s.data[item.Id]; !ok {
		return false, nil
	}
	s.data[item.Id] = item
	return true, nil
}

func (s *StubExpenseRepo) Delete(ctx context.Context, expenseId string) (bool, error) {
	if _, ok := s.data[expenseId]; !ok {
		return false, nil
	}
	delete(s.data, expenseId)
	return true, nil
}

func (s *StubExpenseRepo) Cleanup() {
	s.data = map[string]ExpenseItem{}
}
