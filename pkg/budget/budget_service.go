package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/planhive/planhive/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

var ErrValidation = errors.New("validation failed")
var ErrCategoryNotFound = errors.New("budget category not found")

// EventBudgetProvider exposes the nominal total budget of an event; implemented
// by the event service.
type EventBudgetProvider interface {
	TotalBudget(ctx context.Context, eventId string) (float64, error)
}

type BudgetService interface {
	// AllCategories returns the event's categories unioned with the default set.
	// Event-defined entries win on id collision; defaults come back unselected.
	AllCategories(ctx context.Context, eventId string) ([]CategoryAllocation, error)
	SetCategoryBudget(ctx context.Context, eventId string, categoryId string, amount float64) (CategoryAllocation, error)
	ReplaceSelection(ctx context.Context, eventId string, selections []CategoryAllocation) error
	TotalAllocated(ctx context.Context, eventId string) (float64, error)
}

type BudgetServiceImpl struct {
	repo     BudgetRepo
	events   EventBudgetProvider
	eventBus *event_bus.EventBus
}

func NewBudgetService(repo BudgetRepo, events EventBudgetProvider, eventBus *event_bus.EventBus) *BudgetServiceImpl {
	return &BudgetServiceImpl{repo: repo, events: events, eventBus: eventBus}
}

func (s *BudgetServiceImpl) AllCategories(ctx context.Context, eventId string) ([]CategoryAllocation, error) {
	stored, err := s.repo.GetAllForEvent(ctx, eventId)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(stored))
	categories := make([]CategoryAllocation, 0, len(stored)+len(defaultCategories))
	for _, allocation := range stored {
		seen[allocation.CategoryId] = true
		categories = append(categories, allocation)
	}
	for _, fallback := range DefaultCategories() {
		if seen[fallback.CategoryId] {
			continue
		}
		categories = append(categories, fallback)
	}
	return categories, nil
}

// SetCategoryBudget overwrites the category's amount. It does not rebalance
// sibling categories; the percentage is snapshotted from the event total at
// write time.
func (s *BudgetServiceImpl) SetCategoryBudget(ctx context.Context, eventId string, categoryId string, amount float64) (CategoryAllocation, error) {
	if amount < 0 {
		return CategoryAllocation{}, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	allocation, err := s.repo.Get(ctx, eventId, categoryId)
	if err != nil {
		if !errors.Is(err, ErrCategoryNotFound) {
			return CategoryAllocation{}, err
		}
		allocation = CategoryAllocation{CategoryId: categoryId, Name: categoryDisplayName(categoryId), Selected: true}
	}
	allocation.Amount = amount

	totalBudget, err := s.events.TotalBudget(ctx, eventId)
	if err != nil {
		return CategoryAllocation{}, err
	}
	if totalBudget > 0 {
		allocation.Percentage = amount / totalBudget * 100
	} else {
		allocation.Percentage = 0
	}

	if err := s.repo.Upsert(ctx, eventId, allocation); err != nil {
		return CategoryAllocation{}, err
	}

	if s.eventBus != nil {
		err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.TypeBudgetUpdated, event_bus.BudgetCategoryUpdated{
			EventId:    eventId,
			CategoryId: categoryId,
			Amount:     amount,
		}))
		if err != nil {
			log.Errorf("failed to publish budget update event: %v", err)
		}
	}

	return allocation, nil
}

func (s *BudgetServiceImpl) ReplaceSelection(ctx context.Context, eventId string, selections []CategoryAllocation) error {
	for _, selection := range selections {
		if strings.TrimSpace(selection.CategoryId) == "" {
			return fmt.Errorf("%w: category id must not be empty", ErrValidation)
		}
		if selection.Name == "" {
			selection.Name = categoryDisplayName(selection.CategoryId)
		}
		if err := s.repo.UpsertSelection(ctx, eventId, selection); err != nil {
			return err
		}
	}
	return nil
}

// TotalAllocated sums category amounts. The result may legitimately differ from
// the event's nominal total budget; callers surface the gap as a warning.
func (s *BudgetServiceImpl) TotalAllocated(ctx context.Context, eventId string) (float64, error) {
	allocations, err := s.repo.GetAllForEvent(ctx, eventId)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, allocation := range allocations {
		total += allocation.Amount
	}
	return total, nil
}

// categoryDisplayName resolves a human name for a category id, preferring the
// default set's spelling.
func categoryDisplayName(categoryId string) string {
	for _, fallback := range defaultCategories {
		if strings.EqualFold(fallback.CategoryId, categoryId) {
			return fallback.Name
		}
	}
	if categoryId == "" {
		return categoryId
	}
	return strings.ToUpper(categoryId[:1]) + categoryId[1:]
}
