package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/planhive/planhive/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

var ErrValidation = errors.New("validation failed")

// ExpenseUpdate is a partial update: nil fields are left untouched.
type ExpenseUpdate struct {
	Category *string
	Name     *string
	Amount   *float64
	Status   *Status
}

type ExpenseService interface {
	Add(ctx context.Context, item ExpenseItem) (ExpenseItem, error)
	Update(ctx context.Context, expenseId string, update ExpenseUpdate) (ExpenseItem, error)
	Delete(ctx context.Context, expenseId string) error
	ListForEvent(ctx context.Context, eventId string) ([]ExpenseItem, error)
	// TotalManualSpend sums item amounts for the category; payment status does
	// not gate inclusion.
	TotalManualSpend(ctx context.Context, eventId string, category string) (float64, error)
}

type ExpenseServiceImpl struct {
	repo     ExpenseRepo
	eventBus *event_bus.EventBus
}

func NewExpenseService(repo ExpenseRepo, eventBus *event_bus.EventBus) *ExpenseServiceImpl {
	return &ExpenseServiceImpl{repo: repo, eventBus: eventBus}
}

func (s *ExpenseServiceImpl) Add(ctx context.Context, item ExpenseItem) (ExpenseItem, error) {
	if err := validateExpense(item); err != nil {
		return ExpenseItem{}, err
	}
	if item.Status == "" {
		item.Status = StatusPending
	}
	item.Id = uuid.NewString()

	if err := s.repo.Store(ctx, item); err != nil {
		return ExpenseItem{}, err
	}

	if s.eventBus != nil {
		err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.TypeExpenseAdded, event_bus.ExpenseAdded{
			EventId:   item.EventId,
			ExpenseId: item.Id,
			Category:  item.Category,
			Name:      item.Name,
			Amount:    item.Amount,
		}))
		if err != nil {
			log.Errorf("failed to publish expense added event: %v", err)
		}
	}

	return item, nil
}

func (s *ExpenseServiceImpl) Update(ctx context.Context, expenseId string, update ExpenseUpdate) (ExpenseItem, error) {
	item, err := s.repo.Get(ctx, expenseId)
	if err != nil {
		return ExpenseItem{}, err
	}

	if update.Category != nil {
		item.Category = *update.Category
	}
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Amount != nil {
		item.Amount = *update.Amount
	}
	if update.Status != nil {
		item.Status = *update.Status
	}

	if err := validateExpense(item); err != nil {
		return ExpenseItem{}, err
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return ExpenseItem{}, err
	}
	if !updated {
		return ExpenseItem{}, ErrExpenseNotFound
	}
	return item, nil
}

// Delete is idempotent: deleting an already removed expense is not an error.
func (s *ExpenseServiceImpl) Delete(ctx context.Context, expenseId string) error {
	deleted, err := s.repo.Delete(ctx, expenseId)
	if err != nil {
		return err
	}
	if !deleted {
		log.Debugf("expense %s already absent, nothing to delete", expenseId)
	}
	return nil
}

func (s *ExpenseServiceImpl) ListForEvent(ctx context.Context, eventId string) ([]ExpenseItem, error) {
	return s.repo.GetAllForEvent(ctx, eventId)
}

func (s *ExpenseServiceImpl) TotalManualSpend(ctx context.Context, eventId string, category string) (float64, error) {
	items, err := s.repo.GetAllForEvent(ctx, eventId)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, item := range items {
		if strings.EqualFold(strings.TrimSpace(item.Category), strings.TrimSpace(category)) {
			total += item.Amount
		}
	}
	return total, nil
}

func validateExpense(item ExpenseItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: expense name must not be empty", ErrValidation)
	}
	if item.EventId == "" {
		return fmt.Errorf("%w: expense must belong to an event", ErrValidation)
	}
	if strings.TrimSpace(item.Category) == "" {
		return fmt.Errorf("%w: expense category must not be empty", ErrValidation)
	}
	if item.Amount < 0 {
		return fmt.Errorf("%w: expense amount must not be negative", ErrValidation)
	}
	if item.Status != "" && !item.Status.Valid() {
		return fmt.Errorf("%w: unknown expense status %q", ErrValidation, item.Status)
	}
	return nil
}
