package activity

import (
	"context"
	"fmt"

	"github.com/planhive/planhive/internal/actor"
	"github.com/planhive/planhive/internal/event_bus"
	"github.com/planhive/planhive/internal/utils"
)

type ActivityService struct {
	repo  *MemoryRepo
	clock utils.Clock
}

func NewActivityService(repo *MemoryRepo, clock utils.Clock) *ActivityService {
	return &ActivityService{repo: repo, clock: clock}
}

// RegisterSubscriptions hooks the feed into the domain event stream. Handlers
// never fail; a feed entry is best-effort.
func (s *ActivityService) RegisterSubscriptions(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped[event_bus.TaskCreated](bus, event_bus.TypeTaskCreated,
		func(e event_bus.EventT[event_bus.TaskCreated]) error {
			s.record(e.Context(), e.Data.EventId, string(e.Type),
				fmt.Sprintf("Task %q created for %s", e.Data.Title, e.Data.Date))
			return nil
		})

	event_bus.SubscribeTyped[event_bus.TaskCompletionToggled](bus, event_bus.TypeTaskCompletionToggle,
		func(e event_bus.EventT[event_bus.TaskCompletionToggled]) error {
			state := "reopened"
			if e.Data.Completed {
				state = "completed"
			}
			s.record(e.Context(), e.Data.EventId, string(e.Type),
				fmt.Sprintf("Task %q %s", e.Data.Title, state))
			return nil
		})

	event_bus.SubscribeTyped[event_bus.BudgetCategoryUpdated](bus, event_bus.TypeBudgetUpdated,
		func(e event_bus.EventT[event_bus.BudgetCategoryUpdated]) error {
			s.record(e.Context(), e.Data.EventId, string(e.Type),
				fmt.Sprintf("Budget for %s set to %.2f", e.Data.CategoryId, e.Data.Amount))
			return nil
		})

	event_bus.SubscribeTyped[event_bus.VendorFinalizationChanged](bus, event_bus.TypeVendorFinalization,
		func(e event_bus.EventT[event_bus.VendorFinalizationChanged]) error {
			var message string
			switch {
			case e.Data.Finalized && e.Data.UnsetVendorId != "":
				message = fmt.Sprintf("Vendor %s finalized for %s, replacing %s",
					e.Data.VendorId, e.Data.Category, e.Data.UnsetVendorId)
			case e.Data.Finalized:
				message = fmt.Sprintf("Vendor %s finalized for %s", e.Data.VendorId, e.Data.Category)
			default:
				message = fmt.Sprintf("Vendor %s finalization removed for %s", e.Data.VendorId, e.Data.Category)
			}
			s.record(e.Context(), e.Data.EventId, string(e.Type), message)
			return nil
		})

	event_bus.SubscribeTyped[event_bus.ExpenseAdded](bus, event_bus.TypeExpenseAdded,
		func(e event_bus.EventT[event_bus.ExpenseAdded]) error {
			s.record(e.Context(), e.Data.EventId, string(e.Type),
				fmt.Sprintf("Expense %q (%.2f) added to %s", e.Data.Name, e.Data.Amount, e.Data.Category))
			return nil
		})
}

func (s *ActivityService) GetForEvent(ctx context.Context, eventId string) []Entry {
	return s.repo.GetForEvent(eventId)
}

func (s *ActivityService) record(ctx context.Context, eventId string, kind string, message string) {
	actorId, _ := actor.CurrentId(ctx)
	s.repo.Record(Entry{
		EventId:   eventId,
		Kind:      kind,
		Message:   message,
		Actor:     actorId,
		Timestamp: s.clock.Now(),
	})
}
