package summary

import (
	"context"
	"strings"

	"github.com/planhive/planhive/pkg/budget"
	"github.com/planhive/planhive/pkg/event"
	"github.com/planhive/planhive/pkg/expense"
	"github.com/planhive/planhive/pkg/task"
	"github.com/planhive/planhive/pkg/vendors"
)

// CategorySummary is the derived spend picture of one budget category.
// Remaining may be negative; overspending is a displayed state, not an error.
type CategorySummary struct {
	CategoryId   string
	Name         string
	Budget       float64
	Spent        float64
	Remaining    float64
	PercentSpent float64
}

type BudgetOverview struct {
	TotalBudget    float64
	TotalAllocated float64
	TotalSpent     float64
	TotalRemaining float64
	PerCategory    []CategorySummary
}

type SummaryService interface {
	CategorySummary(ctx context.Context, eventId string, category string) (CategorySummary, error)
	EventBudgetOverview(ctx context.Context, eventId string) (BudgetOverview, error)
	EventProgress(ctx context.Context, eventId string) (task.Progress, error)
}

type SummaryServiceImpl struct {
	events   event.EventService
	budgets  budget.BudgetService
	tasks    task.TaskService
	vendors  vendors.VendorService
	expenses expense.ExpenseService
}

func NewSummaryService(
	events event.EventService,
	budgets budget.BudgetService,
	tasks task.TaskService,
	vendorService vendors.VendorService,
	expenses expense.ExpenseService,
) *SummaryServiceImpl {
	return &SummaryServiceImpl{
		events:   events,
		budgets:  budgets,
		tasks:    tasks,
		vendors:  vendorService,
		expenses: expenses,
	}
}

// CategorySummary resolves the category by id or name (case-insensitive) and
// combines its allocation with the actual spend:
//
//	spent = finalized vendor prices + manual expenses
func (s *SummaryServiceImpl) CategorySummary(ctx context.Context, eventId string, category string) (CategorySummary, error) {
	categories, err := s.budgets.AllCategories(ctx, eventId)
	if err != nil {
		return CategorySummary{}, err
	}
	allocation := findAllocation(categories, category)

	return s.summarize(ctx, eventId, allocation)
}

func (s *SummaryServiceImpl) EventBudgetOverview(ctx context.Context, eventId string) (BudgetOverview, error) {
	totalBudget, err := s.events.TotalBudget(ctx, eventId)
	if err != nil {
		return BudgetOverview{}, err
	}
	totalAllocated, err := s.budgets.TotalAllocated(ctx, eventId)
	if err != nil {
		return BudgetOverview{}, err
	}
	categories, err := s.budgets.AllCategories(ctx, eventId)
	if err != nil {
		return BudgetOverview{}, err
	}

	overview := BudgetOverview{
		TotalBudget:    totalBudget,
		TotalAllocated: totalAllocated,
		PerCategory:    make([]CategorySummary, 0, len(categories)),
	}
	for _, allocation := range categories {
		categorySummary, err := s.summarize(ctx, eventId, allocation)
		if err != nil {
			return BudgetOverview{}, err
		}
		overview.TotalSpent += categorySummary.Spent
		overview.PerCategory = append(overview.PerCategory, categorySummary)
	}
	overview.TotalRemaining = totalBudget - overview.TotalSpent

	return overview, nil
}

func (s *SummaryServiceImpl) EventProgress(ctx context.Context, eventId string) (task.Progress, error) {
	tasks, err := s.tasks.ListForEvent(ctx, eventId)
	if err != nil {
		return task.Progress{}, err
	}
	return task.ComputeProgress(tasks), nil
}

func (s *SummaryServiceImpl) summarize(ctx context.Context, eventId string, allocation budget.CategoryAllocation) (CategorySummary, error) {
	finalizedSpend, err := s.vendors.FinalizedSpend(ctx, eventId, allocation.Name)
	if err != nil {
		return CategorySummary{}, err
	}
	manualSpend, err := s.expenses.TotalManualSpend(ctx, eventId, allocation.Name)
	if err != nil {
		return CategorySummary{}, err
	}

	spent := finalizedSpend + manualSpend
	categorySummary := CategorySummary{
		CategoryId: allocation.CategoryId,
		Name:       allocation.Name,
		Budget:     allocation.Amount,
		Spent:      spent,
		Remaining:  allocation.Amount - spent,
	}
	if allocation.Amount > 0 {
		categorySummary.PercentSpent = spent / allocation.Amount * 100
	}
	return categorySummary, nil
}

// findAllocation resolves a category reference against known allocations by id
// first, then by name, both case-insensitive. Unknown references produce a
// zero-budget summary rather than an error so spend against unplanned
// categories stays visible.
func findAllocation(categories []budget.CategoryAllocation, category string) budget.CategoryAllocation {
	for _, allocation := range categories {
		if strings.EqualFold(allocation.CategoryId, strings.TrimSpace(category)) {
			return allocation
		}
	}
	for _, allocation := range categories {
		if strings.EqualFold(allocation.Name, strings.TrimSpace(category)) {
			return allocation
		}
	}
	return budget.CategoryAllocation{CategoryId: category, Name: category}
}
