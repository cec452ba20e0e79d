package app

import (
	"database/sql"

	"github.com/planhive/planhive/internal/config"
	"github.com/planhive/planhive/internal/event_bus"
	"github.com/planhive/planhive/internal/utils"
	"github.com/planhive/planhive/pkg/activity"
	"github.com/planhive/planhive/pkg/budget"
	"github.com/planhive/planhive/pkg/calendar"
	"github.com/planhive/planhive/pkg/event"
	"github.com/planhive/planhive/pkg/expense"
	"github.com/planhive/planhive/pkg/summary"
	"github.com/planhive/planhive/pkg/task"
	"github.com/planhive/planhive/pkg/vendors"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	EventRepo    event.EventRepo
	EventService *event.EventServiceImpl
	EventHandler *event.EventHandler

	TaskRepo    task.TaskRepo
	TaskService *task.TaskServiceImpl
	TaskHandler *task.TaskHandler

	BudgetRepo    budget.BudgetRepo
	BudgetService *budget.BudgetServiceImpl
	BudgetHandler *budget.BudgetHandler

	VendorRepo    vendors.VendorRepo
	VendorService *vendors.VendorServiceImpl
	VendorHandler *vendors.VendorHandler

	ExpenseRepo    expense.ExpenseRepo
	ExpenseService *expense.ExpenseServiceImpl
	ExpenseHandler *expense.ExpenseHandler

	SummaryService *summary.SummaryServiceImpl
	SummaryHandler *summary.SummaryHandler

	ActivityRepo    *activity.MemoryRepo
	ActivityService *activity.ActivityService
	ActivityHandler *activity.ActivityHandler

	CalendarFeedHandler *calendar.FeedHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.EventRepo = event.NewEventRepo(db)
	deps.EventService = event.NewEventService(deps.EventRepo)
	deps.EventHandler = event.NewEventHandler(deps.EventService)

	deps.TaskRepo = task.NewTaskRepo(db)
	deps.TaskService = task.NewTaskService(deps.TaskRepo, deps.EventBus)
	deps.TaskHandler = task.NewTaskHandler(deps.TaskService)

	deps.BudgetRepo = budget.NewBudgetRepo(db)
	deps.BudgetService = budget.NewBudgetService(deps.BudgetRepo, deps.EventService, deps.EventBus)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.BudgetService)

	deps.VendorRepo = vendors.NewVendorRepo(db)
	deps.VendorService = vendors.NewVendorService(deps.VendorRepo, deps.EventBus)
	deps.VendorHandler = vendors.NewVendorHandler(deps.VendorService)

	deps.ExpenseRepo = expense.NewExpenseRepo(db)
	deps.ExpenseService = expense.NewExpenseService(deps.ExpenseRepo, deps.EventBus)
	deps.ExpenseHandler = expense.NewExpenseHandler(deps.ExpenseService)

	deps.SummaryService = summary.NewSummaryService(
		deps.EventService, deps.BudgetService, deps.TaskService, deps.VendorService, deps.ExpenseService)
	deps.SummaryHandler = summary.NewSummaryHandler(deps.SummaryService)

	deps.ActivityRepo = activity.NewMemoryRepo()
	deps.ActivityService = activity.NewActivityService(deps.ActivityRepo, deps.Clock)
	deps.ActivityService.RegisterSubscriptions(deps.EventBus)
	deps.ActivityHandler = activity.NewActivityHandler(deps.ActivityService)

	deps.CalendarFeedHandler = calendar.NewFeedHandler(deps.EventService, deps.TaskService, deps.Clock)

	return deps
}
