package app

import (
	"github.com/gorilla/mux"
	"github.com/planhive/planhive/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Events
	r.HandleFunc("/api/event", deps.EventHandler.Create).Methods("POST")
	r.HandleFunc("/api/event", deps.EventHandler.List).Methods("GET")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.Get).Methods("GET")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.Update).Methods("PUT")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.Delete).Methods("DELETE")

	// Budget categories
	r.HandleFunc("/api/event/{eventId}/categories", deps.BudgetHandler.GetCategories).Methods("GET")
	r.HandleFunc("/api/event/{eventId}/categories", deps.BudgetHandler.ReplaceSelection).Methods("PUT")
	r.HandleFunc("/api/event/{eventId}/budget/{categoryId}", deps.BudgetHandler.SetCategoryBudget).Methods("PUT")
	r.HandleFunc("/api/event/{eventId}/budget", deps.SummaryHandler.BudgetOverview).Methods("GET")

	// Tasks
	r.HandleFunc("/api/event/{eventId}/task", deps.TaskHandler.Create).Methods("POST")
	r.HandleFunc("/api/event/{eventId}/task", deps.TaskHandler.List).Methods("GET")
	r.HandleFunc("/api/event/{eventId}/task/by-date", deps.TaskHandler.ListByDate).Methods("GET")
	r.HandleFunc("/api/event/{eventId}/task/markers", deps.TaskHandler.Markers).Queries("date", "{date}").Methods("GET")
	r.HandleFunc("/api/event/{eventId}/task/generate", deps.TaskHandler.Generate).Methods("POST")
	r.HandleFunc("/api/task/{taskId}", deps.TaskHandler.Update).Methods("PUT")
	r.HandleFunc("/api/task/{taskId}", deps.TaskHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/task/{taskId}/completion", deps.TaskHandler.ToggleCompletion).Methods("PATCH")
	r.HandleFunc("/api/task/{taskId}/assignees", deps.TaskHandler.Assign).Methods("PUT")

	// Vendor allocations
	r.HandleFunc("/api/event/{eventId}/vendor", deps.VendorHandler.Add).Methods("POST")
	r.HandleFunc("/api/event/{eventId}/vendor", deps.VendorHandler.List).Methods("GET")
	r.HandleFunc("/api/event/{eventId}/vendor/{vendorId}", deps.VendorHandler.UpdateDetails).Methods("PUT")
	r.HandleFunc("/api/event/{eventId}/vendor/{vendorId}", deps.VendorHandler.Remove).Methods("DELETE")
	r.HandleFunc("/api/event/{eventId}/vendor/{vendorId}/finalization", deps.VendorHandler.ToggleFinalization).Methods("PATCH")

	// Expenses
	r.HandleFunc("/api/event/{eventId}/expense", deps.ExpenseHandler.Add).Methods("POST")
	r.HandleFunc("/api/event/{eventId}/expense", deps.ExpenseHandler.List).Methods("GET")
	r.HandleFunc("/api/event/{eventId}/expense/{expenseId}", deps.ExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/event/{eventId}/expense/{expenseId}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Summaries
	r.HandleFunc("/api/event/{eventId}/summary/{categoryId}", deps.SummaryHandler.CategorySummary).Methods("GET")
	r.HandleFunc("/api/event/{eventId}/progress", deps.SummaryHandler.Progress).Methods("GET")

	// Activity feed
	r.HandleFunc("/api/event/{eventId}/activity", deps.ActivityHandler.List).Methods("GET")

	// Calendar feed
	r.HandleFunc("/api/event/{eventId}/calendar.ics", deps.CalendarFeedHandler.GetFeed).Methods("GET")
}
