package event

// Event is a single planned occasion (a wedding, a conference day) that owns
// tasks, budget categories, vendor allocations and expenses.
type Event struct {
	Id   string
	Name string
	// EventType is a free-form label like "wedding" or "birthday".
	EventType string
	// Date is the calendar date of the occasion, ISO formatted (YYYY-MM-DD).
	Date        string
	TotalBudget float64
}
