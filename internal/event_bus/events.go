package event_bus

const (
	TypeTaskCreated          EventType = "task.created"
	TypeTaskCompletionToggle EventType = "task.completion"
	TypeBudgetUpdated        EventType = "budget.updated"
	TypeVendorFinalization   EventType = "vendor.finalization"
	TypeExpenseAdded         EventType = "expense.added"
)

type TaskCreated struct {
	TaskId   string
	EventId  string
	Title    string
	Category string
	Date     string
}

type TaskCompletionToggled struct {
	TaskId    string
	EventId   string
	Title     string
	Completed bool
}

type BudgetCategoryUpdated struct {
	EventId    string
	CategoryId string
	Amount     float64
}

type VendorFinalizationChanged struct {
	EventId   string
	VendorId  string
	Category  string
	Finalized bool
	// UnsetVendorId is the vendor whose finalization was auto-unset to keep a single
	// finalized vendor per category, empty when none was.
	UnsetVendorId string
}

type ExpenseAdded struct {
	EventId   string
	ExpenseId string
	Category  string
	Name      string
	Amount    float64
}
