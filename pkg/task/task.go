package task

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// priorityOrder drives priority sorting: high before medium before low.
var priorityOrder = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

func (p Priority) Valid() bool {
	_, ok := priorityOrder[p]
	return ok
}

// Task is a dated, timed, prioritized to-do item scoped to one event.
// EventId is immutable after creation.
type Task struct {
	Id          string
	EventId     string
	Title       string
	Description string
	// Date is ISO formatted (YYYY-MM-DD).
	Date string
	// Time is 24-hour, zero padded (HH:MM). The fixed width makes lexical
	// ordering equal to chronological ordering within a day.
	Time     string
	Priority Priority
	// Category is a free-form name matching a budget category; comparisons are
	// case-insensitive.
	Category  string
	Completed bool
	// AssignedTo is an ordered list of email-like identifiers. Empty means the
	// task is implicitly assigned to the acting user.
	AssignedTo []string
}
