package expense

type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
	StatusPartial Status = "partial"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusPartial:
		return true
	}
	return false
}

// ExpenseItem is a free-standing cost entry not tied to a vendor allocation.
// Status is informational only; it never gates inclusion in spend totals.
type ExpenseItem struct {
	Id       string
	EventId  string
	Category string
	Name     string
	Amount   float64
	Status   Status
}
