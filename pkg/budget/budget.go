package budget

// CategoryAllocation is one named budget bucket of an event.
type CategoryAllocation struct {
	CategoryId string
	Name       string
	// Amount is the allocated budget for this category. Sibling amounts are
	// independently editable; their sum may differ from the event total.
	Amount float64
	// Percentage is the share of the event total at the time the amount was
	// written. It is informational and never re-normalized afterwards.
	Percentage float64
	// Selected marks categories the organizer picked for this event; fallback
	// defaults come back unselected.
	Selected bool
}

// defaultCategories is the fallback set for legacy or partially configured
// events, so standard event types never surface an empty category list.
var defaultCategories = []CategoryAllocation{
	{CategoryId: "venue", Name: "Venue"},
	{CategoryId: "photography", Name: "Photography"},
	{CategoryId: "catering", Name: "Catering"},
	{CategoryId: "decoration", Name: "Decoration"},
	{CategoryId: "music", Name: "Music"},
	{CategoryId: "flowers", Name: "Flowers"},
}

// DefaultCategories returns a copy of the fallback category set.
func DefaultCategories() []CategoryAllocation {
	categories := make([]CategoryAllocation, len(defaultCategories))
	copy(categories, defaultCategories)
	return categories
}
