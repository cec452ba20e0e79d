package activity

import "time"

// Entry is one line of an event's recent activity feed.
type Entry struct {
	Id        int
	EventId   string
	Kind      string
	Message   string
	Actor     string
	Timestamp time.Time
}
