package activity

import (
	"sync"
)

// maxEntriesPerEvent caps the feed; older entries are discarded first.
const maxEntriesPerEvent = 200

// MemoryRepo stores activity entries in memory. The feed is a convenience view,
// losing it on restart is acceptable.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries map[string][]Entry
	nextId  int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		entries: make(map[string][]Entry),
		nextId:  1,
	}
}

func (r *MemoryRepo) Record(entry Entry) Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.Id = r.nextId
	r.nextId++

	feed := append(r.entries[entry.EventId], entry)
	if len(feed) > maxEntriesPerEvent {
		feed = feed[len(feed)-maxEntriesPerEvent:]
	}
	r.entries[entry.EventId] = feed
	return entry
}

// GetForEvent returns the event's entries, newest first.
func (r *MemoryRepo) GetForEvent(eventId string) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feed := r.entries[eventId]
	result := make([]Entry, 0, len(feed))
	for i := len(feed) - 1; i >= 0; i-- {
		result = append(result, feed[i])
	}
	return result
}

func (r *MemoryRepo) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string][]Entry)
}
