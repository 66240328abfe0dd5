package event

import "sync"

// DefaultDedupeWindow is how many recent event ids are remembered.
const DefaultDedupeWindow = 1024

// recentIDs remembers the last size ids; older ones are forgotten first.
type recentIDs struct {
	mu   sync.Mutex
	ids  map[string]struct{}
	ring []string
	next int
}

func newRecentIDs(size int) *recentIDs {
	if size < 1 {
		size = DefaultDedupeWindow
	}

	return &recentIDs{
		ids:  make(map[string]struct{}, size),
		ring: make([]string, size),
	}
}

// markSeen records id and reports whether it was already present.
func (r *recentIDs) markSeen(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[id]; ok {
		return true
	}

	if old := r.ring[r.next]; old != "" {
		delete(r.ids, old)
	}
	r.ring[r.next] = id
	r.ids[id] = struct{}{}
	r.next = (r.next + 1) % len(r.ring)

	return false
}

func (r *recentIDs) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}
