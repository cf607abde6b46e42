package service

import "sync"

// EventLocks hands out one mutex per event id. The read-check-write sequences
// of bookings, capacity updates, and deletes against the same event serialize
// on it; operations on different events never contend.
type EventLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEventLocks() *EventLocks {
	return &EventLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for eventID and returns its release func.
func (l *EventLocks) Lock(eventID string) func() {
	l.mu.Lock()
	m, ok := l.locks[eventID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[eventID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// Remove drops the entry for eventID. Called after a hard delete so the table
// does not accumulate entries for events that no longer exist; a goroutine
// still holding the removed mutex releases it unaffected.
func (l *EventLocks) Remove(eventID string) {
	l.mu.Lock()
	delete(l.locks, eventID)
	l.mu.Unlock()
}

func (l *EventLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
