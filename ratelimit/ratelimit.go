package ratelimit

import (
	"sync"
	"time"
)

// Limiter decides whether a request from the given client identifier may
// proceed. Implementations must be safe for concurrent use.
type Limiter interface {
	Allow(identifier string) bool
}

type entry struct {
	count   int
	resetAt time.Time
}

// InMemory is a fixed-window limiter keyed by client identifier. Counters
// live in process memory only; restarts reset all windows.
type InMemory struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	entries map[string]*entry
}

func NewInMemory(limit int, window time.Duration) *InMemory {
	return &InMemory{
		limit:   limit,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

func (l *InMemory) Allow(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if e, ok := l.entries[identifier]; ok && now.After(e.resetAt) {
		delete(l.entries, identifier)
	}

	e, ok := l.entries[identifier]
	if !ok {
		l.entries[identifier] = &entry{count: 1, resetAt: now.Add(l.window)}
		return true
	}
	if e.count >= l.limit {
		return false
	}
	e.count++
	return true
}
