package services

import "sync"

// Guard serializes every access to one schedule store. Create one per process
// and share it between all handlers that reach the store.
type Guard struct {
	mu sync.Mutex
}

// NewGuard returns an unlocked guard
func NewGuard() *Guard {
	return &Guard{}
}

// Do runs fn while holding the guard
func (g *Guard) Do(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}
