package memory

import (
	"log/slog"
	"sync"

	"confidios-proxy/app/domain"
	"confidios-proxy/app/port"
)

// SessionCache is a process-local cache of active session views keyed by
// local user id. It is never authoritative: the bindings table is, and
// every cache miss falls through to it. Entries are copied on the way in
// and out so callers cannot mutate cached state.
type SessionCache struct {
	mu      sync.RWMutex
	entries map[string]domain.SessionView
	logger  *slog.Logger
}

// NewSessionCache creates an empty session cache
func NewSessionCache(logger *slog.Logger) port.SessionCache {
	return &SessionCache{
		entries: make(map[string]domain.SessionView),
		logger:  logger.With("component", "session_cache"),
	}
}

// Get returns the cached session view for a user, if present
func (c *SessionCache) Get(userID string) (*domain.SessionView, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[userID]
	if !ok {
		return nil, false
	}
	view := entry
	return &view, true
}

// Put stores a session view for a user, replacing any previous entry
func (c *SessionCache) Put(userID string, view *domain.SessionView) {
	if view == nil {
		return
	}

	c.mu.Lock()
	c.entries[userID] = *view
	c.mu.Unlock()

	c.logger.Debug("session cached", "user_id", userID)
}

// Invalidate removes the cached entry for a user. Invalidating a user
// with no entry is a no-op.
func (c *SessionCache) Invalidate(userID string) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()

	c.logger.Debug("session cache invalidated", "user_id", userID)
}
