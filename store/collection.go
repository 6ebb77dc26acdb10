// Package store implements the per-resource collection stores. Each one
// fetches a full record set from one REST endpoint, gated on the session's
// bearer token, and exposes it with normalized loading/error state.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"spana-admin/api"
	"spana-admin/session"
)

// Collection holds one resource kind's fetched records. A successful fetch
// replaces the items wholesale; a failed fetch leaves them untouched.
// Overlapping fetches are sequence-numbered and only the most recently
// issued one may write the collection's state, so a slow stale response
// cannot clobber fresh data.
type Collection[T any] struct {
	mu sync.RWMutex

	name    string
	url     string
	session *session.Store
	api     *api.Client
	logger  *zap.Logger

	items      []T
	isFetching bool
	lastErr    string
	seq        uint64
}

// NewCollection creates a store for the named resource. The name doubles as
// the envelope key the server may wrap the collection under.
func NewCollection[T any](name, url string, sess *session.Store, client *api.Client, logger *zap.Logger) *Collection[T] {
	return &Collection[T]{
		name:    name,
		url:     url,
		session: sess,
		api:     client,
		logger:  logger,
	}
}

// Fetch loads the full collection. It requires an authenticated session and
// performs no network call without one. The fetched records are returned to
// the caller as well as stored.
func (c *Collection[T]) Fetch(ctx context.Context) ([]T, error) {
	token, ok := c.session.Credentials()
	if !ok {
		err := &api.AuthRequiredError{
			Message: "You must be logged in to view " + c.name + ". Please log in again.",
		}
		c.setError(err.Error())
		return nil, err
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.isFetching = true
	c.lastErr = ""
	c.mu.Unlock()

	items, err := api.FetchCollection[T](ctx, c.api, c.url, token, c.name)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		// A newer fetch was issued while this one was in flight; its
		// response owns the store now.
		c.logger.Debug("discarding stale fetch response",
			zap.String("collection", c.name), zap.Uint64("seq", seq))
		return items, err
	}
	c.isFetching = false
	if err != nil {
		c.lastErr = err.Error()
		c.logger.Warn("fetch failed", zap.String("collection", c.name), zap.Error(err))
		return nil, err
	}
	c.items = items
	c.logger.Debug("collection refreshed",
		zap.String("collection", c.name), zap.Int("count", len(items)))
	return items, nil
}

// Items returns a copy of the held records.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// IsFetching reports whether a fetch is in flight.
func (c *Collection[T]) IsFetching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isFetching
}

// Err returns the last operation's error message, empty when none.
func (c *Collection[T]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// ClearError clears a lingering error message. Safe to call when none is set.
func (c *Collection[T]) ClearError() {
	c.setError("")
}

func (c *Collection[T]) setError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = msg
}
