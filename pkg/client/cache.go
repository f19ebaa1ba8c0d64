package client

import (
	"context"
	"sync"
	"time"
)

// cached is one derived collection with its own staleness window. An entry
// serves its value until the TTL lapses or it is invalidated; a failed eager
// refresh leaves it stale so the next access refetches lazily.
type cached[T any] struct {
	mu        sync.Mutex
	value     T
	fetchedAt time.Time
	ttl       time.Duration
	populated bool
	stale     bool
}

func newCached[T any](ttl time.Duration) *cached[T] {
	return &cached[T]{ttl: ttl}
}

func (c *cached[T]) get(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.populated && !c.stale && time.Since(c.fetchedAt) < c.ttl {
		return c.value, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.store(value)
	return value, nil
}

// invalidate marks the entry stale without discarding the value.
func (c *cached[T]) invalidate() {
	c.mu.Lock()
	c.stale = true
	c.mu.Unlock()
}

// refresh eagerly refetches an invalidated entry. On failure the entry stays
// stale and the error is returned for logging only.
func (c *cached[T]) refresh(ctx context.Context, fetch func(context.Context) (T, error)) error {
	value, err := fetch(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.store(value)
	c.mu.Unlock()
	return nil
}

// callers must hold mu.
func (c *cached[T]) store(value T) {
	c.value = value
	c.fetchedAt = time.Now()
	c.populated = true
	c.stale = false
}
