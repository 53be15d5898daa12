// Package cache holds upstream responses for a fixed TTL keyed by request shape.
package cache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// Store is a TTL cache with coalescing of concurrent misses.
// A Store with a zero TTL caches nothing and forwards every load.
type Store struct {
	ttl   time.Duration
	items *gocache.Cache
	group singleflight.Group
}

// New creates a Store. Expired entries are swept every 2*ttl.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		return &Store{}
	}
	return &Store{
		ttl:   ttl,
		items: gocache.New(ttl, 2*ttl),
	}
}

// Enabled reports whether the store keeps anything.
func (s *Store) Enabled() bool {
	return s != nil && s.items != nil
}

// Key builds a cache key from a namespace and its parts.
func Key(namespace string, parts ...string) string {
	key := namespace
	for _, p := range parts {
		key += "|" + p
	}
	return key
}

// Remember returns the value cached under key, or calls load and caches its result.
// Errors are never cached.
//
// Concurrent misses for one key share a single load. The shared load runs on a
// context that keeps ctx's values but not its cancellation, so it is bounded by
// the loader's own timeout. Each caller stops waiting when its own ctx is done
// and gets ctx.Err(); the load keeps running for the remaining callers.
func Remember[T any](ctx context.Context, s *Store, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T
	if !s.Enabled() {
		return load(ctx)
	}

	if v, ok := s.items.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	detached := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		// another caller may have filled the entry while we waited
		if v, ok := s.items.Get(key); ok {
			return v, nil
		}
		loaded, err := load(detached)
		if err != nil {
			return nil, err
		}
		s.items.Set(key, loaded, s.ttl)
		return loaded, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return zero, res.Err
	}

	typed, ok := res.Val.(T)
	if !ok {
		return zero, fmt.Errorf("cache: entry %q holds %T", key, res.Val)
	}
	return typed, nil
}
