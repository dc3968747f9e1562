package querycache

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is the process-wide query-result cache. Concurrent fetches of the
// same key are coalesced into a single fetcher run; after settlement every
// reader observes the same stored value.
type Cache struct {
	store Store
	ttl   time.Duration
	group singleflight.Group
}

// New builds a cache over the given store. ttl is the staleness window for
// every entry.
func New(store Store, ttl time.Duration) *Cache {
	return &Cache{store: store, ttl: ttl}
}

// Invalidate drops each key's subtree. The next access under any of them
// refetches; there is no guarantee a refetch has happened by the time this
// returns. Consistency is eventual, within one round trip.
func (c *Cache) Invalidate(ctx context.Context, keys ...Key) error {
	for _, k := range keys {
		if err := c.store.DeletePrefix(ctx, k.String()); err != nil {
			return err
		}
	}
	return nil
}

// Fetch returns the cached value under key if present and fresh, otherwise
// runs fetch (coalesced across concurrent callers) and stores the result.
// A store write failure does not fail the fetch; the value is simply not
// cached this round.
//
// The shared flight runs on a context detached from the caller that
// happened to start it, so one caller cancelling does not poison the
// followers coalesced onto the same key. Each caller still stops waiting
// as soon as its own context is done; the backend client's timeout bounds
// the detached flight.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	ks := key.String()

	if b, ok, err := c.store.Get(ctx, ks); err == nil && ok {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
		// Undecodable entry: fall through to a refetch.
	}

	fctx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(ks, func() (any, error) {
		// A concurrent flight may have filled the store while we waited.
		if b, ok, err := c.store.Get(fctx, ks); err == nil && ok {
			var cached T
			if err := json.Unmarshal(b, &cached); err == nil {
				return cached, nil
			}
		}
		fetched, err := fetch(fctx)
		if err != nil {
			return nil, err
		}
		if b, err := json.Marshal(fetched); err == nil {
			_ = c.store.Set(fctx, ks, b, c.ttl)
		}
		return fetched, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
