package cache

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"lotes_backoffice/internal/infrastructure/logger"

	"golang.org/x/sync/singleflight"
)

// Stale windows per resource volatility.
const (
	StaleRoles   = 10 * time.Minute
	StaleCatalog = 5 * time.Minute
	StaleList    = 2 * time.Minute

	// DefaultGCTime is how long an entry survives in the store after it went stale.
	DefaultGCTime = 30 * time.Minute
)

// Key addresses a cached query, e.g. Key{"lots", projectID, blockID}.
// A key is a prefix of another when all its parts match, so invalidating
// Key{"sales", "1"} never touches Key{"sales", "10"}.
type Key []string

func (k Key) String() string {
	var b strings.Builder
	for _, p := range k {
		b.WriteString(url.PathEscape(p))
		b.WriteByte('/')
	}
	return b.String()
}

// Entry is one stored query result.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// Store keeps entries by rendered key.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, e Entry) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// QueryCache fronts backend reads: fresh entries are served from the store,
// concurrent fetches of the same key share one request, and mutations
// invalidate keys to force the next read to refetch.
type QueryCache struct {
	store Store
	group singleflight.Group
	epoch atomic.Uint64
	now   func() time.Time
}

func NewQueryCache(store Store) *QueryCache {
	return &QueryCache{store: store, now: time.Now}
}

// Fetch returns the cached value for key while it is younger than staleTime,
// otherwise calls fn. Errors are never cached.
func Fetch[T any](ctx context.Context, c *QueryCache, key Key, staleTime time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	k := key.String()

	if e, ok, err := c.store.Get(ctx, k); err != nil {
		logger.For("cache").Warn().Err(err).Str("key", k).Msg("store get failed; fetching")
	} else if ok && c.now().Sub(e.FetchedAt) < staleTime {
		var v T
		if err := json.Unmarshal(e.Data, &v); err == nil {
			return v, nil
		}
	}

	raw, err, shared := c.group.Do(k, func() (any, error) {
		epoch := c.epoch.Load()
		// the fetch is shared by every waiter, so one caller leaving must not cancel it
		v, err := fn(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		if c.epoch.Load() == epoch {
			if err := c.store.Set(ctx, k, Entry{Data: b, FetchedAt: c.now()}); err != nil {
				logger.For("cache").Warn().Err(err).Str("key", k).Msg("store set failed")
			}
		}
		return json.RawMessage(b), nil
	})
	if err != nil {
		return zero, err
	}
	if shared {
		logger.For("cache").Debug().Str("key", k).Msg("joined in-flight fetch")
	}

	var v T
	if err := json.Unmarshal(raw.(json.RawMessage), &v); err != nil {
		return zero, err
	}
	return v, nil
}

// Invalidate drops every entry under each given key prefix.
func (c *QueryCache) Invalidate(ctx context.Context, prefixes ...Key) {
	c.epoch.Add(1)
	for _, p := range prefixes {
		c.group.Forget(p.String())
		if err := c.store.DeletePrefix(ctx, p.String()); err != nil {
			logger.For("cache").Error().Err(err).Str("prefix", p.String()).Msg("invalidate failed")
			continue
		}
		logger.For("cache").Debug().Str("prefix", p.String()).Msg("invalidated")
	}
}
