package query

// Package query is the shared server-state cache between the feature
// services and the gateway. Reads are de-duplicated with single-flight
// so a page mounting several identical fetches performs one API call;
// mutations invalidate whole regions, and the invalidation is applied
// before any subsequent refetch can be served from cache.

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/Mohamed-Esmat/fms-upskilling-guide/internal/errors"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
)

// DefaultStaleTime matches the application's five-minute freshness
// window for reads.
const DefaultStaleTime = 5 * time.Minute

// Options groups dependencies for Cache.
type Options struct {
	Repo ports.CacheRepository
	// StaleTime is the TTL applied to cached reads. Zero selects
	// DefaultStaleTime.
	StaleTime time.Duration
	Logger    *slog.Logger
}

// Cache wraps a CacheRepository with single-flight fetching and a
// one-retry read policy. Mutations never pass through the cache.
type Cache struct {
	repo      ports.CacheRepository
	staleTime time.Duration
	logger    *slog.Logger
	group     singleflight.Group
}

// New constructs a Cache.
func New(opts Options) (*Cache, error) {
	if opts.Repo == nil {
		return nil, fmt.Errorf("cache repository is required")
	}
	staleTime := opts.StaleTime
	if staleTime == 0 {
		staleTime = DefaultStaleTime
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{repo: opts.Repo, staleTime: staleTime, logger: logger}, nil
}

// Invalidate removes every cached entry in a region. Repository
// failures are logged, not returned: a failed invalidation must not
// turn a successful mutation into an error, and the entries expire on
// their own.
func (c *Cache) Invalidate(ctx context.Context, region string) {
	removed, err := c.repo.DeletePrefix(ctx, regionPrefix(region))
	if err != nil {
		c.logger.WarnContext(ctx, "cache invalidation failed",
			slog.String("region", region),
			slog.Any("error", err),
		)
		return
	}
	c.logger.DebugContext(ctx, "cache region invalidated",
		slog.String("region", region),
		slog.Int("removed", removed),
	)
}

// FetchJSON returns the cached value for key, or loads it. Concurrent
// fetches of the same key share one load. Loads failing with a
// retryable error are retried once; client-classified failures
// (validation, conflict, authorization) are not.
func FetchJSON[T any](ctx context.Context, c *Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	result, err, _ := c.group.Do(key, func() (any, error) {
		if data, err := c.repo.Get(ctx, key); err == nil && data != nil {
			var cached T
			if unmarshalErr := json.Unmarshal(data, &cached); unmarshalErr == nil {
				return cached, nil
			}
			// Corrupt entry: drop it and fall through to a fresh load.
			if _, delErr := c.repo.Delete(ctx, key); delErr != nil {
				c.logger.WarnContext(ctx, "drop corrupt cache entry failed",
					slog.String("key", key),
					slog.Any("error", delErr),
				)
			}
		}

		value, err := load(ctx)
		if err != nil && retryable(err) {
			value, err = load(ctx)
		}
		if err != nil {
			return zero, err
		}

		if data, marshalErr := json.Marshal(value); marshalErr == nil {
			if setErr := c.repo.Set(ctx, key, data, c.staleTime); setErr != nil {
				c.logger.WarnContext(ctx, "cache store failed",
					slog.String("key", key),
					slog.Any("error", setErr),
				)
			}
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected cache value type for %s", key)
	}
	return typed, nil
}

// retryable reports whether a failed read is worth one more attempt.
// Failures the gateway classified as caller mistakes or as
// session-ending are final.
func retryable(err error) bool {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeValidation,
		apperrors.ErrCodeConflict,
		apperrors.ErrCodeForbidden,
		apperrors.ErrCodeUnauthorized,
		apperrors.ErrCodeNotFound:
		return false
	}
	return true
}
