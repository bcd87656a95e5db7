// Package cache provides an optional Redis-backed cache of upstream list
// responses. The remote API stays authoritative; cached bodies only shave
// round trips off repeated identical searches for the duration of the TTL.
package cache

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"jobgrid/board-service/internal/model"
)

// Listing caches raw upstream list bodies keyed by normalised criteria.
// A nil *Listing is valid and behaves as an always-miss cache, so callers
// need no branching when Redis is not configured.
type Listing struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.SugaredLogger
}

// New parses redisURL, verifies connectivity and returns a Listing cache.
func New(ctx context.Context, redisURL string, ttl time.Duration, log *zap.SugaredLogger) (*Listing, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrapf(err, "redis.ParseURL(%q)", redisURL)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "redis ping failed")
	}

	return &Listing{rdb: rdb, ttl: ttl, log: log.Named("cache")}, nil
}

// Key derives a stable cache key from the criteria. url.Values encoding sorts
// parameters, so equivalent criteria always map to the same key.
func Key(c model.FilterCriteria) string {
	v := url.Values{}
	if c.Search != "" {
		v.Set("search", c.Search)
	}
	if c.Location != "" {
		v.Set("location", c.Location)
	}
	if c.JobType != "" {
		v.Set("job_type", c.JobType)
	}
	if c.SalaryMin != nil {
		v.Set("salary_min", strconv.Itoa(*c.SalaryMin))
	}
	if c.SalaryMax != nil {
		v.Set("salary_max", strconv.Itoa(*c.SalaryMax))
	}
	return "jobs:list:" + v.Encode()
}

// Get returns the cached body for key, or (nil, false) on a miss. Redis
// errors count as misses — the caller falls through to upstream.
func (l *Listing) Get(ctx context.Context, key string) ([]byte, bool) {
	if l == nil {
		return nil, false
	}
	body, err := l.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			l.log.Warnw("cache get failed", "key", key, "err", err)
		}
		return nil, false
	}
	return body, true
}

// Set stores body under key for the configured TTL. Failures are logged and
// otherwise ignored; the cache is never load-bearing.
func (l *Listing) Set(ctx context.Context, key string, body []byte) {
	if l == nil {
		return
	}
	if err := l.rdb.Set(ctx, key, body, l.ttl).Err(); err != nil {
		l.log.Warnw("cache set failed", "key", key, "err", err)
	}
}

// Close releases the Redis connection.
func (l *Listing) Close() error {
	if l == nil {
		return nil
	}
	return l.rdb.Close()
}
