package viastatus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bluele/gcache"

	"github.com/railtools/viastatus/metrics"
	"github.com/railtools/viastatus/reservia"
	"github.com/railtools/viastatus/trip"
)

// TripCache serves trip snapshots from an LRU cache with a TTL, so repeated
// polls inside the TTL do not hammer the upstream. Entries are whole updated
// Trip values; a cached trip is never mutated after insertion.
type TripCache struct {
	cache   gcache.Cache
	source  trip.ScheduleSource
	metrics *metrics.Collector
}

// NewTripCache builds a cache over the given schedule source.
func NewTripCache(source trip.ScheduleSource, capacity int, ttl time.Duration, m *metrics.Collector) *TripCache {
	return &TripCache{
		cache:   gcache.New(capacity).LRU().Expiration(ttl).Build(),
		source:  source,
		metrics: m,
	}
}

// Get returns the cached trip for a train and date, updating a fresh one on
// a miss. An upstream-incomplete trip degrades to schedule-only instead of
// failing, matching what interactive callers want from a status endpoint.
func (tc *TripCache) Get(ctx context.Context, train int, date string) (*trip.Trip, error) {
	key := fmt.Sprintf("%d|%s", train, date)
	if cached, err := tc.cache.Get(key); err == nil {
		tc.metrics.SnapshotCacheHits.Inc()
		return cached.(*trip.Trip), nil
	}
	tc.metrics.SnapshotCacheMiss.Inc()

	t, err := tc.fetch(ctx, train, date)
	if err != nil {
		return nil, err
	}
	_ = tc.cache.Set(key, t)
	return t, nil
}

func (tc *TripCache) fetch(ctx context.Context, train int, date string) (*trip.Trip, error) {
	start := time.Now()
	tc.metrics.UpstreamFetches.Inc()

	t := trip.New(tc.source, train, date)
	err := t.Update(ctx)
	if errors.Is(err, reservia.ErrTripIncomplete) {
		t = trip.NewScheduleOnly(tc.source, train, date)
		err = t.Update(ctx)
	}
	tc.metrics.UpstreamFetchTime.Observe(time.Since(start).Seconds())
	if err != nil {
		tc.metrics.UpstreamFetchErrs.Inc()
		return nil, err
	}
	return t, nil
}
