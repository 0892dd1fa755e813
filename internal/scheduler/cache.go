package scheduler

import (
	"context"
	"slices"
	"time"

	"github.com/tamu-thinktank/website-sub000/pkg/model"
	"go.uber.org/zap"
)

// CachedScheduler wraps the compute core with a short-lived result cache.
// The core stays cache-free; a cache miss or failure always falls through to
// a full recompute, so the cache is purely a performance layer.
type CachedScheduler struct {
	inner *Scheduler
	cache Cache
	ttl   time.Duration
	log   *zap.SugaredLogger
}

func NewCached(inner *Scheduler, cache Cache, ttl time.Duration, log *zap.Logger) *CachedScheduler {
	return &CachedScheduler{inner: inner, cache: cache, ttl: ttl, log: log.Sugar()}
}

// AutoSchedule serves from cache when a prior result for the applicant is
// still fresh and was computed for the same team preferences; otherwise it
// recomputes and caches. Commit requests always bypass the cache: a booking
// must run against current data.
func (c *CachedScheduler) AutoSchedule(ctx context.Context, req model.SchedulingRequest) *model.SchedulingResult {
	if !req.AutoCreateInterview {
		cached, err := c.cache.GetResult(ctx, req.IntervieweeID)
		if err != nil {
			c.log.Warnw("result cache read failed", "interviewee_id", req.IntervieweeID, "err", err)
		} else if cached != nil && cacheValidFor(cached, req.PreferredTeams) {
			return cached
		}
	}

	result := c.inner.AutoSchedule(ctx, req)

	if result.Success && !req.AutoCreateInterview {
		if err := c.cache.SetResult(ctx, req.IntervieweeID, result, c.ttl); err != nil {
			c.log.Warnw("result cache write failed", "interviewee_id", req.IntervieweeID, "err", err)
		}
	}
	return result
}

// cacheValidFor accepts a cached result only when its top match carries
// exactly the team list the request asks for, order-insensitively.
func cacheValidFor(cached *model.SchedulingResult, preferred []model.Team) bool {
	if len(cached.Matches) == 0 {
		return false
	}
	have := slices.Clone(cached.Matches[0].TargetTeams)
	want := slices.Clone(preferred)
	slices.Sort(have)
	slices.Sort(want)
	return slices.Equal(have, want)
}
