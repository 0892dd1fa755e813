package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
	"go.uber.org/zap"
)

func cachedSchedulerForTest(store *fakeStore, cache Cache) *CachedScheduler {
	return NewCached(New(store, cache, zap.NewNop()), cache, 5*time.Minute, zap.NewNop())
}

func TestCachedSchedulerServesFreshResult(t *testing.T) {
	store := newFakeStore()
	applicantID := seedApplicant(store)
	// Target teams equal the preferred teams so the cached top match passes
	// the validity check.
	store.interviewers = []model.Interviewer{
		{ID: uuid.New(), Name: "X", TargetTeams: []model.Team{model.TeamGNC, model.TeamEPS}},
	}
	cache := newFakeCache()
	s := cachedSchedulerForTest(store, cache)

	start, end := testWeek()
	req := model.SchedulingRequest{
		IntervieweeID:  applicantID,
		PreferredTeams: []model.Team{model.TeamEPS, model.TeamGNC},
		AvailableSlots: GenerateSlots(start, end),
	}

	first := s.AutoSchedule(context.Background(), req)
	if !first.Success {
		t.Fatalf("expected success, errors: %v", first.Errors)
	}

	// Empty the pool: a recompute would now fail, so success proves the
	// second call was served from cache.
	store.interviewers = nil
	second := s.AutoSchedule(context.Background(), req)
	if !second.Success {
		t.Fatal("expected cached result")
	}
}

func TestCachedSchedulerRecomputesOnTeamChange(t *testing.T) {
	store := newFakeStore()
	applicantID := seedApplicant(store)
	store.interviewers = []model.Interviewer{
		{ID: uuid.New(), Name: "X", TargetTeams: []model.Team{model.TeamGNC}},
	}
	cache := newFakeCache()
	s := cachedSchedulerForTest(store, cache)

	start, end := testWeek()
	req := model.SchedulingRequest{
		IntervieweeID:  applicantID,
		PreferredTeams: []model.Team{model.TeamGNC},
		AvailableSlots: GenerateSlots(start, end),
	}
	if res := s.AutoSchedule(context.Background(), req); !res.Success {
		t.Fatalf("expected success, errors: %v", res.Errors)
	}

	store.interviewers = nil
	req.PreferredTeams = []model.Team{model.TeamEPS}
	res := s.AutoSchedule(context.Background(), req)
	if res.Success {
		t.Fatal("changed preferences must force a recompute")
	}
}

func TestCachedSchedulerBypassesCacheForCommits(t *testing.T) {
	store := newFakeStore()
	applicantID := seedApplicant(store)
	store.interviewers = []model.Interviewer{
		{ID: uuid.New(), Name: "X", TargetTeams: []model.Team{model.TeamGNC}},
	}
	cache := newFakeCache()
	s := cachedSchedulerForTest(store, cache)

	start, end := testWeek()
	req := model.SchedulingRequest{
		IntervieweeID:  applicantID,
		PreferredTeams: []model.Team{model.TeamGNC},
		AvailableSlots: GenerateSlots(start, end),
	}
	if res := s.AutoSchedule(context.Background(), req); !res.Success {
		t.Fatalf("expected success, errors: %v", res.Errors)
	}

	req.AutoCreateInterview = true
	res := s.AutoSchedule(context.Background(), req)
	if res.CreatedInterview == nil {
		t.Fatalf("commit request must recompute and book, errors: %v", res.Errors)
	}
	if _, ok := cache.results[applicantID]; ok {
		t.Fatal("commit must invalidate the applicant's cached result")
	}
}

func TestCachedSchedulerToleratesCacheFailure(t *testing.T) {
	store := newFakeStore()
	applicantID := seedApplicant(store)
	store.interviewers = []model.Interviewer{
		{ID: uuid.New(), Name: "X", TargetTeams: []model.Team{model.TeamGNC}},
	}
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	s := cachedSchedulerForTest(store, cache)

	start, end := testWeek()
	res := s.AutoSchedule(context.Background(), model.SchedulingRequest{
		IntervieweeID:  applicantID,
		PreferredTeams: []model.Team{model.TeamGNC},
		AvailableSlots: GenerateSlots(start, end),
	})
	if !res.Success {
		t.Fatalf("cache failure must never fail the call, errors: %v", res.Errors)
	}
}
