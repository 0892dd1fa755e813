package scheduler

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
	"go.uber.org/zap"
)

const (
	errIntervieweeNotFound = "Interviewee not found"
	errNoInterviewers      = "No interviewers available"
	errInternal            = "Internal error while computing availability"
)

// Scheduler matches an applicant to interviewers by team-preference affinity,
// finds each one a conflict-free 45-minute block, and optionally commits the
// best match. All collaborators are injected; the compute path itself is pure
// over the data fetched at the start of a call.
type Scheduler struct {
	store     Store
	compiler  *AvailabilityCompiler
	committer *Committer
	scores    ScoreTable
	log       *zap.SugaredLogger
}

func New(store Store, cache Cache, log *zap.Logger) *Scheduler {
	return &Scheduler{
		store:     store,
		compiler:  NewAvailabilityCompiler(store),
		committer: NewCommitter(store, cache, log),
		scores:    DefaultScores,
		log:       log.Sugar(),
	}
}

func failure(msgs ...string) *model.SchedulingResult {
	return &model.SchedulingResult{
		Success: false,
		Matches: []model.InterviewerMatch{},
		Errors:  msgs,
	}
}

// AutoSchedule runs one scheduling pass for the request. Only an unknown
// interviewee or an empty interviewer pool fail the whole call; every other
// problem degrades into the Errors list so the caller still gets the best
// answer that could be computed. Finding a match and booking it are reported
// separately: a commit failure leaves Success true when matches exist.
func (s *Scheduler) AutoSchedule(ctx context.Context, req model.SchedulingRequest) *model.SchedulingResult {
	app, err := s.store.FindApplicationByID(ctx, req.IntervieweeID)
	if err != nil {
		s.log.Errorw("application lookup failed", "interviewee_id", req.IntervieweeID, "err", err)
		return failure(errInternal)
	}
	if app == nil {
		return failure(errIntervieweeNotFound)
	}

	if len(req.AvailableSlots) == 0 {
		return failure("No availability provided")
	}
	n := len(req.AvailableSlots)
	if n > model.MaxCandidateSlots {
		n = model.MaxCandidateSlots
	}
	// Copied so a call never mutates its request.
	candidateSlots := make([]model.TimeSlot, n)
	for i, slot := range req.AvailableSlots[:n] {
		candidateSlots[i] = slot.Normalized()
	}

	interviewers, err := s.store.ListInterviewers(ctx)
	if err != nil {
		s.log.Errorw("interviewer list failed", "err", err)
		return failure(errInternal)
	}
	if len(interviewers) == 0 {
		return failure(errNoInterviewers)
	}

	start, end := slotDateRange(candidateSlots)

	interviewerIDs := make([]uuid.UUID, len(interviewers))
	for i, iv := range interviewers {
		interviewerIDs[i] = iv.ID
	}

	availability, allSlots, err := s.compiler.Compile(ctx, interviewerIDs, start, end)
	if err != nil {
		s.log.Errorw("availability compile failed", "err", err)
		return failure(errInternal)
	}

	ownID := app.ID
	ownInterviews, err := s.store.ListInterviews(ctx, model.InterviewFilter{
		ApplicantID: &ownID,
		Start:       start,
		End:         end,
	})
	if err != nil {
		s.log.Errorw("candidate interview fetch failed", "interviewee_id", ownID, "err", err)
		return failure(errInternal)
	}

	var exact, fallback []model.InterviewerMatch
	for _, iv := range interviewers {
		match := model.InterviewerMatch{
			InterviewerID:  iv.ID,
			Name:           iv.Name,
			Email:          iv.Email,
			TargetTeams:    iv.TargetTeams,
			MatchScore:     Score(s.scores, iv.TargetTeams, req.PreferredTeams),
			AvailableSlots: []model.TimeSlot{},
		}

		idx := FindConsecutiveAvailable(availability[iv.ID], allSlots, candidateSlots)
		if idx >= 0 {
			slot := allSlots[idx]
			blockStart := slot.Start()
			blockEnd := blockStart.Add(model.InterviewDuration)
			if conflictsWithOwn(ownInterviews, blockStart, blockEnd) {
				match.Conflicts = append(match.Conflicts, "candidate already has an interview at this time")
			} else {
				match.AvailableSlots = []model.TimeSlot{slot}
			}
		}

		switch {
		case match.MatchScore > 0:
			exact = append(exact, match)
		case len(match.AvailableSlots) > 0:
			fallback = append(fallback, match)
		}
	}

	ranked := rankMatches(exact, fallback)
	if len(ranked) > model.MaxRankedMatches {
		ranked = ranked[:model.MaxRankedMatches]
	}

	result := &model.SchedulingResult{
		Success: len(ranked) > 0,
		Matches: ranked,
		Errors:  []string{},
	}
	for _, m := range ranked {
		if len(m.AvailableSlots) > 0 {
			result.SuggestedSlot = &model.SuggestedSlot{
				InterviewerID:   m.InterviewerID,
				InterviewerName: m.Name,
				Slot:            m.AvailableSlots[0],
			}
			break
		}
	}

	if req.AutoCreateInterview && result.SuggestedSlot != nil {
		created, err := s.committer.Commit(ctx, app.ID, result.SuggestedSlot.InterviewerID, result.SuggestedSlot.Slot, app.FullName)
		if err != nil {
			s.log.Errorw("interview commit failed", "interviewee_id", app.ID, "err", err)
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to create interview: %v", err))
		} else {
			result.CreatedInterview = created
		}
	}

	return result
}

// slotDateRange spans the min and max candidate slot dates, end inclusive to
// end of day.
func slotDateRange(slots []model.TimeSlot) (time.Time, time.Time) {
	minDate, maxDate := slots[0].Date, slots[0].Date
	for _, s := range slots[1:] {
		if s.Date.Before(minDate) {
			minDate = s.Date
		}
		if s.Date.After(maxDate) {
			maxDate = s.Date
		}
	}
	return minDate, maxDate.AddDate(0, 0, 1).Add(-time.Millisecond)
}

func conflictsWithOwn(interviews []model.Interview, start, end time.Time) bool {
	for _, iv := range interviews {
		if iv.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// rankMatches orders exact matches by score, earliest slot breaking ties.
// Fallback matches are consulted only when no interviewer shares any team
// with the candidate: then earliest slot wins, more slots breaking ties.
func rankMatches(exact, fallback []model.InterviewerMatch) []model.InterviewerMatch {
	if len(exact) > 0 {
		slices.SortStableFunc(exact, func(a, b model.InterviewerMatch) int {
			if c := cmp.Compare(b.MatchScore, a.MatchScore); c != 0 {
				return c
			}
			return cmp.Compare(earliestSlot(a), earliestSlot(b))
		})
		return exact
	}
	slices.SortStableFunc(fallback, func(a, b model.InterviewerMatch) int {
		if c := cmp.Compare(earliestSlot(a), earliestSlot(b)); c != 0 {
			return c
		}
		return cmp.Compare(len(b.AvailableSlots), len(a.AvailableSlots))
	})
	return fallback
}

func earliestSlot(m model.InterviewerMatch) int64 {
	if len(m.AvailableSlots) == 0 {
		return math.MaxInt64
	}
	return m.AvailableSlots[0].Timestamp
}
