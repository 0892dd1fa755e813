package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
)

// MaxInterviewsPerDay is the daily cap: once an interviewer has this many
// interviews on a calendar day, every remaining slot that day is unavailable.
const MaxInterviewsPerDay = 4

// AvailabilityCompiler folds busy times, existing interviews and the daily
// cap into dense per-interviewer availability rows aligned to the slot grid.
type AvailabilityCompiler struct {
	store Store
}

func NewAvailabilityCompiler(store Store) *AvailabilityCompiler {
	return &AvailabilityCompiler{store: store}
}

// Compile returns one boolean row per interviewer plus the slot grid the rows
// are indexed against. Rows are fully materialized: the consecutive-run scan
// downstream needs random access, so there is no slot-level laziness. The
// three underlying reads are independent and issued in parallel; the first
// error wins and propagates to the caller.
func (c *AvailabilityCompiler) Compile(ctx context.Context, interviewerIDs []uuid.UUID, start, end time.Time) (map[uuid.UUID][]bool, []model.TimeSlot, error) {
	allSlots := GenerateSlots(start, end)

	var (
		wg         sync.WaitGroup
		busyTimes  []model.BusyTime
		interviews []model.Interview
		dayCounts  map[uuid.UUID]map[string]int
		errs       [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		busyTimes, errs[0] = c.store.ListBusyTimes(ctx, interviewerIDs, start, end)
	}()
	go func() {
		defer wg.Done()
		interviews, errs[1] = c.store.ListInterviews(ctx, model.InterviewFilter{
			InterviewerIDs: interviewerIDs,
			Start:          start,
			End:            end,
		})
	}()
	go func() {
		defer wg.Done()
		dayCounts, errs[2] = c.store.CountInterviewsPerDay(ctx, interviewerIDs, start, end)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, fmt.Errorf("compile availability: %w", err)
		}
	}

	availability := make(map[uuid.UUID][]bool, len(interviewerIDs))
	for _, id := range interviewerIDs {
		row := make([]bool, len(allSlots))
		for i, slot := range allSlots {
			row[i] = slot.Hour >= model.BusinessHoursStart && slot.Hour < model.BusinessHoursEnd
		}
		availability[id] = row
	}

	for _, bt := range busyTimes {
		markBlocked(availability[bt.InterviewerID], allSlots, bt.StartTime, bt.EndTime)
	}
	for _, iv := range interviews {
		markBlocked(availability[iv.InterviewerID], allSlots, iv.StartTime, iv.EndTime)
	}

	for id, row := range availability {
		counts := dayCounts[id]
		if len(counts) == 0 {
			continue
		}
		for i, slot := range allSlots {
			if counts[slot.DayKey()] >= MaxInterviewsPerDay {
				row[i] = false
			}
		}
	}

	return availability, allSlots, nil
}

// markBlocked clears every slot whose 15-minute window overlaps the half-open
// record window [start, end).
func markBlocked(row []bool, allSlots []model.TimeSlot, start, end time.Time) {
	if row == nil {
		return
	}
	startMs, endMs := start.UnixMilli(), end.UnixMilli()
	slotLen := int64(model.SlotMinutes) * 60 * 1000
	for i, slot := range allSlots {
		if startMs < slot.Timestamp+slotLen && endMs > slot.Timestamp {
			row[i] = false
		}
	}
}
