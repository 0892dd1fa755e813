package model

import "time"

// SlotMinutes is the discretization unit for all availability math.
const SlotMinutes = 15

// InterviewSlots is the number of consecutive slots a real interview covers.
const InterviewSlots = 3

// InterviewDuration is the fixed length of a scheduled interview.
const InterviewDuration = InterviewSlots * SlotMinutes * time.Minute

// Business hours: interviews may start from 8:00 up to and including 21:45.
const (
	BusinessHoursStart = 8
	BusinessHoursEnd   = 22
)

// TimeSlot is an immutable 15-minute discretized instant. Timestamp is the
// millisecond instant of Date at Hour:Minute and doubles as the cache key for
// O(1) membership tests. Slots are regenerated per request, never persisted.
type TimeSlot struct {
	Date      time.Time `json:"date"`
	Hour      int       `json:"hour"`
	Minute    int       `json:"minute"`
	Timestamp int64     `json:"timestamp"`
}

// NewTimeSlot builds the slot covering t, truncated to its 15-minute boundary.
func NewTimeSlot(t time.Time) TimeSlot {
	t = t.Truncate(time.Duration(SlotMinutes) * time.Minute)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return TimeSlot{
		Date:      day,
		Hour:      t.Hour(),
		Minute:    t.Minute(),
		Timestamp: t.UnixMilli(),
	}
}

// Start returns the slot's absolute start instant.
func (s TimeSlot) Start() time.Time {
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), s.Hour, s.Minute, 0, 0, s.Date.Location())
}

// End returns the exclusive end of the slot's 15-minute window.
func (s TimeSlot) End() time.Time {
	return s.Start().Add(time.Duration(SlotMinutes) * time.Minute)
}

// Normalized returns a copy with Timestamp recomputed from Date/Hour/Minute,
// restoring the Timestamp invariant on slots that crossed a JSON boundary.
func (s TimeSlot) Normalized() TimeSlot {
	day := time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, s.Date.Location())
	s.Date = day
	s.Timestamp = day.Add(time.Duration(s.Hour)*time.Hour + time.Duration(s.Minute)*time.Minute).UnixMilli()
	return s
}

// DayKey is the calendar-day bucket used for the per-day interview cap.
func (s TimeSlot) DayKey() string {
	return s.Date.Format("2006-01-02")
}
