package scheduler

import (
	"time"

	"github.com/tamu-thinktank/website-sub000/pkg/model"
)

// GenerateSlots produces the shared slot index space for a date range: one
// slot per calendar day in [start, end], per hour in business hours, per
// quarter hour, ordered by day then hour then minute. Every availability
// array in this package is aligned to the sequence returned here, so index i
// in one unambiguously maps to index i in the other. The grid is derived
// fresh on every call.
func GenerateSlots(start, end time.Time) []model.TimeSlot {
	loc := start.Location()
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)

	slotsPerDay := (model.BusinessHoursEnd - model.BusinessHoursStart) * (60 / model.SlotMinutes)
	days := int(last.Sub(day).Hours()/24) + 1
	if days < 1 {
		return nil
	}

	slots := make([]model.TimeSlot, 0, days*slotsPerDay)
	for ; !day.After(last); day = day.AddDate(0, 0, 1) {
		for hour := model.BusinessHoursStart; hour < model.BusinessHoursEnd; hour++ {
			for minute := 0; minute < 60; minute += model.SlotMinutes {
				instant := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
				slots = append(slots, model.TimeSlot{
					Date:      day,
					Hour:      hour,
					Minute:    minute,
					Timestamp: instant.UnixMilli(),
				})
			}
		}
	}
	return slots
}
