package model

import (
	"testing"
	"time"
)

func TestNewTimeSlotTruncates(t *testing.T) {
	slot := NewTimeSlot(time.Date(2026, time.March, 2, 9, 23, 11, 0, time.UTC))
	if slot.Hour != 9 || slot.Minute != 15 {
		t.Fatalf("slot at %02d:%02d, want 09:15", slot.Hour, slot.Minute)
	}
	if !slot.Start().Equal(time.Date(2026, time.March, 2, 9, 15, 0, 0, time.UTC)) {
		t.Fatalf("Start() = %v", slot.Start())
	}
	if got := slot.End().Sub(slot.Start()); got != SlotMinutes*time.Minute {
		t.Fatalf("slot width = %v", got)
	}
}

func TestNormalizedRestoresTimestamp(t *testing.T) {
	slot := TimeSlot{
		Date:   time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		Hour:   14,
		Minute: 30,
	}
	n := slot.Normalized()
	want := time.Date(2026, time.March, 2, 14, 30, 0, 0, time.UTC).UnixMilli()
	if n.Timestamp != want {
		t.Fatalf("Timestamp = %d, want %d", n.Timestamp, want)
	}
	if n.DayKey() != "2026-03-02" {
		t.Fatalf("DayKey = %s", n.DayKey())
	}
}

func TestInterviewOverlaps(t *testing.T) {
	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	iv := Interview{StartTime: base, EndTime: base.Add(InterviewDuration)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical window", base, base.Add(InterviewDuration), true},
		{"partial overlap", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"touching end is free", base.Add(InterviewDuration), base.Add(2 * InterviewDuration), false},
		{"touching start is free", base.Add(-InterviewDuration), base, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := iv.Overlaps(tt.start, tt.end); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}
