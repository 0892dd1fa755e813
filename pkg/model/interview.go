package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaceholderLocation is stamped onto auto-scheduled interviews until an
// organizer assigns a room.
const PlaceholderLocation = "TBD"

// Interview is the durable output of a successful auto-schedule or a manual
// booking. StartTime and EndTime differ by exactly 45 minutes for real
// interviews; placeholder rows block time without representing a booking.
type Interview struct {
	ID            uuid.UUID `json:"id" db:"id"`
	ApplicantID   uuid.UUID `json:"applicant_id" db:"applicant_id"`
	InterviewerID uuid.UUID `json:"interviewer_id" db:"interviewer_id"`
	StartTime     time.Time `json:"start_time" db:"start_time"`
	EndTime       time.Time `json:"end_time" db:"end_time"`
	Location      string    `json:"location" db:"location"`
	TeamID        *Team     `json:"team_id" db:"team_id"`
	IsPlaceholder bool      `json:"is_placeholder" db:"is_placeholder"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// InterviewFilter narrows interview reads; zero-value fields are ignored
// except the date range, which is always applied.
type InterviewFilter struct {
	InterviewerIDs []uuid.UUID
	ApplicantID    *uuid.UUID
	Start          time.Time
	End            time.Time
}

// Overlaps reports whether the interview's half-open [StartTime, EndTime)
// window intersects [start, end).
func (iv Interview) Overlaps(start, end time.Time) bool {
	return iv.StartTime.Before(end) && iv.EndTime.After(start)
}
