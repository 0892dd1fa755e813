package model

import (
	"time"

	"github.com/google/uuid"
)

// Interviewer is a pool member available to conduct interviews. TargetTeams
// ordering is significant: index 0 is the interviewer's top priority team.
// Interviewers are created and updated outside the scheduler, which only
// reads them.
type Interviewer struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       *string   `json:"email" db:"email"`
	TargetTeams []Team    `json:"target_teams" db:"target_teams"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// BusyTime is an interviewer-declared unavailability window, independent of
// any interview booking. Read-only to the scheduler.
type BusyTime struct {
	ID            uuid.UUID `json:"id" db:"id"`
	InterviewerID uuid.UUID `json:"interviewer_id" db:"interviewer_id"`
	StartTime     time.Time `json:"start_time" db:"start_time"`
	EndTime       time.Time `json:"end_time" db:"end_time"`
	Reason        *string   `json:"reason" db:"reason"`
}
