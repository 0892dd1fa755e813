package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusPending      ApplicationStatus = "PENDING"
	StatusInterviewing ApplicationStatus = "INTERVIEWING"
	StatusAccepted     ApplicationStatus = "ACCEPTED"
	StatusRejected     ApplicationStatus = "REJECTED"
)

// Application is the applicant's submission record. The scheduler reads it to
// resolve the interviewee and, on commit, moves it into the interview stage.
type Application struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	FullName       string            `json:"full_name" db:"full_name"`
	Email          string            `json:"email" db:"email"`
	Status         ApplicationStatus `json:"status" db:"status"`
	InterviewStage bool              `json:"interview_stage" db:"interview_stage"`
	PreferredTeams []Team            `json:"preferred_teams" db:"preferred_teams"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
}
