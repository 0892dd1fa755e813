package model

import "github.com/google/uuid"

// MaxCandidateSlots bounds the per-request availability payload; anything
// beyond it is truncated, not rejected.
const MaxCandidateSlots = 500

// MaxRankedMatches is how many ranked interviewers a result carries.
const MaxRankedMatches = 5

// SchedulingRequest is the transient input to an auto-schedule call. It is
// never persisted.
type SchedulingRequest struct {
	IntervieweeID       uuid.UUID  `json:"interviewee_id" binding:"required"`
	PreferredTeams      []Team     `json:"preferred_teams"`
	AvailableSlots      []TimeSlot `json:"available_slots" binding:"required"`
	AutoCreateInterview bool       `json:"auto_create_interview"`
}

// InterviewerMatch is the per-interviewer computation result for one request.
// AvailableSlots holds at most one slot: the start of the earliest free
// 45-minute block, or nothing if no block was found.
type InterviewerMatch struct {
	InterviewerID  uuid.UUID  `json:"interviewer_id"`
	Name           string     `json:"name"`
	Email          *string    `json:"email,omitempty"`
	TargetTeams    []Team     `json:"target_teams"`
	MatchScore     int        `json:"match_score"`
	AvailableSlots []TimeSlot `json:"available_slots"`
	Conflicts      []string   `json:"conflicts,omitempty"`
}

// SuggestedSlot names the interviewer and slot the scheduler recommends.
type SuggestedSlot struct {
	InterviewerID   uuid.UUID `json:"interviewer_id"`
	InterviewerName string    `json:"interviewer_name"`
	Slot            TimeSlot  `json:"slot"`
}

// SchedulingResult is the orchestrator's output. Success reflects whether any
// ranked match was found; commit failures are reported in Errors without
// flipping it.
type SchedulingResult struct {
	Success          bool               `json:"success"`
	Matches          []InterviewerMatch `json:"matches"`
	SuggestedSlot    *SuggestedSlot     `json:"suggested_slot,omitempty"`
	CreatedInterview *Interview         `json:"created_interview,omitempty"`
	Errors           []string           `json:"errors"`
}
