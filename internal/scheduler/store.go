package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
)

// Store is the persistence boundary the scheduler reads through and commits
// against. It is injected explicitly; the engine never reaches for ambient
// clients, which is also what makes the tests run against an in-memory fake.
type Store interface {
	// FindApplicationByID returns (nil, nil) when no application exists.
	FindApplicationByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	ListInterviewers(ctx context.Context) ([]model.Interviewer, error)
	ListBusyTimes(ctx context.Context, interviewerIDs []uuid.UUID, start, end time.Time) ([]model.BusyTime, error)
	ListInterviews(ctx context.Context, f model.InterviewFilter) ([]model.Interview, error)
	// CountInterviewsPerDay returns interviewerID -> day key ("2006-01-02")
	// -> number of interviews starting that day within [start, end].
	CountInterviewsPerDay(ctx context.Context, interviewerIDs []uuid.UUID, start, end time.Time) (map[uuid.UUID]map[string]int, error)
	// WithTx runs fn atomically; any error rolls the whole unit back.
	WithTx(ctx context.Context, fn func(TxStore) error) error
}

// TxStore is the write surface available inside a Store transaction.
type TxStore interface {
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) error
	CreateInterview(ctx context.Context, iv model.Interview) (*model.Interview, error)
}

// Cache is the best-effort result cache. Callers must treat every error from
// it as non-fatal: log and move on.
type Cache interface {
	GetResult(ctx context.Context, applicantID uuid.UUID) (*model.SchedulingResult, error)
	SetResult(ctx context.Context, applicantID uuid.UUID, res *model.SchedulingResult, ttl time.Duration) error
	Invalidate(ctx context.Context, applicantID uuid.UUID) error
}
