package scheduler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
	"go.uber.org/zap"
)

// Committer persists a selected match as a concrete interview. The status
// update and the interview insert happen in one transaction: a status flip
// without a booked row (or the reverse) is an invariant violation, so any
// failure rolls both back.
type Committer struct {
	store Store
	cache Cache
	log   *zap.SugaredLogger
}

func NewCommitter(store Store, cache Cache, log *zap.Logger) *Committer {
	return &Committer{store: store, cache: cache, log: log.Sugar()}
}

// Commit books the slot for the applicant with the matched interviewer. The
// transaction does not re-check availability first; a concurrent booking of
// the same window surfaces as a constraint violation here, which the caller
// reports as a scheduling error rather than retrying with a different slot.
// Cache invalidation runs after a successful commit and is best-effort only.
func (c *Committer) Commit(ctx context.Context, applicantID uuid.UUID, interviewerID uuid.UUID, slot model.TimeSlot, applicantName string) (*model.Interview, error) {
	start := slot.Start()
	var created *model.Interview

	err := c.store.WithTx(ctx, func(tx TxStore) error {
		if err := tx.UpdateApplicationStatus(ctx, applicantID, model.StatusInterviewing); err != nil {
			return fmt.Errorf("update application status: %w", err)
		}
		iv, err := tx.CreateInterview(ctx, model.Interview{
			ApplicantID:   applicantID,
			InterviewerID: interviewerID,
			StartTime:     start,
			EndTime:       start.Add(model.InterviewDuration),
			Location:      model.PlaceholderLocation,
			IsPlaceholder: false,
		})
		if err != nil {
			return fmt.Errorf("create interview: %w", err)
		}
		created = iv
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.log.Infow("interview scheduled",
		"applicant_id", applicantID,
		"applicant", applicantName,
		"interviewer_id", interviewerID,
		"start", created.StartTime,
	)

	if err := c.cache.Invalidate(ctx, applicantID); err != nil {
		c.log.Warnw("cache invalidation failed", "applicant_id", applicantID, "err", err)
	}
	return created, nil
}
