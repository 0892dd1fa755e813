package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
)

// ListInterviews returns interviews overlapping the filter's date range,
// optionally narrowed to an interviewer set and/or one applicant.
func (r *Repository) ListInterviews(ctx context.Context, f model.InterviewFilter) ([]model.Interview, error) {
	q := `
SELECT id, applicant_id, interviewer_id, start_time, end_time, location, team_id, is_placeholder, created_at
FROM interviews
WHERE start_time < $1 AND end_time > $2
`
	args := []interface{}{f.End, f.Start}
	if len(f.InterviewerIDs) > 0 {
		args = append(args, f.InterviewerIDs)
		q += fmt.Sprintf(" AND interviewer_id = ANY($%d)", len(args))
	}
	if f.ApplicantID != nil {
		args = append(args, *f.ApplicantID)
		q += fmt.Sprintf(" AND applicant_id = $%d", len(args))
	}
	q += " ORDER BY start_time"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}
	defer rows.Close()

	out := make([]model.Interview, 0, 32)
	for rows.Next() {
		var iv model.Interview
		if err := rows.Scan(&iv.ID, &iv.ApplicantID, &iv.InterviewerID, &iv.StartTime, &iv.EndTime,
			&iv.Location, &iv.TeamID, &iv.IsPlaceholder, &iv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan interview row: %w", err)
		}
		out = append(out, iv)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// CountInterviewsPerDay buckets each interviewer's interviews in [start, end]
// by calendar day, keyed "2006-01-02". Interviewers and days with zero
// interviews are simply absent.
func (r *Repository) CountInterviewsPerDay(ctx context.Context, interviewerIDs []uuid.UUID, start, end time.Time) (map[uuid.UUID]map[string]int, error) {
	const q = `
SELECT interviewer_id, date_trunc('day', start_time)::date AS day, COUNT(*)
FROM interviews
WHERE interviewer_id = ANY($1) AND start_time < $3 AND end_time > $2
GROUP BY interviewer_id, day
`
	rows, err := r.db.Query(ctx, q, interviewerIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("query interview day counts: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]map[string]int, len(interviewerIDs))
	for rows.Next() {
		var (
			id    uuid.UUID
			day   time.Time
			count int
		)
		if err := rows.Scan(&id, &day, &count); err != nil {
			return nil, fmt.Errorf("scan day count row: %w", err)
		}
		if out[id] == nil {
			out[id] = make(map[string]int, 8)
		}
		out[id][day.Format("2006-01-02")] = count
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// CreateInterview inserts the booking inside the open transaction. The
// interviews table carries overlap exclusion constraints for both the
// interviewer and the applicant; a violation means the window was taken
// between slot selection and commit.
func (t *txRepository) CreateInterview(ctx context.Context, iv model.Interview) (*model.Interview, error) {
	const q = `
INSERT INTO interviews (id, applicant_id, interviewer_id, start_time, end_time, location, team_id, is_placeholder, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
RETURNING created_at
`
	iv.ID = uuid.New()
	row := t.tx.QueryRow(ctx, q,
		iv.ID, iv.ApplicantID, iv.InterviewerID, iv.StartTime, iv.EndTime, iv.Location, iv.TeamID, iv.IsPlaceholder,
	)
	if err := row.Scan(&iv.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		// 23505 unique_violation, 23P01 exclusion_violation
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return nil, fmt.Errorf("time slot no longer available: %w", err)
		}
		return nil, fmt.Errorf("insert interview: %w", err)
	}
	return &iv, nil
}
