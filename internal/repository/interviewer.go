package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
)

// ListInterviewers returns the whole interviewer pool with ranked target
// teams, ordered by name so repeated scheduling passes see a stable order.
func (r *Repository) ListInterviewers(ctx context.Context) ([]model.Interviewer, error) {
	const q = `
SELECT id, name, email, target_teams, created_at, updated_at
FROM interviewers
ORDER BY name, id
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query interviewers: %w", err)
	}
	defer rows.Close()

	out := make([]model.Interviewer, 0, 16)
	for rows.Next() {
		var (
			iv    model.Interviewer
			teams []string
		)
		if err := rows.Scan(&iv.ID, &iv.Name, &iv.Email, &teams, &iv.CreatedAt, &iv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan interviewer row: %w", err)
		}
		iv.TargetTeams = toTeams(teams)
		out = append(out, iv)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// ListBusyTimes returns every declared busy interval for the interviewer set
// overlapping [start, end].
func (r *Repository) ListBusyTimes(ctx context.Context, interviewerIDs []uuid.UUID, start, end time.Time) ([]model.BusyTime, error) {
	const q = `
SELECT id, interviewer_id, start_time, end_time, reason
FROM busy_times
WHERE interviewer_id = ANY($1) AND start_time < $3 AND end_time > $2
ORDER BY start_time
`
	rows, err := r.db.Query(ctx, q, interviewerIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("query busy times: %w", err)
	}
	defer rows.Close()

	out := make([]model.BusyTime, 0, 32)
	for rows.Next() {
		var bt model.BusyTime
		if err := rows.Scan(&bt.ID, &bt.InterviewerID, &bt.StartTime, &bt.EndTime, &bt.Reason); err != nil {
			return nil, fmt.Errorf("scan busy time row: %w", err)
		}
		out = append(out, bt)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
