package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
)

// FindApplicationByID returns the application or (nil, nil) when none exists.
func (r *Repository) FindApplicationByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	const q = `
SELECT id, full_name, email, status, interview_stage, preferred_teams, created_at, updated_at
FROM applications
WHERE id = $1
`
	var (
		a     model.Application
		teams []string
	)
	row := r.db.QueryRow(ctx, q, id)
	if err := row.Scan(&a.ID, &a.FullName, &a.Email, &a.Status, &a.InterviewStage, &teams, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}
	a.PreferredTeams = toTeams(teams)
	return &a, nil
}

// UpdateApplicationStatus moves the application to the given status and, for
// interviewing, flags it as having entered the interview stage.
func (t *txRepository) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) error {
	const q = `
UPDATE applications
SET status = $1,
    interview_stage = interview_stage OR $2,
    updated_at = now()
WHERE id = $3
`
	tag, err := t.tx.Exec(ctx, q, status, status == model.StatusInterviewing, id)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application not found")
	}
	return nil
}

func toTeams(raw []string) []model.Team {
	out := make([]model.Team, len(raw))
	for i, s := range raw {
		out[i] = model.Team(s)
	}
	return out
}
