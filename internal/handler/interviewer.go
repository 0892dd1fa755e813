package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
	"github.com/tamu-thinktank/website-sub000/pkg/response"
)

// ListInterviewers handles GET /api/v1/interviewers.
func (app *Application) ListInterviewers(c *gin.Context) {
	interviewers, err := app.Store.ListInterviewers(c.Request.Context())
	if err != nil {
		app.Logger.Sugar().Errorw("failed to list interviewers", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, interviewers)
}

// ListApplicantInterviews handles GET /api/v1/applicants/:id/interviews with
// optional ?from and ?to RFC 3339 bounds; the default window is the coming
// 30 days.
func (app *Application) ListApplicantInterviews(c *gin.Context) {
	applicantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid applicant id")
		return
	}

	now := time.Now()
	from, to := now, now.AddDate(0, 0, 30)
	if raw := c.Query("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			response.BadRequest(c, "invalid from: expected RFC 3339")
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			response.BadRequest(c, "invalid to: expected RFC 3339")
			return
		}
	}

	record, err := app.Store.FindApplicationByID(c.Request.Context(), applicantID)
	if err != nil {
		app.Logger.Sugar().Errorw("application lookup failed", "applicant_id", applicantID, "err", err)
		response.InternalError(c, "")
		return
	}
	if record == nil {
		response.NotFound(c, "applicant not found")
		return
	}

	interviews, err := app.Store.ListInterviews(c.Request.Context(), model.InterviewFilter{
		ApplicantID: &applicantID,
		Start:       from,
		End:         to,
	})
	if err != nil {
		app.Logger.Sugar().Errorw("failed to list interviews", "applicant_id", applicantID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, interviews)
}
