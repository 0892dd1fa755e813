package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
	"github.com/tamu-thinktank/website-sub000/pkg/response"
)

// AutoSchedule handles POST /api/v1/auto-schedule. Dates cross the wire as
// ISO-8601 instants; the scheduler itself works on absolute time only.
func (app *Application) AutoSchedule(c *gin.Context) {
	var req model.SchedulingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(req.AvailableSlots) == 0 {
		response.BadRequest(c, "available_slots must not be empty")
		return
	}
	for _, team := range req.PreferredTeams {
		if !team.Valid() {
			response.BadRequest(c, fmt.Sprintf("unknown team: %q", team))
			return
		}
	}

	result := app.Scheduler.AutoSchedule(c.Request.Context(), req)
	response.OK(c, result)
}
