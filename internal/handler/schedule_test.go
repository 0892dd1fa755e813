package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
	"go.uber.org/zap"
)

type stubScheduler struct {
	lastReq model.SchedulingRequest
	result  *model.SchedulingResult
}

func (s *stubScheduler) AutoSchedule(_ context.Context, req model.SchedulingRequest) *model.SchedulingResult {
	s.lastReq = req
	return s.result
}

func newTestRouter(s *stubScheduler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	app := &Application{Logger: zap.NewNop(), Scheduler: s}
	r := gin.New()
	r.POST("/api/v1/auto-schedule", app.AutoSchedule)
	return r
}

func TestAutoScheduleHandler(t *testing.T) {
	slot := model.NewTimeSlot(time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC))
	goodBody := map[string]interface{}{
		"interviewee_id":  uuid.New().String(),
		"preferred_teams": []string{"GNC", "EPS"},
		"available_slots": []model.TimeSlot{slot},
	}
	goodJSON, _ := json.Marshal(goodBody)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid request", string(goodJSON), http.StatusOK},
		{"malformed json", "{not json", http.StatusBadRequest},
		{"missing interviewee", `{"available_slots":[]}`, http.StatusBadRequest},
		{
			"unknown team",
			`{"interviewee_id":"` + uuid.New().String() + `","preferred_teams":["WARP"],"available_slots":[{"date":"2026-03-02T00:00:00Z","hour":9,"minute":0,"timestamp":0}]}`,
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubScheduler{result: &model.SchedulingResult{
				Success: true,
				Matches: []model.InterviewerMatch{},
				Errors:  []string{},
			}}
			r := newTestRouter(stub)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auto-schedule", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
		})
	}
}

func TestAutoScheduleHandlerPassesRequestThrough(t *testing.T) {
	stub := &stubScheduler{result: &model.SchedulingResult{
		Success: true,
		Matches: []model.InterviewerMatch{},
		Errors:  []string{},
	}}
	r := newTestRouter(stub)

	id := uuid.New()
	slot := model.NewTimeSlot(time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC))
	body, _ := json.Marshal(model.SchedulingRequest{
		IntervieweeID:       id,
		PreferredTeams:      []model.Team{model.TeamGNC},
		AvailableSlots:      []model.TimeSlot{slot},
		AutoCreateInterview: true,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auto-schedule", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if stub.lastReq.IntervieweeID != id || !stub.lastReq.AutoCreateInterview {
		t.Fatalf("request not passed through: %+v", stub.lastReq)
	}

	var envelope struct {
		Success bool                    `json:"success"`
		Data    *model.SchedulingResult `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatal(err)
	}
	if !envelope.Success || envelope.Data == nil || !envelope.Data.Success {
		t.Fatalf("unexpected envelope: %s", rr.Body.String())
	}
}
