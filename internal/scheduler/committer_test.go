package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// The applicant's name travels through the commit path and lands in the
// scheduled-interview log entry.
func TestCommitLogsApplicantName(t *testing.T) {
	store := newFakeStore()
	applicantID := seedApplicant(store)
	interviewerID := uuid.New()

	core, logs := observer.New(zap.InfoLevel)
	committer := NewCommitter(store, newFakeCache(), zap.New(core))

	start, _ := testWeek()
	slot := model.NewTimeSlot(start.Add(9 * time.Hour))
	created, err := committer.Commit(context.Background(), applicantID, interviewerID, slot, "Pat Doe")
	if err != nil {
		t.Fatal(err)
	}
	if created == nil {
		t.Fatal("expected a created interview")
	}

	entries := logs.FilterMessage("interview scheduled").All()
	if len(entries) != 1 {
		t.Fatalf("expected one scheduled log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["applicant"] != "Pat Doe" {
		t.Fatalf("applicant field = %v, want Pat Doe", fields["applicant"])
	}
}
