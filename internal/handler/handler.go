package handler

import (
	"context"

	"github.com/tamu-thinktank/website-sub000/internal/scheduler"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
	"go.uber.org/zap"
)

// AutoScheduler is the scheduling entry point the HTTP layer calls; in
// production it is the cache-decorated engine.
type AutoScheduler interface {
	AutoSchedule(ctx context.Context, req model.SchedulingRequest) *model.SchedulingResult
}

type Application struct {
	Logger    *zap.Logger
	Scheduler AutoScheduler
	Store     scheduler.Store
}
