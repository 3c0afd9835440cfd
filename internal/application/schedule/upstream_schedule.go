package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-weather/internal/domain/usecase/health"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

const checkTimeout = 10 * time.Second

// UpstreamScheduler periodically checks the weather provider and feeds the health endpoint
type UpstreamScheduler struct {
	cron           *cron.Cron
	useCase        health.UseCase
	cronExpression string
}

func NewUpstreamScheduler(useCase health.UseCase, cronExpression string) *UpstreamScheduler {
	return &UpstreamScheduler{cron: cron.New(), useCase: useCase, cronExpression: cronExpression}
}

// InitUpstreamScheduleTasks schedules the check and runs it once right away.
// Nothing is scheduled in demo mode or when the expression is empty.
func (scheduler *UpstreamScheduler) InitUpstreamScheduleTasks(demoMode bool) error {
	if demoMode || scheduler.cronExpression == "" {
		log.Info(msg.GetMessage("health.cron.disabled"))
		return nil
	}

	if _, err := scheduler.cron.AddFunc(scheduler.cronExpression, scheduler.CheckUpstream); err != nil {
		log.Error(msg.GetMessage("health.cron.invalid", scheduler.cronExpression, err))
		return err
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("health.cron.start", scheduler.cronExpression))

	go scheduler.CheckUpstream()
	return nil
}

func (scheduler *UpstreamScheduler) CheckUpstream() {
	requestID := uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	if err := scheduler.useCase.CheckUpstream(ctx); err != nil {
		log.Debug("Upstream check finished with error", zap.String("request_id", requestID), zap.Error(err))
		return
	}
	log.Debug("Upstream check finished", zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (scheduler *UpstreamScheduler) Stop() {
	ctx := scheduler.cron.Stop()
	<-ctx.Done()
}
