package jobs

import (
	"context"
	"log/slog"
	"time"

	"bookshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// deliveryLeadTime is how long an order stays in transit before the sweep
// marks its delivery as completed.
const deliveryLeadTime = 24 * time.Hour

// DeliveryCompletionJob manages the scheduled completion of deliveries.
// Runs every minute and completes the delivery of every placed order
// older than the lead time, simulating couriers finishing their rounds.
type DeliveryCompletionJob struct {
	handler commands.CompleteDueDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryCompletionJob creates a new job for completing due deliveries.
func NewDeliveryCompletionJob(
	handler commands.CompleteDueDeliveriesCommandHandler,
	logger *slog.Logger,
) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_completion_job"),
	}
}

// Start begins the delivery completion job to run every minute.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCompleteDueDeliveriesCommand(time.Now().Add(-deliveryLeadTime))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build delivery sweep command", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery completion job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started (running every minute)")
	return nil
}

// Stop stops the delivery completion job.
func (j *DeliveryCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}
