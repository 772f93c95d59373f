package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueShipmentJob periodically sweeps shipments whose estimated delivery
// date has passed and flags them as Delayed.
type OverdueShipmentJob struct {
	handler commands.MarkOverdueShipmentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueShipmentJob creates a new job for flagging overdue shipments.
// Uses MarkOverdueShipmentsCommandHandler to run the sweep every minute.
func NewOverdueShipmentJob(handler commands.MarkOverdueShipmentsCommandHandler, logger *slog.Logger) *OverdueShipmentJob {
	return &OverdueShipmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_shipment_job"),
	}
}

// Start begins the overdue shipment sweep to run every minute.
func (j *OverdueShipmentJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewMarkOverdueShipmentsCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build overdue shipment command", "error", err)
			return
		}

		flagged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue shipment sweep failed", "error", err)
			return
		}

		if flagged > 0 {
			j.logger.InfoContext(ctx, "Flagged overdue shipments", "count", flagged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipment job started (running every minute)")
	return nil
}

// Stop stops the overdue shipment job.
func (j *OverdueShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue shipment job stopped")
}
