package worker

import (
	"context"
	"log/slog"
	"time"

	"workspace-booking/internal/infra/mq"
	"workspace-booking/internal/pkg/clock"
	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/usecase/shared"
)

const (
	baseRetryDelay = 30 * time.Second
	maxRetryDelay  = time.Hour
)

type Publisher interface {
	Publish(ctx context.Context, msg mq.Message) error
}

// NotificationRelay moves queued outbox jobs to the broker. Delivery is at
// least once: a job published right before a failed commit is sent again.
type NotificationRelay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	cfg       config.RelayConfig
	logger    *slog.Logger
}

func NewNotificationRelay(
	uow shared.UnitOfWork,
	publisher Publisher,
	clk clock.Clock,
	cfg config.RelayConfig,
	logger *slog.Logger,
) *NotificationRelay {
	return &NotificationRelay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run polls every cfg.Interval until ctx is cancelled.
func (r *NotificationRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		if sent, err := r.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			r.logger.Error("Notification relay batch failed", slog.Any("error", err))
		} else if sent > 0 {
			r.logger.Debug("Notification relay batch done", slog.Int("sent", sent))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce relays one batch and returns how many jobs reached the broker.
func (r *NotificationRelay) RunOnce(ctx context.Context) (int, error) {
	var sent int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			pubErr := r.publisher.Publish(ctx, mq.Message{
				ID:      job.ID.String(),
				Topic:   job.Topic,
				Payload: job.Payload,
			})
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
					return err
				}
				sent++
				continue
			}

			attempts := job.Attempts + 1
			status := shared.NotificationStatusQueued
			if attempts >= r.cfg.MaxAttempts {
				status = shared.NotificationStatusFailed
			}
			r.logger.Warn("Notification publish failed",
				slog.String("job_id", job.ID.String()),
				slog.String("topic", job.Topic),
				slog.Int("attempts", int(attempts)),
				slog.String("status", status),
				slog.Any("error", pubErr),
			)

			err := tx.Notifications().Reschedule(ctx, tx.DB(), job.ID, status, attempts, pubErr.Error(), now.Add(retryDelay(attempts)))
			if err != nil {
				return err
			}
		}
		return nil
	})
	return sent, err
}

// retryDelay doubles from baseRetryDelay per attempt, capped at maxRetryDelay.
func retryDelay(attempts int32) time.Duration {
	d := baseRetryDelay
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return d
}
