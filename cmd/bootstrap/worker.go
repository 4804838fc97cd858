package bootstrap

import (
	"context"
	"log/slog"

	"workspace-booking/internal/pkg/clock"
	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/usecase/shared"
	"workspace-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewNotificationRelay,
	),
	fx.Invoke(startRelay),
)

func NewNotificationRelay(
	uow shared.UnitOfWork,
	publisher worker.Publisher,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *worker.NotificationRelay {
	return worker.NewNotificationRelay(uow, publisher, clk, cfg.Relay, logger)
}

func startRelay(lc fx.Lifecycle, relay *worker.NotificationRelay, cfg config.Config, logger *slog.Logger) {
	if !cfg.Relay.Enabled {
		logger.Info("Notification relay disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Starting notification relay", "interval", cfg.Relay.Interval.String())
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			logger.Info("Notification relay stopped")
			return nil
		},
	})
}
