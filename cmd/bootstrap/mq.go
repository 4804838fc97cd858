package bootstrap

import (
	"context"
	"log/slog"

	"workspace-booking/internal/infra/mq"
	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/worker"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewPublisher,
	),
)

type closablePublisher interface {
	worker.Publisher
	Close() error
}

// NewPublisher connects to RabbitMQ when MQ_URL is set and otherwise logs
// notifications instead of sending them.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (worker.Publisher, error) {
	var p closablePublisher
	if cfg.MQ.URL == "" {
		logger.Warn("MQ_URL not set; notifications are logged only")
		p = mq.NewLogPublisher(logger)
	} else {
		amqpPublisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			return nil, err
		}
		p = amqpPublisher
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}
