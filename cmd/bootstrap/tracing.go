package bootstrap

import (
	"context"

	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/pkg/tracing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Provide(
		NewTracerProvider,
		tracing.Tracer,
	),
)

func NewTracerProvider(lc fx.Lifecycle, cfg config.Config) (trace.TracerProvider, error) {
	tp, shutdown, err := tracing.NewProvider(context.Background(), cfg.Tracing)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return tp, nil
}
