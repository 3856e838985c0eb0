package bootstrap

import (
	"context"
	"log/slog"

	"fleetsync/internal/infra/notify"
	"fleetsync/internal/pkg/clock"
	"fleetsync/internal/pkg/config"
	"fleetsync/internal/usecase/shared"

	"go.uber.org/fx"
)

var NATSModule = fx.Module("nats",
	fx.Provide(
		NewNotificationSink,
	),
)

// NewNotificationSink connects to NATS when an endpoint is configured and
// degrades to a no-op sink otherwise. A missing broker never blocks boot.
func NewNotificationSink(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.NotificationSink, error) {
	if cfg.NATS.URL == "" {
		logger.Info("NATS_URL not set, alert fan-out disabled")
		return notify.NoopSink{}, nil
	}

	sink, err := notify.NewNATSSink(cfg.NATS.URL, cfg.NATS.Subject, clk)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sink.Close()
			return nil
		},
	})

	logger.Info("NATS alert sink connected", "subject", cfg.NATS.Subject)
	return sink, nil
}
