package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"pass-config-engine/internal/infra/messaging"
	"pass-config-engine/internal/pkg/config"
	"pass-config-engine/internal/usecase/commands"
	"pass-config-engine/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewAMQPConnection,
		NewEventPublisher,
	),
	fx.Invoke(StartArtifactConsumer),
)

// NewAMQPConnection returns nil when RabbitMQ is disabled.
func NewAMQPConnection(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*amqp.Connection, error) {
	if cfg.RabbitMQ.Disabled {
		logger.Info("rabbitmq disabled, events are logged only")
		return nil, nil
	}
	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Close()
		},
	})

	return conn, nil
}

func NewEventPublisher(lc fx.Lifecycle, conn *amqp.Connection, logger *slog.Logger) (shared.EventPublisher, error) {
	if conn == nil {
		return messaging.NewLogPublisher(logger), nil
	}
	p, err := messaging.NewPromotionPublisher(conn, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})

	return p, nil
}

func StartArtifactConsumer(lc fx.Lifecycle, conn *amqp.Connection, drafts commands.DraftCommands, logger *slog.Logger) error {
	if conn == nil {
		return nil
	}
	consumer, err := messaging.NewArtifactConsumer(conn, drafts, logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return consumer.Start()
		},
		OnStop: func(ctx context.Context) error {
			return consumer.Stop(ctx)
		},
	})

	return nil
}
