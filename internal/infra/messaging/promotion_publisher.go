package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pass-config-engine/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PromotionPublisher announces promoted configurations to issuance and email
// consumers.
type PromotionPublisher struct {
	mu     sync.Mutex
	ch     *amqp.Channel
	logger *slog.Logger
}

func NewPromotionPublisher(conn *amqp.Connection, logger *slog.Logger) (*PromotionPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is nil")
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(ConfigurationEventsExchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", ConfigurationEventsExchange, err)
	}
	logger.Info("configuration events exchange declared", "exchange", ConfigurationEventsExchange)
	return &PromotionPublisher{ch: ch, logger: logger.With("component", "promotion_publisher")}, nil
}

func (p *PromotionPublisher) PublishPromoted(ctx context.Context, evt shared.PromotedEvent) error {
	body, err := json.Marshal(ConfigurationPromotedPayload(evt))
	if err != nil {
		return fmt.Errorf("failed to marshal promotion event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, ConfigurationEventsExchange, promotedRoutingKey, false, false, amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    evt.ConfigurationID.String(),
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish promotion event: %w", err)
	}
	p.logger.Debug("promotion event published", "configuration_id", evt.ConfigurationID)
	return nil
}

func (p *PromotionPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Close()
}

// LogPublisher stands in when RabbitMQ is disabled.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishPromoted(_ context.Context, evt shared.PromotedEvent) error {
	p.logger.Info("configuration promoted", "configuration_id", evt.ConfigurationID, "final_price", evt.FinalPrice)
	return nil
}
