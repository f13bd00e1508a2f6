package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/infra/converter"
	"pass-config-engine/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const handleTimeout = 10 * time.Second

// ArtifactMerger is satisfied by commands.DraftCommands.
type ArtifactMerger interface {
	MergeArtifacts(ctx context.Context, sessionID string, refs []artifact.Ref) (*draft.Draft, error)
}

// ArtifactConsumer merges artifact registration events into session drafts.
// The poller covers anything missed while the consumer is down.
type ArtifactConsumer struct {
	conn        *amqp.Connection
	merger      ArtifactMerger
	logger      *slog.Logger
	consumerTag string
	stop        chan struct{}
	done        chan struct{}
}

func NewArtifactConsumer(conn *amqp.Connection, merger ArtifactMerger, logger *slog.Logger) (*ArtifactConsumer, error) {
	if conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is nil")
	}
	tag := fmt.Sprintf("artifact_consumer_%d", time.Now().UnixNano())
	return &ArtifactConsumer{
		conn:        conn,
		merger:      merger,
		logger:      logger.With("component", "artifact_consumer", "consumer_tag", tag),
		consumerTag: tag,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}, nil
}

// Start declares the topology and consumes on a background goroutine.
func (c *ArtifactConsumer) Start() error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(ArtifactEventsExchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return fmt.Errorf("failed to declare exchange %q: %w", ArtifactEventsExchange, err)
	}
	q, err := ch.QueueDeclare(artifactEventsQueue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, "", ArtifactEventsExchange, false, nil); err != nil {
		_ = ch.Close()
		return fmt.Errorf("failed to bind queue %q: %w", q.Name, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		_ = ch.Close()
		return fmt.Errorf("failed to set qos: %w", err)
	}
	deliveries, err := ch.Consume(q.Name, c.consumerTag, false, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("artifact consumer started", "queue", q.Name)
	go c.loop(ch, deliveries)
	return nil
}

func (c *ArtifactConsumer) loop(ch *amqp.Channel, deliveries <-chan amqp.Delivery) {
	defer close(c.done)
	defer ch.Close()
	for {
		select {
		case d, ok := <-deliveries:
			if !ok {
				c.logger.Warn("artifact delivery channel closed")
				return
			}
			c.dispatch(d)
		case <-c.stop:
			if err := ch.Cancel(c.consumerTag, false); err != nil {
				c.logger.Warn("failed to cancel consumer", "error", err)
			}
			return
		}
	}
}

func (c *ArtifactConsumer) dispatch(d amqp.Delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	err := c.Handle(ctx, d.Body)
	switch {
	case err == nil:
		_ = d.Ack(false)
	case errs.Is(err, errs.ErrValidation):
		c.logger.Warn("dropping invalid artifact event", "error", err)
		_ = d.Nack(false, false)
	default:
		c.logger.Error("artifact event failed, requeueing", "error", err)
		_ = d.Nack(false, !d.Redelivered)
	}
}

// Handle decodes one event body and merges its refs.
func (c *ArtifactConsumer) Handle(ctx context.Context, body []byte) error {
	var payload ArtifactRegisteredPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return errs.Validation(errs.Wrap(err, "malformed artifact event"))
	}
	if strings.TrimSpace(payload.SessionID) == "" {
		return errs.Validation(errs.New("artifact event without session id"))
	}
	refs := make([]artifact.Ref, 0, len(payload.Artifacts))
	for _, a := range payload.Artifacts {
		kind, err := artifact.ParseKind(a.Kind)
		if err != nil {
			return errs.Validation(err)
		}
		origin, err := converter.ParseOrigin(a.Origin)
		if err != nil {
			return errs.Validation(err)
		}
		refs = append(refs, artifact.Ref{ID: a.ID, Kind: kind, Origin: origin})
	}
	if len(refs) == 0 {
		return nil
	}
	if _, err := c.merger.MergeArtifacts(ctx, payload.SessionID, refs); err != nil {
		return err
	}
	c.logger.Debug("artifact event merged", "session_id", payload.SessionID, "count", len(refs))
	return nil
}

// Stop cancels the subscription and waits for the in-flight delivery.
func (c *ArtifactConsumer) Stop(ctx context.Context) error {
	close(c.stop)
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
