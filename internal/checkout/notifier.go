package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/emberwick/storefront-api/pkg/logger"
	"github.com/emberwick/storefront-api/pkg/outbox"
)

// Notifier hands a confirmed order to whatever sends the confirmation e-mail.
type Notifier interface {
	NotifyOrderConfirmed(ctx context.Context, event outbox.PayloadEnvelope) error
}

type orderPublisher interface {
	PublishOrder(ctx context.Context, data []byte, attrs map[string]string) (string, error)
}

// PubSubNotifier publishes envelopes to the orders topic.
type PubSubNotifier struct {
	publisher orderPublisher
	logg      *logger.Logger
}

func NewPubSubNotifier(publisher orderPublisher, logg *logger.Logger) *PubSubNotifier {
	return &PubSubNotifier{publisher: publisher, logg: logg}
}

func (n *PubSubNotifier) NotifyOrderConfirmed(ctx context.Context, event outbox.PayloadEnvelope) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	serverID, err := n.publisher.PublishOrder(ctx, data, event.Attributes())
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.EventType, err)
	}
	if n.logg != nil {
		n.logg.Info(n.logg.WithFields(ctx, map[string]any{
			"event_id":   event.EventID,
			"message_id": serverID,
		}), "order confirmation published")
	}
	return nil
}

// LogNotifier only records the event. It is used when no orders topic is configured.
type LogNotifier struct {
	logg *logger.Logger
}

func NewLogNotifier(logg *logger.Logger) *LogNotifier {
	return &LogNotifier{logg: logg}
}

func (n *LogNotifier) NotifyOrderConfirmed(ctx context.Context, event outbox.PayloadEnvelope) error {
	n.logg.Info(n.logg.WithFields(ctx, map[string]any{
		"event_id":   event.EventID,
		"event_type": event.EventType,
		"payload":    string(event.Data),
	}), "order confirmation not published: no orders topic")
	return nil
}
