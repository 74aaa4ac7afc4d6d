package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EnvelopeVersion is bumped whenever the envelope shape changes incompatibly.
const EnvelopeVersion = 1

// PayloadEnvelope is the stable wrapper every published domain event travels in.
type PayloadEnvelope struct {
	Version    int             `json:"version"`
	EventID    string          `json:"eventId"`
	EventType  string          `json:"eventType"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

// NewEnvelope marshals payload into a fresh envelope stamped with occurredAt.
func NewEnvelope(eventType string, payload any, occurredAt time.Time) (PayloadEnvelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return PayloadEnvelope{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return PayloadEnvelope{
		Version:    EnvelopeVersion,
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: occurredAt.UTC(),
		Data:       data,
	}, nil
}

// Attributes are the Pub/Sub message attributes consumers filter on.
func (e PayloadEnvelope) Attributes() map[string]string {
	return map[string]string{
		"event_id":   e.EventID,
		"event_type": e.EventType,
		"version":    fmt.Sprintf("%d", e.Version),
	}
}
