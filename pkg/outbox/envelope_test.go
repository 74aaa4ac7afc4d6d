package outbox

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewEnvelope(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*3600))
	env, err := NewEnvelope("order.confirmed", map[string]string{"order_number": "EW-1"}, at)
	if err != nil {
		t.Fatalf("new envelope: %v", err)
	}
	if env.Version != EnvelopeVersion || env.EventID == "" {
		t.Fatalf("unexpected envelope header: %+v", env)
	}
	if env.OccurredAt.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %v", env.OccurredAt)
	}

	var data map[string]string
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data["order_number"] != "EW-1" {
		t.Fatalf("unexpected data %v", data)
	}

	attrs := env.Attributes()
	if attrs["event_type"] != "order.confirmed" || attrs["event_id"] != env.EventID || attrs["version"] != "1" {
		t.Fatalf("unexpected attributes %v", attrs)
	}
}

func TestNewEnvelopeRejectsUnmarshalable(t *testing.T) {
	if _, err := NewEnvelope("bad", make(chan int), time.Now()); err == nil {
		t.Fatal("expected marshal error")
	}
}
