package pubsub

import (
	"context"
	"errors"
	"testing"

	"github.com/emberwick/storefront-api/pkg/config"
)

func TestTopicResourceName(t *testing.T) {
	c := &Client{projectID: "emberwick-prod"}

	cases := map[string]string{
		"orders-confirmed":                       "projects/emberwick-prod/topics/orders-confirmed",
		"  orders-confirmed ":                    "projects/emberwick-prod/topics/orders-confirmed",
		"projects/other/topics/orders-confirmed": "projects/other/topics/orders-confirmed",
		"":                                       "",
	}
	for in, want := range cases {
		if got := c.topicResourceName(in); got != want {
			t.Fatalf("topicResourceName(%q) = %q, want %q", in, got, want)
		}
	}

	if got := (&Client{}).topicResourceName("orders"); got != "" {
		t.Fatalf("expected empty name without project, got %q", got)
	}
}

func TestTopicNamesSkipsBlank(t *testing.T) {
	if names := topicNames(config.PubSubConfig{OrdersTopic: "  "}); len(names) != 0 {
		t.Fatalf("expected no topics, got %v", names)
	}
	if names := topicNames(config.PubSubConfig{OrdersTopic: "orders"}); len(names) != 1 || names[0] != "orders" {
		t.Fatalf("unexpected topics %v", names)
	}
}

func TestNilClientIsSafe(t *testing.T) {
	var c *Client
	if c.Publisher("orders") != nil {
		t.Fatal("expected nil publisher from nil client")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close on nil client: %v", err)
	}
	if err := c.Ping(context.Background()); !errors.Is(err, errNotInitialized) {
		t.Fatalf("expected not initialized, got %v", err)
	}
}

func TestNewClientRequiresProject(t *testing.T) {
	_, err := NewClient(context.Background(), config.GCPConfig{}, config.PubSubConfig{OrdersTopic: "orders"}, nil)
	if !errors.Is(err, errProjectIDRequired) {
		t.Fatalf("expected project id error, got %v", err)
	}
}
