//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
)

// RedpandaContainer wraps a Kafka-compatible Redpanda broker.
type RedpandaContainer struct {
	Container testcontainers.Container
	Broker    string
}

// NewRedpandaContainer starts a single-node broker with topic auto-creation.
func NewRedpandaContainer(t *testing.T) *RedpandaContainer {
	t.Helper()

	ctx := context.Background()

	container, err := redpanda.Run(ctx, "docker.redpanda.com/redpandadata/redpanda:v24.2.7",
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		t.Fatalf("failed to start redpanda container: %v", err)
	}

	broker, err := container.KafkaSeedBroker(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get redpanda seed broker: %v", err)
	}

	return &RedpandaContainer{
		Container: container,
		Broker:    broker,
	}
}
