package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vocino/vocino/internal/store"
	"github.com/vocino/vocino/internal/store/storetest"
)

// makeMongoStore starts a throwaway MongoDB container and returns a store
// bound to a fresh database. Requires Docker; gated behind
// VOCINO_DOCKER_TESTS=1 so the default test run stays hermetic.
func makeMongoStore(t *testing.T) store.Store {
	t.Helper()
	if os.Getenv("VOCINO_DOCKER_TESTS") != "1" {
		t.Skip("VOCINO_DOCKER_TESTS not set; skipping mongo store integration test")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start mongo container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	client, err := Open(ctx, fmt.Sprintf("mongodb://%s:%s", host, port.Port()))
	if err != nil {
		t.Fatalf("mongo open: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	s, err := New(ctx, client, "vocino_test_"+uuid.New().String()[:8])
	if err != nil {
		t.Fatalf("mongo store: %v", err)
	}
	return s
}

func TestMongoStore_Compliance(t *testing.T) {
	storetest.Run(t, makeMongoStore)
}
