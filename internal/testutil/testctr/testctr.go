// Package testctr holds shared helpers for container-backed tests.
package testctr

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
)

// SkipIfDockerNotAvailable skips the test when no Docker daemon can be
// reached, so container-backed integration tests degrade to skips on
// machines without Docker.
func SkipIfDockerNotAvailable(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := testcontainers.NewDockerProvider()
	if err != nil {
		t.Skipf("Docker not available: %v", err)
	}
	defer provider.Close()

	if _, err := provider.DaemonHost(ctx); err != nil {
		t.Skipf("Docker not available: %v", err)
	}
}
