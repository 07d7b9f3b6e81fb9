package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func TestHealth(t *testing.T) {
	ctx := context.Background()

	check := func(t *testing.T, h *Health) grpc_health_v1.HealthCheckResponse_ServingStatus {
		t.Helper()
		resp, err := h.srv.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
		require.NoError(t, err)
		return resp.GetStatus()
	}

	t.Run("keeps initial status", func(t *testing.T) {
		h := New(grpc_health_v1.HealthCheckResponse_SERVING)

		require.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check(t, h))
	})

	t.Run("switches to NOT_SERVING on shutdown", func(t *testing.T) {
		h := New(grpc_health_v1.HealthCheckResponse_SERVING)

		h.SetNotServing("")

		require.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check(t, h))
	})

	t.Run("switches back to SERVING", func(t *testing.T) {
		h := New(grpc_health_v1.HealthCheckResponse_NOT_SERVING)

		h.SetServing("")

		require.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check(t, h))
	})
}
