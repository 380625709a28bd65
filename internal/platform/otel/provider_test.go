package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"studyhub/internal/platform/config"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.Tracing{ServiceName: "studyhub"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_InstallsProvider(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.Tracing{
		Endpoint:    "http://127.0.0.1:4318",
		ServiceName: "studyhub-test",
	})
	require.NoError(t, err)

	_, span := otel.Tracer("smoke").Start(context.Background(), "smoke")
	require.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
