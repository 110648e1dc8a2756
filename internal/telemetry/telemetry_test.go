package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup_NoEndpointIsNoop(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	shutdown, err := Setup(context.Background(), "finance")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_Disabled(t *testing.T) {
	t.Setenv(EndpointEnv, "http://127.0.0.1:4318")
	t.Setenv(EnabledEnv, "false")
	shutdown, err := Setup(context.Background(), "finance")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestStart_WithoutProvider(t *testing.T) {
	ctx, span := Start(context.Background(), "stage")
	defer span.End()
	require.NotNil(t, ctx)
	require.False(t, span.SpanContext().IsValid())
}
