package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupWithoutEndpoints(t *testing.T) {
	tel, err := Setup(context.Background(), "mweb-test", Config{})
	require.NoError(t, err)
	require.Nil(t, tel.TracerProvider)
	require.Nil(t, tel.MeterProvider)
	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestOtlpConnConfigEmpty(t *testing.T) {
	require.True(t, OtlpConnConfig{}.empty())
	require.False(t, OtlpConnConfig{HttpEndpoint: "http://localhost:4318"}.empty())
	require.False(t, OtlpConnConfig{GrpcEndpoint: "http://localhost:4317"}.empty())
}
