package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx/fxtest"
)

func TestNewExporter(t *testing.T) {
	t.Run("none disables tracing", func(t *testing.T) {
		for _, typ := range []string{"none", ""} {
			exp, err := newExporter(typ)
			require.NoError(t, err)
			require.Nil(t, exp)
		}
	})

	t.Run("stdout exporter", func(t *testing.T) {
		exp, err := newExporter("stdout")
		require.NoError(t, err)
		require.NotNil(t, exp)
	})

	t.Run("unsupported exporter returns error", func(t *testing.T) {
		_, err := newExporter("xrayudp")
		require.EqualError(t, err, `unsupported TCPHTTP_OTEL_EXPORTER: "xrayudp" (supported: none, stdout)`)
	})
}

func TestNewResource(t *testing.T) {
	res := newResource("my-service")

	var found bool
	for _, attr := range res.Attributes() {
		if string(attr.Key) == "service.name" && attr.Value.AsString() == "my-service" {
			found = true
		}
	}
	require.True(t, found, "expected service.name attribute in resource")
}

func TestNewTracerProvider(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		tp, err := NewTracerProvider(lc, BaseEnvironment{OtelExporter: "none"})
		require.NoError(t, err)
		require.IsType(t, noop.TracerProvider{}, tp)
	})

	t.Run("stdout shuts down on stop", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		tp, err := NewTracerProvider(lc, BaseEnvironment{OtelExporter: "stdout", ServiceName: "test"})
		require.NoError(t, err)
		require.IsType(t, &sdktrace.TracerProvider{}, tp)

		lc.RequireStart()
		lc.RequireStop()

		_, span := tp.Tracer("test").Start(context.Background(), "after-stop")
		require.False(t, span.IsRecording())
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := NewTracerProvider(fxtest.NewLifecycle(t), BaseEnvironment{OtelExporter: "jaeger"})
		require.Error(t, err)
	})
}

func TestNewPropagator(t *testing.T) {
	require.ElementsMatch(t, []string{"traceparent", "tracestate", "baggage"}, NewPropagator().Fields())
}
