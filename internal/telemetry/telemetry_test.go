package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracerUsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	_, span := Tracer("test").Start(context.Background(), "unit")
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "unit", ended[0].Name())
	assert.Equal(t, "mazeband/test", ended[0].InstrumentationScope().Name)
}

func TestDisableRecordsNothing(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	Disable()
	_, span := Tracer("test").Start(context.Background(), "ignored")
	defer span.End()
	assert.False(t, span.IsRecording())
}

func TestAttributes(t *testing.T) {
	attrs := map[string]string{}
	for _, kv := range Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, serviceName, attrs["service.name"])
	assert.Equal(t, serviceVersion, attrs["service.version"])
	assert.NotEmpty(t, attrs["host.name"])
}
