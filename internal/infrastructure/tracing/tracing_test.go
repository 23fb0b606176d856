package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracingWithoutCollector(t *testing.T) {
	tp, err := InitTracing("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	assert.Same(t, tp, otel.GetTracerProvider())

	_, span := otel.Tracer(ServiceName).Start(context.Background(), "test")
	defer span.End()
	assert.True(t, span.SpanContext().IsValid())
}
