package outbox_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/invoicing-api/pkg/correlationid"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/outbox"
)

func TestHeadersRoundTrip(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))
	ctx = correlationid.NewContext(ctx, "corr-42")

	headers := outbox.BuildHeaders(ctx)
	assert.Equal(t, "corr-42", headers[correlationid.Header])
	assert.Contains(t, headers, "traceparent")

	restored := outbox.ExtractContextFromHeaders(context.Background(), headers)

	id, ok := correlationid.FromContext(restored)
	assert.True(t, ok)
	assert.Equal(t, "corr-42", id)
	assert.Equal(t, traceID, trace.SpanContextFromContext(restored).TraceID())
}

func TestBuildHeadersEmptyContext(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	assert.Empty(t, outbox.BuildHeaders(context.Background()))
}
