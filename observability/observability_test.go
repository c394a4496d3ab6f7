package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextCarriesObserverAndSpan(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ObserverFromContext(ctx))
	assert.Nil(t, SpanFromContext(ctx))

	observer := NewSlogObserver(nil)
	ctx = ContextWithObserver(ctx, observer)
	assert.Equal(t, observer, ObserverFromContext(ctx))

	ctx, span := observer.StartSpan(ctx, "test-span")
	require.NotNil(t, span)
	assert.Equal(t, span, SpanFromContext(ctx))
	span.End()
}

func TestSlogObserverLogsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))
	observer := NewSlogObserver(logger)

	observer.Info(context.Background(), "request sent",
		String(AttrLLMProvider, "adaptive"),
		Int(AttrRequestMessagesCount, 3),
	)

	output := buf.String()
	assert.Contains(t, output, "request sent")
	assert.Contains(t, output, "llm.provider=adaptive")
	assert.Contains(t, output, "request.messages.count=3")
}

func TestSlogSpanRecordsEventsAndErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))
	observer := NewSlogObserver(logger)

	_, span := observer.StartSpan(context.Background(), "llm.call")
	span.SetAttributes(Bool(AttrLLMStreaming, true))
	span.AddEvent("http.request.prepared", Int(AttrHTTPRequestBodySize, 128))
	span.RecordError(assert.AnError)
	span.End()

	output := buf.String()
	assert.Contains(t, output, "span start: llm.call")
	assert.Contains(t, output, "http.request.prepared")
	assert.Contains(t, output, "llm.call: error")
	assert.Contains(t, output, "span end: llm.call")
	assert.Contains(t, output, "span.duration")
}
