package observability

import (
	"context"
	"log/slog"
	"time"
)

// LevelTrace sits below slog.LevelDebug; slog has no trace level of its own.
const LevelTrace = slog.LevelDebug - 4

// SlogObserver implements Observer on top of a standard library
// slog.Logger. It is the default observer used by the examples and is
// suitable for lightweight observability without external dependencies.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates an observer backed by the given logger. A nil
// logger falls back to slog.Default().
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

var _ Observer = (*SlogObserver)(nil)

func (o *SlogObserver) log(ctx context.Context, level slog.Level, msg string, attrs []Attribute) {
	args := make([]any, 0, len(attrs)*2)
	for _, attr := range attrs {
		args = append(args, attr.Key, attr.Value)
	}
	o.logger.Log(ctx, level, msg, args...)
}

func (o *SlogObserver) Trace(ctx context.Context, msg string, attrs ...Attribute) {
	o.log(ctx, LevelTrace, msg, attrs)
}

func (o *SlogObserver) Debug(ctx context.Context, msg string, attrs ...Attribute) {
	o.log(ctx, slog.LevelDebug, msg, attrs)
}

func (o *SlogObserver) Info(ctx context.Context, msg string, attrs ...Attribute) {
	o.log(ctx, slog.LevelInfo, msg, attrs)
}

func (o *SlogObserver) Warn(ctx context.Context, msg string, attrs ...Attribute) {
	o.log(ctx, slog.LevelWarn, msg, attrs)
}

func (o *SlogObserver) Error(ctx context.Context, msg string, attrs ...Attribute) {
	o.log(ctx, slog.LevelError, msg, attrs)
}

// StartSpan begins a named span that logs its start and, on End, its
// elapsed duration. The span is attached to the returned context.
func (o *SlogObserver) StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span) {
	span := &slogSpan{name: name, start: time.Now(), observer: o, attrs: attrs}
	o.Debug(ctx, "span start: "+name, attrs...)
	return ContextWithSpan(ctx, span), span
}

type slogSpan struct {
	name     string
	start    time.Time
	observer *SlogObserver
	attrs    []Attribute
}

func (s *slogSpan) End() {
	attrs := append(s.attrs, Duration("span.duration", time.Since(s.start)))
	s.observer.Debug(context.Background(), "span end: "+s.name, attrs...)
}

func (s *slogSpan) SetAttributes(attrs ...Attribute) {
	s.attrs = append(s.attrs, attrs...)
}

func (s *slogSpan) AddEvent(name string, attrs ...Attribute) {
	s.observer.Debug(context.Background(), s.name+": "+name, attrs...)
}

func (s *slogSpan) RecordError(err error) {
	s.observer.Error(context.Background(), s.name+": error", Error(err))
}
