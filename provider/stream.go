package provider

import (
	"iter"
	"strings"
	"time"
)

// StreamEventType identifies the kind of payload carried by a StreamEvent.
type StreamEventType string

const (
	// EventStreamStart is always the first event and carries the
	// request-time warnings.
	EventStreamStart StreamEventType = "stream-start"
	// EventResponseMetadata carries the backend response identity. It is
	// emitted at most once per stream, on the first parsed chunk.
	EventResponseMetadata StreamEventType = "response-metadata"
	// EventTextStart marks the transition into active text output. It is
	// emitted exactly once, before the first text delta.
	EventTextStart StreamEventType = "text-start"
	// EventTextDelta carries an incremental text append.
	EventTextDelta StreamEventType = "text-delta"
	// EventReasoningDelta carries an incremental reasoning append. Unlike
	// text there is no span-open marker.
	EventReasoningDelta StreamEventType = "reasoning-delta"
	// EventFile carries one generated file.
	EventFile StreamEventType = "file"
	// EventToolCall carries one complete tool call.
	EventToolCall StreamEventType = "tool-call"
	// EventError carries a parse failure or a backend-reported error. The
	// stream still terminates with a finish event.
	EventError StreamEventType = "error"
	// EventFinish is always the last event: final finish reason, final
	// usage, provider metadata.
	EventFinish StreamEventType = "finish"
)

// StreamEvent is the canonical discriminated output unit of a streaming
// call. Type selects which fields are meaningful; all others are zero.
type StreamEvent struct {
	Type StreamEventType `json:"type"`

	// Stream-start.
	Warnings []CallWarning `json:"warnings,omitempty"`

	// Response-metadata.
	ID        string    `json:"id,omitempty"`
	Model     string    `json:"model,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`

	// Text-delta and reasoning-delta.
	Text string `json:"text,omitempty"`

	File     *GeneratedFile `json:"file,omitempty"`
	ToolCall *ToolCallData  `json:"tool_call,omitempty"`

	// Error.
	Err error `json:"-"`

	// Finish.
	FinishReason FinishReason      `json:"finish_reason,omitempty"`
	Usage        *Usage            `json:"usage,omitempty"`
	Provider     *ProviderMetadata `json:"provider,omitempty"`
}

// Stream wraps a streaming iterator and provides automatic accumulation of
// events into a final Response. It supports range-based iteration for
// real-time processing and a convenience Collect method.
//
// Callers must consume the stream, either by iterating Iter (breaking out
// early is fine) or by calling Collect: the producing side may hold an open
// HTTP response body that is only released when the iterator completes or is
// abandoned.
type Stream struct {
	iterator iter.Seq2[StreamEvent, error]
}

// NewStream creates a Stream from a raw event iterator. The iterator yields
// events with a nil error for normal progress and a non-nil error for
// transport-level failures (the canonical in-band failures travel as
// EventError events instead).
func NewStream(iterator iter.Seq2[StreamEvent, error]) *Stream {
	return &Stream{iterator: iterator}
}

// Iter returns the underlying iterator for use with range-over-func loops.
//
//	for event, err := range stream.Iter() {
//	    if err != nil { ... }
//	    if event.Type == provider.EventTextDelta { fmt.Print(event.Text) }
//	}
func (s *Stream) Iter() iter.Seq2[StreamEvent, error] {
	return s.iterator
}

// Collect consumes the entire stream and folds it into a Response. Content
// is assembled in the contract order (text, reasoning, files, tool calls).
// A transport error terminates collection and is returned alongside the
// partial response; an in-band EventError is remembered and returned after
// the stream has finished draining, so the finish event's bookkeeping is
// still applied.
func (s *Stream) Collect() (*Response, error) {
	response := &Response{FinishReason: FinishReasonUnknown}

	var text strings.Builder
	var reasoning strings.Builder
	var files []GeneratedFile
	var toolCalls []ToolCallData
	var streamErr error

	for event, err := range s.iterator {
		if err != nil {
			return response, err
		}

		switch event.Type {
		case EventStreamStart:
			response.Warnings = append(response.Warnings, event.Warnings...)

		case EventResponseMetadata:
			response.Metadata = ResponseMetadata{ID: event.ID, Model: event.Model, Timestamp: event.Timestamp}

		case EventTextStart:
			// Span-open marker; the appends follow as text deltas.

		case EventTextDelta:
			text.WriteString(event.Text)

		case EventReasoningDelta:
			reasoning.WriteString(event.Text)

		case EventFile:
			if event.File != nil {
				files = append(files, *event.File)
			}

		case EventToolCall:
			if event.ToolCall != nil {
				toolCalls = append(toolCalls, *event.ToolCall)
			}

		case EventError:
			if event.Err != nil {
				streamErr = event.Err
			}

		case EventFinish:
			response.FinishReason = event.FinishReason
			if event.Usage != nil {
				response.Usage = *event.Usage
			}
			response.Provider = event.Provider
		}
	}

	if text.Len() > 0 {
		response.Content = append(response.Content, ContentBlock{Kind: ContentText, Text: text.String()})
	}
	if reasoning.Len() > 0 {
		response.Content = append(response.Content, ContentBlock{Kind: ContentReasoning, Text: reasoning.String()})
	}
	for _, file := range files {
		response.Content = append(response.Content, ContentBlock{Kind: ContentFile, File: &file})
	}
	for _, call := range toolCalls {
		response.Content = append(response.Content, ContentBlock{Kind: ContentToolCall, ToolCall: &call})
	}

	return response, streamErr
}
