package adaptive

import (
	"github.com/Egham-7/adaptive-ai-provider/internal/parse"
	"github.com/Egham-7/adaptive-ai-provider/provider"
)

// streamState is the per-stream accumulator. One instance is exclusively
// owned by the sequential consumption loop of one streaming call; it is
// never shared, so no synchronization is needed.
//
// Usage, provider identity and finish reason are snapshots, not sums: the
// backend repeats cumulative totals on every relevant chunk, so each
// observation overwrites the previous one wholesale. The only exception is
// an error finish reason, which is sticky: once a malformed chunk or a
// backend error payload forces it, later well-formed chunks cannot overwrite
// it back to a normal reason.
type streamState struct {
	warnings []provider.CallWarning

	metadataEmitted bool
	textStarted     bool

	finishReason provider.FinishReason
	finishSet    bool
	errorSticky  bool

	usage    *provider.Usage
	provider string
}

func newStreamState(warnings []provider.CallWarning) *streamState {
	return &streamState{warnings: warnings}
}

// start produces the stream-start event, always the first event of any
// stream, carrying the request-time warnings.
func (s *streamState) start() provider.StreamEvent {
	return provider.StreamEvent{Type: provider.EventStreamStart, Warnings: s.warnings}
}

func (s *streamState) setFinish(reason provider.FinishReason) {
	if s.errorSticky {
		return
	}
	s.finishReason = reason
	s.finishSet = true
}

func (s *streamState) setError() {
	s.finishReason = provider.FinishReasonError
	s.finishSet = true
	s.errorSticky = true
}

// reduce processes one SSE data payload and returns the canonical events it
// produces, in order. A payload that fails to parse, or that carries the
// backend's explicit error variant, yields a single error event and forces
// the accumulated finish reason to error; no partial field extraction is
// attempted from malformed data.
func (s *streamState) reduce(payload []byte) []provider.StreamEvent {
	chunk, err := parseWireChunk(payload)
	if err != nil {
		s.setError()
		return []provider.StreamEvent{{Type: provider.EventError, Err: err}}
	}

	if chunk.Err != nil {
		s.setError()
		return []provider.StreamEvent{{
			Type: provider.EventError,
			Err: &provider.APIError{
				Message: chunk.Err.Message,
				Type:    chunk.Err.Type,
				Code:    chunk.Err.Code,
			},
		}}
	}

	var events []provider.StreamEvent

	if !s.metadataEmitted {
		s.metadataEmitted = true
		events = append(events, provider.StreamEvent{
			Type:      provider.EventResponseMetadata,
			ID:        chunk.ID,
			Model:     chunk.Model,
			Timestamp: wireTimestamp(chunk.Created),
		})
	}

	if chunk.Usage != nil {
		usage := canonicalUsage(chunk.Usage)
		s.usage = &usage
	}
	if chunk.Provider != "" {
		s.provider = chunk.Provider
	}

	if len(chunk.Choices) == 0 {
		return events
	}
	choice := chunk.Choices[0]

	if choice.FinishReason != "" {
		s.setFinish(mapFinishReason(choice.FinishReason))
	}

	delta := choice.Delta
	if delta == nil {
		return events
	}

	if delta.Content != nil {
		if !s.textStarted {
			s.textStarted = true
			events = append(events, provider.StreamEvent{Type: provider.EventTextStart})
		}
		events = append(events, provider.StreamEvent{Type: provider.EventTextDelta, Text: *delta.Content})
	}

	if delta.Reasoning != nil {
		events = append(events, provider.StreamEvent{Type: provider.EventReasoningDelta, Text: *delta.Reasoning})
	}

	for _, file := range delta.GeneratedFiles {
		events = append(events, provider.StreamEvent{
			Type: provider.EventFile,
			File: &provider.GeneratedFile{MediaType: file.MediaType, Data: file.Data},
		})
	}

	for _, call := range delta.ToolCalls {
		// Non-function entries are skipped for forward compatibility with
		// tool kinds this layer does not know about.
		if call.Type != "" && call.Type != "function" {
			continue
		}
		events = append(events, provider.StreamEvent{
			Type: provider.EventToolCall,
			ToolCall: &provider.ToolCallData{
				ID:        call.ID,
				Name:      call.Function.Name,
				Arguments: parse.ObjectString(call.Function.Arguments),
			},
		})
	}

	return events
}

// flush produces the terminal finish event: the accumulated finish reason
// (stop if never set), the accumulated usage (zeroed if never observed) and
// provider metadata (omitted if never observed). No further chunks are
// accepted after flush.
func (s *streamState) flush() provider.StreamEvent {
	reason := s.finishReason
	if !s.finishSet {
		reason = provider.FinishReasonStop
	}

	usage := s.usage
	if usage == nil {
		usage = &provider.Usage{}
	}

	event := provider.StreamEvent{
		Type:         provider.EventFinish,
		FinishReason: reason,
		Usage:        usage,
	}
	if s.provider != "" {
		event.Provider = &provider.ProviderMetadata{Provider: s.provider}
	}
	return event
}
