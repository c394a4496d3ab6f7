package adaptive

import (
	"fmt"
	"time"

	"github.com/Egham-7/adaptive-ai-provider/internal/parse"
	"github.com/Egham-7/adaptive-ai-provider/provider"
)

// buildResponse maps a parsed wire response onto the canonical result. The
// first choice's message is flattened into content blocks in the fixed
// order text, reasoning, files, tool calls. An absent finish reason means
// the generation completed normally, so it defaults to stop; absent usage
// becomes a zeroed record; absent provider identity stays nil.
func buildResponse(wire *wireResponse, warnings []provider.CallWarning) (*provider.Response, error) {
	if len(wire.Choices) == 0 {
		return nil, fmt.Errorf("%w: response has no choices", provider.ErrNoContent)
	}
	choice := wire.Choices[0]

	response := &provider.Response{
		FinishReason: provider.FinishReasonStop,
		Metadata: provider.ResponseMetadata{
			ID:        wire.ID,
			Model:     wire.Model,
			Timestamp: wireTimestamp(wire.Created),
		},
		Warnings: warnings,
	}

	if choice.FinishReason != "" {
		response.FinishReason = mapFinishReason(choice.FinishReason)
	}
	if wire.Usage != nil {
		response.Usage = canonicalUsage(wire.Usage)
	}
	if wire.Provider != "" {
		response.Provider = &provider.ProviderMetadata{Provider: wire.Provider}
	}

	if choice.Message.Content != "" {
		response.Content = append(response.Content, provider.ContentBlock{
			Kind: provider.ContentText,
			Text: choice.Message.Content,
		})
	}
	if choice.Message.Reasoning != "" {
		response.Content = append(response.Content, provider.ContentBlock{
			Kind: provider.ContentReasoning,
			Text: choice.Message.Reasoning,
		})
	}
	for _, file := range choice.Message.GeneratedFiles {
		response.Content = append(response.Content, provider.ContentBlock{
			Kind: provider.ContentFile,
			File: &provider.GeneratedFile{MediaType: file.MediaType, Data: file.Data},
		})
	}
	for _, call := range choice.Message.ToolCalls {
		if call.Type != "" && call.Type != "function" {
			continue
		}
		response.Content = append(response.Content, provider.ContentBlock{
			Kind:     provider.ContentToolCall,
			ToolCall: canonicalToolCall(call),
		})
	}

	return response, nil
}

func canonicalUsage(usage *wireUsage) provider.Usage {
	return provider.Usage{
		InputTokens:       usage.PromptTokens,
		OutputTokens:      usage.CompletionTokens,
		TotalTokens:       usage.TotalTokens,
		ReasoningTokens:   usage.ReasoningTokens,
		CachedInputTokens: usage.CachedInputTokens,
	}
}

func canonicalToolCall(call wireToolCall) *provider.ToolCallData {
	return &provider.ToolCallData{
		ID:        call.ID,
		Name:      call.Function.Name,
		Arguments: parse.ObjectString(call.Function.Arguments),
	}
}

func wireTimestamp(created int64) time.Time {
	if created == 0 {
		return time.Time{}
	}
	return time.Unix(created, 0).UTC()
}
