package provider

import "time"

// FinishReason describes why the model stopped generating.
type FinishReason string

const (
	FinishReasonStop          FinishReason = "stop"
	FinishReasonLength        FinishReason = "length"
	FinishReasonContentFilter FinishReason = "content-filter"
	FinishReasonToolCalls     FinishReason = "tool-calls"
	FinishReasonError         FinishReason = "error"
	FinishReasonOther         FinishReason = "other"
	FinishReasonUnknown       FinishReason = "unknown"
)

// Usage holds token accounting for one call. The zero value is the canonical
// "no usage reported" record.
type Usage struct {
	InputTokens       int `json:"input_tokens"`
	OutputTokens      int `json:"output_tokens"`
	TotalTokens       int `json:"total_tokens"`
	ReasoningTokens   int `json:"reasoning_tokens,omitempty"`
	CachedInputTokens int `json:"cached_input_tokens,omitempty"`
}

// ProviderMetadata identifies the backend that actually served the request.
// The gateway routes each call to one of its upstream providers and reports
// which one answered; a nil ProviderMetadata means the backend never
// identified itself.
type ProviderMetadata struct {
	Provider string `json:"provider"`
}

// ResponseMetadata carries the backend response identity.
type ResponseMetadata struct {
	ID        string    `json:"id,omitempty"`
	Model     string    `json:"model,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// GeneratedFile is a file produced by the model. Data is the base64 payload
// exactly as delivered on the wire.
type GeneratedFile struct {
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// ContentBlock is one unit of generated output. Kind is one of ContentText,
// ContentReasoning, ContentFile or ContentToolCall.
type ContentBlock struct {
	Kind     ContentKind    `json:"kind"`
	Text     string         `json:"text,omitempty"`
	File     *GeneratedFile `json:"file,omitempty"`
	ToolCall *ToolCallData  `json:"tool_call,omitempty"`
}

// Response is the canonical result of a synchronous call (or of collecting a
// stream). Content is ordered text, then reasoning, then generated files,
// then tool calls; callers may depend on that layout.
type Response struct {
	Content      []ContentBlock    `json:"content"`
	FinishReason FinishReason      `json:"finish_reason"`
	Usage        Usage             `json:"usage"`
	Provider     *ProviderMetadata `json:"provider,omitempty"`
	Metadata     ResponseMetadata  `json:"metadata"`
	Warnings     []CallWarning     `json:"warnings,omitempty"`
}

// Text concatenates all text blocks.
func (r *Response) Text() string {
	var out string
	for _, block := range r.Content {
		if block.Kind == ContentText {
			out += block.Text
		}
	}
	return out
}

// Reasoning concatenates all reasoning blocks.
func (r *Response) Reasoning() string {
	var out string
	for _, block := range r.Content {
		if block.Kind == ContentReasoning {
			out += block.Text
		}
	}
	return out
}

// ToolCalls returns the tool-call blocks in order.
func (r *Response) ToolCalls() []ToolCallData {
	var calls []ToolCallData
	for _, block := range r.Content {
		if block.Kind == ContentToolCall && block.ToolCall != nil {
			calls = append(calls, *block.ToolCall)
		}
	}
	return calls
}

// Files returns the generated-file blocks in order.
func (r *Response) Files() []GeneratedFile {
	var files []GeneratedFile
	for _, block := range r.Content {
		if block.Kind == ContentFile && block.File != nil {
			files = append(files, *block.File)
		}
	}
	return files
}
