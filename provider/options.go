package provider

import "encoding/json"

// ResponseFormat requests structured output. The adaptive gateway does not
// support it; the request normalizer drops it with an unsupported-setting
// warning.
type ResponseFormat struct {
	// Type is "text", "json_object" or "json_schema".
	Type string `json:"type"`
	// Schema is the JSON schema for "json_schema" responses.
	Schema json.RawMessage `json:"schema,omitempty"`
}

// CallOptions carries everything needed for one chat completion call:
// the prompt, the generation settings, the tool configuration, and opaque
// provider-specific options. Optional numeric settings are pointers so that
// "unset" stays distinguishable from an explicit zero.
type CallOptions struct {
	// Messages is the ordered prompt.
	Messages []Message

	MaxOutputTokens  *int
	Temperature      *float64
	TopP             *float64
	TopK             *int
	StopSequences    []string
	PresencePenalty  *float64
	FrequencyPenalty *float64
	Seed             *int

	// ResponseFormat requests structured output. Unsupported by the gateway.
	ResponseFormat *ResponseFormat

	// ProviderOptions is an opaque JSON object of gateway-specific settings
	// (model routing, fallback, caching). Recognized fields are validated
	// permissively; opaque routing objects are merged verbatim into the wire
	// request. A malformed bag degrades to empty options, it never fails the
	// call.
	ProviderOptions json.RawMessage

	Tools      []ToolDefinition
	ToolChoice *ToolChoice

	// Headers are extra HTTP headers merged into the outbound request.
	Headers map[string]string
}
