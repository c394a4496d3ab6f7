package observability

// Semantic conventions for attribute names, kept consistent across the
// client, the normalization layer and the transport helpers.

// LLM call attributes.
const (
	// AttrLLMProvider is the integration name (e.g. "adaptive").
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier reported by the backend.
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL.
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMResponseID is the response identifier from the backend.
	AttrLLMResponseID = "llm.response.id"

	// AttrLLMFinishReason is the canonical finish reason.
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMUpstreamProvider is the upstream provider the gateway routed
	// the call to.
	AttrLLMUpstreamProvider = "llm.upstream_provider"

	// AttrLLMStreaming reports whether the call used SSE streaming.
	AttrLLMStreaming = "llm.streaming"
)

// Request shape attributes.
const (
	// AttrRequestMessagesCount is the number of prompt messages.
	AttrRequestMessagesCount = "request.messages.count"

	// AttrRequestToolsCount is the number of tool definitions.
	AttrRequestToolsCount = "request.tools.count"

	// AttrRequestWarningsCount is the number of request-build warnings.
	AttrRequestWarningsCount = "request.warnings.count"
)

// HTTP attributes.
const (
	AttrHTTPMethod           = "http.method"
	AttrHTTPURL              = "http.url"
	AttrHTTPStatusCode       = "http.status_code"
	AttrHTTPRequestBodySize  = "http.request.body.size"
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// Token usage attributes.
const (
	AttrLLMTokensInput  = "llm.tokens.input"  // #nosec G101 -- token refers to LLM tokens
	AttrLLMTokensOutput = "llm.tokens.output" // #nosec G101 -- token refers to LLM tokens
	AttrLLMTokensTotal  = "llm.tokens.total"  // #nosec G101 -- token refers to LLM tokens
)
