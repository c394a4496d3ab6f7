// Package adaptive implements the provider contract for the Adaptive LLM
// gateway, an OpenAI-compatible chat completions API with extensions: a
// reasoning_content field, generated files, a top-level provider identifier
// reporting which upstream served the call, and opaque routing/caching
// option objects.
//
// The package is a bidirectional protocol normalization layer. Outbound, it
// translates a canonical prompt ([provider.Message] values with polymorphic
// content) plus generation settings into the gateway wire request. Inbound,
// it maps the synchronous JSON response, or the incrementally streamed SSE
// chunks, into the canonical [provider.Response] / [provider.StreamEvent]
// model, tolerating the gateway's known schema drift (tool_calls/toolCalls,
// reasoning_content/reasoning, finish_reason/finishReason) and guaranteeing
// the stream invariants: stream-start first, response-metadata at most once,
// exactly one finish event last.
//
// The main entry point is [New], which reads ADAPTIVE_API_KEY and
// ADAPTIVE_API_BASE_URL from the environment. Use the WithX methods to
// override configuration programmatically; there is no process-global state.
package adaptive
