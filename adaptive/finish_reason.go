package adaptive

import "github.com/Egham-7/adaptive-ai-provider/provider"

// mapFinishReason translates a wire finish reason into the canonical set.
// The mapping is total: unrecognized values become FinishReasonUnknown, and
// the absent value is handled by the callers (default stop), so no wire
// string can fail a call.
func mapFinishReason(reason string) provider.FinishReason {
	switch reason {
	case "stop":
		return provider.FinishReasonStop
	case "length", "model_length":
		return provider.FinishReasonLength
	case "tool_calls", "function_call":
		return provider.FinishReasonToolCalls
	case "content_filter":
		return provider.FinishReasonContentFilter
	case "error":
		return provider.FinishReasonError
	default:
		return provider.FinishReasonUnknown
	}
}
