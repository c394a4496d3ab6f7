package provider

import "context"

// LanguageModel is the contract every backend integration satisfies. It
// covers one chat completion request in both delivery modes; the
// implementation owns translation to and from its wire format.
type LanguageModel interface {
	// Generate sends the call synchronously and returns the complete
	// canonical response. Request-build failures (unsupported
	// functionality) and backend failures are returned as errors.
	Generate(ctx context.Context, opts CallOptions) (*Response, error)

	// Stream sends the call with streaming enabled and returns a Stream of
	// canonical events. Pre-stream errors (request build, auth, connect)
	// are returned directly; mid-stream failures travel in-band as
	// EventError events followed by a finish event.
	Stream(ctx context.Context, opts CallOptions) (*Stream, error)
}
