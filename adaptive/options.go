package adaptive

import (
	json "github.com/goccy/go-json"
	"github.com/tidwall/sjson"
)

// providerOptions is the bag of gateway-specific settings carried in
// CallOptions.ProviderOptions. The recognized scalar fields are validated by
// decoding; the routing and caching objects are deliberately opaque raw JSON
// that the gateway interprets, not this package.
type providerOptions struct {
	User          string             `json:"user,omitempty"`
	N             *int               `json:"n,omitempty"`
	LogitBias     map[string]float64 `json:"logit_bias,omitempty"`
	CostBias      *float64           `json:"cost_bias,omitempty"`
	SemanticCache *wireSemanticCache `json:"semantic_cache,omitempty"`

	ModelRouter         json.RawMessage `json:"model_router,omitempty"`
	Fallback            json.RawMessage `json:"fallback,omitempty"`
	PromptCache         json.RawMessage `json:"prompt_cache,omitempty"`
	PromptResponseCache json.RawMessage `json:"prompt_response_cache,omitempty"`
}

// parseProviderOptions decodes the options bag permissively: a missing,
// invalid or mistyped bag degrades to empty options and never fails the
// call. Option mistakes must not take down an otherwise valid request.
func parseProviderOptions(raw json.RawMessage) providerOptions {
	if len(raw) == 0 {
		return providerOptions{}
	}
	var opts providerOptions
	if err := json.Unmarshal(raw, &opts); err != nil {
		return providerOptions{}
	}
	return opts
}

// mergeOpaqueOptions splices the opaque option objects into the serialized
// request body verbatim. sjson keeps the payloads byte-for-byte intact, so
// gateway-side schema evolution never requires a change here.
func mergeOpaqueOptions(body []byte, opts providerOptions) ([]byte, error) {
	opaque := []struct {
		key string
		raw json.RawMessage
	}{
		{"model_router", opts.ModelRouter},
		{"fallback", opts.Fallback},
		{"prompt_cache", opts.PromptCache},
		{"prompt_response_cache", opts.PromptResponseCache},
	}

	var err error
	for _, entry := range opaque {
		if len(entry.raw) == 0 {
			continue
		}
		body, err = sjson.SetRawBytes(body, entry.key, entry.raw)
		if err != nil {
			return nil, err
		}
	}
	return body, nil
}
