package adaptive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	json "github.com/goccy/go-json"

	"github.com/Egham-7/adaptive-ai-provider/internal/utils"
	"github.com/Egham-7/adaptive-ai-provider/observability"
	"github.com/Egham-7/adaptive-ai-provider/provider"
)

const (
	defaultBaseURL          = "https://backend.mangoplant-a7a21605.swedencentral.azurecontainerapps.io/v1"
	chatCompletionsEndpoint = "/chat/completions"

	apiKeyEnvVar  = "ADAPTIVE_API_KEY"
	baseURLEnvVar = "ADAPTIVE_API_BASE_URL"
)

// SystemMessageMode selects how system-role messages travel on the wire.
type SystemMessageMode string

const (
	// SystemMessageModeSystem passes system messages through unchanged.
	SystemMessageModeSystem SystemMessageMode = "system"
	// SystemMessageModeRemove drops system messages with a warning, for
	// upstream models that reject the system role.
	SystemMessageModeRemove SystemMessageMode = "remove"
)

// ChatModel is a provider.LanguageModel backed by the Adaptive gateway's
// chat completions endpoint. All configuration lives on the instance; there
// is no package-level default.
type ChatModel struct {
	apiKey            string
	baseURL           string
	client            *http.Client
	headers           map[string]string
	systemMessageMode SystemMessageMode
}

var _ provider.LanguageModel = (*ChatModel)(nil)

// New creates a ChatModel with default values. The API key is read from
// ADAPTIVE_API_KEY and the base URL from ADAPTIVE_API_BASE_URL when set.
func New() *ChatModel {
	baseURL := os.Getenv(baseURLEnvVar)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &ChatModel{
		apiKey:            os.Getenv(apiKeyEnvVar),
		baseURL:           baseURL,
		client:            &http.Client{},
		systemMessageMode: SystemMessageModeSystem,
	}
}

// WithAPIKey sets the API key for the gateway.
func (m *ChatModel) WithAPIKey(apiKey string) *ChatModel {
	m.apiKey = apiKey
	return m
}

// WithBaseURL sets the base URL for the API.
func (m *ChatModel) WithBaseURL(baseURL string) *ChatModel {
	m.baseURL = baseURL
	return m
}

// WithHttpClient sets a custom HTTP client.
func (m *ChatModel) WithHttpClient(httpClient *http.Client) *ChatModel {
	m.client = httpClient
	return m
}

// WithHeaders sets extra HTTP headers applied to every request.
func (m *ChatModel) WithHeaders(headers map[string]string) *ChatModel {
	m.headers = headers
	return m
}

// WithSystemMessageMode sets the system-message handling mode.
func (m *ChatModel) WithSystemMessageMode(mode SystemMessageMode) *ChatModel {
	m.systemMessageMode = mode
	return m
}

// buildRequest normalizes the call options into the serialized wire request
// plus the warnings accumulated along the way. Settings the gateway cannot
// express (topK, responseFormat, seed) are dropped with warnings; the
// opaque provider option objects are spliced in verbatim after
// serialization.
func (m *ChatModel) buildRequest(options provider.CallOptions, streaming bool) (json.RawMessage, []provider.CallWarning, error) {
	var warnings []provider.CallWarning

	if options.TopK != nil {
		warnings = append(warnings, provider.UnsupportedSettingWarning("topK"))
	}
	if options.ResponseFormat != nil {
		warnings = append(warnings, provider.UnsupportedSettingWarning("responseFormat"))
	}
	if options.Seed != nil {
		warnings = append(warnings, provider.UnsupportedSettingWarning("seed"))
	}

	opts := parseProviderOptions(options.ProviderOptions)

	messages, messageWarnings, err := convertMessages(options.Messages, m.systemMessageMode)
	if err != nil {
		return nil, warnings, err
	}
	warnings = append(warnings, messageWarnings...)

	tools, toolChoice, toolWarnings, err := prepareTools(options.Tools, options.ToolChoice)
	if err != nil {
		return nil, warnings, err
	}
	warnings = append(warnings, toolWarnings...)

	request := wireRequest{
		Messages:         messages,
		MaxTokens:        options.MaxOutputTokens,
		Temperature:      options.Temperature,
		TopP:             options.TopP,
		Stop:             options.StopSequences,
		PresencePenalty:  options.PresencePenalty,
		FrequencyPenalty: options.FrequencyPenalty,
		User:             opts.User,
		N:                opts.N,
		LogitBias:        opts.LogitBias,
		CostBias:         opts.CostBias,
		SemanticCache:    opts.SemanticCache,
		Tools:            tools,
		ToolChoice:       toolChoice,
	}
	if streaming {
		request.Stream = true
		request.StreamOptions = &wireStreamOptions{IncludeUsage: true}
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, warnings, fmt.Errorf("error marshaling request: %w", err)
	}

	body, err = mergeOpaqueOptions(body, opts)
	if err != nil {
		return nil, warnings, fmt.Errorf("error merging provider options: %w", err)
	}

	return body, warnings, nil
}

func (m *ChatModel) headerOptions(options provider.CallOptions) []utils.HeaderOption {
	var headers []utils.HeaderOption
	for key, value := range m.headers {
		headers = append(headers, utils.HeaderOption{Key: key, Value: value})
	}
	for key, value := range options.Headers {
		headers = append(headers, utils.HeaderOption{Key: key, Value: value})
	}
	return headers
}

// Generate performs a synchronous chat completion call.
func (m *ChatModel) Generate(ctx context.Context, options provider.CallOptions) (*provider.Response, error) {
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)

	if m.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	body, warnings, err := m.buildRequest(options, false)
	if err != nil {
		return nil, err
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, "adaptive"),
			observability.String(observability.AttrLLMEndpoint, m.baseURL),
			observability.Bool(observability.AttrLLMStreaming, false),
		)
	}
	if observer != nil {
		observer.Trace(ctx, "adaptive provider sending request",
			observability.String(observability.AttrLLMProvider, "adaptive"),
			observability.Int(observability.AttrRequestMessagesCount, len(options.Messages)),
			observability.Int(observability.AttrRequestToolsCount, len(options.Tools)),
			observability.Int(observability.AttrRequestWarningsCount, len(warnings)),
		)
	}

	url := m.baseURL + chatCompletionsEndpoint
	_, raw, err := utils.DoPostSync[json.RawMessage](ctx, m.client, url, m.apiKey, body, m.headerOptions(options)...)
	if err != nil {
		return nil, asAPIError(err)
	}
	if raw == nil {
		return nil, provider.ErrNoContent
	}

	wire, err := parseWireResponse(*raw)
	if err != nil {
		return nil, err
	}

	response, err := buildResponse(wire, warnings)
	if err != nil {
		return nil, err
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrLLMResponseID, response.Metadata.ID),
			observability.String(observability.AttrLLMModel, response.Metadata.Model),
			observability.String(observability.AttrLLMFinishReason, string(response.FinishReason)),
			observability.Int(observability.AttrLLMTokensInput, response.Usage.InputTokens),
			observability.Int(observability.AttrLLMTokensOutput, response.Usage.OutputTokens),
			observability.Int(observability.AttrLLMTokensTotal, response.Usage.TotalTokens),
		)
		if response.Provider != nil {
			span.SetAttributes(observability.String(observability.AttrLLMUpstreamProvider, response.Provider.Provider))
		}
	}

	return response, nil
}

// Stream performs a streaming chat completion call. The returned stream
// must be consumed; it holds the HTTP response body open until the iterator
// completes. Cancellation surfaces as an iterator error without a synthetic
// finish event: an aborted stream simply stops.
func (m *ChatModel) Stream(ctx context.Context, options provider.CallOptions) (*provider.Stream, error) {
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)

	if m.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	body, warnings, err := m.buildRequest(options, true)
	if err != nil {
		return nil, err
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, "adaptive"),
			observability.String(observability.AttrLLMEndpoint, m.baseURL),
			observability.Bool(observability.AttrLLMStreaming, true),
		)
	}
	if observer != nil {
		observer.Trace(ctx, "adaptive provider starting stream",
			observability.String(observability.AttrLLMProvider, "adaptive"),
			observability.Int(observability.AttrRequestMessagesCount, len(options.Messages)),
			observability.Int(observability.AttrRequestToolsCount, len(options.Tools)),
			observability.Int(observability.AttrRequestWarningsCount, len(warnings)),
		)
	}

	url := m.baseURL + chatCompletionsEndpoint
	httpResponse, err := utils.DoPostStream(ctx, m.client, url, m.apiKey, body, m.headerOptions(options)...)
	if err != nil {
		if observer != nil {
			observer.Trace(ctx, "streaming HTTP request failed", observability.Error(err))
		}
		return nil, asAPIError(err)
	}

	sseScanner := utils.NewSSEScanner(httpResponse.Body)
	state := newStreamState(warnings)

	iteratorFunc := func(yield func(provider.StreamEvent, error) bool) {
		defer utils.CloseWithLog(httpResponse.Body)

		if !yield(state.start(), nil) {
			return
		}

		for {
			if ctx.Err() != nil {
				yield(provider.StreamEvent{}, ctx.Err())
				return
			}

			payload, sseErr := sseScanner.Next()
			if sseErr == io.EOF {
				yield(state.flush(), nil)
				return
			}
			if sseErr != nil {
				yield(provider.StreamEvent{}, fmt.Errorf("SSE read error: %w", sseErr))
				return
			}

			for _, event := range state.reduce([]byte(payload)) {
				if !yield(event, nil) {
					return
				}
			}
		}
	}

	return provider.NewStream(iteratorFunc), nil
}
