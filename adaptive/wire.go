package adaptive

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// wireRequest is the outbound chat completions payload. Field names mirror
// the gateway API exactly; optional settings are pointers so unset values
// are omitted rather than sent as zeroes. Opaque routing and caching
// objects (model_router, fallback, prompt_cache, prompt_response_cache) are
// not part of this struct: they are spliced in verbatim after serialization.
type wireRequest struct {
	Messages         []wireMessage      `json:"messages"`
	MaxTokens        *int               `json:"max_tokens,omitempty"`
	Temperature      *float64           `json:"temperature,omitempty"`
	TopP             *float64           `json:"top_p,omitempty"`
	Stop             []string           `json:"stop,omitempty"`
	PresencePenalty  *float64           `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float64           `json:"frequency_penalty,omitempty"`
	User             string             `json:"user,omitempty"`
	N                *int               `json:"n,omitempty"`
	LogitBias        map[string]float64 `json:"logit_bias,omitempty"`
	CostBias         *float64           `json:"cost_bias,omitempty"`
	SemanticCache    *wireSemanticCache `json:"semantic_cache,omitempty"`
	Tools            []wireTool         `json:"tools,omitempty"`
	ToolChoice       any                `json:"tool_choice,omitempty"`
	Stream           bool               `json:"stream,omitempty"`
	StreamOptions    *wireStreamOptions `json:"stream_options,omitempty"`
}

// wireSemanticCache configures the gateway's semantic response cache.
type wireSemanticCache struct {
	Enabled           bool     `json:"enabled"`
	SemanticThreshold *float64 `json:"semantic_threshold,omitempty"`
}

type wireStreamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

// wireMessage is one conversation entry on the wire. Content is either a
// plain string or a []wireContentPart; the remaining fields are populated
// only for the roles that use them.
type wireMessage struct {
	Role             string              `json:"role"`
	Content          any                 `json:"content,omitempty"`
	ReasoningContent string              `json:"reasoning_content,omitempty"`
	GeneratedFiles   []wireGeneratedFile `json:"generated_files,omitempty"`
	ToolCalls        []wireToolCall      `json:"tool_calls,omitempty"`
	ToolCallID       string              `json:"tool_call_id,omitempty"`
}

type wireContentPart struct {
	Type       string          `json:"type"`
	Text       string          `json:"text,omitempty"`
	ImageURL   *wireImageURL   `json:"image_url,omitempty"`
	InputAudio *wireInputAudio `json:"input_audio,omitempty"`
	File       *wireFile       `json:"file,omitempty"`
}

type wireImageURL struct {
	URL string `json:"url"`
}

type wireInputAudio struct {
	Data   string `json:"data"`
	Format string `json:"format"`
}

type wireFile struct {
	Filename string `json:"filename"`
	FileData string `json:"file_data"`
}

type wireGeneratedFile struct {
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type wireToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function wireFunctionCall `json:"function"`
}

type wireFunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type wireTool struct {
	Type     string          `json:"type"`
	Function wireFunctionDef `json:"function"`
}

type wireFunctionDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters"`
}

// wireToolChoiceFunction is the object form of tool_choice that forces a
// specific function. The policy forms (auto/none/required) go out as bare
// strings instead.
type wireToolChoiceFunction struct {
	Type     string `json:"type"`
	Function struct {
		Name string `json:"name"`
	} `json:"function"`
}

// Inbound payloads are decoded with gjson rather than struct tags: the
// gateway has shipped both snake_case and camelCase spellings for several
// fields (tool_calls/toolCalls, reasoning_content/reasoning,
// finish_reason/finishReason, media_type/mediaType), and the drift is
// resolved here, once, so nothing downstream ever sees both spellings.

type wireResponse struct {
	ID       string
	Model    string
	Created  int64
	Provider string
	Choices  []wireChoice
	Usage    *wireUsage
}

type wireChoice struct {
	Message      wireAssistantPayload
	FinishReason string
}

type wireAssistantPayload struct {
	Content        string
	Reasoning      string
	ToolCalls      []wireToolCall
	GeneratedFiles []wireGeneratedFile
}

type wireUsage struct {
	PromptTokens      int
	CompletionTokens  int
	TotalTokens       int
	ReasoningTokens   int
	CachedInputTokens int
}

// wireChunk is one parsed SSE data payload. Exactly one variant is active:
// Err for the explicit error variant, otherwise the data fields.
type wireChunk struct {
	Err *wireError

	ID       string
	Model    string
	Created  int64
	Provider string
	Choices  []wireChunkChoice
	Usage    *wireUsage
}

type wireChunkChoice struct {
	Delta        *wireDelta
	FinishReason string
}

// wireDelta is the incremental payload of a chunk choice. Content and
// Reasoning are pointers because the gateway distinguishes an absent field
// from an empty-string append.
type wireDelta struct {
	Content        *string
	Reasoning      *string
	ToolCalls      []wireToolCall
	GeneratedFiles []wireGeneratedFile
}

// wireError is the backend error payload, `{"error": {...}}`. Code is
// stringified because the gateway emits both string and numeric codes.
type wireError struct {
	Message string
	Type    string
	Code    string
}

// pick returns the first of keys that exists on v. It is the single place
// where the snake_case/camelCase drift is absorbed.
func pick(v gjson.Result, keys ...string) gjson.Result {
	for _, key := range keys {
		if r := v.Get(key); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}

func parseWireToolCalls(v gjson.Result) []wireToolCall {
	if !v.IsArray() {
		return nil
	}
	var calls []wireToolCall
	for _, entry := range v.Array() {
		function := entry.Get("function")
		calls = append(calls, wireToolCall{
			ID:   entry.Get("id").String(),
			Type: entry.Get("type").String(),
			Function: wireFunctionCall{
				Name:      function.Get("name").String(),
				Arguments: function.Get("arguments").String(),
			},
		})
	}
	return calls
}

func parseWireGeneratedFiles(v gjson.Result) []wireGeneratedFile {
	if !v.IsArray() {
		return nil
	}
	var files []wireGeneratedFile
	for _, entry := range v.Array() {
		files = append(files, wireGeneratedFile{
			MediaType: pick(entry, "media_type", "mediaType").String(),
			Data:      entry.Get("data").String(),
		})
	}
	return files
}

func parseWireUsage(v gjson.Result) *wireUsage {
	if !v.IsObject() {
		return nil
	}
	return &wireUsage{
		PromptTokens:      int(pick(v, "prompt_tokens", "promptTokens").Int()),
		CompletionTokens:  int(pick(v, "completion_tokens", "completionTokens").Int()),
		TotalTokens:       int(pick(v, "total_tokens", "totalTokens").Int()),
		ReasoningTokens:   int(pick(v, "reasoning_tokens", "reasoningTokens").Int()),
		CachedInputTokens: int(pick(v, "cached_input_tokens", "cachedInputTokens").Int()),
	}
}

func parseWireError(v gjson.Result) *wireError {
	return &wireError{
		Message: v.Get("message").String(),
		Type:    v.Get("type").String(),
		Code:    v.Get("code").String(),
	}
}

// parseWireResponse decodes a synchronous chat completions response. A
// payload without a choices array fails: the sync path has no in-band error
// channel, so a malformed body is fatal.
func parseWireResponse(data []byte) (*wireResponse, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("response is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	choices := root.Get("choices")
	if !choices.IsArray() {
		return nil, fmt.Errorf("response has no choices array")
	}

	resp := &wireResponse{
		ID:       root.Get("id").String(),
		Model:    root.Get("model").String(),
		Created:  root.Get("created").Int(),
		Provider: root.Get("provider").String(),
		Usage:    parseWireUsage(root.Get("usage")),
	}

	for _, entry := range choices.Array() {
		choice := wireChoice{
			FinishReason: pick(entry, "finish_reason", "finishReason").String(),
		}
		if message := entry.Get("message"); message.Exists() {
			choice.Message = wireAssistantPayload{
				Content:        message.Get("content").String(),
				Reasoning:      pick(message, "reasoning_content", "reasoning").String(),
				ToolCalls:      parseWireToolCalls(pick(message, "tool_calls", "toolCalls")),
				GeneratedFiles: parseWireGeneratedFiles(pick(message, "generated_files", "generatedFiles")),
			}
		}
		resp.Choices = append(resp.Choices, choice)
	}

	return resp, nil
}

// parseWireChunk decodes one SSE data payload. Variant selection is tagged:
// a payload with an "error" object is the error variant, a payload with a
// choices array is the data variant, and anything else (including invalid
// JSON) is a parse failure the caller surfaces as an in-band error event.
func parseWireChunk(data []byte) (*wireChunk, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("stream chunk is not valid JSON")
	}
	root := gjson.ParseBytes(data)

	if errPayload := root.Get("error"); errPayload.IsObject() {
		return &wireChunk{Err: parseWireError(errPayload)}, nil
	}

	choices := root.Get("choices")
	if !choices.IsArray() {
		return nil, fmt.Errorf("stream chunk has no choices array")
	}

	chunk := &wireChunk{
		ID:       root.Get("id").String(),
		Model:    root.Get("model").String(),
		Created:  root.Get("created").Int(),
		Provider: root.Get("provider").String(),
		Usage:    parseWireUsage(root.Get("usage")),
	}

	for _, entry := range choices.Array() {
		choice := wireChunkChoice{}
		if reason := pick(entry, "finish_reason", "finishReason"); reason.Exists() && reason.Type != gjson.Null {
			choice.FinishReason = reason.String()
		}
		if delta := entry.Get("delta"); delta.IsObject() {
			choice.Delta = parseWireDelta(delta)
		}
		chunk.Choices = append(chunk.Choices, choice)
	}

	return chunk, nil
}

func parseWireDelta(v gjson.Result) *wireDelta {
	delta := &wireDelta{
		ToolCalls:      parseWireToolCalls(pick(v, "tool_calls", "toolCalls")),
		GeneratedFiles: parseWireGeneratedFiles(pick(v, "generated_files", "generatedFiles")),
	}
	if content := v.Get("content"); content.Exists() && content.Type != gjson.Null {
		text := content.String()
		delta.Content = &text
	}
	if reasoning := pick(v, "reasoning_content", "reasoning"); reasoning.Exists() && reasoning.Type != gjson.Null {
		text := reasoning.String()
		delta.Reasoning = &text
	}
	return delta
}
