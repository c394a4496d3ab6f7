package provider

import "encoding/json"

// Role identifies who produced a message in a conversation. The set is
// closed: encoders switch over it exhaustively and reject unknown values
// instead of guessing.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ContentKind is the discriminator tag for ContentPart and ContentBlock.
type ContentKind string

const (
	ContentText       ContentKind = "text"
	ContentReasoning  ContentKind = "reasoning"
	ContentFile       ContentKind = "file"
	ContentToolCall   ContentKind = "tool-call"
	ContentToolResult ContentKind = "tool-result"
)

// FileData holds file content as either inline bytes or an external URL
// reference. MediaType is an IANA media type such as "image/png",
// "audio/wav" or "application/pdf"; the wildcard "image/*" is accepted and
// resolved by the encoder. Filename is optional and only meaningful for
// document parts.
type FileData struct {
	MediaType string `json:"media_type"`
	Data      []byte `json:"data,omitempty"`
	URL       string `json:"url,omitempty"`
	Filename  string `json:"filename,omitempty"`
}

// IsURL reports whether the part references external data instead of
// carrying inline bytes.
func (f *FileData) IsURL() bool {
	return f.URL != ""
}

// ToolCallData represents a model-initiated tool invocation. Arguments is
// the raw JSON object text exactly as exchanged on the wire.
type ToolCallData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolOutputType discriminates the representations a tool result can take.
type ToolOutputType string

const (
	// ToolOutputText is a plain text result.
	ToolOutputText ToolOutputType = "text"
	// ToolOutputErrorText is a plain text error description.
	ToolOutputErrorText ToolOutputType = "error-text"
	// ToolOutputJSON is a structured JSON result.
	ToolOutputJSON ToolOutputType = "json"
	// ToolOutputErrorJSON is a structured JSON error payload.
	ToolOutputErrorJSON ToolOutputType = "error-json"
	// ToolOutputContent is the legacy array-of-content representation.
	ToolOutputContent ToolOutputType = "content"
)

// ToolOutput is the result value carried by a tool-result part. Text is used
// for the text and error-text representations; Value holds the raw JSON for
// the structured representations.
type ToolOutput struct {
	Type  ToolOutputType  `json:"type"`
	Text  string          `json:"text,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// ToolResultData links a tool execution result back to the tool call that
// requested it.
type ToolResultData struct {
	ToolCallID string     `json:"tool_call_id"`
	Output     ToolOutput `json:"output"`
}

// ContentPart is a tagged union representing one part of a message. Kind
// selects which payload field is populated; all other fields are nil/empty.
type ContentPart struct {
	Kind       ContentKind     `json:"kind"`
	Text       string          `json:"text,omitempty"`
	File       *FileData       `json:"file,omitempty"`
	ToolCall   *ToolCallData   `json:"tool_call,omitempty"`
	ToolResult *ToolResultData `json:"tool_result,omitempty"`
}

// TextPart creates a text ContentPart.
func TextPart(text string) ContentPart {
	return ContentPart{Kind: ContentText, Text: text}
}

// ReasoningPart creates a reasoning ContentPart. Reasoning parts only appear
// in assistant messages.
func ReasoningPart(text string) ContentPart {
	return ContentPart{Kind: ContentReasoning, Text: text}
}

// FilePart creates a file ContentPart from inline bytes.
func FilePart(mediaType string, data []byte) ContentPart {
	return ContentPart{Kind: ContentFile, File: &FileData{MediaType: mediaType, Data: data}}
}

// FileURLPart creates a file ContentPart referencing external data.
func FileURLPart(mediaType, url string) ContentPart {
	return ContentPart{Kind: ContentFile, File: &FileData{MediaType: mediaType, URL: url}}
}

// ToolCallPart creates a tool-call ContentPart for an assistant message.
func ToolCallPart(id, name, arguments string) ContentPart {
	return ContentPart{Kind: ContentToolCall, ToolCall: &ToolCallData{ID: id, Name: name, Arguments: arguments}}
}

// ToolResultPart creates a tool-result ContentPart for a tool message.
func ToolResultPart(toolCallID string, output ToolOutput) ContentPart {
	return ContentPart{Kind: ContentToolResult, ToolResult: &ToolResultData{ToolCallID: toolCallID, Output: output}}
}

// Message is a single entry in the conversation. Content carries the plain
// string form; Parts carries the polymorphic form. A message uses one or the
// other, never both: when Parts is non-empty it takes precedence and Content
// is ignored by encoders. Role ordering is caller-defined and never
// reinterpreted.
type Message struct {
	Role    Role          `json:"role"`
	Content string        `json:"content,omitempty"`
	Parts   []ContentPart `json:"parts,omitempty"`
}

// UserMessage creates a plain text user message.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// SystemMessage creates a system instruction message.
func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

// AssistantMessage creates a plain text assistant message.
func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: text}
}
