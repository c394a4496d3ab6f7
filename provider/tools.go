package provider

import "encoding/json"

// ToolKind discriminates the tool definition variants.
type ToolKind string

const (
	// ToolKindFunction is a caller-defined function tool described by a JSON
	// schema.
	ToolKindFunction ToolKind = "function"
	// ToolKindProviderDefined is a tool implemented by a specific backend
	// (web search, code execution, ...). The gateway wire format has no
	// equivalent, so these are dropped with a warning.
	ToolKindProviderDefined ToolKind = "provider-defined"
)

// ToolDefinition describes one tool the model may call.
type ToolDefinition struct {
	Kind        ToolKind        `json:"kind"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	// Parameters is the JSON schema for the function arguments. Nil is
	// encoded as an empty schema object.
	Parameters json.RawMessage `json:"parameters,omitempty"`
	// ID identifies a provider-defined tool (e.g. "openai.web_search").
	ID string `json:"id,omitempty"`
}

// FunctionTool creates a function tool definition.
func FunctionTool(name, description string, parameters json.RawMessage) ToolDefinition {
	return ToolDefinition{Kind: ToolKindFunction, Name: name, Description: description, Parameters: parameters}
}

// ProviderDefinedTool creates a provider-defined tool definition.
func ProviderDefinedTool(id, name string) ToolDefinition {
	return ToolDefinition{Kind: ToolKindProviderDefined, ID: id, Name: name}
}

// ToolChoiceKind enumerates the tool-choice policies. The set is closed:
// encoders switch over it exhaustively and fail with an
// UnsupportedFunctionalityError on an unknown value rather than silently
// falling through.
type ToolChoiceKind string

const (
	ToolChoiceKindAuto     ToolChoiceKind = "auto"
	ToolChoiceKindNone     ToolChoiceKind = "none"
	ToolChoiceKindRequired ToolChoiceKind = "required"
	ToolChoiceKindTool     ToolChoiceKind = "tool"
)

// ToolChoice selects how the model is allowed to use the provided tools.
// ToolName is only set for the "tool" kind, which forces a specific function.
type ToolChoice struct {
	Kind     ToolChoiceKind `json:"kind"`
	ToolName string         `json:"tool_name,omitempty"`
}

// ToolChoiceAuto lets the model decide whether to call a tool.
func ToolChoiceAuto() *ToolChoice { return &ToolChoice{Kind: ToolChoiceKindAuto} }

// ToolChoiceNone forbids tool calls.
func ToolChoiceNone() *ToolChoice { return &ToolChoice{Kind: ToolChoiceKindNone} }

// ToolChoiceRequired forces the model to call at least one tool.
func ToolChoiceRequired() *ToolChoice { return &ToolChoice{Kind: ToolChoiceKindRequired} }

// ToolChoiceTool forces the model to call the named function.
func ToolChoiceTool(name string) *ToolChoice {
	return &ToolChoice{Kind: ToolChoiceKindTool, ToolName: name}
}
