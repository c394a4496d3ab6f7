package adaptive

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/Egham-7/adaptive-ai-provider/provider"
)

var emptySchema = json.RawMessage(`{}`)

// prepareTools translates the tool configuration into wire form. Function
// tools are encoded; provider-defined tools have no wire equivalent and are
// dropped with a warning. The tool choice comes back as a bare policy
// string or the forced-function object; an unknown choice kind is fatal
// because silently changing the tool policy would change model behavior.
func prepareTools(tools []provider.ToolDefinition, choice *provider.ToolChoice) ([]wireTool, any, []provider.CallWarning, error) {
	var warnings []provider.CallWarning

	if len(tools) == 0 {
		return nil, nil, nil, nil
	}

	var wireTools []wireTool
	for _, tool := range tools {
		switch tool.Kind {
		case provider.ToolKindFunction:
			parameters := tool.Parameters
			if len(parameters) == 0 {
				parameters = emptySchema
			}
			wireTools = append(wireTools, wireTool{
				Type: "function",
				Function: wireFunctionDef{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  parameters,
				},
			})

		default:
			name := tool.Name
			if name == "" {
				name = tool.ID
			}
			warnings = append(warnings, provider.UnsupportedToolWarning(name))
		}
	}

	if choice == nil {
		return wireTools, nil, warnings, nil
	}

	switch choice.Kind {
	case provider.ToolChoiceKindAuto, provider.ToolChoiceKindNone, provider.ToolChoiceKindRequired:
		return wireTools, string(choice.Kind), warnings, nil

	case provider.ToolChoiceKindTool:
		forced := wireToolChoiceFunction{Type: "function"}
		forced.Function.Name = choice.ToolName
		return wireTools, forced, warnings, nil

	default:
		return nil, nil, warnings, provider.NewUnsupportedFunctionalityError(
			fmt.Sprintf("tool choice type: %s", choice.Kind))
	}
}
