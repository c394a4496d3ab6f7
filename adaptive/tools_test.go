package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Egham-7/adaptive-ai-provider/provider"
)

func TestPrepareTools_Empty(t *testing.T) {
	tools, choice, warnings, err := prepareTools(nil, provider.ToolChoiceAuto())
	require.NoError(t, err)
	assert.Nil(t, tools)
	assert.Nil(t, choice)
	assert.Empty(t, warnings)
}

func TestPrepareTools_FunctionTool(t *testing.T) {
	schema := []byte(`{"type":"object","properties":{"city":{"type":"string"}}}`)
	tools, choice, warnings, err := prepareTools([]provider.ToolDefinition{
		provider.FunctionTool("get_weather", "Current weather for a city", schema),
	}, nil)
	require.NoError(t, err)
	require.Empty(t, warnings)
	assert.Nil(t, choice)

	require.Len(t, tools, 1)
	assert.Equal(t, "function", tools[0].Type)
	assert.Equal(t, "get_weather", tools[0].Function.Name)
	assert.Equal(t, "Current weather for a city", tools[0].Function.Description)
	assert.JSONEq(t, string(schema), string(tools[0].Function.Parameters))
}

func TestPrepareTools_NilParametersBecomeEmptySchema(t *testing.T) {
	tools, _, _, err := prepareTools([]provider.ToolDefinition{
		provider.FunctionTool("ping", "", nil),
	}, nil)
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "{}", string(tools[0].Function.Parameters))
}

func TestPrepareTools_ProviderDefinedDroppedWithWarning(t *testing.T) {
	tools, _, warnings, err := prepareTools([]provider.ToolDefinition{
		provider.ProviderDefinedTool("openai.web_search", "web_search"),
		provider.FunctionTool("get_weather", "", nil),
	}, nil)
	require.NoError(t, err)

	require.Len(t, tools, 1)
	assert.Equal(t, "get_weather", tools[0].Function.Name)
	require.Len(t, warnings, 1)
	assert.Equal(t, provider.WarningUnsupportedTool, warnings[0].Type)
	assert.Equal(t, "web_search", warnings[0].Tool)
}

func TestPrepareTools_ChoicePolicies(t *testing.T) {
	definitions := []provider.ToolDefinition{provider.FunctionTool("get_weather", "", nil)}

	for _, kind := range []*provider.ToolChoice{
		provider.ToolChoiceAuto(),
		provider.ToolChoiceNone(),
		provider.ToolChoiceRequired(),
	} {
		_, choice, _, err := prepareTools(definitions, kind)
		require.NoError(t, err)
		assert.Equal(t, string(kind.Kind), choice)
	}
}

func TestPrepareTools_ChoiceForcesFunction(t *testing.T) {
	_, choice, _, err := prepareTools(
		[]provider.ToolDefinition{provider.FunctionTool("get_weather", "", nil)},
		provider.ToolChoiceTool("get_weather"),
	)
	require.NoError(t, err)

	forced, ok := choice.(wireToolChoiceFunction)
	require.True(t, ok)
	assert.Equal(t, "function", forced.Type)
	assert.Equal(t, "get_weather", forced.Function.Name)
}

func TestPrepareTools_UnknownChoiceKindFails(t *testing.T) {
	_, _, _, err := prepareTools(
		[]provider.ToolDefinition{provider.FunctionTool("get_weather", "", nil)},
		&provider.ToolChoice{Kind: provider.ToolChoiceKind("any")},
	)
	var unsupported *provider.UnsupportedFunctionalityError
	require.ErrorAs(t, err, &unsupported)
}
