package adaptive

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Egham-7/adaptive-ai-provider/provider"
)

func TestConvertMessages_SingleTextPartCollapsesToString(t *testing.T) {
	messages, warnings, err := convertMessages([]provider.Message{
		{Role: provider.RoleUser, Parts: []provider.ContentPart{provider.TextPart("hi")}},
	}, SystemMessageModeSystem)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, messages, 1)

	assert.Equal(t, "user", messages[0].Role)
	assert.Equal(t, "hi", messages[0].Content)
}

func TestConvertMessages_MultiplePartsUseStructuredForm(t *testing.T) {
	messages, _, err := convertMessages([]provider.Message{
		{Role: provider.RoleUser, Parts: []provider.ContentPart{
			provider.TextPart("look at this"),
			provider.FileURLPart("image/png", "https://example.com/cat.png"),
		}},
	}, SystemMessageModeSystem)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	parts, ok := messages[0].Content.([]wireContentPart)
	require.True(t, ok, "expected structured content parts")
	require.Len(t, parts, 2)
	assert.Equal(t, "text", parts[0].Type)
	assert.Equal(t, "look at this", parts[0].Text)
	assert.Equal(t, "image_url", parts[1].Type)
	assert.Equal(t, "https://example.com/cat.png", parts[1].ImageURL.URL)
}

// A structured single text part and the plain string form must encode
// identically, so re-encoding a decoded message reproduces the collapsed
// form.
func TestConvertMessages_SingleTextRoundTrip(t *testing.T) {
	fromParts, _, err := convertMessages([]provider.Message{
		{Role: provider.RoleUser, Parts: []provider.ContentPart{provider.TextPart("hi")}},
	}, SystemMessageModeSystem)
	require.NoError(t, err)

	fromString, _, err := convertMessages([]provider.Message{
		provider.UserMessage("hi"),
	}, SystemMessageModeSystem)
	require.NoError(t, err)

	assert.Equal(t, fromString, fromParts)
}

func TestConvertMessages_SystemModes(t *testing.T) {
	prompt := []provider.Message{
		provider.SystemMessage("be terse"),
		provider.UserMessage("hi"),
	}

	messages, warnings, err := convertMessages(prompt, SystemMessageModeSystem)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "be terse", messages[0].Content)

	messages, warnings, err = convertMessages(prompt, SystemMessageModeRemove)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].Role)
	require.Len(t, warnings, 1)
	assert.Equal(t, provider.WarningOther, warnings[0].Type)
}

func TestConvertMessages_UnknownSystemModeFails(t *testing.T) {
	_, _, err := convertMessages([]provider.Message{
		provider.SystemMessage("be terse"),
	}, SystemMessageMode("developer"))
	var unsupported *provider.UnsupportedFunctionalityError
	require.ErrorAs(t, err, &unsupported)
}

func TestConvertMessages_UnknownRoleFails(t *testing.T) {
	_, _, err := convertMessages([]provider.Message{
		{Role: provider.Role("critic"), Content: "hm"},
	}, SystemMessageModeSystem)
	var unsupported *provider.UnsupportedFunctionalityError
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, err.Error(), "critic")
}

func TestEncodeFilePart_ImageWildcardBecomesJpegDataURI(t *testing.T) {
	data := []byte{0xff, 0xd8, 0xff}
	part, err := encodeFilePart(&provider.FileData{MediaType: "image/*", Data: data}, 0)
	require.NoError(t, err)

	require.NotNil(t, part.ImageURL)
	expected := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
	assert.Equal(t, expected, part.ImageURL.URL)
}

func TestEncodeFilePart_ImageURLPassesThrough(t *testing.T) {
	part, err := encodeFilePart(&provider.FileData{MediaType: "image/png", URL: "https://example.com/a.png"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "image_url", part.Type)
	assert.Equal(t, "https://example.com/a.png", part.ImageURL.URL)
}

func TestEncodeFilePart_Audio(t *testing.T) {
	data := []byte("RIFF")

	part, err := encodeFilePart(&provider.FileData{MediaType: "audio/wav", Data: data}, 0)
	require.NoError(t, err)
	assert.Equal(t, "input_audio", part.Type)
	assert.Equal(t, "wav", part.InputAudio.Format)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), part.InputAudio.Data)

	part, err = encodeFilePart(&provider.FileData{MediaType: "audio/mpeg", Data: data}, 0)
	require.NoError(t, err)
	assert.Equal(t, "mp3", part.InputAudio.Format)

	_, err = encodeFilePart(&provider.FileData{MediaType: "audio/mp3", URL: "https://example.com/a.mp3"}, 0)
	var unsupported *provider.UnsupportedFunctionalityError
	require.ErrorAs(t, err, &unsupported)
}

func TestEncodeFilePart_PDF(t *testing.T) {
	data := []byte("%PDF-1.4")

	part, err := encodeFilePart(&provider.FileData{MediaType: "application/pdf", Data: data, Filename: "report.pdf"}, 3)
	require.NoError(t, err)
	assert.Equal(t, "file", part.Type)
	assert.Equal(t, "report.pdf", part.File.Filename)

	part, err = encodeFilePart(&provider.FileData{MediaType: "application/pdf", Data: data}, 3)
	require.NoError(t, err)
	assert.Equal(t, "part-3.pdf", part.File.Filename)
	assert.Equal(t, "data:application/pdf;base64,"+base64.StdEncoding.EncodeToString(data), part.File.FileData)

	_, err = encodeFilePart(&provider.FileData{MediaType: "application/pdf", URL: "https://example.com/r.pdf"}, 0)
	var unsupported *provider.UnsupportedFunctionalityError
	require.ErrorAs(t, err, &unsupported)
}

func TestEncodeFilePart_UnknownMediaTypeFailsByName(t *testing.T) {
	_, err := encodeFilePart(&provider.FileData{MediaType: "video/mp4", Data: []byte{0}}, 0)
	var unsupported *provider.UnsupportedFunctionalityError
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, err.Error(), "video/mp4")
}

func TestConvertAssistantMessage_FoldsParts(t *testing.T) {
	fileData := []byte{1, 2, 3}
	message, err := convertAssistantMessage(provider.Message{
		Role: provider.RoleAssistant,
		Parts: []provider.ContentPart{
			provider.TextPart("The answer "),
			provider.ReasoningPart("thinking about it"),
			provider.TextPart("is 42."),
			provider.FilePart("image/png", fileData),
			provider.ToolCallPart("call_1", "lookup", `{"q":"x"}`),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "The answer is 42.", message.Content)
	assert.Equal(t, "thinking about it", message.ReasoningContent)
	require.Len(t, message.GeneratedFiles, 1)
	assert.Equal(t, "image/png", message.GeneratedFiles[0].MediaType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(fileData), message.GeneratedFiles[0].Data)
	require.Len(t, message.ToolCalls, 1)
	assert.Equal(t, "call_1", message.ToolCalls[0].ID)
	assert.Equal(t, "function", message.ToolCalls[0].Type)
	assert.Equal(t, "lookup", message.ToolCalls[0].Function.Name)
	assert.Equal(t, `{"q":"x"}`, message.ToolCalls[0].Function.Arguments)
}

func TestConvertAssistantMessage_MalformedToolArgumentsRepaired(t *testing.T) {
	message, err := convertAssistantMessage(provider.Message{
		Role:  provider.RoleAssistant,
		Parts: []provider.ContentPart{provider.ToolCallPart("call_1", "lookup", "")},
	})
	require.NoError(t, err)
	require.Len(t, message.ToolCalls, 1)
	assert.Equal(t, "{}", message.ToolCalls[0].Function.Arguments)
}

func TestConvertToolMessage_FanOutAndSkipEmpty(t *testing.T) {
	messages := convertToolMessage(provider.Message{
		Role: provider.RoleTool,
		Parts: []provider.ContentPart{
			provider.ToolResultPart("call_1", provider.ToolOutput{Type: provider.ToolOutputText, Text: "sunny"}),
			provider.ToolResultPart("call_2", provider.ToolOutput{Type: provider.ToolOutputText, Text: ""}),
			provider.ToolResultPart("call_3", provider.ToolOutput{Type: provider.ToolOutputJSON, Value: []byte(`{"ok":true}`)}),
		},
	})
	require.Len(t, messages, 2)

	assert.Equal(t, "tool", messages[0].Role)
	assert.Equal(t, "call_1", messages[0].ToolCallID)
	assert.Equal(t, "sunny", messages[0].Content)
	assert.Equal(t, "call_3", messages[1].ToolCallID)
	assert.Equal(t, `{"ok":true}`, messages[1].Content)
}

func TestToolOutputText_ErrorRepresentations(t *testing.T) {
	assert.Equal(t, "boom", toolOutputText(provider.ToolOutput{Type: provider.ToolOutputErrorText, Text: "boom"}))
	assert.Equal(t, `{"err":1}`, toolOutputText(provider.ToolOutput{Type: provider.ToolOutputErrorJSON, Value: []byte(`{"err":1}`)}))
	assert.Equal(t, "", toolOutputText(provider.ToolOutput{Type: provider.ToolOutputType("exotic")}))
}
