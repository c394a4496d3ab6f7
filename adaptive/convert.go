package adaptive

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/Egham-7/adaptive-ai-provider/internal/parse"
	"github.com/Egham-7/adaptive-ai-provider/provider"
)

// convertMessages translates the canonical prompt into wire messages.
// System handling follows mode: pass through as-is or drop with a warning.
// A single-text user message collapses to the plain string form, assistant
// parts fold into one wire message, and tool messages fan out to one wire
// message per tool-result part. Unknown roles and inexpressible content
// fail before any network traffic.
func convertMessages(messages []provider.Message, mode SystemMessageMode) ([]wireMessage, []provider.CallWarning, error) {
	var out []wireMessage
	var warnings []provider.CallWarning

	for _, message := range messages {
		switch message.Role {
		case provider.RoleSystem:
			switch mode {
			case SystemMessageModeSystem:
				out = append(out, wireMessage{Role: "system", Content: messageText(message)})
			case SystemMessageModeRemove:
				warnings = append(warnings, provider.OtherWarning("system messages are removed for this model"))
			default:
				return nil, warnings, provider.NewUnsupportedFunctionalityError(
					fmt.Sprintf("system message mode: %s", mode))
			}

		case provider.RoleUser:
			converted, err := convertUserMessage(message)
			if err != nil {
				return nil, warnings, err
			}
			out = append(out, converted)

		case provider.RoleAssistant:
			converted, err := convertAssistantMessage(message)
			if err != nil {
				return nil, warnings, err
			}
			out = append(out, converted)

		case provider.RoleTool:
			out = append(out, convertToolMessage(message)...)

		default:
			return nil, warnings, provider.NewUnsupportedFunctionalityError(
				fmt.Sprintf("message role: %s", message.Role))
		}
	}

	return out, warnings, nil
}

func messageText(message provider.Message) string {
	if len(message.Parts) == 0 {
		return message.Content
	}
	var text strings.Builder
	for _, part := range message.Parts {
		if part.Kind == provider.ContentText {
			text.WriteString(part.Text)
		}
	}
	return text.String()
}

// convertUserMessage keeps the plain-string content form whenever the
// message is text only; the structured array form is reserved for
// multimodal content.
func convertUserMessage(message provider.Message) (wireMessage, error) {
	if len(message.Parts) == 0 {
		return wireMessage{Role: "user", Content: message.Content}, nil
	}
	if len(message.Parts) == 1 && message.Parts[0].Kind == provider.ContentText {
		return wireMessage{Role: "user", Content: message.Parts[0].Text}, nil
	}

	parts := make([]wireContentPart, 0, len(message.Parts))
	for index, part := range message.Parts {
		converted, err := encodeUserPart(part, index)
		if err != nil {
			return wireMessage{}, err
		}
		parts = append(parts, converted)
	}
	return wireMessage{Role: "user", Content: parts}, nil
}

// encodeUserPart maps one user content part onto the wire vocabulary. The
// media-type dispatch is the whole policy: images become image_url entries
// (inline data as a data URI), wav/mp3 audio becomes input_audio, PDFs
// become file entries, everything else is rejected by name.
func encodeUserPart(part provider.ContentPart, index int) (wireContentPart, error) {
	switch part.Kind {
	case provider.ContentText:
		return wireContentPart{Type: "text", Text: part.Text}, nil

	case provider.ContentFile:
		return encodeFilePart(part.File, index)

	default:
		return wireContentPart{}, provider.NewUnsupportedFunctionalityError(
			fmt.Sprintf("content part type: %s", part.Kind))
	}
}

func encodeFilePart(file *provider.FileData, index int) (wireContentPart, error) {
	mediaType := file.MediaType

	switch {
	case strings.HasPrefix(mediaType, "image/"):
		if file.IsURL() {
			return wireContentPart{Type: "image_url", ImageURL: &wireImageURL{URL: file.URL}}, nil
		}
		// The wildcard arrives when the caller does not know the exact
		// subtype; the gateway requires a concrete one.
		if mediaType == "image/*" {
			mediaType = "image/jpeg"
		}
		return wireContentPart{
			Type:     "image_url",
			ImageURL: &wireImageURL{URL: dataURI(mediaType, file.Data)},
		}, nil

	case mediaType == "audio/wav" || mediaType == "audio/mp3" || mediaType == "audio/mpeg":
		if file.IsURL() {
			return wireContentPart{}, provider.NewUnsupportedFunctionalityError("audio file parts with URLs")
		}
		format := "mp3"
		if mediaType == "audio/wav" {
			format = "wav"
		}
		return wireContentPart{
			Type:       "input_audio",
			InputAudio: &wireInputAudio{Data: base64.StdEncoding.EncodeToString(file.Data), Format: format},
		}, nil

	case mediaType == "application/pdf":
		if file.IsURL() {
			return wireContentPart{}, provider.NewUnsupportedFunctionalityError("PDF file parts with URLs")
		}
		filename := file.Filename
		if filename == "" {
			filename = fmt.Sprintf("part-%d.pdf", index)
		}
		return wireContentPart{
			Type: "file",
			File: &wireFile{Filename: filename, FileData: dataURI(mediaType, file.Data)},
		}, nil

	default:
		return wireContentPart{}, provider.NewUnsupportedFunctionalityError(
			fmt.Sprintf("file part media type %s", mediaType))
	}
}

func dataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// convertAssistantMessage folds all assistant parts into one wire message:
// text concatenated into content, reasoning into reasoning_content, files
// into generated_files, tool calls with arguments normalized to a JSON
// object string.
func convertAssistantMessage(message provider.Message) (wireMessage, error) {
	if len(message.Parts) == 0 {
		return wireMessage{Role: "assistant", Content: message.Content}, nil
	}

	var text strings.Builder
	var reasoning strings.Builder
	var files []wireGeneratedFile
	var toolCalls []wireToolCall

	for _, part := range message.Parts {
		switch part.Kind {
		case provider.ContentText:
			text.WriteString(part.Text)

		case provider.ContentReasoning:
			reasoning.WriteString(part.Text)

		case provider.ContentFile:
			if part.File.IsURL() {
				return wireMessage{}, provider.NewUnsupportedFunctionalityError("URL-referenced generated files")
			}
			files = append(files, wireGeneratedFile{
				MediaType: part.File.MediaType,
				Data:      base64.StdEncoding.EncodeToString(part.File.Data),
			})

		case provider.ContentToolCall:
			toolCalls = append(toolCalls, wireToolCall{
				ID:   part.ToolCall.ID,
				Type: "function",
				Function: wireFunctionCall{
					Name:      part.ToolCall.Name,
					Arguments: parse.ObjectString(part.ToolCall.Arguments),
				},
			})

		default:
			return wireMessage{}, provider.NewUnsupportedFunctionalityError(
				fmt.Sprintf("assistant content part type: %s", part.Kind))
		}
	}

	converted := wireMessage{
		Role:             "assistant",
		Content:          text.String(),
		ReasoningContent: reasoning.String(),
		GeneratedFiles:   files,
		ToolCalls:        toolCalls,
	}
	return converted, nil
}

// convertToolMessage fans a tool message out to one wire message per
// tool-result part. Results with no extractable text are skipped rather
// than sent as empty messages.
func convertToolMessage(message provider.Message) []wireMessage {
	var out []wireMessage
	for _, part := range message.Parts {
		if part.Kind != provider.ContentToolResult || part.ToolResult == nil {
			continue
		}
		content := toolOutputText(part.ToolResult.Output)
		if content == "" {
			continue
		}
		out = append(out, wireMessage{
			Role:       "tool",
			Content:    content,
			ToolCallID: part.ToolResult.ToolCallID,
		})
	}
	return out
}

// toolOutputText flattens a tool result to the wire's plain-string content.
// Structured values travel as their JSON text; unknown representations
// degrade to empty (and the message is then skipped).
func toolOutputText(output provider.ToolOutput) string {
	switch output.Type {
	case provider.ToolOutputText, provider.ToolOutputErrorText:
		return output.Text
	case provider.ToolOutputJSON, provider.ToolOutputErrorJSON, provider.ToolOutputContent:
		return string(output.Value)
	default:
		return ""
	}
}
