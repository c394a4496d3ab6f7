package provider

import "fmt"

// WarningType discriminates the CallWarning variants.
type WarningType string

const (
	// WarningUnsupportedSetting flags a generation setting with no wire
	// equivalent. The setting is dropped, never silently lost.
	WarningUnsupportedSetting WarningType = "unsupported-setting"
	// WarningUnsupportedTool flags a tool definition the wire format cannot
	// express.
	WarningUnsupportedTool WarningType = "unsupported-tool"
	// WarningOther carries a free-form degradation notice.
	WarningOther WarningType = "other"
)

// CallWarning records a non-fatal degradation applied while building the
// request. Warnings are attached to the sync Response and to the
// stream-start event.
type CallWarning struct {
	Type    WarningType `json:"type"`
	Setting string      `json:"setting,omitempty"`
	Tool    string      `json:"tool,omitempty"`
	Message string      `json:"message,omitempty"`
}

// UnsupportedSettingWarning creates an unsupported-setting warning.
func UnsupportedSettingWarning(setting string) CallWarning {
	return CallWarning{Type: WarningUnsupportedSetting, Setting: setting}
}

// UnsupportedToolWarning creates an unsupported-tool warning.
func UnsupportedToolWarning(tool string) CallWarning {
	return CallWarning{Type: WarningUnsupportedTool, Tool: tool}
}

// OtherWarning creates a free-form warning.
func OtherWarning(message string) CallWarning {
	return CallWarning{Type: WarningOther, Message: message}
}

func (w CallWarning) String() string {
	switch w.Type {
	case WarningUnsupportedSetting:
		return fmt.Sprintf("unsupported setting: %s", w.Setting)
	case WarningUnsupportedTool:
		return fmt.Sprintf("unsupported tool: %s", w.Tool)
	default:
		return w.Message
	}
}
