package adaptive

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Egham-7/adaptive-ai-provider/internal/utils"
	"github.com/Egham-7/adaptive-ai-provider/provider"
)

// asAPIError converts a transport-level failure into a *provider.APIError
// when the backend reported one. Non-2xx responses carry a JSON payload of
// the form {"error": {"message", "type", "code"}}; when the payload is not
// that shape the raw body text becomes the message. Errors that are not
// status errors pass through unchanged.
func asAPIError(err error) error {
	var statusErr *utils.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	apiErr := &provider.APIError{StatusCode: statusErr.StatusCode}
	if payload := gjson.GetBytes(statusErr.Body, "error"); payload.IsObject() {
		wireErr := parseWireError(payload)
		apiErr.Message = wireErr.Message
		apiErr.Type = wireErr.Type
		apiErr.Code = wireErr.Code
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(utils.TruncateString(string(statusErr.Body), utils.DefaultMaxStringLength))
	}
	return apiErr
}
