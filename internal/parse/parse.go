package parse

import (
	"encoding/json"

	"github.com/kaptinlin/jsonrepair"
)

// emptyObject is the canonical fallback for absent or unrecoverable
// tool-call arguments.
const emptyObject = "{}"

// ObjectString normalizes s into a valid JSON object string. Valid objects
// pass through unchanged; malformed input is repaired with jsonrepair; empty
// or unrecoverable input degrades to "{}". The result is always safe to
// place verbatim into a wire request.
func ObjectString(s string) string {
	if s == "" {
		return emptyObject
	}
	if json.Valid([]byte(s)) {
		return s
	}

	repaired, err := jsonrepair.JSONRepair(s)
	if err != nil || !json.Valid([]byte(repaired)) {
		return emptyObject
	}
	return repaired
}

// MarshalObject serialises v to a JSON object string, degrading to "{}" on
// failure. Used when canonical tool-call arguments arrive as structured
// values instead of wire text.
func MarshalObject(v any) string {
	if v == nil {
		return emptyObject
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return emptyObject
	}
	return string(encoded)
}
