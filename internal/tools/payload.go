package tools

import "encoding/json"

// errorPayload is the structured error object tools hand back to the model
// for recoverable domain misses.
type errorPayload struct {
	Error string `json:"error"`
}

// marshalResult serializes a tool result. Results are structs (not maps), so
// field order is fixed and repeated invocations with identical arguments
// produce byte-identical output.
func marshalResult(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// errorResult serializes a recoverable error payload. The Go error return is
// nil on purpose: the model is expected to read the payload and explain the
// miss to the user.
func errorResult(msg string) (string, error) {
	return marshalResult(errorPayload{Error: msg})
}
