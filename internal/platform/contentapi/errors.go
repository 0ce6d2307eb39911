package contentapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	Status  int
	Path    string
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("contentapi: %s: %s", e.Path, e.Message)
}

// IsStatus reports whether err is an HTTPError with the given status.
func IsStatus(err error, status int) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == status
}

// extractMessage pulls a message out of {"error": "..."} or
// {"error": {"message": "..."}}, falling back to "HTTP <status>".
func extractMessage(body []byte, status int) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Error) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Error, &s); err == nil && s != "" {
			return s
		}
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(envelope.Error, &obj); err == nil && obj.Message != "" {
			return obj.Message
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}
