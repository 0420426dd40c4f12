package customerrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrFieldCount marks a script output line that does not split into
	// exactly seven comma-separated fields.
	ErrFieldCount = errors.New("invalid field count")
	// ErrBadValue marks a line whose seventh field is not a number.
	ErrBadValue = errors.New("invalid metric value")
	// ErrScriptRequired is returned when no script command is configured.
	ErrScriptRequired = errors.New("script command is required")
)

// ExecError reports a failed script execution. ExitCode is -1 when the
// process could not be started at all.
type ExecError struct {
	ExitCode int
	Stderr   string
}

func (e *ExecError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("command failed to start: %s", e.Stderr)
	}
	if e.Stderr == "" {
		return fmt.Sprintf("command exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("command exited with code %d: %s", e.ExitCode, e.Stderr)
}

// CommonError represents an error that can be rendered as a JSON HTTP response.
// It carries the HTTP status and a human-readable title/detail.
type CommonError struct {
	Title   string `json:"title"`
	Status  int    `json:"status"`
	Details string `json:"detail"`
}

// WriteError writes a JSON error response with the given HTTP status code.
// It sets Content-Type to "application/json", selects a default title/detail
// from the status code, and overrides the detail when customDetail is
// non-empty.
func WriteError(w http.ResponseWriter, status int, customDetail string) {
	title, defaultDetail := statusText(status)

	detail := defaultDetail
	if customDetail != "" {
		detail = customDetail
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(CommonError{
		Title:   title,
		Status:  status,
		Details: detail,
	})
}

func statusText(status int) (title, detail string) {
	switch status {
	case http.StatusNotFound:
		return "Not Found", "The requested resource could not be found"
	case http.StatusMethodNotAllowed:
		return "Method Not Allowed", "The resource does not support this method"
	case http.StatusInternalServerError:
		return "Resource temporarily unavailable", "Resource temporarily unavailable"
	default:
		return http.StatusText(status), "An error occurred while processing the request"
	}
}
