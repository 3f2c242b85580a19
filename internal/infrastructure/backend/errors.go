package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lotes_backoffice/internal/usecase/interfaces"
)

var (
	ErrUnauthorized       = interfaces.ErrUnauthorized
	ErrNotFound           = interfaces.ErrNotFound
	ErrBackendUnavailable = interfaces.ErrBackendUnavailable
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
	Path    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %s answered %d: %s", e.Path, e.Status, e.Message)
}

// Is lets callers match status classes with errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// StatusOf returns the backend HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// parseErrorMessage reads the backend error body, whose message is either a
// string or a list of validation messages.
func parseErrorMessage(body []byte, status int) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Message) > 0 {
		var s string
		if err := json.Unmarshal(payload.Message, &s); err == nil && s != "" {
			return s
		}
		var list []string
		if err := json.Unmarshal(payload.Message, &list); err == nil && len(list) > 0 {
			return strings.Join(list, "; ")
		}
	}
	if payload.Error != "" {
		return payload.Error
	}
	if msg := strings.TrimSpace(string(body)); msg != "" && len(msg) < 300 {
		return msg
	}
	return http.StatusText(status)
}
