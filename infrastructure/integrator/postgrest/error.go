package postgrest

import (
	"fmt"
	"net/http"
)

// APIError is the error body PostgREST sends with non-2xx responses
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Code != "" {
		return fmt.Sprintf("status %d: %s (code: %s)", e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}
