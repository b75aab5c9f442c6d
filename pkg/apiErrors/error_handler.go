package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Error codes sent to clients
const (
	// Authentication
	ErrInvalidToken = "AUTH_006" // missing or invalid bearer token
	ErrExpiredToken = "AUTH_007"

	// Validation
	ErrInvalidRequest = "VAL_001"
	ErrInvalidFormat  = "VAL_003"

	// Resources
	ErrResourceNotFound = "RES_001"

	// Scheduled jobs
	ErrJobAlreadyRunning = "CRON_001"
	ErrUnknownJob        = "CRON_002"

	// Server
	ErrInternalServer  = "SRV_001"
	ErrStoreOperation  = "SRV_002" // remote store unreachable or failing
	ErrExternalService = "SRV_003"
	ErrFormatting      = "SRV_005" // store data could not be shaped into a response
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:      http.StatusUnauthorized,
	ErrExpiredToken:      http.StatusUnauthorized,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrInvalidFormat:     http.StatusBadRequest,
	ErrResourceNotFound:  http.StatusNotFound,
	ErrJobAlreadyRunning: http.StatusConflict,
	ErrUnknownJob:        http.StatusNotFound,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrStoreOperation:    http.StatusInternalServerError,
	ErrExternalService:   http.StatusBadGateway,
	ErrFormatting:        http.StatusInternalServerError,
}

// APIError is the body of every error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor returns the HTTP status of code, 500 for unknown codes
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError writes the standard error body with the status mapped from code
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps err in an APIError carrying code
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
