package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/invoice-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("error encoding response")
	}
}

// writeReaderError maps a dashboard error kind to its API code, keeping the public message
func writeReaderError(w http.ResponseWriter, err error) {
	var readerErr *dashboard.Error
	if !errors.As(err, &readerErr) {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
		return
	}

	code := apiErrors.ErrStoreOperation
	if errors.Is(err, dashboard.ErrFormatting) {
		code = apiErrors.ErrFormatting
	}

	apiErrors.WriteError(w, code, readerErr.Message, nil)
}
