package handler

import (
	"net/http"

	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/dashboard"
)

func GetRevenue(reader dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		revenue, err := reader.FetchRevenue(r.Context())
		if err != nil {
			writeReaderError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, revenue)
	}
}

func GetLatestInvoices(reader dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest, err := reader.FetchLatestInvoices(r.Context())
		if err != nil {
			writeReaderError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, latest)
	}
}

func GetCardData(reader dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := reader.FetchCardData(r.Context())
		if err != nil {
			writeReaderError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, cards)
	}
}
