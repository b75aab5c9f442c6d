package handler

import (
	"net/http"

	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/dashboard"
)

func ListCustomers(reader dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := reader.FetchCustomers(r.Context())
		if err != nil {
			writeReaderError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, customers)
	}
}

func GetCustomersTable(reader dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := reader.FetchFilteredCustomers(r.Context(), r.URL.Query().Get("query"))
		if err != nil {
			writeReaderError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, table)
	}
}
