package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/invoice-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
	"github.com/vfg2006/invoice-dashboard-api/pkg/utils"
)

// defaultQueryAmount is the amount looked up by /v1/query when none is given
const defaultQueryAmount = 666

type invoicesPagesResponse struct {
	TotalPages int `json:"total_pages"`
}

func ListInvoices(reader dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		page := utils.ParsePage(r)

		invoices, err := reader.FetchFilteredInvoices(r.Context(), query, page)
		if err != nil {
			writeReaderError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, invoices)
	}
}

func GetInvoicesPages(reader dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := reader.FetchInvoicesPages(r.Context(), r.URL.Query().Get("query"))
		if err != nil {
			writeReaderError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, invoicesPagesResponse{TotalPages: pages})
	}
}

func GetInvoice(reader dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		invoice, err := reader.FetchInvoiceByID(r.Context(), id)
		if err != nil {
			writeReaderError(w, err)
			return
		}

		if invoice == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Invoice not found.", map[string]string{"id": id})
			return
		}

		writeJSON(w, r, http.StatusOK, invoice)
	}
}

func QueryInvoicesByAmount(reader dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amount, err := utils.ParseAmount(r, "amount", defaultQueryAmount)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("invalid amount parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "amount must be an integer number of cents", apiErrors.FromError(err, apiErrors.ErrInvalidFormat))
			return
		}

		rows, err := reader.FetchInvoicesByAmount(r.Context(), amount)
		if err != nil {
			writeReaderError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, rows)
	}
}
