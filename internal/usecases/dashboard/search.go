package dashboard

import (
	"strconv"
	"strings"

	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

const (
	// PageSize is the number of invoices per table page
	PageSize = 6
	// LatestInvoicesLimit is the number of rows in the latest invoices widget
	LatestInvoicesLimit = 5
)

// matchesInvoice reports whether the lower-cased query is contained in the customer name, customer email,
// amount in cents, date or status of the invoice. Absent fields are skipped.
func matchesInvoice(invoice domain.InvoiceWithCustomer, query string) bool {
	q := strings.ToLower(query)

	fields := make([]string, 0, 5)
	if invoice.Customer != nil {
		fields = append(fields, strings.ToLower(invoice.Customer.Name), strings.ToLower(invoice.Customer.Email))
	}
	if invoice.Amount != nil {
		fields = append(fields, strconv.FormatInt(*invoice.Amount, 10))
	}
	fields = append(fields, invoice.Date, strings.ToLower(string(invoice.Status)))

	for _, field := range fields {
		if strings.Contains(field, q) {
			return true
		}
	}

	return false
}

func filterInvoices(invoices []domain.InvoiceWithCustomer, query string) []domain.InvoiceWithCustomer {
	filtered := make([]domain.InvoiceWithCustomer, 0, len(invoices))
	for _, invoice := range invoices {
		if matchesInvoice(invoice, query) {
			filtered = append(filtered, invoice)
		}
	}
	return filtered
}

// normalizePage maps anything below the first page to the first page
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// paginate returns the window [offset, offset+PageSize) clipped to the slice bounds
func paginate[T any](items []T, page int) []T {
	page = normalizePage(page)
	if page > totalPages(len(items)) {
		return []T{}
	}

	offset := (page - 1) * PageSize

	end := offset + PageSize
	if end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}

func totalPages(count int) int {
	return (count + PageSize - 1) / PageSize
}

func toInvoicesTable(invoice domain.InvoiceWithCustomer) domain.InvoicesTable {
	row := domain.InvoicesTable{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Date:       invoice.Date,
		Amount:     domain.CentsOrZero(invoice.Amount),
		Status:     invoice.Status,
	}

	if invoice.Customer != nil {
		row.Name = invoice.Customer.Name
		row.Email = invoice.Customer.Email
		row.ImageURL = invoice.Customer.ImageURL
	}

	return row
}
