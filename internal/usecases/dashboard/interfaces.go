package dashboard

import (
	"context"

	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_reader.go -package=mocks

// Reader is the read side of the dashboard
type Reader interface {
	FetchRevenue(ctx context.Context) ([]domain.Revenue, error)
	FetchLatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error)
	FetchCardData(ctx context.Context) (*domain.CardData, error)

	// FetchFilteredInvoices returns the page currentPage (1-based) of the invoices matching query.
	FetchFilteredInvoices(ctx context.Context, query string, currentPage int) ([]domain.InvoicesTable, error)
	// FetchInvoicesPages returns how many pages the invoices matching query fill.
	FetchInvoicesPages(ctx context.Context, query string) (int, error)
	// FetchInvoiceByID returns nil, nil when no invoice has the given id.
	FetchInvoiceByID(ctx context.Context, id string) (*domain.InvoiceForm, error)

	FetchCustomers(ctx context.Context) ([]domain.CustomerField, error)
	FetchFilteredCustomers(ctx context.Context, query string) ([]domain.FormattedCustomersTable, error)

	FetchInvoicesByAmount(ctx context.Context, amount int64) ([]domain.InvoiceAmountRow, error)
}
