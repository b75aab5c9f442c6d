package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/pkg/currency"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
)

// Service implements Reader on top of the store repositories
type Service struct {
	revenueRepository  repository.RevenueRepository
	invoiceRepository  repository.InvoiceRepository
	customerRepository repository.CustomerRepository
	formatter          *currency.Formatter

	revenueFetchDelay           time.Duration
	customerStatsMaxConcurrency int
}

var _ Reader = (*Service)(nil)

func NewService(
	cfg *config.Config,
	revenueRepo repository.RevenueRepository,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	formatter *currency.Formatter,
) *Service {
	if formatter == nil {
		formatter = currency.Default()
	}

	maxConcurrency := cfg.Dashboard.CustomerStatsMaxConcurrency
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	return &Service{
		revenueRepository:           revenueRepo,
		invoiceRepository:           invoiceRepo,
		customerRepository:          customerRepo,
		formatter:                   formatter,
		revenueFetchDelay:           cfg.Dashboard.RevenueFetchDelay,
		customerStatsMaxConcurrency: maxConcurrency,
	}
}

// recoverFormatting turns a panic raised while shaping a result into a formatting error
func recoverFormatting(ctx context.Context, message string, err *error) {
	if r := recover(); r != nil {
		log.ForContext(ctx).WithField("panic", fmt.Sprint(r)).Error(message)
		*err = newError(ErrFormatting, message)
	}
}

func transportError(ctx context.Context, message string, cause error) *Error {
	log.ForContext(ctx).WithError(cause).Error(message)
	return newError(ErrTransport, message)
}

func (s *Service) FetchRevenue(ctx context.Context) (revenue []domain.Revenue, err error) {
	defer recoverFormatting(ctx, MsgFetchRevenue, &err)

	if s.revenueFetchDelay > 0 {
		log.ForContext(ctx).Debug("Fetching revenue data...")

		timer := time.NewTimer(s.revenueFetchDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, transportError(ctx, MsgFetchRevenue, ctx.Err())
		case <-timer.C:
		}

		log.ForContext(ctx).Debugf("Data fetch completed after %s", s.revenueFetchDelay)
	}

	revenue, err = s.revenueRepository.List(ctx)
	if err != nil {
		return nil, transportError(ctx, MsgFetchRevenue, err)
	}

	if revenue == nil {
		revenue = []domain.Revenue{}
	}

	return revenue, nil
}

func (s *Service) FetchLatestInvoices(ctx context.Context) (latest []domain.LatestInvoice, err error) {
	defer recoverFormatting(ctx, MsgFetchLatestInvoices, &err)

	invoices, err := s.invoiceRepository.ListLatest(ctx, LatestInvoicesLimit)
	if err != nil {
		return nil, transportError(ctx, MsgFetchLatestInvoices, err)
	}

	latest = make([]domain.LatestInvoice, 0, len(invoices))
	for _, invoice := range invoices {
		row := domain.LatestInvoice{
			ID:     invoice.ID,
			Amount: s.formatter.Format(domain.CentsOrZero(invoice.Amount)),
		}
		if invoice.Customer != nil {
			row.Name = invoice.Customer.Name
			row.Email = invoice.Customer.Email
			row.ImageURL = invoice.Customer.ImageURL
		}
		latest = append(latest, row)
	}

	return latest, nil
}

func (s *Service) FetchCardData(ctx context.Context) (cards *domain.CardData, err error) {
	defer recoverFormatting(ctx, MsgFetchCardData, &err)

	var (
		g errgroup.Group

		invoiceCount, customerCount int
		paid, pending               []domain.InvoiceAmount

		invoiceCountErr, customerCountErr, paidErr, pendingErr error
	)

	g.Go(func() error {
		invoiceCount, invoiceCountErr = s.invoiceRepository.Count(ctx)
		return invoiceCountErr
	})
	g.Go(func() error {
		customerCount, customerCountErr = s.customerRepository.Count(ctx)
		return customerCountErr
	})
	g.Go(func() error {
		paid, paidErr = s.invoiceRepository.ListAmountsByStatus(ctx, domain.InvoiceStatusPaid)
		return paidErr
	})
	g.Go(func() error {
		pending, pendingErr = s.invoiceRepository.ListAmountsByStatus(ctx, domain.InvoiceStatusPending)
		return pendingErr
	})

	if err := g.Wait(); err != nil {
		return nil, transportError(ctx, MsgFetchCardData, errors.Join(invoiceCountErr, customerCountErr, paidErr, pendingErr))
	}

	return &domain.CardData{
		NumberOfCustomers:    customerCount,
		NumberOfInvoices:     invoiceCount,
		TotalPaidInvoices:    s.formatter.Format(sumAmounts(paid)),
		TotalPendingInvoices: s.formatter.Format(sumAmounts(pending)),
	}, nil
}

func (s *Service) FetchFilteredInvoices(ctx context.Context, query string, currentPage int) (page []domain.InvoicesTable, err error) {
	defer recoverFormatting(ctx, MsgFetchInvoices, &err)

	invoices, err := s.invoiceRepository.ListWithCustomer(ctx)
	if err != nil {
		return nil, transportError(ctx, MsgFetchInvoices, err)
	}

	window := paginate(filterInvoices(invoices, query), currentPage)

	page = make([]domain.InvoicesTable, 0, len(window))
	for _, invoice := range window {
		page = append(page, toInvoicesTable(invoice))
	}

	return page, nil
}

func (s *Service) FetchInvoicesPages(ctx context.Context, query string) (pages int, err error) {
	defer recoverFormatting(ctx, MsgFetchInvoicesPages, &err)

	invoices, err := s.invoiceRepository.ListWithCustomer(ctx)
	if err != nil {
		return 0, transportError(ctx, MsgFetchInvoicesPages, err)
	}

	return totalPages(len(filterInvoices(invoices, query))), nil
}

func (s *Service) FetchInvoiceByID(ctx context.Context, id string) (form *domain.InvoiceForm, err error) {
	defer recoverFormatting(ctx, MsgFetchInvoice, &err)

	// ids are uuids, anything else cannot match a row
	if _, parseErr := uuid.Parse(id); parseErr != nil {
		log.ForContext(ctx).WithField("invoice_id", id).Debug("Invoice id is not a valid uuid")
		return nil, nil
	}

	invoice, err := s.invoiceRepository.GetByID(ctx, id)
	if err != nil {
		return nil, transportError(ctx, MsgFetchInvoice, err)
	}

	if invoice == nil {
		return nil, nil
	}

	return &domain.InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     decimal.New(invoice.Amount, -2),
		Status:     invoice.Status,
	}, nil
}

func (s *Service) FetchCustomers(ctx context.Context) (customers []domain.CustomerField, err error) {
	defer recoverFormatting(ctx, MsgFetchCustomers, &err)

	customers, err = s.customerRepository.ListFields(ctx)
	if err != nil {
		return nil, transportError(ctx, MsgFetchCustomers, err)
	}

	if customers == nil {
		customers = []domain.CustomerField{}
	}

	return customers, nil
}

func (s *Service) FetchFilteredCustomers(ctx context.Context, query string) (table []domain.FormattedCustomersTable, err error) {
	defer recoverFormatting(ctx, MsgFetchCustomersTable, &err)

	customers, err := s.customerRepository.Search(ctx, query)
	if err != nil {
		return nil, transportError(ctx, MsgFetchCustomersTable, err)
	}

	invoicesByCustomer := make([][]domain.InvoiceAmount, len(customers))

	var g errgroup.Group
	g.SetLimit(s.customerStatsMaxConcurrency)

	for i, customer := range customers {
		g.Go(func() error {
			invoices, err := s.invoiceRepository.ListByCustomer(ctx, customer.ID)
			if err != nil {
				// a failed customer reports zeros, siblings keep going
				log.ForContext(ctx).
					WithError(err).
					WithField("customer_id", customer.ID).
					Warn("Error fetching customer invoices, reporting zero totals")
				return nil
			}
			invoicesByCustomer[i] = invoices
			return nil
		})
	}
	_ = g.Wait()

	table = make([]domain.FormattedCustomersTable, 0, len(customers))
	for i, customer := range customers {
		invoices := invoicesByCustomer[i]

		var totalPending, totalPaid int64
		for _, invoice := range invoices {
			switch invoice.Status {
			case domain.InvoiceStatusPending:
				totalPending += domain.CentsOrZero(invoice.Amount)
			case domain.InvoiceStatusPaid:
				totalPaid += domain.CentsOrZero(invoice.Amount)
			}
		}

		table = append(table, domain.FormattedCustomersTable{
			ID:            customer.ID,
			Name:          customer.Name,
			Email:         customer.Email,
			ImageURL:      customer.ImageURL,
			TotalInvoices: len(invoices),
			TotalPending:  s.formatter.Format(totalPending),
			TotalPaid:     s.formatter.Format(totalPaid),
		})
	}

	return table, nil
}

func (s *Service) FetchInvoicesByAmount(ctx context.Context, amount int64) (rows []domain.InvoiceAmountRow, err error) {
	defer recoverFormatting(ctx, MsgFetchInvoicesByAmount, &err)

	rows, err = s.invoiceRepository.ListByAmount(ctx, amount)
	if err != nil {
		return nil, transportError(ctx, MsgFetchInvoicesByAmount, err)
	}

	if rows == nil {
		rows = []domain.InvoiceAmountRow{}
	}

	return rows, nil
}

func sumAmounts(invoices []domain.InvoiceAmount) int64 {
	var total int64
	for _, invoice := range invoices {
		total += domain.CentsOrZero(invoice.Amount)
	}
	return total
}
