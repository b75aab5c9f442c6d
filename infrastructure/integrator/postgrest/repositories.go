package postgrest

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

const (
	revenueTable   = "revenue"
	invoicesTable  = "invoices"
	customersTable = "customers"

	invoiceWithCustomerSelect = "id,customer_id,amount,date,status,customers(name,email,image_url)"
	invoicesOrder             = "date.desc,id.desc"

	// listBatchSize is the page requested per call; the server may cap it lower with max-rows
	listBatchSize = 1000
)

var (
	_ repository.RevenueRepository  = (*RevenueRepository)(nil)
	_ repository.InvoiceRepository  = (*InvoiceRepository)(nil)
	_ repository.CustomerRepository = (*CustomerRepository)(nil)
)

type RevenueRepository struct {
	client *Client
}

func NewRevenueRepository(client *Client) *RevenueRepository {
	return &RevenueRepository{client: client}
}

func (r *RevenueRepository) List(ctx context.Context) ([]domain.Revenue, error) {
	params := url.Values{}
	params.Set("select", "month,revenue")

	revenue := make([]domain.Revenue, 0)
	if err := r.client.get(ctx, revenueTable, params, &revenue); err != nil {
		return nil, err
	}

	return revenue, nil
}

type InvoiceRepository struct {
	client *Client
}

func NewInvoiceRepository(client *Client) *InvoiceRepository {
	return &InvoiceRepository{client: client}
}

func (r *InvoiceRepository) ListLatest(ctx context.Context, limit int) ([]domain.InvoiceWithCustomer, error) {
	params := url.Values{}
	params.Set("select", invoiceWithCustomerSelect)
	params.Set("order", invoicesOrder)
	params.Set("limit", strconv.Itoa(limit))

	return r.listWithCustomer(ctx, params)
}

// ListWithCustomer reads every invoice, paging with limit/offset until the server returns an empty batch
func (r *InvoiceRepository) ListWithCustomer(ctx context.Context) ([]domain.InvoiceWithCustomer, error) {
	invoices := make([]domain.InvoiceWithCustomer, 0)

	for {
		params := url.Values{}
		params.Set("select", invoiceWithCustomerSelect)
		params.Set("order", invoicesOrder)
		params.Set("limit", strconv.Itoa(listBatchSize))
		params.Set("offset", strconv.Itoa(len(invoices)))

		batch, err := r.listWithCustomer(ctx, params)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			return invoices, nil
		}

		invoices = append(invoices, batch...)
	}
}

func (r *InvoiceRepository) listWithCustomer(ctx context.Context, params url.Values) ([]domain.InvoiceWithCustomer, error) {
	invoices := make([]domain.InvoiceWithCustomer, 0)
	if err := r.client.get(ctx, invoicesTable, params, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *InvoiceRepository) Count(ctx context.Context) (int, error) {
	params := url.Values{}
	params.Set("select", "id")

	return r.client.count(ctx, invoicesTable, params)
}

func (r *InvoiceRepository) ListAmountsByStatus(ctx context.Context, status domain.InvoiceStatus) ([]domain.InvoiceAmount, error) {
	params := url.Values{}
	params.Set("select", "id,amount,status")
	params.Set("status", "eq."+string(status))

	return r.listAmounts(ctx, params)
}

func (r *InvoiceRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.InvoiceAmount, error) {
	params := url.Values{}
	params.Set("select", "id,amount,status")
	params.Set("customer_id", "eq."+customerID)

	return r.listAmounts(ctx, params)
}

func (r *InvoiceRepository) listAmounts(ctx context.Context, params url.Values) ([]domain.InvoiceAmount, error) {
	amounts := make([]domain.InvoiceAmount, 0)
	if err := r.client.get(ctx, invoicesTable, params, &amounts); err != nil {
		return nil, err
	}
	return amounts, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	params := url.Values{}
	params.Set("select", "id,customer_id,amount,date,status")
	params.Set("id", "eq."+id)
	params.Set("limit", "1")

	var invoices []domain.Invoice
	if err := r.client.get(ctx, invoicesTable, params, &invoices); err != nil {
		return nil, err
	}

	if len(invoices) == 0 {
		return nil, nil
	}

	return &invoices[0], nil
}

type invoiceAmountWithName struct {
	Amount    int64 `json:"amount"`
	Customers *struct {
		Name string `json:"name"`
	} `json:"customers"`
}

func (r *InvoiceRepository) ListByAmount(ctx context.Context, amount int64) ([]domain.InvoiceAmountRow, error) {
	params := url.Values{}
	params.Set("select", "amount,customers(name)")
	params.Set("amount", "eq."+strconv.FormatInt(amount, 10))

	var found []invoiceAmountWithName
	if err := r.client.get(ctx, invoicesTable, params, &found); err != nil {
		return nil, err
	}

	rows := make([]domain.InvoiceAmountRow, 0, len(found))
	for _, f := range found {
		row := domain.InvoiceAmountRow{Amount: f.Amount}
		if f.Customers != nil {
			row.Name = f.Customers.Name
		}
		rows = append(rows, row)
	}

	return rows, nil
}

type CustomerRepository struct {
	client *Client
}

func NewCustomerRepository(client *Client) *CustomerRepository {
	return &CustomerRepository{client: client}
}

func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	params := url.Values{}
	params.Set("select", "id")

	return r.client.count(ctx, customersTable, params)
}

func (r *CustomerRepository) ListFields(ctx context.Context) ([]domain.CustomerField, error) {
	params := url.Values{}
	params.Set("select", "id,name")
	params.Set("order", "name.asc")

	customers := make([]domain.CustomerField, 0)
	if err := r.client.get(ctx, customersTable, params, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *CustomerRepository) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	pattern := ilikeValue(query)

	params := url.Values{}
	params.Set("select", "id,name,email,image_url")
	params.Set("or", "(name.ilike."+pattern+",email.ilike."+pattern+")")
	params.Set("order", "name.asc")

	customers := make([]domain.Customer, 0)
	if err := r.client.get(ctx, customersTable, params, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

var quotedValueEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ilikeValue builds the double-quoted "contains" pattern for an ilike filter inside or=(...)
func ilikeValue(query string) string {
	return `"*` + quotedValueEscaper.Replace(repository.EscapeLike(query)) + `*"`
}
