package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

const (
	invoicesTable        = "invoices i"
	invoiceCustomersJoin = "customers c ON c.id = i.customer_id"
)

var invoiceWithCustomerColumns = []string{
	"i.id",
	"i.customer_id",
	"i.amount",
	"i.date",
	"i.status",
	"c.id",
	"c.name",
	"c.email",
	"c.image_url",
}

type invoiceRepository struct {
	conn postgres.Queryer
}

func NewInvoiceRepository(conn postgres.Queryer) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

// invoicesWithCustomer orders by date and breaks ties by id so pages stay stable between calls.
func invoicesWithCustomer() squirrel.SelectBuilder {
	return squirrel.
		Select(invoiceWithCustomerColumns...).
		From(invoicesTable).
		LeftJoin(invoiceCustomersJoin).
		OrderBy("i.date DESC", "i.id DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *invoiceRepository) ListLatest(ctx context.Context, limit int) ([]domain.InvoiceWithCustomer, error) {
	query, args, err := invoicesWithCustomer().
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("invoices: error building query: %w", err)
	}

	return r.queryInvoicesWithCustomer(ctx, query, args...)
}

func (r *invoiceRepository) ListWithCustomer(ctx context.Context) ([]domain.InvoiceWithCustomer, error) {
	query, args, err := invoicesWithCustomer().ToSql()
	if err != nil {
		return nil, fmt.Errorf("invoices: error building query: %w", err)
	}

	return r.queryInvoicesWithCustomer(ctx, query, args...)
}

func (r *invoiceRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(invoicesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("invoices: error building query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, queryError("invoices: error counting rows", err)
	}

	return count, nil
}

func (r *invoiceRepository) ListAmountsByStatus(ctx context.Context, status domain.InvoiceStatus) ([]domain.InvoiceAmount, error) {
	query, args, err := squirrel.
		Select("i.id", "i.amount", "i.status").
		From(invoicesTable).
		Where(squirrel.Eq{"i.status": string(status)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("invoices: error building query: %w", err)
	}

	return r.queryInvoiceAmounts(ctx, query, args...)
}

func (r *invoiceRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.InvoiceAmount, error) {
	query, args, err := squirrel.
		Select("i.id", "i.amount", "i.status").
		From(invoicesTable).
		Where(squirrel.Eq{"i.customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("invoices: error building query: %w", err)
	}

	return r.queryInvoiceAmounts(ctx, query, args...)
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query, args, err := squirrel.
		Select("i.id", "i.customer_id", "i.amount", "i.date", "i.status").
		From(invoicesTable).
		Where(squirrel.Eq{"i.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("invoices: error building query: %w", err)
	}

	var (
		invoice domain.Invoice
		date    time.Time
		status  string
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&invoice.ID,
		&invoice.CustomerID,
		&invoice.Amount,
		&date,
		&status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, queryError("invoices: error scanning invoice", err)
	}

	invoice.Date = date.Format(time.DateOnly)
	invoice.Status = domain.InvoiceStatus(status)

	return &invoice, nil
}

func (r *invoiceRepository) ListByAmount(ctx context.Context, amount int64) ([]domain.InvoiceAmountRow, error) {
	query, args, err := squirrel.
		Select("i.amount", "c.name").
		From(invoicesTable).
		LeftJoin(invoiceCustomersJoin).
		Where(squirrel.Eq{"i.amount": amount}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("invoices: error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryError("invoices: error running query", err)
	}
	defer rows.Close()

	result := make([]domain.InvoiceAmountRow, 0)
	for rows.Next() {
		var (
			row  domain.InvoiceAmountRow
			name sql.NullString
		)
		if err := rows.Scan(&row.Amount, &name); err != nil {
			return nil, fmt.Errorf("invoices: error scanning row: %w", err)
		}
		row.Name = nullString(name)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("invoices: error iterating rows: %w", err)
	}

	return result, nil
}

func (r *invoiceRepository) queryInvoicesWithCustomer(ctx context.Context, query string, args ...interface{}) ([]domain.InvoiceWithCustomer, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryError("invoices: error running query", err)
	}
	defer rows.Close()

	invoices := make([]domain.InvoiceWithCustomer, 0)
	for rows.Next() {
		invoice, err := scanInvoiceWithCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("invoices: error scanning row: %w", err)
		}
		invoices = append(invoices, *invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("invoices: error iterating rows: %w", err)
	}

	return invoices, nil
}

func (r *invoiceRepository) queryInvoiceAmounts(ctx context.Context, query string, args ...interface{}) ([]domain.InvoiceAmount, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryError("invoices: error running query", err)
	}
	defer rows.Close()

	amounts := make([]domain.InvoiceAmount, 0)
	for rows.Next() {
		var (
			item   domain.InvoiceAmount
			amount sql.NullInt64
			status sql.NullString
		)
		if err := rows.Scan(&item.ID, &amount, &status); err != nil {
			return nil, fmt.Errorf("invoices: error scanning row: %w", err)
		}
		item.Amount = nullInt64(amount)
		item.Status = domain.InvoiceStatus(nullString(status))
		amounts = append(amounts, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("invoices: error iterating rows: %w", err)
	}

	return amounts, nil
}

func scanInvoiceWithCustomer(rows *sql.Rows) (*domain.InvoiceWithCustomer, error) {
	var (
		invoice    domain.InvoiceWithCustomer
		amount     sql.NullInt64
		date       sql.NullTime
		status     sql.NullString
		customerID sql.NullString
		name       sql.NullString
		email      sql.NullString
		imageURL   sql.NullString
	)

	err := rows.Scan(
		&invoice.ID,
		&invoice.CustomerID,
		&amount,
		&date,
		&status,
		&customerID,
		&name,
		&email,
		&imageURL,
	)
	if err != nil {
		return nil, err
	}

	invoice.Amount = nullInt64(amount)
	invoice.Status = domain.InvoiceStatus(nullString(status))
	if date.Valid {
		invoice.Date = date.Time.Format(time.DateOnly)
	}

	// no matching customer row
	if customerID.Valid {
		invoice.Customer = &domain.InvoiceCustomer{
			Name:     nullString(name),
			Email:    nullString(email),
			ImageURL: nullString(imageURL),
		}
	}

	return &invoice, nil
}
