// Package repository holds the read access to the dashboard tables
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

type RevenueRepository interface {
	List(ctx context.Context) ([]domain.Revenue, error)
}

type InvoiceRepository interface {
	// ListLatest returns the most recent invoices joined with their customer, newest first.
	ListLatest(ctx context.Context, limit int) ([]domain.InvoiceWithCustomer, error)
	// ListWithCustomer returns every invoice joined with its customer, newest first.
	ListWithCustomer(ctx context.Context) ([]domain.InvoiceWithCustomer, error)
	Count(ctx context.Context) (int, error)
	ListAmountsByStatus(ctx context.Context, status domain.InvoiceStatus) ([]domain.InvoiceAmount, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.InvoiceAmount, error)
	// GetByID returns nil, nil when no invoice has the given id.
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	ListByAmount(ctx context.Context, amount int64) ([]domain.InvoiceAmountRow, error)
}

type CustomerRepository interface {
	Count(ctx context.Context) (int, error)
	// ListFields returns id and name of every customer ordered by name.
	ListFields(ctx context.Context) ([]domain.CustomerField, error)
	// Search returns customers whose name or email contains query, ignoring case, ordered by name.
	Search(ctx context.Context, query string) ([]domain.Customer, error)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE wildcards of s so it matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern is the ILIKE pattern matching any value that contains s.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}

func queryError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: database error: %w (code: %s)", op, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nullString(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func nullInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
