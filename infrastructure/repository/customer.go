package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

const (
	customersTable = "customers c"
)

type customerRepository struct {
	conn postgres.Queryer
}

func NewCustomerRepository(conn postgres.Queryer) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(customersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("customers: error building query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, queryError("customers: error counting rows", err)
	}

	return count, nil
}

func (r *customerRepository) ListFields(ctx context.Context) ([]domain.CustomerField, error) {
	query, args, err := squirrel.
		Select("c.id", "c.name").
		From(customersTable).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("customers: error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryError("customers: error running query", err)
	}
	defer rows.Close()

	customers := make([]domain.CustomerField, 0)
	for rows.Next() {
		var field domain.CustomerField
		if err := rows.Scan(&field.ID, &field.Name); err != nil {
			return nil, fmt.Errorf("customers: error scanning row: %w", err)
		}
		customers = append(customers, field)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("customers: error iterating rows: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	pattern := ContainsPattern(query)

	sqlQuery, args, err := squirrel.
		Select("c.id", "c.name", "c.email", "c.image_url").
		From(customersTable).
		Where(squirrel.Or{
			squirrel.ILike{"c.name": pattern},
			squirrel.ILike{"c.email": pattern},
		}).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("customers: error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, queryError("customers: error running query", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var (
			customer domain.Customer
			email    sql.NullString
			imageURL sql.NullString
		)
		if err := rows.Scan(&customer.ID, &customer.Name, &email, &imageURL); err != nil {
			return nil, fmt.Errorf("customers: error scanning row: %w", err)
		}
		customer.Email = nullString(email)
		customer.ImageURL = nullString(imageURL)
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("customers: error iterating rows: %w", err)
	}

	return customers, nil
}
