package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

const (
	revenueTable = "revenue r"
)

type revenueRepository struct {
	conn postgres.Queryer
}

func NewRevenueRepository(conn postgres.Queryer) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

func (r *revenueRepository) List(ctx context.Context) ([]domain.Revenue, error) {
	query, args, err := squirrel.
		Select("r.month", "r.revenue").
		From(revenueTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("revenue: error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryError("revenue: error running query", err)
	}
	defer rows.Close()

	revenue := make([]domain.Revenue, 0)
	for rows.Next() {
		var item domain.Revenue
		if err := rows.Scan(&item.Month, &item.Revenue); err != nil {
			return nil, fmt.Errorf("revenue: error scanning row: %w", err)
		}
		revenue = append(revenue, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("revenue: error iterating rows: %w", err)
	}

	return revenue, nil
}
