package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
)

type SaleRepository struct {
	pool *pgxpool.Pool
}

func NewSaleRepository(pool *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{pool: pool}
}

// JoinedWithProducts returns every sale joined to its product's category and
// price. Sales reference products by name, so rows without a matching
// product drop out of the join, same as the old inner merge.
func (r *SaleRepository) JoinedWithProducts(ctx context.Context) ([]model.SaleRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.product, s.date, s.quantity, p.category, p.price
		FROM sales s
		JOIN products p ON p.name = s.product
		ORDER BY s.date`)
	if err != nil {
		return nil, fmt.Errorf("join sales with products: %w", err)
	}
	defer rows.Close()

	records := make([]model.SaleRecord, 0)
	for rows.Next() {
		var rec model.SaleRecord
		if err := rows.Scan(&rec.Product, &rec.Date, &rec.Quantity, &rec.Category, &rec.Price); err != nil {
			return nil, fmt.Errorf("scan sale record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
