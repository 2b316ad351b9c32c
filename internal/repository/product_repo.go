package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, price, category, stock_quantity FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.StockQuantity); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, price, category, stock_quantity FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.StockQuantity)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Product{}, model.ErrProductNotFound
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("find product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, req model.ProductRequest) (model.Product, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO products (name, description, price, category, stock_quantity)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		req.Name, req.Description, req.Price, req.Category, req.StockQuantity).Scan(&id)
	if err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}

	return model.Product{
		ID: id, Name: req.Name, Description: req.Description,
		Price: req.Price, Category: req.Category, StockQuantity: req.StockQuantity,
	}, nil
}

func (r *ProductRepository) Update(ctx context.Context, id int64, req model.ProductRequest) (model.Product, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET name = $2, description = $3, price = $4, category = $5, stock_quantity = $6
		 WHERE id = $1`,
		id, req.Name, req.Description, req.Price, req.Category, req.StockQuantity)
	if err != nil {
		return model.Product{}, fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Product{}, model.ErrProductNotFound
	}

	return model.Product{
		ID: id, Name: req.Name, Description: req.Description,
		Price: req.Price, Category: req.Category, StockQuantity: req.StockQuantity,
	}, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}
	return nil
}
