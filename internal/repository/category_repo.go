package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, status FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Status); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, status FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Status)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Category{}, model.ErrCategoryNotFound
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("find category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, name string, description string) (model.Category, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO categories (name, description, status) VALUES ($1, $2, TRUE) RETURNING id`,
		name, description).Scan(&id)
	if err != nil {
		return model.Category{}, fmt.Errorf("create category: %w", err)
	}

	return model.Category{ID: id, Name: name, Description: description, Status: true}, nil
}

// Update overwrites name and, when provided, description and status. The
// partial semantics mirror the old service, where omitted fields kept their
// stored values.
func (r *CategoryRepository) Update(ctx context.Context, id int64, req model.CategoryRequest) (model.Category, error) {
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return model.Category{}, err
	}

	current.Name = req.Name
	if req.Description != "" {
		current.Description = req.Description
	}
	if req.Status != nil {
		current.Status = *req.Status
	}

	_, err = r.pool.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3, status = $4 WHERE id = $1`,
		id, current.Name, current.Description, current.Status)
	if err != nil {
		return model.Category{}, fmt.Errorf("update category: %w", err)
	}

	return current, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}
	return nil
}
