package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
)

// CustomerFields are the columns the list endpoint may filter and sort on.
var CustomerFields = []string{"name", "email", "phone", "location", "hobbies"}

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) List(ctx context.Context, params ListParams) ([]model.Customer, error) {
	suffix, args := buildListQuery(params)
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, location, hobbies FROM customers`+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Location, &c.Hobbies); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// ListAll returns every customer, unpaginated. Used by the analytics
// aggregations, which work over the full dataset.
func (r *CustomerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, location, hobbies FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list all customers: %w", err)
	}
	defer rows.Close()

	customers := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Location, &c.Hobbies); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	var c model.Customer
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, location, hobbies FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Location, &c.Hobbies)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Customer{}, model.ErrCustomerNotFound
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("find customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, req model.CustomerRequest) (model.Customer, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO customers (name, email, phone, location, hobbies)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		req.Name, req.Email, req.Phone, req.Location, req.Hobbies).Scan(&id)
	if err != nil {
		return model.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	return model.Customer{
		ID: id, Name: req.Name, Email: req.Email,
		Phone: req.Phone, Location: req.Location, Hobbies: req.Hobbies,
	}, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id int64, req model.CustomerRequest) (model.Customer, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE customers SET name = $2, email = $3, phone = $4, location = $5, hobbies = $6
		 WHERE id = $1`,
		id, req.Name, req.Email, req.Phone, req.Location, req.Hobbies)
	if err != nil {
		return model.Customer{}, fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Customer{}, model.ErrCustomerNotFound
	}

	return model.Customer{
		ID: id, Name: req.Name, Email: req.Email,
		Phone: req.Phone, Location: req.Location, Hobbies: req.Hobbies,
	}, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCustomerNotFound
	}
	return nil
}
