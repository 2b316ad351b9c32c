package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
)

const uniqueViolationCode = "23505"

// UserRepository persists credential records. It implements
// auth.CredentialStore: lookups are exact-match and case-sensitive, and a
// uniqueness violation on insert is mapped to model.ErrDuplicateUsername so
// concurrent registrations of the same username lose cleanly.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at
		 FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, username string, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (username, password_hash, created_at) VALUES ($1, $2, $3)`,
		username, passwordHash, time.Now().UTC())

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return model.ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
