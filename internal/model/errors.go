package model

import "errors"

var (
	// Credential errors. Unknown user and wrong password are never
	// distinguished outside the auth package.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrMissingField       = errors.New("username and password are both required")

	// Token errors. Each is a distinct internal condition but every one
	// surfaces as a plain 401 at the boundary.
	ErrTokenMalformed = errors.New("token malformed")
	ErrBadSignature   = errors.New("token signature mismatch")
	ErrTokenExpired   = errors.New("token expired")
	ErrWrongClass     = errors.New("wrong token class")

	// Record errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")

	ErrInvalidInput = errors.New("invalid input")
)
