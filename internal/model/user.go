package model

import "time"

// User is a credential record: one row per username, hash only, never the
// plaintext. Usernames are matched case-sensitively so "Alice" and "alice"
// are distinct accounts.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
