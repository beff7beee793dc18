package domain

import "time"

// User represents a registered account. Password holds the bcrypt hash as
// stored; the registration response serializes the row as-is, hash included,
// which matches the API this service replaces.
type User struct {
	ID        string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
