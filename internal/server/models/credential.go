package models

import "time"

// Credential is a stored login record, one-to-one with User by convention.
// PasswordHash is a bcrypt hash and already embeds its salt.
type Credential struct {
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
