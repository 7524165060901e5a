// Package models contains the stored row types and the wire representation
// served to gallery clients.
package models

import "time"

// User is a stored gallery user. ID is the natural string key that image
// author references point at.
type User struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

// APIUser is the public author object embedded into every listed image.
type APIUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
