// Package models defines the persistent entities of the server.
package models

import "time"

// User is a registered account. Rows are immutable after registration and
// are never physically deleted.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
