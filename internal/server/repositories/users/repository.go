// Package users persists registered accounts (the credential store).
package users

import (
	"context"

	"github.com/dmitrijs2005/critterkeep/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A duplicate email yields
	// common.ErrorAlreadyExists without touching the existing row.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user stored under email, or
	// common.ErrorNotFound. Emails are compared exactly as stored.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
