// Package creatures persists the shared creature catalog (one row per
// species name, created lazily on first catch).
package creatures

import (
	"context"

	"github.com/dmitrijs2005/critterkeep/internal/server/models"
)

type Repository interface {
	// Create inserts a new catalog row. When another request created the
	// same name first, Create yields common.ErrorAlreadyExists; the caller
	// is expected to re-read by name rather than fail.
	Create(ctx context.Context, creature *models.Creature) (*models.Creature, error)

	// GetByName returns the catalog row for name (case-sensitive), or
	// common.ErrorNotFound.
	GetByName(ctx context.Context, name string) (*models.Creature, error)
}
