// Package catches persists the ownership ledger: one row per catch event,
// scoped to the owning user.
package catches

import (
	"context"

	"github.com/dmitrijs2005/critterkeep/internal/server/models"
)

type Repository interface {
	// Create inserts a new catch record. Catching the same creature twice
	// yields two distinct records.
	Create(ctx context.Context, record *models.CatchRecord) (*models.CatchRecord, error)

	// DeleteOwned removes the record only when it exists and belongs to
	// userID, as one atomic conditional delete. Zero matched rows yield
	// common.ErrorNotOwned regardless of why.
	DeleteOwned(ctx context.Context, id string, userID string) error

	// ListByUser returns the user's records joined with the creature name,
	// oldest first. A user with no catches gets an empty slice.
	ListByUser(ctx context.Context, userID string) ([]*models.OwnedCreature, error)
}
