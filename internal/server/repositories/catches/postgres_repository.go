package catches

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/critterkeep/internal/common"
	"github.com/dmitrijs2005/critterkeep/internal/dbx"
	"github.com/dmitrijs2005/critterkeep/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, record *models.CatchRecord) (*models.CatchRecord, error) {

	query :=
		`INSERT INTO catches (id, user_id, creature_id)
		 VALUES ($1, $2, $3)
		 RETURNING caught_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		record.ID, record.UserID, record.CreatureID).Scan(&record.CaughtAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

// DeleteOwned relies on the store checking ownership and deleting in a single
// statement; a separate read-then-delete would race with concurrent releases.
func (r *PostgresRepository) DeleteOwned(ctx context.Context, id string, userID string) error {

	query :=
		`DELETE FROM catches
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotOwned
	}

	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.OwnedCreature, error) {

	query :=
		`SELECT c.id, cr.name, c.caught_at
		 FROM catches c
		 JOIN creatures cr ON cr.id = c.creature_id
		 WHERE c.user_id = $1
		 ORDER BY c.caught_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	owned := make([]*models.OwnedCreature, 0)
	for rows.Next() {
		o := &models.OwnedCreature{}
		if err := rows.Scan(&o.RecordID, &o.Name, &o.CaughtAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		owned = append(owned, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return owned, nil
}
