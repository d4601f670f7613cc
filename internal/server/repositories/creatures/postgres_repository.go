package creatures

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PostgresRepository) Create(ctx context.Context, creature *models.Creature) (*models.Creature, error) {

	query :=
		`INSERT INTO creatures (id, name, base_experience, height, weight)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		creature.ID, creature.Name, creature.BaseExperience, creature.Height, creature.Weight).Scan(&creature.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return creature, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*models.Creature, error) {
	query :=
		`SELECT id, name, base_experience, height, weight, created_at FROM creatures
		 WHERE name = $1
		 `

	creature := &models.Creature{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&creature.ID, &creature.Name, &creature.BaseExperience, &creature.Height, &creature.Weight, &creature.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return creature, nil
}
