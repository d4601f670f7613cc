package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/critterkeep/internal/common"
	"github.com/dmitrijs2005/critterkeep/internal/logging"
	"github.com/dmitrijs2005/critterkeep/internal/server/catalog"
	"github.com/dmitrijs2005/critterkeep/internal/server/models"
	"github.com/dmitrijs2005/critterkeep/internal/server/repositories/catches"
	"github.com/dmitrijs2005/critterkeep/internal/server/repositories/creatures"
)

// CatalogLookup resolves a creature name against the external catalog.
// Satisfied by *catalog.Client.
type CatalogLookup interface {
	Lookup(ctx context.Context, name string) (*catalog.Species, error)
}

// CatchService implements the ownership operations: catch, release and list.
type CatchService struct {
	creatures creatures.Repository
	catches   catches.Repository
	catalog   CatalogLookup
	logger    logging.Logger
}

func NewCatchService(creatureRepo creatures.Repository, catchRepo catches.Repository, lookup CatalogLookup, logger logging.Logger) *CatchService {
	return &CatchService{
		creatures: creatureRepo,
		catches:   catchRepo,
		catalog:   lookup,
		logger:    logger.With("module", "catch_service"),
	}
}

// Catch records a new catch of name for userID. The creature is resolved
// through the shared catalog (created on first reference); the returned
// record is always new, even when the user already owns that species.
func (s *CatchService) Catch(ctx context.Context, userID string, name string) (*models.OwnedCreature, error) {
	if name == "" {
		return nil, common.ErrorValidation
	}

	creature, err := s.getOrCreateCreature(ctx, name)
	if err != nil {
		return nil, err
	}

	record := &models.CatchRecord{ID: uuid.NewString(), UserID: userID, CreatureID: creature.ID}
	record, err = s.catches.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("error creating catch record: %w", err)
	}

	return &models.OwnedCreature{RecordID: record.ID, Name: creature.Name, CaughtAt: record.CaughtAt}, nil
}

// Release deletes the record only when it belongs to userID. The repository
// performs ownership check and delete as one atomic statement, and a missing
// record is indistinguishable from somebody else's.
func (s *CatchService) Release(ctx context.Context, userID string, recordID string) error {
	if recordID == "" {
		return common.ErrorValidation
	}

	if err := s.catches.DeleteOwned(ctx, recordID, userID); err != nil {
		if errors.Is(err, common.ErrorNotOwned) {
			return common.ErrorNotOwned
		}
		return fmt.Errorf("error releasing record: %w", err)
	}

	return nil
}

// List returns everything userID currently owns, joined with catalog names.
// Owning nothing is a successful empty result.
func (s *CatchService) List(ctx context.Context, userID string) ([]*models.OwnedCreature, error) {
	owned, err := s.catches.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}
	return owned, nil
}

// getOrCreateCreature implements get-or-create under races: a lost insert
// (unique violation on name) falls back to re-reading the row the winner
// created. A prior read never proves absence, since other instances of the
// service may be inserting concurrently.
func (s *CatchService) getOrCreateCreature(ctx context.Context, name string) (*models.Creature, error) {
	creature, err := s.creatures.GetByName(ctx, name)
	if err == nil {
		return creature, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	species, err := s.catalog.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	creature = &models.Creature{
		ID:             uuid.NewString(),
		Name:           name,
		BaseExperience: species.BaseExperience,
		Height:         species.Height,
		Weight:         species.Weight,
	}

	created, err := s.creatures.Create(ctx, creature)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.logger.Debug(ctx, "lost catalog insert race, re-reading", "name", name)
			return s.creatures.GetByName(ctx, name)
		}
		return nil, fmt.Errorf("error creating catalog entry: %w", err)
	}

	return created, nil
}
