package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrijs2005/critterkeep/internal/common"
	"github.com/dmitrijs2005/critterkeep/internal/logging"
	"github.com/dmitrijs2005/critterkeep/internal/server/catalog"
	"github.com/dmitrijs2005/critterkeep/internal/server/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeUserRepo is an in-memory users.Repository enforcing email uniqueness
// the way the real unique index does.
type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u := *user
	u.CreatedAt = time.Now()
	f.byEmail[user.Email] = &u
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *u
	return &copied, nil
}

// fakeCreatureRepo is an in-memory creatures.Repository with a unique name
// constraint, so the get-or-create race resolves the same way it does
// against PostgreSQL.
type fakeCreatureRepo struct {
	mu     sync.Mutex
	byName map[string]*models.Creature
}

func newFakeCreatureRepo() *fakeCreatureRepo {
	return &fakeCreatureRepo{byName: make(map[string]*models.Creature)}
}

func (f *fakeCreatureRepo) Create(ctx context.Context, creature *models.Creature) (*models.Creature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byName[creature.Name]; ok {
		return nil, common.ErrorAlreadyExists
	}
	c := *creature
	c.CreatedAt = time.Now()
	f.byName[creature.Name] = &c
	return &c, nil
}

func (f *fakeCreatureRepo) GetByName(ctx context.Context, name string) (*models.Creature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCreatureRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byName)
}

// fakeCatchRepo is an in-memory catches.Repository joined against a
// fakeCreatureRepo for list results.
type fakeCatchRepo struct {
	mu        sync.Mutex
	records   []*models.CatchRecord
	creatures *fakeCreatureRepo
}

func newFakeCatchRepo(creatures *fakeCreatureRepo) *fakeCatchRepo {
	return &fakeCatchRepo{creatures: creatures}
}

func (f *fakeCatchRepo) Create(ctx context.Context, record *models.CatchRecord) (*models.CatchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := *record
	r.CaughtAt = time.Now()
	f.records = append(f.records, &r)
	copied := r
	return &copied, nil
}

func (f *fakeCatchRepo) DeleteOwned(ctx context.Context, id string, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.records {
		if r.ID == id && r.UserID == userID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotOwned
}

func (f *fakeCatchRepo) ListByUser(ctx context.Context, userID string) ([]*models.OwnedCreature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	owned := make([]*models.OwnedCreature, 0)
	for _, r := range f.records {
		if r.UserID != userID {
			continue
		}
		name := ""
		f.creatures.mu.Lock()
		for _, c := range f.creatures.byName {
			if c.ID == r.CreatureID {
				name = c.Name
				break
			}
		}
		f.creatures.mu.Unlock()
		owned = append(owned, &models.OwnedCreature{RecordID: r.ID, Name: name, CaughtAt: r.CaughtAt})
	}
	return owned, nil
}

// fakeCatalog is a canned CatalogLookup.
type fakeCatalog struct {
	mu      sync.Mutex
	species map[string]*catalog.Species
	err     error
	calls   int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{species: map[string]*catalog.Species{
		"pikachu": {Name: "pikachu", BaseExperience: 112, Height: 4, Weight: 60},
		"snorlax": {Name: "snorlax", BaseExperience: 189, Height: 21, Weight: 4600},
	}}
}

func (f *fakeCatalog) Lookup(ctx context.Context, name string) (*catalog.Species, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.species[name]
	if !ok {
		return nil, common.ErrCreatureNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeCatalog) lookupCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
