// Package repomanager wires together repository constructors and database
// migrations for the server's PostgreSQL storage.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/critterkeep/internal/server/repositories/catches"
	"github.com/dmitrijs2005/critterkeep/internal/server/repositories/creatures"
	"github.com/dmitrijs2005/critterkeep/internal/server/repositories/users"
)

// RepositoryManager exposes the repositories backed by one shared database
// handle, plus lifecycle operations on that handle.
type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Creatures() creatures.Repository
	Catches() catches.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
