package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/hydrohabit/internal/dbx"
	"github.com/dmitrijs2005/hydrohabit/internal/server/repositories/sips"
	"github.com/dmitrijs2005/hydrohabit/internal/server/repositories/users"
)

// MemoryRepositoryManager vends process-local repositories, scoped to the
// running server. Selected at startup when the database is unreachable.
// The DBTX argument is ignored; the same repository instances are returned
// on every call so all callers share one store.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
	sips  *sips.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		sips:  sips.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Sips(db dbx.DBTX) sips.Repository {
	return m.sips
}
