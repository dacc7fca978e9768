// Package repomanager provides concrete RepositoryManager implementations:
// PostgreSQL (with goose migrations) and process-local memory.
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/hydrohabit/internal/dbx"
	"github.com/dmitrijs2005/hydrohabit/internal/server/migrations"
	"github.com/dmitrijs2005/hydrohabit/internal/server/repositories/sips"
	"github.com/dmitrijs2005/hydrohabit/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and exposes
// a schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Sips returns a sips.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Sips(db dbx.DBTX) sips.Repository {
	return sips.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations to db.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}
