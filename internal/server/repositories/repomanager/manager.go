package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/hydrohabit/internal/dbx"
	"github.com/dmitrijs2005/hydrohabit/internal/server/repositories/sips"
	"github.com/dmitrijs2005/hydrohabit/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX. Services depend on
// this interface only and never know which backing is active.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sips(db dbx.DBTX) sips.Repository
}
