package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hydrohabit/internal/common"
	"github.com/dmitrijs2005/hydrohabit/internal/dbx"
	"github.com/dmitrijs2005/hydrohabit/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a credential record. There is no uniqueness constraint on
// username: a repeated registration produces a second row, and every issued
// login string keeps validating against its own row.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (username, login_string, created_at)
         VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.UserName, user.LoginString, user.CreatedAt).Scan(&user.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByCredentials(ctx context.Context, username, loginString string) (*models.User, error) {
	query :=
		`SELECT id, username, login_string, created_at FROM users
		 WHERE username = $1 AND login_string = $2
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username, loginString).
		Scan(&user.ID, &user.UserName, &user.LoginString, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
