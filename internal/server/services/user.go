// Package services contains server-side business logic. This file implements
// UserService, the credential store: registration with server-generated
// login strings and byte-exact credential validation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/hydrohabit/internal/common"
	"github.com/dmitrijs2005/hydrohabit/internal/server/models"
	"github.com/dmitrijs2005/hydrohabit/internal/server/repositories/repomanager"
)

// loginStringBytes is the entropy of a generated login string before
// encoding: 32 bytes = 256 bits.
const loginStringBytes = 32

// UserService provides credential operations:
//   - Register: create a user record and hand back its login string
//   - Validate: match username + login string against the store
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewUserService constructs a UserService. db may be nil when the in-memory
// manager is active.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register generates a fresh login string, persists the record, and returns
// the login string. On a storage error nothing is persisted and the error is
// returned; the caller shows the login string to the user exactly once.
func (s *UserService) Register(ctx context.Context, username string) (string, error) {

	loginString, err := common.MakeRandURLSafeString(loginStringBytes)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{
		UserName:    username,
		LoginString: loginString,
		CreatedAt:   time.Now(),
	}

	repo := s.repomanager.Users(s.db)
	if _, err := repo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return loginString, nil
}

// Validate reports whether a record exists matching both username and
// loginString exactly. A missing username and a wrong login string are both
// (false, nil); only a storage failure produces an error.
func (s *UserService) Validate(ctx context.Context, username, loginString string) (bool, error) {

	repo := s.repomanager.Users(s.db)

	_, err := repo.FindByCredentials(ctx, username, loginString)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error validating credentials: %w", err)
	}

	return true, nil
}
