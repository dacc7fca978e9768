package users

import (
	"context"

	"github.com/dmitrijs2005/hydrohabit/internal/server/models"
)

// Repository stores credential records. FindByCredentials matches username
// and login string byte-exactly and returns common.ErrorNotFound when no
// record matches; callers must not be able to tell a missing username from
// a wrong login string.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByCredentials(ctx context.Context, username, loginString string) (*models.User, error)
}
