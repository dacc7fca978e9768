package users

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/hydrohabit/internal/common"
	"github.com/dmitrijs2005/hydrohabit/internal/server/models"
)

// MemoryRepository keeps credential records in a process-local map, used
// when the database is unreachable. Unlike the Postgres backing, a repeated
// registration overwrites the previous record (last write wins).
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := *user
	u.ID = uuid.NewString()
	r.users[u.UserName] = &u

	return &u, nil
}

func (r *MemoryRepository) FindByCredentials(ctx context.Context, username, loginString string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok || u.LoginString != loginString {
		return nil, common.ErrorNotFound
	}

	copied := *u
	return &copied, nil
}
