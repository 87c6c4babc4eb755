package users

import (
	"context"
	"sync"

	"github.com/shazhupan/activity-portal/internal/common"
)

// InMemoryRepository keeps user records in a process-local map. Records
// do not survive a restart; that is an accepted limitation of the design.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*User)}
}

// Create stores user keyed by phone. If a record for the phone already
// exists it is returned unchanged, which keeps creation idempotent even
// under concurrent logins for the same phone.
func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.users[user.Phone]; ok {
		return existing, nil
	}

	r.users[user.Phone] = user
	return user, nil
}

func (r *InMemoryRepository) GetByPhone(ctx context.Context, phone string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[phone]
	if !ok {
		return nil, common.ErrNotFound
	}

	return user, nil
}
