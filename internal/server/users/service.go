// Package users is the registry of accounts created on first login.
package users

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shazhupan/activity-portal/internal/common"
)

type Service struct {
	repo Repository

	// now is swapped out in tests.
	now func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// EnsureUser returns the record for phone, creating it on first login.
// A second login returns the existing record unchanged.
func (s *Service) EnsureUser(ctx context.Context, phone string) (*User, error) {
	user, err := s.repo.GetByPhone(ctx, phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	user = &User{
		ID:        uuid.NewString(),
		Phone:     phone,
		CreatedAt: s.now(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, common.ErrInternal
	}

	return created, nil
}
