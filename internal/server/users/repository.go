package users

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
}
