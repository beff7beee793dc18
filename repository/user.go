package repository

import (
	"context"

	"github.com/riddhimajain08/productivity-api/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
