package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/riddhimajain08/productivity-api/domain"
	"github.com/riddhimajain08/productivity-api/internal/auth"
	appLogger "github.com/riddhimajain08/productivity-api/pkg/logger"
	"github.com/riddhimajain08/productivity-api/repository"
)

const bcryptCost = 10

type UseCase struct {
	users  repository.UserRepository
	tokens *auth.Tokens
	logger *zap.Logger
}

func New(users repository.UserRepository, tokens *auth.Tokens, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register stores a new account with a hashed password and returns the row as
// created. Uniqueness of the email is left to the datastore.
func (uc *UseCase) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a bearer token for the account. An
// unknown email and a wrong password are distinct outcomes, matching the API
// this service replaces.
func (uc *UseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUnknownUser
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		appLogger.WithRequestID(ctx, uc.logger).Debug("login rejected", zap.String("email", email))
		return "", domain.ErrBadCredentials
	}

	return uc.tokens.Issue(user.ID)
}
