package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/riddhimajain08/productivity-api/domain"
	"github.com/riddhimajain08/productivity-api/internal/auth"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestTokens() *auth.Tokens {
	return auth.NewTokens("test-secret", "productivity-api", time.Hour)
}

func TestRegisterHashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	uc := New(mockRepo, newTestTokens(), nil)
	user, err := uc.Register(context.Background(), "Jane Doe", "jane@example.com", "secret123")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	mockRepo.AssertExpectations(t)
}

func TestRegisterPropagatesStoreError(t *testing.T) {
	storeErr := domain.WrapError(domain.ErrCodeConflict, "email already registered", errors.New("duplicate key"))

	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(storeErr)

	uc := New(mockRepo, newTestTokens(), nil)
	user, err := uc.Register(context.Background(), "Jane Doe", "jane@example.com", "secret123")

	assert.Nil(t, user)
	assert.Equal(t, storeErr, err)
	mockRepo.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcryptCost)
	require.NoError(t, err)

	account := &domain.User{
		ID:       "user-123",
		Email:    "jane@example.com",
		Password: string(hash),
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name:     "successful login",
			email:    "jane@example.com",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "jane@example.com").Return(account, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrUserNotFound)
			},
			wantErr: domain.ErrUnknownUser,
		},
		{
			name:     "wrong password",
			email:    "jane@example.com",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "jane@example.com").Return(account, nil)
			},
			wantErr: domain.ErrBadCredentials,
		},
		{
			name:     "store failure passes through untouched",
			email:    "jane@example.com",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			tokens := newTestTokens()
			uc := New(mockRepo, tokens, nil)

			token, err := uc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				require.NotEmpty(t, token)

				claims, err := tokens.Verify(token)
				require.NoError(t, err)
				assert.Equal(t, account.ID, claims.UserID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
