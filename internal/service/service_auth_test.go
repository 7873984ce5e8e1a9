package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/watchparty/server/internal/config"
	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/internal/store"
	"github.com/watchparty/server/models"
)

type mockUserRepository struct {
	createUserFunc       func(ctx context.Context, user models.User) (models.User, error)
	findUsersByNameFunc  func(ctx context.Context, name string) ([]models.User, error)
	findUserByAPIKeyFunc func(ctx context.Context, apiKey string) (models.User, error)
	updateNameFunc       func(ctx context.Context, userID int64, name string) error
	updatePasswordFunc   func(ctx context.Context, userID int64, passwordHash string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUsersByName(ctx context.Context, name string) ([]models.User, error) {
	return m.findUsersByNameFunc(ctx, name)
}

func (m *mockUserRepository) FindUserByAPIKey(ctx context.Context, apiKey string) (models.User, error) {
	return m.findUserByAPIKeyFunc(ctx, apiKey)
}

func (m *mockUserRepository) UpdateName(ctx context.Context, userID int64, name string) error {
	return m.updateNameFunc(ctx, userID, name)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return m.updatePasswordFunc(ctx, userID, passwordHash)
}

// MinCost keeps bcrypt fast in tests.
var testCfg = config.App{BcryptCost: bcrypt.MinCost}

func TestAuthService_Signup(t *testing.T) {
	var stored models.User
	repo := &mockUserRepository{
		createUserFunc: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 1
			return user, nil
		},
	}
	auth := NewAuthService(repo, testCfg, logger.Nop())

	user, err := auth.Signup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.UserID)
	assert.Regexp(t, regexp.MustCompile(`^Unnamed User #\d{6}$`), user.Name)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{10}$`), user.Password)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{40}$`), user.APIKey)

	// only the hash reaches the store, and it verifies against the
	// plaintext handed back to the caller
	assert.NotEqual(t, user.Password, stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(user.Password)))
}

func TestAuthService_Signup_StoreError(t *testing.T) {
	repo := &mockUserRepository{
		createUserFunc: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, errors.New("insert failed")
		},
	}
	auth := NewAuthService(repo, testCfg, logger.Nop())

	_, err := auth.Signup(context.Background())
	assert.Error(t, err)
}

func TestAuthService_Login(t *testing.T) {
	hash := func(password string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		return string(h)
	}

	accounts := []models.User{
		{UserID: 1, Name: "alice", Password: hash("first-pass"), APIKey: "key-1"},
		{UserID: 4, Name: "alice", Password: hash("fourth-pass"), APIKey: "key-4"},
	}

	repo := &mockUserRepository{
		findUsersByNameFunc: func(_ context.Context, name string) ([]models.User, error) {
			if name != "alice" {
				return nil, store.ErrUserNotFound
			}
			return accounts, nil
		},
	}
	auth := NewAuthService(repo, testCfg, logger.Nop())

	tests := []struct {
		name       string
		loginName  string
		password   string
		wantUserID int64
		wantErr    error
	}{
		{
			name:       "password selects the right account among namesakes",
			loginName:  "alice",
			password:   "fourth-pass",
			wantUserID: 4,
		},
		{
			name:      "wrong password",
			loginName: "alice",
			password:  "nope",
			wantErr:   ErrWrongCredentials,
		},
		{
			name:      "unknown name",
			loginName: "bob",
			password:  "first-pass",
			wantErr:   ErrWrongCredentials,
		},
		{
			name:      "empty password",
			loginName: "alice",
			wantErr:   ErrInvalidDataProvided,
		},
		{
			name:     "empty name",
			password: "first-pass",
			wantErr:  ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := auth.Login(context.Background(), tt.loginName, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUserID, user.UserID)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	repo := &mockUserRepository{
		findUserByAPIKeyFunc: func(_ context.Context, apiKey string) (models.User, error) {
			if apiKey == "key-1" {
				return models.User{UserID: 1, Name: "alice", APIKey: "key-1"}, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
	}
	auth := NewAuthService(repo, testCfg, logger.Nop())

	t.Run("known key", func(t *testing.T) {
		user, err := auth.Authenticate(context.Background(), "key-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.UserID)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := auth.Authenticate(context.Background(), "bogus")
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := auth.Authenticate(context.Background(), "")
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})
}

func TestAuthService_UpdateName(t *testing.T) {
	var gotUserID int64
	var gotName string
	repo := &mockUserRepository{
		updateNameFunc: func(_ context.Context, userID int64, name string) error {
			gotUserID, gotName = userID, name
			return nil
		},
	}
	auth := NewAuthService(repo, testCfg, logger.Nop())

	t.Run("success", func(t *testing.T) {
		err := auth.UpdateName(context.Background(), 3, "new name")
		require.NoError(t, err)
		assert.Equal(t, int64(3), gotUserID)
		assert.Equal(t, "new name", gotName)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		err := auth.UpdateName(context.Background(), 3, "")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestAuthService_UpdatePassword(t *testing.T) {
	var storedHash string
	repo := &mockUserRepository{
		updatePasswordFunc: func(_ context.Context, _ int64, passwordHash string) error {
			storedHash = passwordHash
			return nil
		},
	}
	auth := NewAuthService(repo, testCfg, logger.Nop())

	t.Run("success stores a verifiable hash", func(t *testing.T) {
		err := auth.UpdatePassword(context.Background(), 3, "s3cret", "s3cret")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("s3cret")))
	})

	t.Run("mismatch rejected", func(t *testing.T) {
		err := auth.UpdatePassword(context.Background(), 3, "s3cret", "other")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("empty confirm rejected", func(t *testing.T) {
		err := auth.UpdatePassword(context.Background(), 3, "s3cret", "")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}
