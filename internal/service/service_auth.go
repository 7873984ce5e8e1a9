package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/watchparty/server/internal/config"
	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/internal/store"
	"github.com/watchparty/server/internal/utils"
	"github.com/watchparty/server/models"
)

const (
	generatedNameDigits   = 6
	generatedPasswordSize = 10
	generatedAPIKeySize   = 40
)

// authService is the concrete implementation of AuthService.
// It handles frictionless registration, credential verification, and API key
// resolution using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing passwords before
	// storage or comparison.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// Signup creates a new account without any caller input.
//
// The display name, password, and API key are all generated server-side:
// a placeholder name with a six-digit suffix, a ten-character lowercase
// alphanumeric password, and a forty-character lowercase alphanumeric key.
// Only the bcrypt hash of the password is persisted; the plaintext is set on
// the returned user so the caller can record it, and is never recoverable
// afterwards.
func (a *authService) Signup(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	name := "Unnamed User #" + utils.RandomDigits(generatedNameDigits)
	password := utils.RandomLowerAlnum(generatedPasswordSize)
	apiKey := utils.RandomLowerAlnum(generatedAPIKeySize)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return models.User{}, fmt.Errorf("password hashing ended with error: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:     name,
		Password: string(hash),
		APIKey:   apiKey,
	})
	if err != nil {
		log.Err(err).Str("name", name).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	createdUser.Password = password

	return createdUser, nil
}

// Login verifies a name/password pair.
//
// Display names are not unique, so every account with a matching name is
// fetched and the password is compared against each candidate's hash. The
// first account whose hash matches wins. Which one that is when several
// accounts share both name and password is not defined.
//
// Returns the matching user or:
//   - ErrInvalidDataProvided if name or password is empty.
//   - ErrWrongCredentials if no account with that name exists or none of
//     them matches the password.
func (a *authService) Login(ctx context.Context, name, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || password == "" {
		log.Error().Msg("empty name or password provided on login")
		return models.User{}, ErrInvalidDataProvided
	}

	candidates, err := a.userRepository.FindUsersByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("name", name).Msg("user lookup ended with error")
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	for _, candidate := range candidates {
		if bcrypt.CompareHashAndPassword([]byte(candidate.Password), []byte(password)) == nil {
			return candidate, nil
		}
	}

	return models.User{}, ErrWrongCredentials
}

// Authenticate resolves a bearer API key to its owning user.
//
// Returns ErrWrongCredentials for an empty or unknown key; transport maps
// that to the standard unauthorized response.
func (a *authService) Authenticate(ctx context.Context, apiKey string) (models.User, error) {
	log := logger.FromContext(ctx)

	if apiKey == "" {
		return models.User{}, ErrWrongCredentials
	}

	user, err := a.userRepository.FindUserByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Msg("api key lookup ended with error")
		return models.User{}, fmt.Errorf("api key lookup ended with error: %w", err)
	}

	return user, nil
}

// UpdateName changes the display name of the user identified by userID.
//
// Returns ErrInvalidDataProvided if the new name is empty. Duplicate names
// are allowed, so no conflict can arise.
func (a *authService) UpdateName(ctx context.Context, userID int64, name string) error {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Int64("user_id", userID).Msg("empty name provided on update")
		return ErrInvalidDataProvided
	}

	if err := a.userRepository.UpdateName(ctx, userID, name); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("name update ended with error")
		return fmt.Errorf("name update ended with error: %w", err)
	}

	return nil
}

// UpdatePassword replaces the credential of the user identified by userID.
//
// Returns:
//   - ErrInvalidDataProvided if password or confirm is empty.
//   - ErrPasswordMismatch if the two values differ.
func (a *authService) UpdatePassword(ctx context.Context, userID int64, password, confirm string) error {
	log := logger.FromContext(ctx)

	if password == "" || confirm == "" {
		log.Error().Int64("user_id", userID).Msg("empty password provided on update")
		return ErrInvalidDataProvided
	}
	if password != confirm {
		return ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password hashing ended with error")
		return fmt.Errorf("password hashing ended with error: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, userID, string(hash)); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}
