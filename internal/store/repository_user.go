package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, credential lookup, and self-mutation against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the input [models.User]
// with the server-assigned UserID filled in. The INSERT returns the stored
// columns via a RETURNING clause, so insert and read-back are one atomic
// statement.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("error building insert user query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.UserID, &user.Name, &user.APIKey); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUsersByName retrieves every user whose display name matches exactly.
// Names are not unique, so the result may hold more than one row; callers
// that need a single identity must disambiguate themselves (see the login
// flow, which compares credentials against each candidate).
//
// An empty result set yields [ErrUserNotFound].
func (r *userRepository) FindUsersByName(ctx context.Context, name string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersByNameQuery(r.db.builder, name)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByName").Msg("error building query")
		return nil, fmt.Errorf("error building select users query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByName").Msg("error executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Name, &user.Password, &user.APIKey); err != nil {
			log.Err(err).Str("func", "*userRepository.FindUsersByName").Msg("error: scanning error")
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByName").Msg("error iterating rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	if len(users) == 0 {
		return nil, ErrUserNotFound
	}

	return users, nil
}

// FindUserByAPIKey resolves a bearer API key to the user that owns it.
// API keys are unique, so at most one row can match; a miss yields
// [ErrUserNotFound].
func (r *userRepository) FindUserByAPIKey(ctx context.Context, apiKey string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByAPIKeyQuery(r.db.builder, apiKey)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByAPIKey").Msg("error building query")
		return models.User{}, fmt.Errorf("error building select user query: %w", err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.UserID, &user.Name, &user.Password, &user.APIKey); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByAPIKey").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdateName sets the display name of the user identified by userID.
// Updating to the current value is a no-op success; names are not unique so
// no conflict detection applies.
func (r *userRepository) UpdateName(ctx context.Context, userID int64, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserNameQuery(r.db.builder, userID, name)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateName").Msg("error building query")
		return fmt.Errorf("error building update name query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateName").Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// UpdatePassword stores a new credential hash for the user identified by
// userID. The hash is computed at the service layer; this method never sees
// plaintext.
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserPasswordQuery(r.db.builder, userID, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error building query")
		return fmt.Errorf("error building update password query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
