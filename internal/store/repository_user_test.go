package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	return &DB{
		DB:      mockDB,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		driver:  "pgx",
		logger:  logger.Nop(),
	}, mock
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	newUser := models.User{
		Name:     "Unnamed User #493817",
		Password: "$2a$10$abcdefghijklmnopqrstuv",
		APIKey:   "k3y0000000000000000000000000000000000000",
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO users (name,password,api_key) VALUES ($1,$2,$3) RETURNING id, name, api_key",
	)).
		WithArgs(newUser.Name, newUser.Password, newUser.APIKey).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "api_key"}).
				AddRow(int64(7), newUser.Name, newUser.APIKey),
		)

	created, err := repo.CreateUser(context.Background(), newUser)
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, newUser.Name, created.Name)
	assert.Equal(t, newUser.APIKey, created.APIKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUsersByName(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	query := regexp.QuoteMeta(
		"SELECT id, name, password, api_key FROM users WHERE name = $1 ORDER BY id ASC",
	)

	t.Run("single match", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("alice").
			WillReturnRows(
				sqlmock.NewRows([]string{"id", "name", "password", "api_key"}).
					AddRow(int64(1), "alice", "hash-1", "key-1"),
			)

		users, err := repo.FindUsersByName(context.Background(), "alice")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, int64(1), users[0].UserID)
		assert.Equal(t, "alice", users[0].Name)
	})

	t.Run("duplicate names return every row", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("alice").
			WillReturnRows(
				sqlmock.NewRows([]string{"id", "name", "password", "api_key"}).
					AddRow(int64(1), "alice", "hash-1", "key-1").
					AddRow(int64(4), "alice", "hash-4", "key-4"),
			)

		users, err := repo.FindUsersByName(context.Background(), "alice")
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, int64(4), users[1].UserID)
	})

	t.Run("no match", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "password", "api_key"}))

		users, err := repo.FindUsersByName(context.Background(), "nobody")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, users)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByAPIKey(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	query := regexp.QuoteMeta(
		"SELECT id, name, password, api_key FROM users WHERE api_key = $1",
	)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("key-1").
			WillReturnRows(
				sqlmock.NewRows([]string{"id", "name", "password", "api_key"}).
					AddRow(int64(1), "alice", "hash-1", "key-1"),
			)

		user, err := repo.FindUserByAPIKey(context.Background(), "key-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.UserID)
		assert.Equal(t, "alice", user.Name)
	})

	t.Run("unknown key", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("bogus").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "password", "api_key"}))

		_, err := repo.FindUserByAPIKey(context.Background(), "bogus")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateName(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE users SET name = $1 WHERE id = $2",
	)).
		WithArgs("brand new name", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateName(context.Background(), 3, "brand new name")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE users SET password = $1 WHERE id = $2",
		)).
			WithArgs("$2a$10$newhash", int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdatePassword(context.Background(), 3, "$2a$10$newhash")
		assert.NoError(t, err)
	})

	t.Run("database failure surfaces", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE users SET password = $1 WHERE id = $2",
		)).
			WithArgs("$2a$10$newhash", int64(3)).
			WillReturnError(errors.New("connection reset"))

		err := repo.UpdatePassword(context.Background(), 3, "$2a$10$newhash")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
