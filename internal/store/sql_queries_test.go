package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchparty/server/models"
)

func TestQueryPlaceholderFormats(t *testing.T) {
	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{
			name:    "postgres dollar placeholders",
			builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			want:    "SELECT id, name, password, api_key FROM users WHERE api_key = $1",
		},
		{
			name:    "sqlite question placeholders",
			builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
			want:    "SELECT id, name, password, api_key FROM users WHERE api_key = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectUserByAPIKeyQuery(tt.builder, "key-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"key-1"}, args)
		})
	}
}

func TestBuildInsertUserQuery(t *testing.T) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := buildInsertUserQuery(builder, models.User{
		Name:     "alice",
		Password: "hash",
		APIKey:   "key",
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO users")
	assert.Contains(t, query, "RETURNING id, name, api_key")
	assert.Equal(t, []any{"alice", "hash", "key"}, args)
}

func TestBuildSelectRoomMessagesQuery(t *testing.T) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := buildSelectRoomMessagesQuery(builder, 2)
	require.NoError(t, err)

	assert.Contains(t, query, "LEFT JOIN users u ON m.user_id = u.id")
	assert.Contains(t, query, "ORDER BY m.id ASC")
	assert.Equal(t, []any{int64(2)}, args)
}

func TestBuildUpdateRoomNameQuery(t *testing.T) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)

	query, args, err := buildUpdateRoomNameQuery(builder, 5, "renamed")
	require.NoError(t, err)

	assert.Equal(t, "UPDATE rooms SET name = ? WHERE id = ?", query)
	assert.Equal(t, []any{"renamed", int64(5)}, args)
}
