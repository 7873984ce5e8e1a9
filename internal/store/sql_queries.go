package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/watchparty/server/models"
)

// Query builders shared by the repositories. Every statement is built with
// squirrel against the backend's placeholder format carried by the builder,
// so the same repository code runs on PostgreSQL and SQLite.

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("name", "password", "api_key").
		Values(user.Name, user.Password, user.APIKey).
		Suffix("RETURNING id, name, api_key").
		ToSql()
}

func buildSelectUsersByNameQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select("id", "name", "password", "api_key").
		From(models.User{}.TableName()).
		Where(sq.Eq{"name": name}).
		OrderBy("id ASC").
		ToSql()
}

func buildSelectUserByAPIKeyQuery(b sq.StatementBuilderType, apiKey string) (string, []any, error) {
	return b.Select("id", "name", "password", "api_key").
		From(models.User{}.TableName()).
		Where(sq.Eq{"api_key": apiKey}).
		ToSql()
}

func buildUpdateUserNameQuery(b sq.StatementBuilderType, userID int64, name string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("name", name).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpdateUserPasswordQuery(b sq.StatementBuilderType, userID int64, passwordHash string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("password", passwordHash).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertRoomQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Insert(models.Room{}.TableName()).
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name").
		ToSql()
}

func buildSelectRoomsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("id", "name").
		From(models.Room{}.TableName()).
		OrderBy("id ASC").
		ToSql()
}

func buildUpdateRoomNameQuery(b sq.StatementBuilderType, roomID int64, name string) (string, []any, error) {
	return b.Update(models.Room{}.TableName()).
		Set("name", name).
		Where(sq.Eq{"id": roomID}).
		ToSql()
}

func buildInsertMessageQuery(b sq.StatementBuilderType, message models.Message) (string, []any, error) {
	return b.Insert(message.TableName()).
		Columns("user_id", "room_id", "body").
		Values(message.UserID, message.RoomID, message.Body).
		Suffix("RETURNING id").
		ToSql()
}

// buildSelectRoomMessagesQuery joins each message to its author's current
// display name. The join is a LEFT JOIN: the author column comes back NULL
// when the user record no longer resolves, and the repository substitutes
// the synthetic fallback label on scan.
func buildSelectRoomMessagesQuery(b sq.StatementBuilderType, roomID int64) (string, []any, error) {
	return b.Select("m.id", "m.body", "u.name AS author", "m.user_id", "m.room_id").
		From("messages m").
		LeftJoin("users u ON m.user_id = u.id").
		Where(sq.Eq{"m.room_id": roomID}).
		OrderBy("m.id ASC").
		ToSql()
}
