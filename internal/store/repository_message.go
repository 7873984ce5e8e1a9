package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/models"
)

// messageRepository is the SQL-backed implementation of [MessageRepository].
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage persists a message and returns it with the server-assigned
// insertion-ordered MessageID. The body must already be validated and
// trimmed by the caller.
//
// A foreign-key violation maps to [ErrMissingReference]: the room or author
// the message points at does not exist. The default schema constrains only
// the author reference.
func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMessageQuery(r.db.builder, message)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error building query")
		return models.Message{}, fmt.Errorf("error building insert message query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&message.MessageID); err != nil {
		if classifyConstraint(err) == constraintForeignKey {
			return models.Message{}, ErrMissingReference
		}
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error: scanning error")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return message, nil
}

// ListRoomMessages returns every message posted into roomID in ascending ID
// order, each joined to its author's current display name. When the author
// record no longer resolves, the author field falls back to a synthetic
// label embedding the numeric user ID.
//
// A room with no messages (or a room ID that never existed) yields an empty
// slice, never an error.
func (r *messageRepository) ListRoomMessages(ctx context.Context, roomID int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRoomMessagesQuery(r.db.builder, roomID)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListRoomMessages").Msg("error building query")
		return nil, fmt.Errorf("error building select messages query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListRoomMessages").Msg("error executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var message models.Message
		var author sql.NullString
		if err := rows.Scan(&message.MessageID, &message.Body, &author, &message.UserID, &message.RoomID); err != nil {
			log.Err(err).Str("func", "*messageRepository.ListRoomMessages").Msg("error: scanning error")
			return nil, err
		}

		if author.Valid {
			message.Author = author.String
		} else {
			message.Author = fmt.Sprintf("User ID: %d", message.UserID)
		}

		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.ListRoomMessages").Msg("error iterating rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return messages, nil
}
