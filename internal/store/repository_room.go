package store

import (
	"context"
	"fmt"

	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/models"
)

// roomRepository is the SQL-backed implementation of [RoomRepository].
type roomRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoomRepository constructs a [RoomRepository] backed by the provided
// database connection and logger.
func NewRoomRepository(db *DB, logger *logger.Logger) RoomRepository {
	logger.Debug().Msg("creating room repository")
	return &roomRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRoom persists a new room and returns it with the server-assigned
// RoomID. Insert and read-back are a single statement via RETURNING, so two
// concurrent creators can never observe each other's row.
//
// A unique violation maps to [ErrRoomNameTaken]. The default schema does not
// constrain room names, so that branch only fires on deployments that add
// the constraint.
func (r *roomRepository) CreateRoom(ctx context.Context, name string) (models.Room, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRoomQuery(r.db.builder, name)
	if err != nil {
		log.Err(err).Str("func", "*roomRepository.CreateRoom").Msg("error building query")
		return models.Room{}, fmt.Errorf("error building insert room query: %w", err)
	}

	var room models.Room
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&room.RoomID, &room.Name); err != nil {
		if classifyConstraint(err) == constraintUnique {
			return models.Room{}, ErrRoomNameTaken
		}
		log.Err(err).Str("func", "*roomRepository.CreateRoom").Msg("error: scanning error")
		return models.Room{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return room, nil
}

// ListRooms returns every room in ascending ID order. An empty store yields
// an empty slice, never an error.
func (r *roomRepository) ListRooms(ctx context.Context) ([]models.Room, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRoomsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*roomRepository.ListRooms").Msg("error building query")
		return nil, fmt.Errorf("error building select rooms query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*roomRepository.ListRooms").Msg("error executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	rooms := make([]models.Room, 0)
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.RoomID, &room.Name); err != nil {
			log.Err(err).Str("func", "*roomRepository.ListRooms").Msg("error: scanning error")
			return nil, err
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*roomRepository.ListRooms").Msg("error iterating rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return rooms, nil
}

// RenameRoom sets the name of the room identified by roomID. Renaming a room
// that does not exist affects zero rows and is still reported as success;
// the contract deliberately has no existence check here.
//
// A unique violation maps to [ErrRoomNameTaken], mirroring CreateRoom.
func (r *roomRepository) RenameRoom(ctx context.Context, roomID int64, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRoomNameQuery(r.db.builder, roomID, name)
	if err != nil {
		log.Err(err).Str("func", "*roomRepository.RenameRoom").Msg("error building query")
		return fmt.Errorf("error building update room query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if classifyConstraint(err) == constraintUnique {
			return ErrRoomNameTaken
		}
		log.Err(err).Str("func", "*roomRepository.RenameRoom").Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
