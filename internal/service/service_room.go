package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/internal/store"
	"github.com/watchparty/server/internal/utils"
	"github.com/watchparty/server/models"
)

// roomService is the concrete implementation of RoomService. It owns room
// lifecycle and message posting, delegating persistence to the room and
// message repositories.
type roomService struct {
	roomRepository    store.RoomRepository
	messageRepository store.MessageRepository
	logger            *logger.Logger
}

// NewRoomService constructs a RoomService wired to the given repositories.
func NewRoomService(roomRepository store.RoomRepository, messageRepository store.MessageRepository, logger *logger.Logger) RoomService {
	return &roomService{
		roomRepository:    roomRepository,
		messageRepository: messageRepository,
		logger:            logger,
	}
}

// ListRooms returns every room in creation order.
func (r *roomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	log := logger.FromContext(ctx)

	rooms, err := r.roomRepository.ListRooms(ctx)
	if err != nil {
		log.Err(err).Msg("room listing ended with error")
		return nil, fmt.Errorf("room listing ended with error: %w", err)
	}

	return rooms, nil
}

// CreateRoom creates a room named name. When name is empty the room gets a
// generated placeholder name with a six-digit suffix. Room names are not
// required to be unique.
func (r *roomService) CreateRoom(ctx context.Context, name string) (models.Room, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		name = "Unnamed Room " + utils.RandomDigits(generatedNameDigits)
	}

	room, err := r.roomRepository.CreateRoom(ctx, name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("room creation ended with error")
		return models.Room{}, fmt.Errorf("room creation ended with error: %w", err)
	}

	return room, nil
}

// RenameRoom sets the name of the room identified by roomID. A roomID that
// matches no room is a silent no-op success.
//
// Returns ErrInvalidDataProvided if the new name is empty.
func (r *roomService) RenameRoom(ctx context.Context, roomID int64, name string) error {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Int64("room_id", roomID).Msg("empty name provided on room rename")
		return ErrInvalidDataProvided
	}

	if err := r.roomRepository.RenameRoom(ctx, roomID, name); err != nil {
		log.Err(err).Int64("room_id", roomID).Msg("room rename ended with error")
		return fmt.Errorf("room rename ended with error: %w", err)
	}

	return nil
}

// ListMessages returns every message posted into roomID in posting order.
// An unknown roomID yields an empty list, the same as a room nobody has
// posted into.
func (r *roomService) ListMessages(ctx context.Context, roomID int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	messages, err := r.messageRepository.ListRoomMessages(ctx, roomID)
	if err != nil {
		log.Err(err).Int64("room_id", roomID).Msg("message listing ended with error")
		return nil, fmt.Errorf("message listing ended with error: %w", err)
	}

	return messages, nil
}

// PostMessage stores a message authored by userID in roomID. The body is
// trimmed of surrounding whitespace before storage.
//
// Returns ErrEmptyMessageBody when the trimmed body is empty. Posting into a
// room ID that no room carries succeeds: the room reference is deliberately
// unconstrained so clients can prepare rooms out of band.
func (r *roomService) PostMessage(ctx context.Context, userID, roomID int64, body string) (models.Message, error) {
	log := logger.FromContext(ctx)

	body = strings.TrimSpace(body)
	if body == "" {
		log.Error().Int64("room_id", roomID).Msg("empty message body provided")
		return models.Message{}, ErrEmptyMessageBody
	}

	message, err := r.messageRepository.CreateMessage(ctx, models.Message{
		UserID: userID,
		RoomID: roomID,
		Body:   body,
	})
	if err != nil {
		log.Err(err).Int64("room_id", roomID).Msg("message creation ended with error")
		return models.Message{}, fmt.Errorf("message creation ended with error: %w", err)
	}

	return message, nil
}
