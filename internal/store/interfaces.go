package store

import (
	"context"

	"github.com/watchparty/server/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUsersByName(ctx context.Context, name string) ([]models.User, error)
	FindUserByAPIKey(ctx context.Context, apiKey string) (models.User, error)
	UpdateName(ctx context.Context, userID int64, name string) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

type RoomRepository interface {
	CreateRoom(ctx context.Context, name string) (models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	RenameRoom(ctx context.Context, roomID int64, name string) error
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
	ListRoomMessages(ctx context.Context, roomID int64) ([]models.Message, error)
}
