package store

import (
	"github.com/watchparty/server/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	RoomRepository    RoomRepository
	MessageRepository MessageRepository
}

// NewStorages wires all repositories to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		RoomRepository:    NewRoomRepository(db, logger),
		MessageRepository: NewMessageRepository(db, logger),
	}
}
