package service

import (
	"github.com/watchparty/server/internal/config"
	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/internal/store"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService AuthService
	RoomService RoomService
}

// NewServices wires all services to their repositories.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		RoomService: NewRoomService(storages.RoomRepository, storages.MessageRepository, logger),
	}
}
