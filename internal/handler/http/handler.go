package http

import (
	"net/http"

	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/internal/service"
	"github.com/watchparty/server/internal/utils"
	"github.com/watchparty/server/models"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeFailure emits the standard failure envelope.
func writeFailure(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.Response{Success: false, Message: message}, statusCode)
}

// writeSuccess emits the standard success envelope.
func writeSuccess(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.Response{Success: true, Message: message}, statusCode)
}
