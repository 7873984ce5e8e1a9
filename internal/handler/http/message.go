package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/internal/service"
	"github.com/watchparty/server/internal/store"
	"github.com/watchparty/server/internal/utils"
)

type postMessageRequest struct {
	Body string `json:"body"`
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	roomID, err := roomIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("non-numeric room id in path")
		writeFailure(w, "Room ID must be a number.", http.StatusBadRequest)
		return
	}

	messages, err := h.services.RoomService.ListMessages(ctx, roomID)
	if err != nil {
		log.Err(err).Int64("room_id", roomID).Msg("unexpected error occurred during message listing")
		writeFailure(w, "Failed to retrieve messages", http.StatusInternalServerError)
		return
	}

	// bare array, not the envelope
	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user bound to request context")
		writeFailure(w, "Invalid or missing API key.", http.StatusUnauthorized)
		return
	}

	roomID, err := roomIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("non-numeric room id in path")
		writeFailure(w, "Room ID must be a number.", http.StatusBadRequest)
		return
	}

	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "Request body must be JSON.", http.StatusBadRequest)
		return
	}

	if _, err := h.services.RoomService.PostMessage(ctx, user.UserID, roomID, req.Body); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessageBody):
			log.Err(err).Msg("empty message body")
			writeFailure(w, "Message body is required and cannot be empty.", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrMissingReference):
			log.Err(err).Int64("room_id", roomID).Msg("message references missing row")
			writeFailure(w, "Failed to post message. Ensure room exists.", http.StatusInternalServerError)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during message posting")
			writeFailure(w, "Failed to post message. Ensure room exists.", http.StatusInternalServerError)
			return
		}
	}

	writeSuccess(w, "Message posted successfully", http.StatusCreated)
}
