package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/internal/service"
	"github.com/watchparty/server/internal/store"
	"github.com/watchparty/server/internal/utils"
	"github.com/watchparty/server/models"
)

type createRoomRequest struct {
	RoomName string `json:"room_name"`
}

type renameRoomRequest struct {
	NewName string `json:"new_name"`
}

// roomIDFromRequest parses the {roomID} path parameter.
func roomIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
}

func (h *Handler) listRooms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rooms, err := h.services.RoomService.ListRooms(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during room listing")
		writeFailure(w, "Failed to retrieve rooms", http.StatusInternalServerError)
		return
	}

	// bare array, not the envelope
	utils.WriteJSON(w, rooms, http.StatusOK)
}

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "Request body must be JSON.", http.StatusBadRequest)
		return
	}

	room, err := h.services.RoomService.CreateRoom(ctx, req.RoomName)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRoomNameTaken):
			log.Err(err).Str("name", req.RoomName).Msg("room name already exists")
			writeFailure(w, fmt.Sprintf("Room name '%s' might already exist.", req.RoomName), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during room creation")
			writeFailure(w, "Database error occurred.", http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", room.RoomID).Str("name", room.Name).Msg("room created")

	utils.WriteJSON(w, models.CreateRoomResponse{
		Success: true,
		Room:    room,
	}, http.StatusCreated)
}

func (h *Handler) renameRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	roomID, err := roomIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("non-numeric room id in path")
		writeFailure(w, "Room ID must be a number.", http.StatusBadRequest)
		return
	}

	var req renameRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "Request body must be JSON.", http.StatusBadRequest)
		return
	}

	if err := h.services.RoomService.RenameRoom(ctx, roomID, req.NewName); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeFailure(w, "New room name ('new_name') is required.", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrRoomNameTaken):
			log.Err(err).Str("name", req.NewName).Msg("room name already exists")
			writeFailure(w, fmt.Sprintf("Room name '%s' might already exist.", req.NewName), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during room rename")
			writeFailure(w, "Database error occurred", http.StatusInternalServerError)
			return
		}
	}

	writeSuccess(w, "Room name updated successfully.", http.StatusOK)
}
