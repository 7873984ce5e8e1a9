package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/internal/service"
	"github.com/watchparty/server/internal/utils"
	"github.com/watchparty/server/models"
)

type updateNameRequest struct {
	NewName string `json:"new_name"`
}

type updatePasswordRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user bound to request context")
		writeFailure(w, "Invalid or missing API key.", http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Success:  true,
		UserID:   user.UserID,
		UserName: user.Name,
	}, http.StatusOK)
}

func (h *Handler) updateName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user bound to request context")
		writeFailure(w, "Invalid or missing API key.", http.StatusUnauthorized)
		return
	}

	var req updateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "Request body must be JSON.", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.UpdateName(ctx, user.UserID, req.NewName); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeFailure(w, "New name is required.", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during name update")
			writeFailure(w, "Database error occurred.", http.StatusInternalServerError)
			return
		}
	}

	writeSuccess(w, "Username updated successfully.", http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user bound to request context")
		writeFailure(w, "Invalid or missing API key.", http.StatusUnauthorized)
		return
	}

	var req updatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "Request body must be JSON.", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.UpdatePassword(ctx, user.UserID, req.NewPassword, req.ConfirmPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeFailure(w, "New password and confirmation are required.", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrPasswordMismatch):
			log.Err(err).Msg("password confirmation mismatch")
			writeFailure(w, "Passwords do not match.", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password update")
			writeFailure(w, "Database error occurred.", http.StatusInternalServerError)
			return
		}
	}

	writeSuccess(w, "Password updated successfully.", http.StatusOK)
}
