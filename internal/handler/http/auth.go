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

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := h.services.AuthService.Signup(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during signup")
		writeFailure(w, "User creation failed", http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", user.UserID).Str("name", user.Name).Msg("user successfully signed up")

	utils.WriteJSON(w, models.IdentityResponse{
		Success:  true,
		APIKey:   user.APIKey,
		UserName: user.Name,
		UserID:   user.UserID,
		Password: user.Password,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "Request body must be JSON.", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeFailure(w, "Username and password are required.", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongCredentials):
			log.Err(err).Msg("no user was found/wrong password")
			writeFailure(w, "Invalid username or password.", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeFailure(w, "Database error occurred.", http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.IdentityResponse{
		Success:  true,
		APIKey:   user.APIKey,
		UserName: user.Name,
		UserID:   user.UserID,
	}, http.StatusOK)
}
