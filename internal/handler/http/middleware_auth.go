package http

import (
	"context"
	"net/http"

	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/internal/utils"
)

// apiKeyHeader carries the bearer credential issued at signup.
const apiKeyHeader = "Api-Key"

// auth is an HTTP middleware that enforces API key authentication.
//
// It reads the "Api-Key" request header, resolves it to a user via
// [service.AuthService.Authenticate], and — on success — stores the full
// authenticated user in the request context under [utils.UserCtxKey] before
// delegating to the next handler.
//
// A missing or unknown key is rejected with HTTP 401 and the standard
// failure envelope. The response body never distinguishes the two cases.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		user, err := h.services.AuthService.Authenticate(ctx, r.Header.Get(apiKeyHeader))
		if err != nil {
			log.Err(err).Msg("api key authentication failed")
			writeFailure(w, "Invalid or missing API key.", http.StatusUnauthorized)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without a second lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
