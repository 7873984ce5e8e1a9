package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/signup", h.signup)
		r.Post("/api/login", h.login)
	})

	// routes behind the API key check
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/profile", h.profile)
		r.Post("/api/user/name", h.updateName)
		r.Post("/api/user/password", h.updatePassword)

		r.Get("/api/rooms", h.listRooms)
		r.Post("/api/rooms", h.createRoom)
		r.Post("/api/rooms/{roomID}/name", h.renameRoom)
		r.Get("/api/rooms/{roomID}/messages", h.listMessages)
		r.Post("/api/rooms/{roomID}/messages", h.postMessage)
	})

	return router
}
