package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/settings/", h.getSettings)
		r.With(h.checkHashing).Put("/api/settings/", h.saveSettings)

		r.Post("/api/mail/test", h.sendTestEmail)
		r.Get("/api/status/", h.getStatus)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
