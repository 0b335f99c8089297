package certifications

import (
	"github.com/go-chi/chi/v5"
	"github.com/rohithbabu/foliohub/internal/app/system/auth"
)

// Routes returns the certifications subrouter.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(sm.RequireSignedIn)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}
