package about

import (
	"github.com/go-chi/chi/v5"
	"github.com/rohithbabu/foliohub/internal/app/system/auth"
)

// Routes returns the about subrouter.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	r.Get("/all", h.List)

	r.Group(func(r chi.Router) {
		r.Use(sm.RequireSignedIn)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Save)
		r.Delete("/{id}", h.Delete)
	})
	return r
}
