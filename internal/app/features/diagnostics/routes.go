package diagnostics

import (
	"github.com/go-chi/chi/v5"
	"github.com/rohithbabu/foliohub/internal/app/system/auth"
)

// Routes returns the diagnostics subrouter. Everything here is owner-only.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Get("/", h.Recent)
	r.Get("/persisted", h.Persisted)
	r.Delete("/", h.Clear)
	return r
}
