package login

import "github.com/go-chi/chi/v5"

// Routes returns the password auth subrouter, mounted under /auth.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.SignIn)
	r.Post("/logout", h.SignOut)
	r.Get("/me", h.Me)
	return r
}
