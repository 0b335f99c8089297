package login

import (
	"net/http"

	"github.com/rohithbabu/foliohub/internal/app/system/auth"
	"github.com/rohithbabu/foliohub/internal/app/system/httpjson"
	"github.com/rohithbabu/foliohub/internal/app/system/normalize"
	"go.uber.org/zap"
)

// Handler serves password sign-in against the owner allow list.
type Handler struct {
	Sessions *auth.SessionManager
	Allowed  auth.AllowList
	Log      *zap.Logger
}

func NewHandler(sm *auth.SessionManager, allowed auth.AllowList, logger *zap.Logger) *Handler {
	return &Handler{Sessions: sm, Allowed: allowed, Log: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn serves POST /auth/login. Unknown email and wrong password produce
// the same response so the endpoint does not leak which emails are enrolled.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Allowed.Verify(req.Email, req.Password); err != nil {
		h.Log.Info("rejected sign-in", zap.String("email", req.Email))
		httpjson.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	// The allow-list match is case-insensitive; the session stores the
	// canonical form so /auth/me reports it consistently.
	email := normalize.Email(req.Email)
	if err := h.Sessions.SignIn(w, r, auth.SessionUser{Email: email}); err != nil {
		h.Log.Error("failed to establish session", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to sign in")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"email": email})
}

// SignOut serves POST /auth/logout.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(w, r); err != nil {
		h.Log.Error("failed to clear session", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to sign out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me serves GET /auth/me, reporting the signed-in user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "not signed in")
		return
	}
	httpjson.Write(w, http.StatusOK, u)
}
