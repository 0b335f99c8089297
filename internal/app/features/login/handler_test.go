package login

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rohithbabu/foliohub/internal/app/system/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const ownerEmail = "rohithbabu031@gmail.com"

func newTestHandler(t *testing.T, password string) *Handler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	allowed, err := auth.ParseAllowList(fmt.Sprintf("%s:%s", ownerEmail, hash))
	if err != nil {
		t.Fatal(err)
	}
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return NewHandler(sm, allowed, zap.NewNop())
}

func postLogin(h *Handler, email, password string) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	h.SignIn(w, r)
	return w
}

func TestSignInSuccess(t *testing.T) {
	h := newTestHandler(t, "hunter2hunter2")

	w := postLogin(h, ownerEmail, "hunter2hunter2")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(w.Result().Cookies()) == 0 {
		t.Error("no session cookie set")
	}
}

func TestSignInNormalizesEmail(t *testing.T) {
	h := newTestHandler(t, "hunter2hunter2")

	w := postLogin(h, "  Rohithbabu031@Gmail.com ", "hunter2hunter2")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["email"] != ownerEmail {
		t.Errorf("email = %q, want canonical %q", resp["email"], ownerEmail)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	h := newTestHandler(t, "hunter2hunter2")

	w := postLogin(h, ownerEmail, "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	assertGenericError(t, w)
}

func TestSignInUnknownEmail(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable.
	h := newTestHandler(t, "hunter2hunter2")

	w := postLogin(h, "stranger@example.com", "hunter2hunter2")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	assertGenericError(t, w)
}

func assertGenericError(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "Invalid email or password" {
		t.Errorf("error = %q, want the generic message", resp["error"])
	}
}

func TestMeWithoutSession(t *testing.T) {
	h := newTestHandler(t, "hunter2hunter2")

	w := httptest.NewRecorder()
	h.Me(w, httptest.NewRequest("GET", "/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestMeWithSession(t *testing.T) {
	h := newTestHandler(t, "hunter2hunter2")

	r := httptest.NewRequest("GET", "/me", nil)
	r = r.WithContext(auth.WithUser(r.Context(), &auth.SessionUser{Email: ownerEmail}))
	w := httptest.NewRecorder()
	h.Me(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var u auth.SessionUser
	if err := json.NewDecoder(w.Body).Decode(&u); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u.Email != ownerEmail {
		t.Errorf("email = %q", u.Email)
	}
}
