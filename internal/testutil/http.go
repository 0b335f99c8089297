package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/rohithbabu/foliohub/internal/app/system/auth"
)

// OwnerEmail is the enrolled owner used across handler tests.
const OwnerEmail = "rohithbabu031@gmail.com"

// NewRequest builds an httptest request with the given body.
func NewRequest(method, target string, body io.Reader) *http.Request {
	return httptest.NewRequest(method, target, body)
}

// SignedInRequest builds a request that carries a signed-in owner, skipping
// the cookie round trip.
func SignedInRequest(method, target string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, target, body)
	u := &auth.SessionUser{Email: OwnerEmail, Name: "Rohith"}
	return r.WithContext(auth.WithUser(r.Context(), u))
}
