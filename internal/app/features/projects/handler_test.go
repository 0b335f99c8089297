package projects

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rohithbabu/foliohub/internal/app/system/auth"
	"github.com/rohithbabu/foliohub/internal/app/system/fetch"
	"github.com/rohithbabu/foliohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)

	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	h := NewHandler(db, nil, zap.NewNop())
	return Routes(h, sm)
}

func TestListEmptyServesFallback(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get(fetch.HeaderSource); got != string(fetch.SourceFallback) {
		t.Errorf("source header = %q, want %q", got, fetch.SourceFallback)
	}

	var resp struct {
		Items   []json.RawMessage `json:"items"`
		Message string            `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("items = %d, want 0", len(resp.Items))
	}
	if resp.Message != "No projects added yet" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestCreateRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"title":"t","description":"d"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestCreateThenList(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := testutil.SignedInRequest("POST", "/", strings.NewReader(`{"title":"CLI Tool","description":"A tool.","technologies":["Go"]}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var created map[string]string
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := primitive.ObjectIDFromHex(created["id"]); err != nil {
		t.Errorf("id %q is not an object id", created["id"])
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	if got := w.Header().Get(fetch.HeaderSource); got != string(fetch.SourceRemote) {
		t.Errorf("source header = %q, want remote", got)
	}
	var resp struct {
		Items   []json.RawMessage `json:"items"`
		Message string            `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Errorf("items = %d, want 1", len(resp.Items))
	}
	if resp.Message != "" {
		t.Errorf("message = %q, want empty on non-empty list", resp.Message)
	}
}

func TestUpdateMissingIs404(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := testutil.SignedInRequest("PUT", "/"+primitive.NewObjectID().Hex(), strings.NewReader(`{"title":"x"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetInvalidID(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/not-an-id", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := testutil.SignedInRequest("DELETE", "/"+primitive.NewObjectID().Hex(), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
}
