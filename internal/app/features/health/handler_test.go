package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rohithbabu/foliohub/internal/testutil"
	"go.uber.org/zap"
)

func TestServeHealthy(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := NewHandler(db.Client(), zap.NewNop())
	w := httptest.NewRecorder()
	h.Serve(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Database != "connected" {
		t.Errorf("resp = %+v", resp)
	}
}
