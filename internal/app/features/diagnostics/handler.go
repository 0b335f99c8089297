package diagnostics

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rohithbabu/foliohub/internal/app/store/debuglogs"
	"github.com/rohithbabu/foliohub/internal/app/system/diaglog"
	"github.com/rohithbabu/foliohub/internal/app/system/httpjson"
	"github.com/rohithbabu/foliohub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const defaultLimit = 50

// Handler exposes the diagnostic sink to the signed-in owner: the
// in-memory ring for a quick look, the persisted error log for history.
type Handler struct {
	Diag  *diaglog.Logger
	Store *debuglogs.Store
	Log   *zap.Logger
}

func NewHandler(diag *diaglog.Logger, store *debuglogs.Store, logger *zap.Logger) *Handler {
	return &Handler{Diag: diag, Store: store, Log: logger}
}

type recentResponse struct {
	Entries []debuglogs.Entry `json:"entries"`
}

// Recent serves GET /api/diagnostics. Entries come newest-first from the
// in-memory ring; no database round trip.
func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httpjson.Error(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	entries := h.Diag.Recent(limit)
	if entries == nil {
		entries = []debuglogs.Entry{}
	}
	httpjson.Write(w, http.StatusOK, recentResponse{Entries: entries})
}

// Persisted serves GET /api/diagnostics/persisted: the error entries that
// survived in the debug_logs collection.
func (h *Handler) Persisted(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			httpjson.Error(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := h.Store.Recent(ctx, limit)
	if err != nil {
		h.Log.Error("failed to fetch persisted diagnostics", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch diagnostics")
		return
	}
	if entries == nil {
		entries = []debuglogs.Entry{}
	}
	httpjson.Write(w, http.StatusOK, recentResponse{Entries: entries})
}

// Clear serves DELETE /api/diagnostics: empties the ring and the persisted
// log together.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Diag.Clear(ctx); err != nil {
		h.Log.Error("failed to clear diagnostics", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to clear diagnostics")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
