package projects

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	projectstore "github.com/rohithbabu/foliohub/internal/app/store/projects"
	"github.com/rohithbabu/foliohub/internal/app/system/fetch"
	"github.com/rohithbabu/foliohub/internal/app/system/httpjson"
	"github.com/rohithbabu/foliohub/internal/app/system/timeouts"
	"github.com/rohithbabu/foliohub/internal/domain/fallback"
	"github.com/rohithbabu/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type listResponse struct {
	Items   []models.Project `json:"items"`
	Message string           `json:"message,omitempty"`
}

// List serves GET /api/projects. An empty collection and a failed fetch
// both degrade to the fallback list; the X-Content-Source header is the
// only place the difference shows.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.GetAll(ctx)
	if err != nil {
		h.Log.Error("failed to list projects", zap.Error(err))
	}
	resolved, source := fetch.Resolve(items, err, fallback.Projects)
	w.Header().Set(fetch.HeaderSource, string(source))

	resp := listResponse{Items: resolved}
	if len(resolved) == 0 {
		resp.Message = "No projects added yet"
	}
	httpjson.Write(w, http.StatusOK, resp)
}

// Get serves GET /api/projects/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.GetByID(ctx, id)
	if err == projectstore.ErrNotFound {
		httpjson.Error(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to fetch project", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch project")
		return
	}
	httpjson.Write(w, http.StatusOK, p)
}
