package achievements

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	achievementstore "github.com/rohithbabu/foliohub/internal/app/store/achievements"
	"github.com/rohithbabu/foliohub/internal/app/system/diaglog"
	"github.com/rohithbabu/foliohub/internal/app/system/fetch"
	"github.com/rohithbabu/foliohub/internal/app/system/httpjson"
	"github.com/rohithbabu/foliohub/internal/app/system/timeouts"
	"github.com/rohithbabu/foliohub/internal/domain/fallback"
	"github.com/rohithbabu/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the achievements API.
type Handler struct {
	Store *achievementstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, diag *diaglog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Store: achievementstore.New(db, diag), Log: logger}
}

type listResponse struct {
	Items []models.Achievement `json:"items"`
}

// List serves GET /api/achievements.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.GetAll(ctx)
	if err != nil {
		h.Log.Error("failed to list achievements", zap.Error(err))
	}
	resolved, source := fetch.Resolve(items, err, fallback.Achievements)
	w.Header().Set(fetch.HeaderSource, string(source))
	httpjson.Write(w, http.StatusOK, listResponse{Items: resolved})
}

// Get serves GET /api/achievements/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid achievement id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Store.GetByID(ctx, id)
	if err == achievementstore.ErrNotFound {
		httpjson.Error(w, http.StatusNotFound, "achievement not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to fetch achievement", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch achievement")
		return
	}
	httpjson.Write(w, http.StatusOK, a)
}

// Create serves POST /api/achievements.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.Achievement
	if err := httpjson.Decode(r, &a); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a.ID = primitive.NilObjectID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Add(ctx, a)
	if err != nil {
		h.Log.Error("failed to add achievement", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to add achievement")
		return
	}
	httpjson.Write(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

type achievementPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	Link        *string `json:"link"`
}

func (p achievementPatch) set() bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Date != nil {
		set["date"] = *p.Date
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Link != nil {
		set["link"] = *p.Link
	}
	return set
}

// Update serves PUT /api/achievements/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid achievement id")
		return
	}
	var patch achievementPatch
	if err := httpjson.Decode(r, &patch); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Update(ctx, id, patch.set()); err != nil {
		if err == achievementstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "achievement not found")
			return
		}
		h.Log.Error("failed to update achievement", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update achievement")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete serves DELETE /api/achievements/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid achievement id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		h.Log.Error("failed to delete achievement", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete achievement")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
