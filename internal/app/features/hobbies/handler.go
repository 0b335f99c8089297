package hobbies

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	hobbystore "github.com/rohithbabu/foliohub/internal/app/store/hobbies"
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

// Handler serves the hobbies API.
type Handler struct {
	Store *hobbystore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, diag *diaglog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Store: hobbystore.New(db, diag), Log: logger}
}

type listResponse struct {
	Items []models.Hobby `json:"items"`
}

// List serves GET /api/hobbies.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.GetAll(ctx)
	if err != nil {
		h.Log.Error("failed to list hobbies", zap.Error(err))
	}
	resolved, source := fetch.Resolve(items, err, fallback.Hobbies)
	w.Header().Set(fetch.HeaderSource, string(source))
	httpjson.Write(w, http.StatusOK, listResponse{Items: resolved})
}

// Get serves GET /api/hobbies/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid hobby id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	hb, err := h.Store.GetByID(ctx, id)
	if err == hobbystore.ErrNotFound {
		httpjson.Error(w, http.StatusNotFound, "hobby not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to fetch hobby", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch hobby")
		return
	}
	httpjson.Write(w, http.StatusOK, hb)
}

// Create serves POST /api/hobbies.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var hb models.Hobby
	if err := httpjson.Decode(r, &hb); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	hb.ID = primitive.NilObjectID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Add(ctx, hb)
	if err != nil {
		h.Log.Error("failed to add hobby", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to add hobby")
		return
	}
	httpjson.Write(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

type hobbyPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (p hobbyPatch) set() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	return set
}

// Update serves PUT /api/hobbies/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid hobby id")
		return
	}
	var patch hobbyPatch
	if err := httpjson.Decode(r, &patch); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Update(ctx, id, patch.set()); err != nil {
		if err == hobbystore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "hobby not found")
			return
		}
		h.Log.Error("failed to update hobby", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update hobby")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete serves DELETE /api/hobbies/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid hobby id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		h.Log.Error("failed to delete hobby", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete hobby")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
