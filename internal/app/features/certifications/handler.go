package certifications

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	certificationstore "github.com/rohithbabu/foliohub/internal/app/store/certifications"
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

// Handler serves the certifications API.
type Handler struct {
	Store *certificationstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, diag *diaglog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Store: certificationstore.New(db, diag), Log: logger}
}

type listResponse struct {
	Items []models.Certification `json:"items"`
}

// List serves GET /api/certifications.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.GetAll(ctx)
	if err != nil {
		h.Log.Error("failed to list certifications", zap.Error(err))
	}
	resolved, source := fetch.Resolve(items, err, fallback.Certifications)
	w.Header().Set(fetch.HeaderSource, string(source))
	httpjson.Write(w, http.StatusOK, listResponse{Items: resolved})
}

// Get serves GET /api/certifications/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid certification id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Store.GetByID(ctx, id)
	if err == certificationstore.ErrNotFound {
		httpjson.Error(w, http.StatusNotFound, "certification not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to fetch certification", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch certification")
		return
	}
	httpjson.Write(w, http.StatusOK, c)
}

// Create serves POST /api/certifications.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Certification
	if err := httpjson.Decode(r, &c); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c.ID = primitive.NilObjectID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Add(ctx, c)
	if err != nil {
		h.Log.Error("failed to add certification", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to add certification")
		return
	}
	httpjson.Write(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

type certificationPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
	Date        *string `json:"date"`
}

func (p certificationPatch) set() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Link != nil {
		set["link"] = *p.Link
	}
	if p.Date != nil {
		set["date"] = *p.Date
	}
	return set
}

// Update serves PUT /api/certifications/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid certification id")
		return
	}
	var patch certificationPatch
	if err := httpjson.Decode(r, &patch); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Update(ctx, id, patch.set()); err != nil {
		if err == certificationstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "certification not found")
			return
		}
		h.Log.Error("failed to update certification", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update certification")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete serves DELETE /api/certifications/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid certification id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		h.Log.Error("failed to delete certification", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete certification")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
