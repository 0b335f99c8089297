package education

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	educationstore "github.com/rohithbabu/foliohub/internal/app/store/education"
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

// Handler serves the education API. The about card renders only the first
// document, so reads mirror the about feature.
type Handler struct {
	Store *educationstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, diag *diaglog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Store: educationstore.New(db, diag), Log: logger}
}

type listResponse struct {
	Items []models.Education `json:"items"`
}

// List serves GET /api/education/all.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.GetAll(ctx)
	if err != nil {
		h.Log.Error("failed to list education documents", zap.Error(err))
	}
	resolved, source := fetch.Resolve(items, err, fallback.Education)
	w.Header().Set(fetch.HeaderSource, string(source))
	httpjson.Write(w, http.StatusOK, listResponse{Items: resolved})
}

// Get serves GET /api/education.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	e, err := h.Store.Get(ctx)
	if err != nil {
		h.Log.Error("failed to fetch education document", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch education data")
		return
	}
	if e == nil {
		w.Header().Set(fetch.HeaderSource, string(fetch.SourceFallback))
		httpjson.Error(w, http.StatusNotFound, "education data not found")
		return
	}
	w.Header().Set(fetch.HeaderSource, string(fetch.SourceRemote))
	httpjson.Write(w, http.StatusOK, e)
}

// Create serves POST /api/education.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var e models.Education
	if err := httpjson.Decode(r, &e); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.ID = primitive.NilObjectID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Add(ctx, e)
	if err != nil {
		if isValidationErr(err) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("failed to add education document", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to add education data")
		return
	}
	httpjson.Write(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

type educationPatch struct {
	Institution *string `json:"institution"`
	Degree      *string `json:"degree"`
	Field       *string `json:"field"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

func (p educationPatch) set() bson.M {
	set := bson.M{}
	if p.Institution != nil {
		set["institution"] = *p.Institution
	}
	if p.Degree != nil {
		set["degree"] = *p.Degree
	}
	if p.Field != nil {
		set["field"] = *p.Field
	}
	if p.StartDate != nil {
		set["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		set["end_date"] = *p.EndDate
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	return set
}

// Save serves PUT /api/education/{id} via the store's upsert.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid education id")
		return
	}
	var patch educationPatch
	if err := httpjson.Decode(r, &patch); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Save(ctx, id, patch.set()); err != nil {
		h.Log.Error("failed to save education document", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to save education data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete serves DELETE /api/education/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid education id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, educationstore.ErrEmptyID) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("failed to delete education document", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete education data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func isValidationErr(err error) bool {
	return errors.Is(err, educationstore.ErrMissingInstitution) ||
		errors.Is(err, educationstore.ErrMissingDegree) ||
		errors.Is(err, educationstore.ErrMissingField) ||
		errors.Is(err, educationstore.ErrMissingLocation)
}
