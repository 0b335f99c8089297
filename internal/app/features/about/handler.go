package about

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	aboutstore "github.com/rohithbabu/foliohub/internal/app/store/about"
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

// Handler serves the about API. The collection is a singleton as far as the
// site is concerned; Get returns the first document.
type Handler struct {
	Store *aboutstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, diag *diaglog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Store: aboutstore.New(db, diag), Log: logger}
}

type listResponse struct {
	Items []models.About `json:"items"`
}

// List serves GET /api/about/all.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.GetAll(ctx)
	if err != nil {
		h.Log.Error("failed to list about documents", zap.Error(err))
	}
	resolved, source := fetch.Resolve(items, err, fallback.About)
	w.Header().Set(fetch.HeaderSource, string(source))
	httpjson.Write(w, http.StatusOK, listResponse{Items: resolved})
}

// Get serves GET /api/about. An empty collection is 404, not an error.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Store.Get(ctx)
	if err != nil {
		h.Log.Error("failed to fetch about document", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch about data")
		return
	}
	if a == nil {
		w.Header().Set(fetch.HeaderSource, string(fetch.SourceFallback))
		httpjson.Error(w, http.StatusNotFound, "about data not found")
		return
	}
	w.Header().Set(fetch.HeaderSource, string(fetch.SourceRemote))
	httpjson.Write(w, http.StatusOK, a)
}

// Create serves POST /api/about.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.About
	if err := httpjson.Decode(r, &a); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a.ID = primitive.NilObjectID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Add(ctx, a)
	if err != nil {
		if isValidationErr(err) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("failed to add about document", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to add about data")
		return
	}
	httpjson.Write(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

type aboutPatch struct {
	Headline    *string              `json:"headline"`
	Bio         *string              `json:"bio"`
	Email       *string              `json:"email"`
	Location    *string              `json:"location"`
	Photo       *string              `json:"photo"`
	Phone       *string              `json:"phone"`
	SocialLinks *[]models.SocialLink `json:"social_links"`
}

func (p aboutPatch) set() bson.M {
	set := bson.M{}
	if p.Headline != nil {
		set["headline"] = *p.Headline
	}
	if p.Bio != nil {
		set["bio"] = *p.Bio
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.Photo != nil {
		set["photo"] = *p.Photo
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.SocialLinks != nil {
		set["social_links"] = *p.SocialLinks
	}
	return set
}

// Save serves PUT /api/about/{id}. The store upserts, so saving before the
// singleton exists creates it rather than failing.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid about id")
		return
	}
	var patch aboutPatch
	if err := httpjson.Decode(r, &patch); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Save(ctx, id, patch.set()); err != nil {
		h.Log.Error("failed to save about document", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to save about data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete serves DELETE /api/about/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid about id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, aboutstore.ErrEmptyID) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("failed to delete about document", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete about data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func isValidationErr(err error) bool {
	return errors.Is(err, aboutstore.ErrMissingHeadline) ||
		errors.Is(err, aboutstore.ErrMissingBio) ||
		errors.Is(err, aboutstore.ErrMissingEmail) ||
		errors.Is(err, aboutstore.ErrMissingLocation)
}
