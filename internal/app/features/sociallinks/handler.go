package sociallinks

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	sociallinkstore "github.com/rohithbabu/foliohub/internal/app/store/sociallinks"
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

// Handler serves the social links API.
type Handler struct {
	Store *sociallinkstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, diag *diaglog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Store: sociallinkstore.New(db, diag), Log: logger}
}

type listResponse struct {
	Items []models.SocialLink `json:"items"`
}

// List serves GET /api/social-links.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.GetAll(ctx)
	if err != nil {
		h.Log.Error("failed to list social links", zap.Error(err))
	}
	resolved, source := fetch.Resolve(items, err, fallback.SocialLinks)
	w.Header().Set(fetch.HeaderSource, string(source))
	httpjson.Write(w, http.StatusOK, listResponse{Items: resolved})
}

// GetByPlatform serves GET /api/social-links/platform/{platform}.
func (h *Handler) GetByPlatform(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	l, err := h.Store.GetByPlatform(ctx, platform)
	if err == sociallinkstore.ErrNotFound {
		httpjson.Error(w, http.StatusNotFound, "social link not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to fetch social link", zap.Error(err), zap.String("platform", platform))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch social link")
		return
	}
	httpjson.Write(w, http.StatusOK, l)
}

// Create serves POST /api/social-links. A second link for an existing
// platform is rejected with 409.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var l models.SocialLink
	if err := httpjson.Decode(r, &l); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	l.ID = primitive.NilObjectID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Add(ctx, l)
	if err == sociallinkstore.ErrDuplicatePlatform {
		httpjson.Error(w, http.StatusConflict, "a link for this platform already exists")
		return
	}
	if err != nil {
		h.Log.Error("failed to add social link", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to add social link")
		return
	}
	httpjson.Write(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

// Upsert serves PUT /api/social-links/platform/{platform}. The platform in
// the path wins over any platform in the body.
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var l models.SocialLink
	if err := httpjson.Decode(r, &l); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	l.Platform = chi.URLParam(r, "platform")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Upsert(ctx, l); err != nil {
		h.Log.Error("failed to upsert social link", zap.Error(err), zap.String("platform", l.Platform))
		httpjson.Error(w, http.StatusInternalServerError, "failed to save social link")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type linkPatch struct {
	Platform    *string `json:"platform"`
	URL         *string `json:"url"`
	Username    *string `json:"username"`
	Placeholder *string `json:"placeholder"`
}

func (p linkPatch) set() bson.M {
	set := bson.M{}
	if p.Platform != nil {
		set["platform"] = *p.Platform
	}
	if p.URL != nil {
		set["url"] = *p.URL
	}
	if p.Username != nil {
		set["username"] = *p.Username
	}
	if p.Placeholder != nil {
		set["placeholder"] = *p.Placeholder
	}
	return set
}

// Update serves PUT /api/social-links/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid social link id")
		return
	}
	var patch linkPatch
	if err := httpjson.Decode(r, &patch); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err = h.Store.Update(ctx, id, patch.set())
	if err == sociallinkstore.ErrNotFound {
		httpjson.Error(w, http.StatusNotFound, "social link not found")
		return
	}
	if err == sociallinkstore.ErrDuplicatePlatform {
		httpjson.Error(w, http.StatusConflict, "a link for this platform already exists")
		return
	}
	if err != nil {
		h.Log.Error("failed to update social link", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update social link")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete serves DELETE /api/social-links/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid social link id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		h.Log.Error("failed to delete social link", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete social link")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
