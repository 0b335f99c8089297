package skills

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	skillstore "github.com/rohithbabu/foliohub/internal/app/store/skills"
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

// Handler serves the skills API.
type Handler struct {
	Store *skillstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, diag *diaglog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Store: skillstore.New(db, diag), Log: logger}
}

type listResponse struct {
	Items []models.Skill `json:"items"`
}

// List serves GET /api/skills.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.GetAll(ctx)
	if err != nil {
		h.Log.Error("failed to list skills", zap.Error(err))
	}
	resolved, source := fetch.Resolve(items, err, fallback.Skills)
	w.Header().Set(fetch.HeaderSource, string(source))
	httpjson.Write(w, http.StatusOK, listResponse{Items: resolved})
}

// Get serves GET /api/skills/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid skill id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	s, err := h.Store.GetByID(ctx, id)
	if err == skillstore.ErrNotFound {
		httpjson.Error(w, http.StatusNotFound, "skill not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to fetch skill", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch skill")
		return
	}
	httpjson.Write(w, http.StatusOK, s)
}

// Create serves POST /api/skills.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var s models.Skill
	if err := httpjson.Decode(r, &s); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.ID = primitive.NilObjectID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Add(ctx, s)
	if err != nil {
		h.Log.Error("failed to add skill", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to add skill")
		return
	}
	httpjson.Write(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

type skillPatch struct {
	Name      *string           `json:"name"`
	Level     *int              `json:"level"`
	Subtopics *models.Subtopics `json:"subtopics"`
}

func (p skillPatch) set() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Level != nil {
		set["level"] = *p.Level
	}
	if p.Subtopics != nil {
		set["subtopics"] = []string(*p.Subtopics)
	}
	return set
}

// Update serves PUT /api/skills/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid skill id")
		return
	}
	var patch skillPatch
	if err := httpjson.Decode(r, &patch); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Update(ctx, id, patch.set()); err != nil {
		if err == skillstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "skill not found")
			return
		}
		h.Log.Error("failed to update skill", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update skill")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete serves DELETE /api/skills/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid skill id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		h.Log.Error("failed to delete skill", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete skill")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
