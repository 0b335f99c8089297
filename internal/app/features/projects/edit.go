package projects

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	projectstore "github.com/rohithbabu/foliohub/internal/app/store/projects"
	"github.com/rohithbabu/foliohub/internal/app/system/httpjson"
	"github.com/rohithbabu/foliohub/internal/app/system/timeouts"
	"github.com/rohithbabu/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Create serves POST /api/projects.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := httpjson.Decode(r, &p); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// The store assigns identity; a client-sent id is ignored.
	p.ID = primitive.NilObjectID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Add(ctx, p)
	if err != nil {
		h.Log.Error("failed to add project", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to add project")
		return
	}
	httpjson.Write(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

// projectPatch carries the fields an update may replace. Absent fields stay
// untouched.
type projectPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Summary      *string   `json:"summary"`
	Image        *string   `json:"image"`
	Technologies *[]string `json:"technologies"`
	DemoURL      *string   `json:"demo_url"`
	CodeURL      *string   `json:"code_url"`
}

func (p projectPatch) set() bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Summary != nil {
		set["summary"] = *p.Summary
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}
	if p.Technologies != nil {
		set["technologies"] = *p.Technologies
	}
	if p.DemoURL != nil {
		set["demo_url"] = *p.DemoURL
	}
	if p.CodeURL != nil {
		set["code_url"] = *p.CodeURL
	}
	return set
}

// Update serves PUT /api/projects/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}
	var patch projectPatch
	if err := httpjson.Decode(r, &patch); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Update(ctx, id, patch.set()); err != nil {
		if err == projectstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "project not found")
			return
		}
		h.Log.Error("failed to update project", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete serves DELETE /api/projects/{id}. Deleting a missing id no-ops.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		h.Log.Error("failed to delete project", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
