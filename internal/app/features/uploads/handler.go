package uploads

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rohithbabu/foliohub/internal/app/system/httpjson"
	"github.com/rohithbabu/foliohub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// maxUploadBytes caps image uploads at 10 MB.
const maxUploadBytes = 10 << 20

// Handler stores uploaded images and hands back the public URL for use in
// project cards, achievement images, and the about photo.
type Handler struct {
	Storage storage.Store
	Log     *zap.Logger
}

func NewHandler(store storage.Store, logger *zap.Logger) *Handler {
	return &Handler{Storage: store, Log: logger}
}

type uploadResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Upload serves POST /api/uploads. Expects a multipart form with a "file"
// part; only image content types are accepted.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		httpjson.Error(w, http.StatusUnsupportedMediaType, "only image uploads are accepted")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	path, err := h.store(ctx, header.Filename, file, contentType)
	if err != nil {
		h.Log.Error("failed to store upload", zap.Error(err), zap.String("filename", header.Filename))
		httpjson.Error(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	httpjson.Write(w, http.StatusCreated, uploadResponse{
		Path: path,
		URL:  h.Storage.URL(path),
		Size: header.Size,
	})
}

// Delete serves DELETE /api/uploads/*.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	if path == "" || strings.Contains(path, "..") {
		httpjson.Error(w, http.StatusBadRequest, "invalid path")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Storage.Delete(ctx, path); err != nil {
		h.Log.Error("failed to delete upload", zap.Error(err), zap.String("path", path))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete file")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// store writes the file under images/YYYY/MM/uuid-filename.
func (h *Handler) store(ctx context.Context, filename string, reader io.Reader, contentType string) (string, error) {
	now := time.Now().UTC()
	dateDir := fmt.Sprintf("images/%04d/%02d", now.Year(), now.Month())
	uniqueName := fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeFilename(filename))
	path := filepath.ToSlash(filepath.Join(dateDir, uniqueName))

	opts := &storage.PutOptions{ContentType: contentType}
	if err := h.Storage.Put(ctx, path, reader, opts); err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return path, nil
}

// sanitizeFilename replaces characters that could be problematic in paths.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}
	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
