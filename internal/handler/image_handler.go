package handler

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"path"
	"strconv"

	"github.com/hearthside/backend/internal/model"
	"github.com/hearthside/backend/internal/repository"
	"github.com/hearthside/backend/internal/service"
	"github.com/hearthside/backend/internal/storage"
)

const maxImageSize = 5 << 20 // 5 MB

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageHandler uploads before/after photos for gallery projects.
type ImageHandler struct {
	storage        storage.Storage
	projectService service.ProjectService
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(store storage.Storage, ps service.ProjectService) *ImageHandler {
	return &ImageHandler{storage: store, projectService: ps}
}

// Upload handles POST /api/admin/projects/{id}/images. The multipart form
// carries a "slot" field ("before" or "after") and an "image" file. The old
// object in that slot, if any, is removed once the new one is stored.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "lookup_failed")
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	slot := r.FormValue("slot")
	if slot != "before" && slot != "after" {
		writeError(w, http.StatusBadRequest, "invalid_slot")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image_required")
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		writeError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[ct]
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_content_type")
		return
	}

	b := make([]byte, 8)
	_, _ = rand.Read(b)
	key := path.Join("projects", strconv.FormatInt(id, 10), slot+"-"+hex.EncodeToString(b)+ext)

	imageURL, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		slog.Error("image upload failed", "error", err, "project_id", id)
		writeError(w, http.StatusInternalServerError, "upload_failed")
		return
	}

	var upd model.ProjectUpdate
	oldKey := ""
	if slot == "before" {
		oldKey = project.BeforeImageKey
		upd.BeforeImageURL = &imageURL
		upd.BeforeImageKey = &key
	} else {
		oldKey = project.AfterImageKey
		upd.AfterImageURL = &imageURL
		upd.AfterImageKey = &key
	}

	if err := h.projectService.Update(r.Context(), id, upd); err != nil {
		slog.Error("image record update failed", "error", err, "project_id", id)
		_ = h.storage.Delete(r.Context(), key)
		writeError(w, http.StatusInternalServerError, "Failed to update project")
		return
	}

	if oldKey != "" && oldKey != key {
		_ = h.storage.Delete(r.Context(), oldKey)
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": imageURL, "key": key})
}
