package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/hearthside/backend/internal/model"
	"github.com/hearthside/backend/internal/repository"
	"github.com/hearthside/backend/internal/service"
)

// parseDate parses "YYYY-MM-DD" or RFC3339 into a *time.Time.
// Empty input yields nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}

// ProjectHandler handles gallery listing and admin curation.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles GET /api/projects. featured=true limits to homepage projects;
// ordering comes from the store (display_order ascending).
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	featured := r.URL.Query().Get("featured")
	opts := model.ProjectListOptions{
		FeaturedOnly: featured == "true" || featured == "1",
	}

	projects, err := h.projectService.List(r.Context(), opts)
	if err != nil {
		slog.Error("project list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// Get handles GET /api/projects/{id}. A missing id is absence, not failure.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
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
		slog.Error("project get failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusOK, project)
}

// projectCreateRequest is the expected JSON body for POST /api/admin/projects.
type projectCreateRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ProjectType     string `json:"projectType"`
	ServiceCategory string `json:"serviceCategory"`
	Location        string `json:"location"`
	BeforeImageURL  string `json:"beforeImageUrl"`
	BeforeImageKey  string `json:"beforeImageKey"`
	AfterImageURL   string `json:"afterImageUrl"`
	AfterImageKey   string `json:"afterImageKey"`
	CompletionDate  string `json:"completionDate"`
	Featured        bool   `json:"featured"`
	DisplayOrder    int    `json:"displayOrder"`
}

func (req *projectCreateRequest) validate() string {
	switch {
	case req.Title == "":
		return "title_required"
	case req.Description == "":
		return "description_required"
	case !model.ValidProjectType(req.ProjectType):
		return "invalid_project_type"
	case req.ServiceCategory == "":
		return "service_category_required"
	case req.BeforeImageURL == "" || req.BeforeImageKey == "":
		return "before_image_required"
	case req.AfterImageURL == "" || req.AfterImageKey == "":
		return "after_image_required"
	}
	return ""
}

// Create handles POST /api/admin/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	project := &model.Project{
		Title:           req.Title,
		Description:     req.Description,
		ProjectType:     req.ProjectType,
		ServiceCategory: req.ServiceCategory,
		Location:        req.Location,
		BeforeImageURL:  req.BeforeImageURL,
		BeforeImageKey:  req.BeforeImageKey,
		AfterImageURL:   req.AfterImageURL,
		AfterImageKey:   req.AfterImageKey,
		CompletionDate:  parseDate(req.CompletionDate),
		Featured:        req.Featured,
		DisplayOrder:    req.DisplayOrder,
	}

	if err := h.projectService.Create(r.Context(), project); err != nil {
		slog.Error("project create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": project.ID})
}

// projectUpdateRequest carries a partial field set: absent JSON keys stay nil
// and leave the stored value untouched.
type projectUpdateRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	ProjectType     *string `json:"projectType"`
	ServiceCategory *string `json:"serviceCategory"`
	Location        *string `json:"location"`
	BeforeImageURL  *string `json:"beforeImageUrl"`
	BeforeImageKey  *string `json:"beforeImageKey"`
	AfterImageURL   *string `json:"afterImageUrl"`
	AfterImageKey   *string `json:"afterImageKey"`
	CompletionDate  *string `json:"completionDate"`
	Featured        *bool   `json:"featured"`
	DisplayOrder    *int    `json:"displayOrder"`
}

// Update handles PUT /api/admin/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	var req projectUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.ProjectType != nil && !model.ValidProjectType(*req.ProjectType) {
		writeError(w, http.StatusBadRequest, "invalid_project_type")
		return
	}

	upd := model.ProjectUpdate{
		Title:           req.Title,
		Description:     req.Description,
		ProjectType:     req.ProjectType,
		ServiceCategory: req.ServiceCategory,
		Location:        req.Location,
		BeforeImageURL:  req.BeforeImageURL,
		BeforeImageKey:  req.BeforeImageKey,
		AfterImageURL:   req.AfterImageURL,
		AfterImageKey:   req.AfterImageKey,
		Featured:        req.Featured,
		DisplayOrder:    req.DisplayOrder,
	}
	if req.CompletionDate != nil {
		upd.CompletionDate = parseDate(*req.CompletionDate)
	}

	if err := h.projectService.Update(r.Context(), id, upd); err != nil {
		slog.Error("project update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update project")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Delete handles DELETE /api/admin/projects/{id}. A missing id is a write
// failure here, unlike Get.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		slog.Error("project delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
