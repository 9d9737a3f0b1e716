package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hearthside/backend/internal/model"
	"github.com/hearthside/backend/internal/service"
)

const maxDescriptionLength = 5000

// JobHandler handles job-submission intake and admin triage.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a JobHandler with the given service.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// jobSubmitRequest is the expected JSON body for POST /api/jobs.
type jobSubmitRequest struct {
	ClientName         string `json:"clientName"`
	ClientEmail        string `json:"clientEmail"`
	ClientPhone        string `json:"clientPhone"`
	ProjectType        string `json:"projectType"`
	ServiceCategory    string `json:"serviceCategory"`
	ProjectDescription string `json:"projectDescription"`
	Location           string `json:"location"`
	Latitude           string `json:"latitude"`
	Longitude          string `json:"longitude"`
	TimelinePreference string `json:"timelinePreference"`
	BudgetRange        string `json:"budgetRange"`
	HasElectrical      bool   `json:"hasElectrical"`
	HasPlumbing        bool   `json:"hasPlumbing"`
	HasGasLines        bool   `json:"hasGasLines"`
	HasLoadBearing     bool   `json:"hasLoadBearing"`
	RequiresPermits    bool   `json:"requiresPermits"`
}

// validate reports the first missing or malformed required field.
func (req *jobSubmitRequest) validate() string {
	switch {
	case req.ClientName == "":
		return "client_name_required"
	case req.ClientEmail == "" && req.ClientPhone == "":
		return "contact_required"
	case !model.ValidProjectType(req.ProjectType):
		return "invalid_project_type"
	case req.ServiceCategory == "":
		return "service_category_required"
	case req.ProjectDescription == "":
		return "project_description_required"
	case len([]rune(req.ProjectDescription)) > maxDescriptionLength:
		return "project_description_too_long"
	case req.Location == "":
		return "location_required"
	case req.TimelinePreference == "":
		return "timeline_preference_required"
	case req.BudgetRange == "":
		return "budget_range_required"
	}
	return ""
}

// Submit handles POST /api/jobs. Scope flags never block creation; the
// response echoes the out-of-scope classification so the UI can show its
// warning banner.
func (h *JobHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req jobSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	job := &model.JobSubmission{
		ClientName:         req.ClientName,
		ClientEmail:        req.ClientEmail,
		ClientPhone:        req.ClientPhone,
		ProjectType:        req.ProjectType,
		ServiceCategory:    req.ServiceCategory,
		ProjectDescription: req.ProjectDescription,
		Location:           req.Location,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		TimelinePreference: req.TimelinePreference,
		BudgetRange:        req.BudgetRange,
		ScopeFlags: model.ScopeFlags{
			HasElectrical:   req.HasElectrical,
			HasPlumbing:     req.HasPlumbing,
			HasGasLines:     req.HasGasLines,
			HasLoadBearing:  req.HasLoadBearing,
			RequiresPermits: req.RequiresPermits,
		},
	}

	if err := h.jobService.Submit(r.Context(), job); err != nil {
		slog.Error("job submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create job submission")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":    true,
		"id":         job.ID,
		"outOfScope": job.OutOfScope(),
	})
}

// AdminList handles GET /api/admin/jobs. Supports the status query param.
func (h *JobHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !model.ValidJobStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid_status")
		return
	}

	jobs, err := h.jobService.List(r.Context(), model.JobListOptions{Status: status})
	if err != nil {
		slog.Error("job list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	// Return [] not null for empty lists
	if jobs == nil {
		jobs = []*model.JobSubmission{}
	}
	writeJSON(w, http.StatusOK, jobs)
}

// statusUpdateRequest is the JSON body for the status-update endpoints.
type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/jobs/{id}/status.
func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := h.jobService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		var ise *service.InvalidStatusError
		if errors.As(err, &ise) {
			writeError(w, http.StatusBadRequest, "invalid_status")
			return
		}
		slog.Error("job status update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
