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

// QuoteHandler handles quote-request intake and admin triage.
type QuoteHandler struct {
	quoteService service.QuoteService
}

// NewQuoteHandler creates a QuoteHandler with the given service.
func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// quoteSubmitRequest is the expected JSON body for POST /api/quotes.
type quoteSubmitRequest struct {
	ClientName       string   `json:"clientName"`
	ClientEmail      string   `json:"clientEmail"`
	ClientPhone      string   `json:"clientPhone"`
	ProjectType      string   `json:"projectType"`
	SelectedServices []string `json:"selectedServices"`
}

func (req *quoteSubmitRequest) validate() string {
	switch {
	case req.ClientName == "":
		return "client_name_required"
	case req.ClientEmail == "" && req.ClientPhone == "":
		return "contact_required"
	case !model.ValidProjectType(req.ProjectType):
		return "invalid_project_type"
	case len(req.SelectedServices) == 0:
		return "services_required"
	}
	return ""
}

// Submit handles POST /api/quotes.
func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req quoteSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	quote := &model.QuoteRequest{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		ProjectType: req.ProjectType,
	}

	if err := h.quoteService.Submit(r.Context(), quote, req.SelectedServices); err != nil {
		slog.Error("quote submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create quote request")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": quote.ID})
}

// AdminList handles GET /api/admin/quotes. Supports the status query param.
func (h *QuoteHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !model.ValidQuoteStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid_status")
		return
	}

	quotes, err := h.quoteService.List(r.Context(), model.QuoteListOptions{Status: status})
	if err != nil {
		slog.Error("quote list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	if quotes == nil {
		quotes = []*model.QuoteRequest{}
	}
	writeJSON(w, http.StatusOK, quotes)
}

// UpdateStatus handles PATCH /api/admin/quotes/{id}/status.
func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	if err := h.quoteService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		var ise *service.InvalidStatusError
		if errors.As(err, &ise) {
			writeError(w, http.StatusBadRequest, "invalid_status")
			return
		}
		slog.Error("quote status update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
