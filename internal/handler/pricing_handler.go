package handler

import (
	"net/http"
	"strconv"

	"github.com/hearthside/backend/internal/pricing"
)

// PricingHandler serves the static rate table and the display-only estimator.
type PricingHandler struct{}

// NewPricingHandler creates a PricingHandler.
func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// ratesResponse is the JSON shape of GET /api/pricing/rates.
type ratesResponse struct {
	Hourly  pricing.Range            `json:"hourly"`
	Project map[string]pricing.Range `json:"project"`
	Flat    map[string]pricing.Range `json:"flat"`
}

// Rates handles GET /api/pricing/rates.
func (h *PricingHandler) Rates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ratesResponse{
		Hourly:  pricing.HourlyRate,
		Project: pricing.ProjectRates,
		Flat:    pricing.FlatRates,
	})
}

// Estimate handles GET /api/pricing/estimate. Query params: type (hourly,
// project, flat), hours, duration, service. An unresolved mode or parameter
// yields {"estimate": null}, never an error.
func (h *PricingHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	hours, _ := strconv.Atoi(q.Get("hours"))

	estimate := pricing.Estimate(q.Get("type"), hours, q.Get("duration"), q.Get("service"))
	writeJSON(w, http.StatusOK, map[string]*pricing.Range{"estimate": estimate})
}
