package model

import (
	"encoding/json"
	"time"
)

// Quote request statuses. Stored verbatim, same interop constraint as job
// submission statuses.
const (
	QuoteStatusNew       = "new"
	QuoteStatusQuoted    = "quoted"
	QuoteStatusContacted = "contacted"
	QuoteStatusCompleted = "completed"
)

// ValidQuoteStatus reports whether s is a member of the quote status set.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusNew, QuoteStatusQuoted, QuoteStatusContacted, QuoteStatusCompleted:
		return true
	}
	return false
}

// QuoteRequest is a client's request for pricing on a set of selected
// service line items.
type QuoteRequest struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail,omitempty"`
	ClientPhone string `json:"clientPhone,omitempty"`
	ProjectType string `json:"projectType"` // "kitchen" | "bathroom"
	// SelectedServices is the JSON-encoded service list as stored.
	// Ordering is preserved and significant for display.
	SelectedServices string    `json:"selectedServices"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// EncodeSelectedServices serializes a service list to the text blob stored in
// the selected_services column.
func EncodeSelectedServices(services []string) (string, error) {
	b, err := json.Marshal(services)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Services decodes the stored service blob back into the ordered list.
// Returns nil for an empty or malformed blob.
func (q *QuoteRequest) Services() []string {
	if q.SelectedServices == "" {
		return nil
	}
	var services []string
	if err := json.Unmarshal([]byte(q.SelectedServices), &services); err != nil {
		return nil
	}
	return services
}

// QuoteListOptions carries the filter parameters for listing quote requests.
type QuoteListOptions struct {
	// Status filters by request status. Empty returns all requests.
	Status string
}
