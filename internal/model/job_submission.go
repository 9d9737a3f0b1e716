package model

import "time"

// Job submission statuses. The string values are stored verbatim and must not
// change — existing rows and the admin frontend depend on them.
const (
	JobStatusNew       = "new"
	JobStatusQuoted    = "quoted"
	JobStatusScheduled = "scheduled"
	JobStatusCompleted = "completed"
	JobStatusRejected  = "rejected"
)

// Project types.
const (
	ProjectTypeKitchen  = "kitchen"
	ProjectTypeBathroom = "bathroom"
)

// ValidJobStatus reports whether s is a member of the job status set.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusNew, JobStatusQuoted, JobStatusScheduled, JobStatusCompleted, JobStatusRejected:
		return true
	}
	return false
}

// ValidProjectType reports whether s is "kitchen" or "bathroom".
func ValidProjectType(s string) bool {
	return s == ProjectTypeKitchen || s == ProjectTypeBathroom
}

// ScopeFlags marks specialized-trade involvement on a job submission.
// The five flags are independent; any combination is valid and no flag
// implies another.
type ScopeFlags struct {
	HasElectrical   bool `json:"hasElectrical"`
	HasPlumbing     bool `json:"hasPlumbing"`
	HasGasLines     bool `json:"hasGasLines"`
	HasLoadBearing  bool `json:"hasLoadBearing"`
	RequiresPermits bool `json:"requiresPermits"`
}

// OutOfScope reports whether the project touches any specialized trade.
// Advisory only: out-of-scope submissions are still accepted and persisted,
// they just need a manual in-depth quote instead of an automatic one.
func (f ScopeFlags) OutOfScope() bool {
	return f.HasElectrical || f.HasPlumbing || f.HasGasLines || f.HasLoadBearing || f.RequiresPermits
}

// JobSubmission is a prospective client's remodeling project request
// awaiting triage.
type JobSubmission struct {
	ID                 int64  `json:"id"`
	ClientName         string `json:"clientName"`
	ClientEmail        string `json:"clientEmail,omitempty"`
	ClientPhone        string `json:"clientPhone,omitempty"`
	ProjectType        string `json:"projectType"` // "kitchen" | "bathroom"
	ServiceCategory    string `json:"serviceCategory"`
	ProjectDescription string `json:"projectDescription"`
	Location           string `json:"location"`
	Latitude           string `json:"latitude,omitempty"`
	Longitude          string `json:"longitude,omitempty"`
	TimelinePreference string `json:"timelinePreference"` // "urgent" | "soon" | "flexible"
	BudgetRange        string `json:"budgetRange"`        // "under_500" | "500_1000" | "1000_5000" | "over_5000"
	ScopeFlags
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"` // admin-authored
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PrimaryContact returns the email when present, otherwise the phone.
// Intake validation guarantees at least one of the two is set.
func (j *JobSubmission) PrimaryContact() string {
	if j.ClientEmail != "" {
		return j.ClientEmail
	}
	return j.ClientPhone
}

// JobListOptions carries the filter parameters for listing job submissions.
type JobListOptions struct {
	// Status filters by submission status. Empty returns all submissions.
	Status string
}
