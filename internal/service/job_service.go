package service

import (
	"context"

	"github.com/hearthside/backend/internal/model"
)

// JobService defines the business logic for job-submission intake and triage.
type JobService interface {
	// Submit persists a new submission with status "new" and then announces
	// it to the owner. The job's ID and timestamps are populated by the
	// implementation. Notification failure never rolls the record back.
	Submit(ctx context.Context, job *model.JobSubmission) error

	// List returns submissions according to the given options.
	List(ctx context.Context, opts model.JobListOptions) ([]*model.JobSubmission, error)

	// UpdateStatus overwrites the submission's status. The new status must be
	// a member of the job status set; any member-to-member transition is
	// accepted.
	UpdateStatus(ctx context.Context, id int64, status string) error
}
