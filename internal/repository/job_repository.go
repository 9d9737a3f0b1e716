package repository

import (
	"context"

	"github.com/hearthside/backend/internal/model"
)

// JobSubmissionRepository defines the persistence interface for job
// submissions. Submissions are never deleted in-app, so there is no Delete.
type JobSubmissionRepository interface {
	// Create inserts a new submission and populates ID and timestamps.
	Create(ctx context.Context, job *model.JobSubmission) error
	List(ctx context.Context, opts model.JobListOptions) ([]*model.JobSubmission, error)
	GetByID(ctx context.Context, id int64) (*model.JobSubmission, error)
	// UpdateStatus overwrites the status and bumps updated_at.
	// Returns ErrNotFound when no row matches id.
	UpdateStatus(ctx context.Context, id int64, status string) error
}
