package service

import (
	"context"
	"fmt"

	"github.com/hearthside/backend/internal/model"
	"github.com/hearthside/backend/internal/notify"
	"github.com/hearthside/backend/internal/repository"
)

// jobServiceImpl is the production implementation of JobService.
type jobServiceImpl struct {
	repo     repository.JobSubmissionRepository
	notifier notify.Notifier
}

// NewJobService creates a JobService backed by the given repository and
// notifier.
func NewJobService(repo repository.JobSubmissionRepository, notifier notify.Notifier) JobService {
	return &jobServiceImpl{repo: repo, notifier: notifier}
}

// Submit persists the submission first, then notifies the owner. Status is
// forced to "new" regardless of caller input.
func (s *jobServiceImpl) Submit(ctx context.Context, job *model.JobSubmission) error {
	job.Status = model.JobStatusNew
	if err := s.repo.Create(ctx, job); err != nil {
		return fmt.Errorf("create job submission: %w", err)
	}

	s.notifier.Notify(ctx, notify.Message{
		Title: "New Job Submission",
		Content: fmt.Sprintf("%s submitted a job request.\nContact: %s\nProject: %s",
			job.ClientName, job.PrimaryContact(), job.ProjectType),
	})
	return nil
}

// List returns submissions according to the given filter options.
func (s *jobServiceImpl) List(ctx context.Context, opts model.JobListOptions) ([]*model.JobSubmission, error) {
	return s.repo.List(ctx, opts)
}

// UpdateStatus validates enum membership, then overwrites the status.
func (s *jobServiceImpl) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !model.ValidJobStatus(status) {
		return &InvalidStatusError{Status: status}
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	return nil
}
