package service

import (
	"context"

	"github.com/hearthside/backend/internal/model"
)

// ProjectService defines the business logic for gallery curation.
type ProjectService interface {
	// Create persists a new gallery project. The project's ID and timestamps
	// are populated by the implementation.
	Create(ctx context.Context, project *model.Project) error

	// List returns projects ordered by display order ascending.
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)

	// GetByID returns the project, or repository.ErrNotFound for a missing id.
	GetByID(ctx context.Context, id int64) (*model.Project, error)

	// Update merges the given partial field set into the project.
	Update(ctx context.Context, id int64, upd model.ProjectUpdate) error

	// Delete removes the project permanently. No soft delete.
	Delete(ctx context.Context, id int64) error
}
